package model

import "time"

// Configuracao é um par chave/valor de configuração da aplicação
type Configuracao struct {
	ID           string    `gorm:"primaryKey;type:uuid" json:"id"`
	Chave        string    `gorm:"uniqueIndex;not null;size:100" json:"chave"`
	Valor        string    `gorm:"type:text" json:"valor"`
	Tipo         string    `gorm:"size:20;default:string" json:"tipo"` // string, int, bool, float
	Editavel     bool      `gorm:"default:true" json:"editavel"`
	Descricao    string    `gorm:"type:text" json:"descricao,omitempty"`
	CriadoEm     time.Time `gorm:"autoCreateTime" json:"criadoEm"`
	AtualizadoEm time.Time `gorm:"autoUpdateTime" json:"atualizadoEm"`
}

// TableName define o nome da tabela
func (Configuracao) TableName() string {
	return "configuracoes"
}
