package model

import "time"

// Localizacao é um local físico que abriga bens
type Localizacao struct {
	ID           string    `gorm:"primaryKey;type:uuid" json:"id"`
	Nome         string    `gorm:"uniqueIndex;not null;size:100" json:"nome"`
	Endereco     string    `gorm:"size:255" json:"endereco,omitempty"`
	Responsavel  string    `gorm:"size:100" json:"responsavel,omitempty"`
	Telefone     string    `gorm:"size:20" json:"telefone,omitempty"`
	Descricao    string    `gorm:"type:text" json:"descricao,omitempty"`
	CriadoEm     time.Time `gorm:"autoCreateTime" json:"criadoEm"`
	AtualizadoEm time.Time `gorm:"autoUpdateTime" json:"atualizadoEm"`
}

// TableName define o nome da tabela
func (Localizacao) TableName() string {
	return "localizacoes"
}
