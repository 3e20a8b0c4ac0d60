package model

import "time"

// Categoria agrupa bens por natureza (informática, mobiliário, veículos...)
type Categoria struct {
	ID           string    `gorm:"primaryKey;type:uuid" json:"id"`
	Nome         string    `gorm:"uniqueIndex;not null;size:100" json:"nome"`
	Descricao    string    `gorm:"type:text" json:"descricao,omitempty"`
	CriadoEm     time.Time `gorm:"autoCreateTime" json:"criadoEm"`
	AtualizadoEm time.Time `gorm:"autoUpdateTime" json:"atualizadoEm"`
}

// TableName define o nome da tabela
func (Categoria) TableName() string {
	return "categorias"
}
