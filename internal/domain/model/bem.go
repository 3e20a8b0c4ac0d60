package model

import "time"

// Bem representa um item físico do acervo patrimonial
type Bem struct {
	ID                string            `gorm:"primaryKey;type:uuid" json:"id"`
	Nome              string            `gorm:"not null;size:150" json:"nome"`
	NumeroSerie       string            `gorm:"uniqueIndex;not null;size:60" json:"numeroSerie"`
	Descricao         string            `gorm:"type:text" json:"descricao,omitempty"`
	DataAquisicao     time.Time         `json:"dataAquisicao"`
	ValorAquisicao    float64           `json:"valorAquisicao"`
	Status            StatusBem         `gorm:"size:20;not null;index" json:"status"`
	EstadoConservacao EstadoConservacao `gorm:"size:20;not null;index" json:"estadoConservacao"`
	Ativo             bool              `gorm:"default:true" json:"ativo"`
	CategoriaID       string            `gorm:"index;not null;type:uuid" json:"categoriaId"`
	LocalizacaoID     string            `gorm:"index;not null;type:uuid" json:"localizacaoId"`
	CriadoEm          time.Time         `gorm:"autoCreateTime" json:"criadoEm"`
	AtualizadoEm      time.Time         `gorm:"autoUpdateTime" json:"atualizadoEm"`
}

// TableName define o nome da tabela
func (Bem) TableName() string {
	return "bens"
}
