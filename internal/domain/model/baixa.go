package model

import "time"

// Baixa é o registro formal de desfazimento de um bem.
// Um bem pode acumular baixas canceladas; a regra de no máximo uma baixa
// não cancelada por bem é verificada no serviço.
type Baixa struct {
	ID            string     `gorm:"primaryKey;type:uuid" json:"id"`
	BemID         string     `gorm:"index;not null;type:uuid" json:"bemId"`
	Data          time.Time  `gorm:"not null" json:"data"`
	Motivo        string     `gorm:"type:text;not null" json:"motivo"`
	ValorResidual float64    `json:"valorResidual"`
	ValorVenda    *float64   `json:"valorVenda,omitempty"`
	DataVenda     *time.Time `json:"dataVenda,omitempty"`
	Comprador     string     `gorm:"size:150" json:"comprador,omitempty"`
	DataAprovacao *time.Time `json:"dataAprovacao,omitempty"`
	ProcessoAdm   string     `gorm:"size:60" json:"processoAdm,omitempty"`
	Cancelada     bool       `gorm:"default:false" json:"cancelada"`
	CriadoEm      time.Time  `gorm:"autoCreateTime" json:"criadoEm"`
	AtualizadoEm  time.Time  `gorm:"autoUpdateTime" json:"atualizadoEm"`
}

// TableName define o nome da tabela
func (Baixa) TableName() string {
	return "baixas"
}
