package model

import "time"

// RegistroAuditoria é o registro imutável de uma ação sobre uma entidade
type RegistroAuditoria struct {
	ID         string    `gorm:"primaryKey;type:uuid" json:"id"`
	Entidade   string    `gorm:"size:50;not null;index" json:"entidade"`
	EntidadeID string    `gorm:"size:60;index" json:"entidadeId"`
	Acao       string    `gorm:"size:20;not null" json:"acao"` // CREATE, UPDATE, DELETE, ...
	UsuarioID  string    `gorm:"index;type:uuid" json:"usuarioId"`
	EnderecoIP string    `gorm:"size:45" json:"enderecoIp,omitempty"`
	DataHora   time.Time `gorm:"autoCreateTime;index" json:"dataHora"`
}

// TableName define o nome da tabela
func (RegistroAuditoria) TableName() string {
	return "registros_auditoria"
}
