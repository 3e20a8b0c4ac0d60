package model

import "time"

// Notificacao é um aviso dirigido a um usuário. Os contadores de envio são
// apenas dados; nenhum motor de entrega roda neste serviço.
type Notificacao struct {
	ID              string     `gorm:"primaryKey;type:uuid" json:"id"`
	UsuarioID       string     `gorm:"index;not null;type:uuid" json:"usuarioId"`
	Tipo            string     `gorm:"size:50;not null" json:"tipo"`
	Categoria       string     `gorm:"size:50" json:"categoria,omitempty"`
	Prioridade      int        `json:"prioridade"`
	Titulo          string     `gorm:"size:150;not null" json:"titulo"`
	Mensagem        string     `gorm:"type:text" json:"mensagem,omitempty"`
	Lida            bool       `gorm:"default:false;index" json:"lida"`
	EnviadaEm       *time.Time `json:"enviadaEm,omitempty"`
	LidaEm          *time.Time `json:"lidaEm,omitempty"`
	CanalEmail      bool       `gorm:"default:false" json:"canalEmail"`
	CanalSistema    bool       `gorm:"default:true" json:"canalSistema"`
	TentativasEnvio int        `gorm:"default:0" json:"tentativasEnvio"`
	ErroEnvio       string     `gorm:"type:text" json:"erroEnvio,omitempty"`
	CriadoEm        time.Time  `gorm:"autoCreateTime" json:"criadoEm"`
}

// TableName define o nome da tabela
func (Notificacao) TableName() string {
	return "notificacoes"
}
