package model

import "time"

// Usuario representa um usuário do sistema
type Usuario struct {
	ID            string     `gorm:"primaryKey;type:uuid" json:"id"`
	Username      string     `gorm:"uniqueIndex;not null;size:50" json:"username"`
	Email         string     `gorm:"uniqueIndex;not null;size:100" json:"email"`
	// CPF e matrícula são opcionais; a unicidade é garantida pelo serviço,
	// que ignora valores vazios
	CPF           string     `gorm:"index;size:14" json:"cpf,omitempty"`
	Matricula     string     `gorm:"index;size:20" json:"matricula,omitempty"`
	Nome          string     `gorm:"not null;size:150" json:"nome"`
	Departamento  string     `gorm:"size:100" json:"departamento,omitempty"`
	SenhaHash     string     `gorm:"not null" json:"-"`
	Ativo         bool       `gorm:"default:true" json:"ativo"`
	DataBloqueio  *time.Time `json:"dataBloqueio,omitempty"`
	SenhaExpiraEm *time.Time `json:"senhaExpiraEm,omitempty"`
	UltimoLogin   *time.Time `json:"ultimoLogin,omitempty"`
	CriadoEm      time.Time  `gorm:"autoCreateTime" json:"criadoEm"`
	AtualizadoEm  time.Time  `gorm:"autoUpdateTime" json:"atualizadoEm"`
}

// TableName define o nome da tabela
func (Usuario) TableName() string {
	return "usuarios"
}

// Bloqueado indica se o usuário está com acesso bloqueado
func (u *Usuario) Bloqueado(agora time.Time) bool {
	return u.DataBloqueio != nil && !u.DataBloqueio.After(agora)
}

// Perfil é um pacote nomeado de permissões com nível de acesso
type Perfil struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	Nome        string    `gorm:"uniqueIndex;not null;size:50" json:"nome"`
	NivelAcesso int       `gorm:"not null" json:"nivelAcesso"`
	Ativo       bool      `gorm:"default:true" json:"ativo"`
	Permissoes  string    `gorm:"type:text" json:"permissoes,omitempty"` // lista separada por vírgula
	CriadoEm    time.Time `gorm:"autoCreateTime" json:"criadoEm"`
}

// TableName define o nome da tabela
func (Perfil) TableName() string {
	return "perfis"
}

// UsuarioPerfil vincula usuários a perfis
type UsuarioPerfil struct {
	UsuarioID string    `gorm:"primaryKey;type:uuid" json:"usuarioId"`
	PerfilID  string    `gorm:"primaryKey;type:uuid" json:"perfilId"`
	CriadoEm  time.Time `gorm:"autoCreateTime" json:"criadoEm"`
}

// TableName define o nome da tabela
func (UsuarioPerfil) TableName() string {
	return "usuario_perfis"
}
