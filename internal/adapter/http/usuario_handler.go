package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jairomfjr/patrimonio-sub001/internal/app/usuario"
	"github.com/jairomfjr/patrimonio-sub001/internal/domain/repository"
	"github.com/jairomfjr/patrimonio-sub001/pkg/apierror"
	"go.uber.org/zap"
)

// UsuarioHandler expõe o cadastro de usuários e seus vínculos de perfil
type UsuarioHandler struct {
	servico *usuario.Service
	logger  *zap.Logger
}

// NewUsuarioHandler cria o handler de usuários
func NewUsuarioHandler(servico *usuario.Service, logger *zap.Logger) *UsuarioHandler {
	return &UsuarioHandler{servico: servico, logger: logger}
}

// UsuarioRequest é o corpo de criação de usuários. Na atualização a senha
// é ignorada; use o endpoint de troca de senha.
type UsuarioRequest struct {
	Username     string `json:"username" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	CPF          string `json:"cpf"`
	Matricula    string `json:"matricula"`
	Nome         string `json:"nome" binding:"required"`
	Departamento string `json:"departamento"`
	Senha        string `json:"senha"`
}

func (r UsuarioRequest) paraNovoUsuario() usuario.NovoUsuario {
	return usuario.NovoUsuario{
		Username:     r.Username,
		Email:        r.Email,
		CPF:          r.CPF,
		Matricula:    r.Matricula,
		Nome:         r.Nome,
		Departamento: r.Departamento,
		Senha:        r.Senha,
	}
}

// Criar cadastra um novo usuário ativo
func (h *UsuarioHandler) Criar(c *gin.Context) {
	var req UsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortarErro(c, apierror.Validation("dados do usuário inválidos", err))
		return
	}

	criado, err := h.servico.Criar(c.Request.Context(), req.paraNovoUsuario())
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, criado)
}

// BuscarPorID retorna um usuário pelo identificador
func (h *UsuarioHandler) BuscarPorID(c *gin.Context) {
	encontrado, err := h.servico.BuscarPorID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusOK, encontrado)
}

// Pesquisar retorna a página de usuários que satisfaz o filtro
func (h *UsuarioHandler) Pesquisar(c *gin.Context) {
	filtro := repository.FiltroUsuarios{
		Nome:         textoOpcional(c, "nome"),
		Username:     textoOpcional(c, "username"),
		Email:        textoOpcional(c, "email"),
		Departamento: textoOpcional(c, "departamento"),
	}

	var err error
	if filtro.Ativo, err = boolOpcional(c, "ativo"); err != nil {
		abortarErro(c, err)
		return
	}

	pagina, err := paginaDaConsulta(c)
	if err != nil {
		abortarErro(c, err)
		return
	}

	resultado, err := h.servico.Pesquisar(c.Request.Context(), filtro, pagina)
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resultado)
}

// Atualizar altera os dados cadastrais do usuário
func (h *UsuarioHandler) Atualizar(c *gin.Context) {
	var req UsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortarErro(c, apierror.Validation("dados do usuário inválidos", err))
		return
	}

	atualizado, err := h.servico.Atualizar(c.Request.Context(), c.Param("id"), req.paraNovoUsuario())
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusOK, atualizado)
}

// SenhaRequest é o corpo da troca de senha
type SenhaRequest struct {
	SenhaAtual string `json:"senhaAtual" binding:"required"`
	NovaSenha  string `json:"novaSenha" binding:"required"`
}

// AlterarSenha troca a senha do usuário validando a atual
func (h *UsuarioHandler) AlterarSenha(c *gin.Context) {
	var req SenhaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortarErro(c, apierror.Validation("dados da troca de senha inválidos", err))
		return
	}

	if err := h.servico.AlterarSenha(c.Request.Context(), c.Param("id"), req.SenhaAtual, req.NovaSenha); err != nil {
		abortarErro(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Ativar reativa a conta do usuário
func (h *UsuarioHandler) Ativar(c *gin.Context) {
	atualizado, err := h.servico.Ativar(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusOK, atualizado)
}

// Desativar suspende a conta do usuário
func (h *UsuarioHandler) Desativar(c *gin.Context) {
	atualizado, err := h.servico.Desativar(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusOK, atualizado)
}

// Bloquear impede o acesso do usuário
func (h *UsuarioHandler) Bloquear(c *gin.Context) {
	atualizado, err := h.servico.Bloquear(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusOK, atualizado)
}

// Desbloquear remove o bloqueio de acesso
func (h *UsuarioHandler) Desbloquear(c *gin.Context) {
	atualizado, err := h.servico.Desbloquear(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusOK, atualizado)
}

// VincularPerfil associa um perfil ao usuário
func (h *UsuarioHandler) VincularPerfil(c *gin.Context) {
	if err := h.servico.VincularPerfil(c.Request.Context(), c.Param("id"), c.Param("perfilId")); err != nil {
		abortarErro(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// DesvincularPerfil remove a associação entre usuário e perfil
func (h *UsuarioHandler) DesvincularPerfil(c *gin.Context) {
	if err := h.servico.DesvincularPerfil(c.Request.Context(), c.Param("id"), c.Param("perfilId")); err != nil {
		abortarErro(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// PerfisDoUsuario retorna os perfis vinculados ao usuário
func (h *UsuarioHandler) PerfisDoUsuario(c *gin.Context) {
	perfis, err := h.servico.PerfisDoUsuario(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortarErro(c, err)
		return
	}
	c.JSON(http.StatusOK, perfis)
}
