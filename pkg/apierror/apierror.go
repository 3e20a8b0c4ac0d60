package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifica um erro de domínio para tradução em status HTTP
type Kind string

const (
	KindNotFound        Kind = "NOT_FOUND"
	KindBusinessRule    Kind = "BUSINESS_RULE_VIOLATION"
	KindValidation      Kind = "VALIDATION_FAILURE"
	KindInvalidArgument Kind = "INVALID_ARGUMENT"
	KindUnauthorized    Kind = "UNAUTHORIZED"
	KindForbidden       Kind = "FORBIDDEN"
	KindInternal        Kind = "INTERNAL_ERROR"
)

// HTTPStatus traduz o tipo de erro para o status HTTP correspondente
func (k Kind) HTTPStatus() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindBusinessRule, KindValidation, KindInvalidArgument:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// APIError representa um erro da API com informações adicionais
type APIError struct {
	Kind        Kind              `json:"-"`
	Message     string            `json:"message"`
	Fields      map[string]string `json:"fields,omitempty"`
	OriginalErr error             `json:"-"`
}

// Error implementa a interface error
func (e *APIError) Error() string {
	if e.OriginalErr != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.OriginalErr)
	}
	return e.Message
}

// Unwrap permite usar errors.Is e errors.As
func (e *APIError) Unwrap() error {
	return e.OriginalErr
}

// WithField registra uma mensagem de validação associada a um campo
func (e *APIError) WithField(campo, mensagem string) *APIError {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[campo] = mensagem
	return e
}

// New cria um novo APIError
func New(kind Kind, message string, err error) *APIError {
	return &APIError{
		Kind:        kind,
		Message:     message,
		OriginalErr: err,
	}
}

// NotFound cria um erro de recurso ausente (404)
func NotFound(recurso string, err error) *APIError {
	return New(KindNotFound, fmt.Sprintf("%s não encontrado", recurso), err)
}

// BusinessRule cria um erro de regra de negócio (400)
func BusinessRule(message string, err error) *APIError {
	return New(KindBusinessRule, message, err)
}

// Validation cria um erro de validação de entrada (400)
func Validation(message string, err error) *APIError {
	return New(KindValidation, message, err)
}

// InvalidArgument cria um erro de parâmetro malformado (400)
func InvalidArgument(message string, err error) *APIError {
	return New(KindInvalidArgument, message, err)
}

// Unauthorized cria um erro 401
func Unauthorized(message string, err error) *APIError {
	if message == "" {
		message = "autenticação necessária"
	}
	return New(KindUnauthorized, message, err)
}

// Forbidden cria um erro 403
func Forbidden(message string, err error) *APIError {
	if message == "" {
		message = "acesso negado"
	}
	return New(KindForbidden, message, err)
}

// Internal cria um erro 500; a mensagem original nunca chega ao cliente
func Internal(err error) *APIError {
	return New(KindInternal, "erro interno do servidor", err)
}

// KindOf extrai o Kind de um erro qualquer; erros desconhecidos são internos
func KindOf(err error) Kind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindInternal
}
