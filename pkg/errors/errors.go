package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Tipos de erro comuns da aplicação
var (
	ErrValidation         = errors.New("dados inválidos")
	ErrDuplicateEmail     = errors.New("usuário já existe")
	ErrUnauthorized       = errors.New("não autorizado")
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrInvalidCheckIn     = errors.New("QR inválido")
	ErrInternalServer     = errors.New("erro interno do servidor")
)

// APIError representa um erro da API com o código HTTP correspondente
type APIError struct {
	Code        int    `json:"-"`
	Message     string `json:"error"`
	OriginalErr error  `json:"-"`
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

// New cria um novo APIError
func New(code int, message string, err error) *APIError {
	return &APIError{
		Code:        code,
		Message:     message,
		OriginalErr: err,
	}
}

// Validation cria um erro 400 para entrada malformada
func Validation(message string) *APIError {
	if message == "" {
		message = ErrValidation.Error()
	}
	return New(http.StatusBadRequest, message, ErrValidation)
}

// DuplicateEmail cria um erro 400 para email já cadastrado
func DuplicateEmail() *APIError {
	return New(http.StatusBadRequest, "Usuário já existe", ErrDuplicateEmail)
}

// Unauthorized cria um erro 401 para token ausente ou inválido
func Unauthorized(message string) *APIError {
	if message == "" {
		message = "Autenticação necessária"
	}
	return New(http.StatusUnauthorized, message, ErrUnauthorized)
}

// InvalidCredentials cria um erro 401 para falha de login.
// A mensagem é a mesma para email desconhecido e senha incorreta.
func InvalidCredentials() *APIError {
	return New(http.StatusUnauthorized, "Credenciais inválidas", ErrInvalidCredentials)
}

// NotFound cria um erro 404
func NotFound(resource string) *APIError {
	return New(http.StatusNotFound, fmt.Sprintf("%s não encontrado", resource), ErrNotFound)
}

// InvalidCheckIn cria um erro 400 para segredo de check-in incorreto.
// Não revela qual parte da comparação falhou.
func InvalidCheckIn() *APIError {
	return New(http.StatusBadRequest, "QR inválido", ErrInvalidCheckIn)
}

// InternalServer cria um erro 500
func InternalServer(message string, err error) *APIError {
	if message == "" {
		message = ErrInternalServer.Error()
	}
	return New(http.StatusInternalServerError, message, err)
}
