package core

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Erros sentinela pré-definidos para tipos comuns de falha na aplicação.
// Estes podem ser verificados usando errors.Is(err, ErrNotFound).
var (
	// --- Erros Gerais ---
	ErrConfiguration = errors.New("erro de configuração da aplicação")

	// --- Erros de Autenticação e Sessão ---
	ErrUnauthorized   = errors.New("não autenticado") // Geralmente para falta de autenticação (401)
	ErrInvalidSession = errors.New("sessão inválida ou não encontrada")

	// --- Erros de Autorização ---
	ErrPermissionDenied = errors.New("permissão negada") // Falta de autorização para uma ação (403)

	// --- Erros de Comunicação com o Backend ---
	ErrNetwork  = errors.New("falha de comunicação com o servidor")
	ErrAPI      = errors.New("erro retornado pela API")
	ErrNotFound = errors.New("registro não encontrado")
	ErrConflict = errors.New("conflito de dados (ex: registro duplicado)")

	// --- Erros de Validação e Entrada ---
	ErrValidation   = errors.New("erro de validação nos dados fornecidos")     // Erro genérico de validação de regras de negócio
	ErrInvalidInput = errors.New("entrada de dados inválida ou mal formatada") // Erro de formato/tipo de dado

	// --- Erros Específicos da Aplicação ---
	ErrExport = errors.New("falha ao exportar dados")
)

// ValidationError é um tipo de erro que contém detalhes sobre os campos que falharam na validação.
type ValidationError struct {
	// Message é uma mensagem geral sobre a falha de validação, exibível ao usuário.
	Message string
	// Fields mapeia nomes de campos para suas respectivas mensagens de erro.
	Fields map[string]string
	// Underlying é o erro original que pode ter causado a falha de validação (opcional).
	Underlying error
}

// NewValidationError cria uma nova instância de ValidationError.
func NewValidationError(message string, fields map[string]string) *ValidationError {
	return &ValidationError{
		Message: message,
		Fields:  fields,
	}
}

// Error implementa a interface error.
func (ve *ValidationError) Error() string {
	var sb strings.Builder
	if ve.Message != "" {
		sb.WriteString(ve.Message)
	} else {
		sb.WriteString("Erro de validação")
	}

	if len(ve.Fields) > 0 {
		sb.WriteString(" (Detalhes: ")
		fieldErrors := []string{}
		for field, desc := range ve.Fields {
			fieldErrors = append(fieldErrors, fmt.Sprintf("%s: %s", field, desc))
		}
		sb.WriteString(strings.Join(fieldErrors, ", "))
		sb.WriteString(")")
	}
	if ve.Underlying != nil {
		sb.WriteString(fmt.Sprintf(" | Erro original: %v", ve.Underlying))
	}
	return sb.String()
}

// Unwrap retorna o erro encapsulado, permitindo o uso de errors.Is e errors.As com o erro original.
func (ve *ValidationError) Unwrap() error {
	return ve.Underlying
}

// Is permite que `errors.Is(err, ErrValidation)` funcione corretamente,
// mesmo que `err` seja um `*ValidationError` que não tenha ErrValidation como `Underlying`.
func (ve *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// APIError representa um erro estruturado retornado pelo backend: status HTTP
// mais a mensagem do corpo `{"error": "..."}`. A mensagem é exibida ao usuário
// exatamente como veio do servidor.
type APIError struct {
	// Status é o código HTTP da resposta.
	Status int
	// Message é a mensagem do campo "error" do corpo, ou o status text se o corpo não for decodificável.
	Message string
}

// NewAPIError cria um novo APIError. Se a mensagem estiver vazia, usa o status text.
func NewAPIError(status int, message string) *APIError {
	if message == "" {
		message = http.StatusText(status)
	}
	return &APIError{Status: status, Message: message}
}

// Error implementa a interface error.
func (ae *APIError) Error() string {
	return fmt.Sprintf("API %d: %s", ae.Status, ae.Message)
}

// Is mapeia códigos de status para os sentinels correspondentes, de modo que
// errors.Is(err, ErrUnauthorized) funcione sobre respostas 401, etc.
func (ae *APIError) Is(target error) bool {
	switch target {
	case ErrAPI:
		return true
	case ErrUnauthorized:
		return ae.Status == http.StatusUnauthorized
	case ErrPermissionDenied:
		return ae.Status == http.StatusForbidden
	case ErrNotFound:
		return ae.Status == http.StatusNotFound
	case ErrConflict:
		return ae.Status == http.StatusConflict
	}
	return false
}

// UserMessage retorna a mensagem exibível ao usuário para um erro qualquer:
// a mensagem verbatim do backend quando houver, a mensagem de validação quando
// for erro local, ou o fallback genérico fornecido (falha de conectividade).
func UserMessage(err error, fallback string) string {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.Message
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	return fallback
}

// --- Funções Helper ---

// WrapErrorf cria um novo erro que envolve um erro existente com uma mensagem formatada,
// preservando o erro original para verificação com `errors.Is` e `errors.As`.
func WrapErrorf(originalErr error, format string, args ...interface{}) error {
	if originalErr == nil {
		return fmt.Errorf(format, args...)
	}
	// O formato ": %w" no final é crucial para que errors.Unwrap funcione.
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), originalErr)
}
