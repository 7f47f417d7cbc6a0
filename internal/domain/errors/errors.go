package errors

import (
	"net/http"

	"scout/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"E-mail ou senha incorretos",
		"",
	)

	ErrDuplicateAccount = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_ACCOUNT",
		"Este e-mail já está cadastrado",
		"",
	)

	// ErrNotAuthenticated guards mutations issued without a session. It is a
	// programming invariant violation, not a user-facing condition: callers
	// log it and treat the operation as a no-op.
	ErrNotAuthenticated = NewBaseError(
		http.StatusUnauthorized,
		"NOT_AUTHENTICATED",
		"Nenhum usuário autenticado",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Sessão inválida ou expirada",
		"",
	)

	// Storage-related errors
	ErrStorageCorrupt = NewBaseError(
		http.StatusInternalServerError,
		"STORAGE_CORRUPT",
		"Dados de sessão corrompidos",
		"",
	)

	ErrRemoteUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"REMOTE_UNAVAILABLE",
		"Serviço de perfis indisponível",
		"",
	)

	// Profile-related errors
	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"Perfil não encontrado",
		"",
	)

	ErrProfileUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"PROFILE_UPDATE_FAILED",
		"Falha ao atualizar o perfil",
		"",
	)

	// Directory-related errors
	ErrPlayerNotFound = NewBaseError(
		http.StatusNotFound,
		"PLAYER_NOT_FOUND",
		"Jogador não encontrado",
		"",
	)

	ErrRankingNotFound = NewBaseError(
		http.StatusNotFound,
		"RANKING_NOT_FOUND",
		"Ranking não encontrado",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Dados de entrada inválidos",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Erro interno do sistema",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Recurso não encontrado",
		"",
	)
)

// StoreExecuteError represents a profile store execution error, implementing
// the AppError interface
type StoreExecuteError struct {
	err     error
	details string
}

// NewStoreExecuteError creates a store-related error
func NewStoreExecuteError(err error, details string) AppError {
	return &StoreExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StoreExecuteError) Error() string {
	return errors.Wrap(e.err, "profile store execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *StoreExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StoreExecuteError) ErrorCode() string {
	return "STORE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *StoreExecuteError) Message() string {
	return "Falha ao acessar o banco de perfis"
}

// Details returns detailed error information
func (e *StoreExecuteError) Details() string {
	return e.details
}
