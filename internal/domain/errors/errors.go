package errors

import (
	"net/http"

	"github.com/BrayanOfficiel/juice-finder/internal/errors"
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

// Predefined error types. User-facing messages are in French, matching the
// application's audience.
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"Utilisateur introuvable",
		"",
	)

	ErrUsernameTaken = NewBaseError(
		http.StatusConflict,
		"USERNAME_TAKEN",
		"Ce nom d'utilisateur existe déjà",
		"",
	)

	ErrUsernameRequired = NewBaseError(
		http.StatusBadRequest,
		"USERNAME_REQUIRED",
		"Le nom d'utilisateur est requis",
		"",
	)

	ErrPasswordRequired = NewBaseError(
		http.StatusUnauthorized,
		"PASSWORD_REQUIRED",
		"Mot de passe requis",
		"",
	)

	ErrInvalidPassword = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_PASSWORD",
		"Mot de passe incorrect",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Erreur lors du traitement du mot de passe",
		"",
	)

	// Identity errors (the toy multi-profile scheme passes the user id in a header)
	ErrNotAuthenticated = NewBaseError(
		http.StatusUnauthorized,
		"NOT_AUTHENTICATED",
		"Non authentifié",
		"",
	)

	// Establishment-related errors
	ErrEstablishmentNotFound = NewBaseError(
		http.StatusNotFound,
		"ESTABLISHMENT_NOT_FOUND",
		"Restaurant introuvable",
		"",
	)

	ErrEstablishmentIDRequired = NewBaseError(
		http.StatusBadRequest,
		"ESTABLISHMENT_ID_REQUIRED",
		"L'ID du restaurant est requis",
		"",
	)

	// Bookmark / archive errors
	ErrBookmarkExists = NewBaseError(
		http.StatusConflict,
		"BOOKMARK_EXISTS",
		"Ce restaurant est déjà marqué",
		"",
	)

	ErrBookmarkNotFound = NewBaseError(
		http.StatusNotFound,
		"BOOKMARK_NOT_FOUND",
		"Ce restaurant n'est pas marqué",
		"",
	)

	ErrArchiveExists = NewBaseError(
		http.StatusConflict,
		"ARCHIVE_EXISTS",
		"Ce restaurant est déjà archivé",
		"",
	)

	ErrArchiveNotFound = NewBaseError(
		http.StatusNotFound,
		"ARCHIVE_NOT_FOUND",
		"Ce restaurant n'est pas archivé",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Données de requête invalides",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Une erreur est survenue",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the underlying database error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Erreur lors de l'accès à la base de données"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// SourceFetchError represents a failure talking to the upstream open data
// service. It aborts the sync run that encountered it.
type SourceFetchError struct {
	err     error
	details string
}

// NewSourceFetchError creates an upstream-fetch error
func NewSourceFetchError(err error, details string) AppError {
	return &SourceFetchError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *SourceFetchError) Error() string {
	return errors.Wrap(e.err, "open data fetch failed").Error()
}

// Unwrap exposes the underlying transport error.
func (e *SourceFetchError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *SourceFetchError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *SourceFetchError) ErrorCode() string {
	return "SOURCE_FETCH_FAILED"
}

// Message returns the user-friendly error message
func (e *SourceFetchError) Message() string {
	return "Erreur lors de la synchronisation"
}

// Details returns detailed error information
func (e *SourceFetchError) Details() string {
	return e.details
}
