package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinels for token and session handling. User-facing messages are in
// Spanish to match the front end.
var (
	ErrInvalidSigningMethod = errors.New("método de firma del token no válido")
	ErrInvalidToken         = errors.New("token no válido")
	ErrTokenExpired         = errors.New("el token ha expirado")
	ErrTokenIsNotRefresh    = errors.New("el token no es un refresh token")
	ErrTokenIsNotAccess     = errors.New("el token no es un access token")

	ErrEmptyAuthHeader    = errors.New("falta el encabezado de autorización")
	ErrInvalidAuthHeader  = errors.New("formato de encabezado de autorización no válido")
	ErrInvalidCredentials = errors.New("credenciales incorrectas")
	ErrAccountLocked      = errors.New("cuenta bloqueada temporalmente por intentos fallidos")
	ErrAccountInactive    = errors.New("la cuenta no está activa")
	ErrUnauthorized       = errors.New("no autenticado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrSessionNotFound    = errors.New("sesión no encontrada")

	ErrNotFound   = errors.New("registro no encontrado")
	ErrConflict   = errors.New("el registro ya existe")
	ErrBadRequest = errors.New("solicitud no válida")
)

// statusOf maps sentinels to HTTP status codes for the response helper.
var statusOf = map[error]int{
	ErrInvalidSigningMethod: http.StatusUnauthorized,
	ErrInvalidToken:         http.StatusUnauthorized,
	ErrTokenExpired:         http.StatusUnauthorized,
	ErrTokenIsNotRefresh:    http.StatusUnauthorized,
	ErrTokenIsNotAccess:     http.StatusUnauthorized,
	ErrEmptyAuthHeader:      http.StatusUnauthorized,
	ErrInvalidAuthHeader:    http.StatusUnauthorized,
	ErrInvalidCredentials:   http.StatusUnauthorized,
	ErrAccountLocked:        http.StatusLocked,
	ErrAccountInactive:      http.StatusForbidden,
	ErrUnauthorized:         http.StatusUnauthorized,
	ErrForbidden:            http.StatusForbidden,
	ErrSessionNotFound:      http.StatusUnauthorized,
	ErrNotFound:             http.StatusNotFound,
	ErrConflict:             http.StatusConflict,
	ErrBadRequest:           http.StatusBadRequest,
}

// HttpError carries an HTTP status together with a user-facing message and
// the underlying cause for logging.
type HttpError struct {
	Code    int
	Message string
	Err     error
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err}
}

func NewBadRequestError(format string, args ...interface{}) *HttpError {
	return &HttpError{Code: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

func NewNotFoundError(format string, args ...interface{}) *HttpError {
	return &HttpError{Code: http.StatusNotFound, Message: fmt.Sprintf(format, args...)}
}

func NewConflictError(format string, args ...interface{}) *HttpError {
	return &HttpError{Code: http.StatusConflict, Message: fmt.Sprintf(format, args...)}
}

// Status resolves the HTTP status for any error produced by the service
// layer. Unknown errors map to 500.
func Status(err error) int {
	var httpErr *HttpError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}
	for sentinel, code := range statusOf {
		if errors.Is(err, sentinel) {
			return code
		}
	}
	return http.StatusInternalServerError
}

// Message resolves the user-facing message. Internal errors are not leaked.
func Message(err error) string {
	var httpErr *HttpError
	if errors.As(err, &httpErr) {
		return httpErr.Message
	}
	for sentinel := range statusOf {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return "error interno del servidor"
}
