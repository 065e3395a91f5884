package api

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionExpired is returned when the backend answers 401 mid-session.
	// The client tears the session down before returning it.
	ErrSessionExpired = errors.New("сессия истекла, требуется повторный вход")

	// ErrForbidden is returned on 403. The session is retained.
	ErrForbidden = errors.New("Нет прав администратора")
)

// AuthError blocks login: bad credentials or an account without admin rights.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// RequestError carries the server-supplied detail for any other non-2xx
// response. Detail falls back to "Error {status}" when the body is not
// parseable JSON.
type RequestError struct {
	Status int
	Detail string
}

func (e *RequestError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("Error %d", e.Status)
}

// IsAuthError reports whether err is a login-blocking auth failure.
func IsAuthError(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}
