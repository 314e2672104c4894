package api

import (
	"encoding/json"
	"fmt"
	"strings"

	pkgapi "github.com/aemlabs/aemdash/pkg/api"
)

// Error представляет ошибку удаленного API с HTTP статусом.
// Status 0 означает, что ответ сервера не был получен (transport failure).
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("server error (%d): %s", e.Status, e.Message)
}

// newError собирает Error из статуса и тела ответа.
// Тело может содержать {message}; если нет — используем текст тела
// или generic-сообщение.
func newError(status int, body []byte, generic string) *Error {
	var errResp pkgapi.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return &Error{Status: status, Message: errResp.Message}
	}

	if msg := strings.TrimSpace(string(body)); msg != "" && len(msg) <= 200 {
		return &Error{Status: status, Message: msg}
	}

	return &Error{Status: status, Message: generic}
}
