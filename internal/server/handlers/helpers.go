package handlers

import (
	"encoding/json"
	"net/http"

	pkgapi "github.com/aemlabs/aemdash/pkg/api"
)

// contextKey тип ключей контекста, заполняемых auth middleware
type contextKey string

const (
	// UserIDKey ключ контекста с ID аутентифицированного пользователя
	UserIDKey contextKey = "user_id"
	// UsernameKey ключ контекста с username аутентифицированного пользователя
	UsernameKey contextKey = "username"
)

// sendJSON пишет JSON ответ с заданным статусом
func sendJSON(w http.ResponseWriter, payload any, status int) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(payload)
}

// sendError пишет тело ошибки {message} с заданным статусом
func sendError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(pkgapi.ErrorResponse{Message: message})
}
