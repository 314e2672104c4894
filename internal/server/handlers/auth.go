package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/aemlabs/aemdash/internal/server/jwt"
	"github.com/aemlabs/aemdash/internal/server/storage"
	"github.com/aemlabs/aemdash/internal/validation"
	pkgapi "github.com/aemlabs/aemdash/pkg/api"
)

// invalidCredentialsMsg единое сообщение для неверного username и пароля,
// чтобы не раскрывать существование пользователя
const invalidCredentialsMsg = "Invalid username or password."

// AuthHandler обрабатывает запросы авторизации
type AuthHandler struct {
	logger      *slog.Logger
	userStorage storage.UserStorage
	tokens      *jwt.Service
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, userStorage storage.UserStorage, tokens *jwt.Service) *AuthHandler {
	return &AuthHandler{
		logger:      logger,
		userStorage: userStorage,
		tokens:      tokens,
	}
}

// Login обрабатывает POST /account/login
// Успешный ответ — токен сессии, сериализованный как JSON-строка
// (исторический формат: клиенты обязаны принимать токен в кавычках)
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req pkgapi.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode login request", slog.Any("error", err))
		sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	username := validation.NormalizeUsername(req.Username)
	if err := validation.ValidateUsername(username); err != nil {
		h.logger.WarnContext(ctx, "invalid username", slog.Any("error", err))
		sendError(w, invalidCredentialsMsg, http.StatusUnauthorized)
		return
	}

	user, err := h.userStorage.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.logger.WarnContext(ctx, "login for unknown user", slog.String("username", username))
			sendError(w, invalidCredentialsMsg, http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		h.logger.WarnContext(ctx, "password mismatch", slog.String("username", username))
		sendError(w, invalidCredentialsMsg, http.StatusUnauthorized)
		return
	}

	token, err := h.tokens.Generate(user.ID, user.Username)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate token", slog.Any("error", err))
		sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Время последнего логина — вспомогательная информация, сбой записи
	// не должен провалить логин
	if err := h.userStorage.UpdateLastLogin(ctx, user.ID, time.Now()); err != nil {
		h.logger.WarnContext(ctx, "failed to update last login", slog.Any("error", err))
	}

	h.logger.InfoContext(ctx, "user logged in",
		slog.String("username", user.Username),
		slog.String("user_id", user.ID))

	if err := sendJSON(w, token, http.StatusOK); err != nil {
		h.logger.ErrorContext(ctx, "failed to encode login response", slog.Any("error", err))
	}
}
