package failover

import (
	"context"
	"errors"
	"net"
	"net/url"
	"strings"

	"github.com/aemlabs/aemdash/internal/client/api"
)

// networkErrorHints подстроки сообщений, указывающие на сетевую природу сбоя
var networkErrorHints = []string{
	"network",
	"timeout",
	"connection refused",
	"connection reset",
	"no such host",
	"fetch",
}

// IsNetworkError классифицирует ошибку как network-class: таймаут,
// transport-сбой без статуса, либо сообщение, явно указывающее на сеть.
// Такие ошибки маршрутизируются на offline fallback; остальные (отказ
// аутентификации, серверная ошибка с реальным статусом) — нет.
func IsNetworkError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	// url.Error оборачивает все transport-сбои http.Client
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}

	// Статус 0 — ответ сервера не был получен
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Status == 0
	}

	msg := strings.ToLower(err.Error())
	for _, hint := range networkErrorHints {
		if strings.Contains(msg, hint) {
			return true
		}
	}

	return false
}
