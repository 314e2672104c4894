package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aemlabs/aemdash/internal/models"
	pkgapi "github.com/aemlabs/aemdash/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI определяет интерфейс HTTP клиента для сервисов
type ClientAPI interface {
	// Login аутентифицирует пользователя и возвращает токен сессии
	Login(ctx context.Context, creds pkgapi.LoginRequest) (string, error)

	// Dashboard загружает payload дашборда по токену
	Dashboard(ctx context.Context, token string) (*models.DashboardData, error)

	// Health проверяет доступность сервера
	Health(ctx context.Context) error
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает новый API клиент
// Собственный таймаут клиента — внешняя граница; бюджеты отдельных
// операций задаются через context вызывающей стороной.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Login выполняет POST /account/login и возвращает токен сессии.
// Сервер отдает токен как text/plain либо как JSON-строку в кавычках —
// принимаем обе формы.
func (c *Client) Login(ctx context.Context, creds pkgapi.LoginRequest) (string, error) {
	body, err := json.Marshal(creds)
	if err != nil {
		return "", fmt.Errorf("failed to marshal login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/account/login", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("login request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", newError(resp.StatusCode, respBody, "login failed")
	}

	token := parseToken(respBody)
	if token == "" {
		return "", &Error{Status: resp.StatusCode, Message: "empty token in login response"}
	}

	return token, nil
}

// Dashboard выполняет GET /dashboard с Bearer-токеном
func (c *Client) Dashboard(ctx context.Context, token string) (*models.DashboardData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/dashboard", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dashboard request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newError(resp.StatusCode, respBody, "failed to load dashboard data")
	}

	var payload pkgapi.DashboardResponse
	if err := json.Unmarshal(respBody, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode dashboard response: %w", err)
	}

	return toModels(&payload), nil
}

// Health выполняет GET /api/v1/health (используется connectivity probe)
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/health", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("health request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return &Error{Status: resp.StatusCode, Message: "health check failed"}
	}

	return nil
}

// parseToken принимает токен в «сыром» виде и как JSON-строку с кавычками
func parseToken(body []byte) string {
	raw := strings.TrimSpace(string(body))
	if strings.HasPrefix(raw, `"`) {
		var quoted string
		if err := json.Unmarshal([]byte(raw), &quoted); err == nil {
			return quoted
		}
		// Кривые кавычки — просто срезаем их (legacy-поведение)
		raw = strings.Trim(raw, `"`)
	}
	return raw
}

// toModels конвертирует wire-типы в доменные
func toModels(resp *pkgapi.DashboardResponse) *models.DashboardData {
	data := &models.DashboardData{
		Donut: make([]models.ChartPoint, 0, len(resp.ChartDonut)),
		Bar:   make([]models.ChartPoint, 0, len(resp.ChartBar)),
		Users: make([]models.TableUser, 0, len(resp.TableUsers)),
	}

	for _, item := range resp.ChartDonut {
		data.Donut = append(data.Donut, models.ChartPoint{Name: item.Name, Value: item.Value})
	}
	for _, item := range resp.ChartBar {
		data.Bar = append(data.Bar, models.ChartPoint{Name: item.Name, Value: item.Value})
	}
	for _, user := range resp.TableUsers {
		data.Users = append(data.Users, models.TableUser{
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Username:  user.Username,
		})
	}

	return data
}
