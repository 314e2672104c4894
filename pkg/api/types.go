// Package api содержит общие типы для HTTP API (клиент и сервер).
package api

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Username string `json:"username"` // username пользователя
	Password string `json:"password"` // пароль в открытом виде (только по HTTPS)
}

// ChartItem представляет одну точку диаграммы
type ChartItem struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// TableUser представляет строку таблицы пользователей дашборда
type TableUser struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
}

// DashboardResponse представляет ответ GET /dashboard
type DashboardResponse struct {
	Success    bool        `json:"success"`
	ChartDonut []ChartItem `json:"chartDonut"`
	ChartBar   []ChartItem `json:"chartBar"`
	TableUsers []TableUser `json:"tableUsers"`
}

// ErrorResponse представляет тело ответа с ошибкой
type ErrorResponse struct {
	Message string `json:"message,omitempty"`
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
