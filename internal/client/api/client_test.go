package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgapi "github.com/aemlabs/aemdash/pkg/api"
)

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	client := NewClient("http://localhost:8080/")

	assert.NotNil(t, client)
	// Закрывающий слеш срезается, чтобы не дублировался в путях
	assert.Equal(t, "http://localhost:8080", client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

// TestClient_Login проверяет успешный логин с токеном в JSON-кавычках
func TestClient_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/account/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req pkgapi.LoginRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(t, err)
		assert.Equal(t, "admin", req.Username)
		assert.Equal(t, "password", req.Password)

		// Сервер отдает токен как JSON-строку (в кавычках)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode("jwt-token-value")
	}))
	defer server.Close()

	client := NewClient(server.URL)

	token, err := client.Login(context.Background(), pkgapi.LoginRequest{
		Username: "admin",
		Password: "password",
	})
	require.NoError(t, err)
	assert.Equal(t, "jwt-token-value", token)
}

// TestClient_Login_PlainToken проверяет прием токена без кавычек
func TestClient_Login_PlainToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("plain-token\n"))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	token, err := client.Login(context.Background(), pkgapi.LoginRequest{Username: "admin", Password: "password"})
	require.NoError(t, err)
	assert.Equal(t, "plain-token", token)
}

// TestClient_Login_InvalidCredentials проверяет обработку 401
func TestClient_Login_InvalidCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(pkgapi.ErrorResponse{Message: "Invalid username or password."})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	token, err := client.Login(context.Background(), pkgapi.LoginRequest{Username: "admin", Password: "wrong"})
	require.Error(t, err)
	assert.Empty(t, token)

	// Ошибка несет HTTP статус: classifier не уведет её на offline fallback
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Invalid username or password.", apiErr.Message)
}

// TestClient_Login_EmptyToken проверяет защиту от пустого ответа
func TestClient_Login_EmptyToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(""))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.Login(context.Background(), pkgapi.LoginRequest{Username: "admin", Password: "password"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty token")
}

// TestClient_Dashboard проверяет загрузку и конвертацию payload'а
func TestClient_Dashboard(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/dashboard", r.URL.Path)
		assert.Equal(t, "Bearer jwt-token-value", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(pkgapi.DashboardResponse{
			Success: true,
			ChartDonut: []pkgapi.ChartItem{
				{Name: "Germany", Value: 8940},
			},
			ChartBar: []pkgapi.ChartItem{
				{Name: "Q1", Value: 2100},
				{Name: "Q2", Value: 3500},
			},
			TableUsers: []pkgapi.TableUser{
				{FirstName: "Mark", LastName: "Otto", Username: "@mdo"},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	data, err := client.Dashboard(context.Background(), "jwt-token-value")
	require.NoError(t, err)
	require.NotNil(t, data)

	require.Len(t, data.Donut, 1)
	assert.Equal(t, "Germany", data.Donut[0].Name)
	assert.Equal(t, float64(8940), data.Donut[0].Value)

	require.Len(t, data.Bar, 2)
	assert.Equal(t, "Q2", data.Bar[1].Name)

	require.Len(t, data.Users, 1)
	assert.Equal(t, "@mdo", data.Users[0].Username)
}

// TestClient_Dashboard_Unauthorized проверяет обработку 401
func TestClient_Dashboard_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(pkgapi.ErrorResponse{Message: "invalid token"})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	data, err := client.Dashboard(context.Background(), "expired")
	require.Error(t, err)
	assert.Nil(t, data)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
}

// TestClient_Health проверяет health check
func TestClient_Health(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{name: "healthy", status: http.StatusOK, wantErr: false},
		{name: "server error", status: http.StatusInternalServerError, wantErr: true},
		{name: "not found", status: http.StatusNotFound, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/v1/health", r.URL.Path)
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client := NewClient(server.URL)

			err := client.Health(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestClient_Health_ServerDown проверяет transport-ошибку
func TestClient_Health_ServerDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // сервер уже остановлен

	client := NewClient(server.URL)
	assert.Error(t, client.Health(context.Background()))
}

// TestClient_ContextCancellation проверяет прерывание запроса контекстом
func TestClient_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := NewClient(server.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.Dashboard(ctx, "token")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestParseToken(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "quoted json string", body: `"abc.def.ghi"`, want: "abc.def.ghi"},
		{name: "plain string", body: "abc.def.ghi", want: "abc.def.ghi"},
		{name: "trailing newline", body: "abc.def.ghi\n", want: "abc.def.ghi"},
		{name: "quoted with escapes", body: `"a\"b"`, want: `a"b`},
		{name: "unbalanced quotes", body: `"abc`, want: "abc"},
		{name: "empty body", body: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseToken([]byte(tt.body)))
		})
	}
}
