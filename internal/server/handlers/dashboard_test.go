package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aemlabs/aemdash/internal/models"
	"github.com/aemlabs/aemdash/internal/server/storage"
	pkgapi "github.com/aemlabs/aemdash/pkg/api"
)

func TestDashboard_Success(t *testing.T) {
	dashStorage := &storage.DashboardStorageMock{
		GetDashboardFunc: func(ctx context.Context) (*models.DashboardData, error) {
			return &models.DashboardData{
				Donut: []models.ChartPoint{{Name: "Germany", Value: 8940000}},
				Bar:   []models.ChartPoint{{Name: "Q1", Value: 3120000}},
				Users: []models.TableUser{{FirstName: "Mark", LastName: "Otto", Username: "mdo"}},
			}, nil
		},
	}

	h := NewDashboardHandler(testLogger(), dashStorage)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	w := httptest.NewRecorder()
	h.Dashboard(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp pkgapi.DashboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	require.Len(t, resp.ChartDonut, 1)
	assert.Equal(t, "Germany", resp.ChartDonut[0].Name)
	assert.Equal(t, float64(8940000), resp.ChartDonut[0].Value)
	require.Len(t, resp.ChartBar, 1)
	require.Len(t, resp.TableUsers, 1)
	assert.Equal(t, "mdo", resp.TableUsers[0].Username)
}

func TestDashboard_EmptyData(t *testing.T) {
	dashStorage := &storage.DashboardStorageMock{
		GetDashboardFunc: func(ctx context.Context) (*models.DashboardData, error) {
			return &models.DashboardData{}, nil
		},
	}

	h := NewDashboardHandler(testLogger(), dashStorage)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	w := httptest.NewRecorder()
	h.Dashboard(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	// Пустые коллекции сериализуются как [], не null
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.JSONEq(t, "[]", string(raw["chartDonut"]))
	assert.JSONEq(t, "[]", string(raw["chartBar"]))
	assert.JSONEq(t, "[]", string(raw["tableUsers"]))
}

func TestDashboard_StorageError(t *testing.T) {
	dashStorage := &storage.DashboardStorageMock{
		GetDashboardFunc: func(ctx context.Context) (*models.DashboardData, error) {
			return nil, errors.New("database locked")
		},
	}

	h := NewDashboardHandler(testLogger(), dashStorage)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	w := httptest.NewRecorder()
	h.Dashboard(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var errResp pkgapi.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.Equal(t, "failed to load dashboard data", errResp.Message)
}
