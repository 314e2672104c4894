package sqlite

import (
	"context"
	"fmt"

	"github.com/aemlabs/aemdash/internal/models"
)

// GetDashboard собирает полный payload дашборда из таблиц статистики
func (s *Storage) GetDashboard(ctx context.Context) (*models.DashboardData, error) {
	donut, err := s.getChart(ctx, "donut")
	if err != nil {
		return nil, err
	}

	bar, err := s.getChart(ctx, "bar")
	if err != nil {
		return nil, err
	}

	users, err := s.getTableUsers(ctx)
	if err != nil {
		return nil, err
	}

	return &models.DashboardData{
		Donut: donut,
		Bar:   bar,
		Users: users,
	}, nil
}

// getChart возвращает точки одной диаграммы в заданном порядке
func (s *Storage) getChart(ctx context.Context, chart string) ([]models.ChartPoint, error) {
	query := `
		SELECT name, value
		FROM chart_stats
		WHERE chart = ?
		ORDER BY position
	`

	rows, err := s.db.QueryContext(ctx, query, chart)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s chart: %w", chart, err)
	}
	defer rows.Close()

	var points []models.ChartPoint
	for rows.Next() {
		var p models.ChartPoint
		if err := rows.Scan(&p.Name, &p.Value); err != nil {
			return nil, fmt.Errorf("failed to scan chart point: %w", err)
		}
		points = append(points, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate chart points: %w", err)
	}

	return points, nil
}

func (s *Storage) getTableUsers(ctx context.Context) ([]models.TableUser, error) {
	query := `
		SELECT first_name, last_name, username
		FROM dashboard_users
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query dashboard users: %w", err)
	}
	defer rows.Close()

	var users []models.TableUser
	for rows.Next() {
		var u models.TableUser
		if err := rows.Scan(&u.FirstName, &u.LastName, &u.Username); err != nil {
			return nil, fmt.Errorf("failed to scan dashboard user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate dashboard users: %w", err)
	}

	return users, nil
}
