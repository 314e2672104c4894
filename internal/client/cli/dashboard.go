package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aemlabs/aemdash/internal/client/failover"
	"github.com/aemlabs/aemdash/internal/models"
)

func (c *Cli) RunDashboard(ctx context.Context) error {
	result, err := c.dashService.Load(ctx)
	if err != nil {
		return err
	}

	c.renderDashboard(result.Data)

	if result.FromCache {
		c.io.Println()
		c.io.Printf("Offline data, cached at %s\n", result.CachedAt.Format(time.RFC1123))
	}

	return nil
}

// RunDashboardWatch перезагружает дашборд по интервалу до отмены контекста
func (c *Cli) RunDashboardWatch(ctx context.Context, interval time.Duration) error {
	if err := c.RunDashboard(ctx); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.io.Println()
			c.io.Printf("--- refreshed at %s ---\n", time.Now().Format(time.TimeOnly))
			if err := c.RunDashboard(ctx); err != nil {
				// Повторная загрузка во время незавершенной — пропускаем тик
				if errors.Is(err, failover.ErrBusy) {
					continue
				}
				c.io.Printf("Error: %v\n", err)
			}
		case <-ctx.Done():
			return nil
		}
	}
}

func (c *Cli) renderDashboard(data *models.DashboardData) {
	c.io.Println("=== Dashboard ===")
	c.io.Println()

	c.io.Println("Donut chart:")
	c.renderChart(data.Donut)
	c.io.Println()

	c.io.Println("Bar chart:")
	c.renderChart(data.Bar)
	c.io.Println()

	c.io.Println("Users:")
	if len(data.Users) == 0 {
		c.io.Println("  (no users)")
		return
	}
	for _, user := range data.Users {
		c.io.Printf("  %-20s %s %s\n", user.Username, user.FirstName, user.LastName)
	}
}

func (c *Cli) renderChart(points []models.ChartPoint) {
	if len(points) == 0 {
		c.io.Println("  (no data)")
		return
	}
	for _, p := range points {
		c.io.Printf("  %-20s %s\n", p.Name, formatValue(p.Value))
	}
}

func formatValue(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
