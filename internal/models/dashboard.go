package models

// ChartPoint is a single labelled value of a dashboard chart.
type ChartPoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// TableUser is a row of the dashboard user table.
type TableUser struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
}

// DashboardData is the full dashboard payload as used inside the application.
type DashboardData struct {
	Donut []ChartPoint
	Bar   []ChartPoint
	Users []TableUser
}
