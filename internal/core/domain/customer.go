package domain

import "time"

// Customer is the admin-panel customer record. It has no backend
// persistence: the roster is ephemeral demo state, seeded locally.
type Customer struct {
	ID          string
	Name        string
	Email       string
	Phone       string
	TotalOrders int
	TotalSpent  float64
	JoinDate    time.Time
}
