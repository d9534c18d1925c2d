package state

import (
	"fmt"
	"slices"
	"time"

	"github.com/kikuu-commerce/storefront/internal/core/domain"
)

// customersState is ephemeral demo state for the admin panel: the entity
// has no backend persistence, so the roster lives and dies with the
// process.
type customersState struct {
	items []domain.Customer
}

type CustomersSnapshot struct {
	Items []domain.Customer
}

func (s *Store) CustomersState() CustomersSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CustomersSnapshot{Items: slices.Clone(s.customers.items)}
}

// AddCustomer assigns the next roster id and prepends the record.
func (s *Store) AddCustomer(name, email, phone string) domain.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := domain.Customer{
		ID:       fmt.Sprintf("CUST%03d", len(s.customers.items)+1),
		Name:     name,
		Email:    email,
		Phone:    phone,
		JoinDate: time.Now().Truncate(24 * time.Hour),
	}
	s.customers.items = append([]domain.Customer{c}, s.customers.items...)
	return c
}

// UpdateCustomer replaces the contact fields that are non-empty.
func (s *Store) UpdateCustomer(id, name, email, phone string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customers.items {
		if s.customers.items[i].ID != id {
			continue
		}
		if name != "" {
			s.customers.items[i].Name = name
		}
		if email != "" {
			s.customers.items[i].Email = email
		}
		if phone != "" {
			s.customers.items[i].Phone = phone
		}
		return true
	}
	return false
}

func (s *Store) DeleteCustomer(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers.items = slices.DeleteFunc(s.customers.items, func(c domain.Customer) bool {
		return c.ID == id
	})
}

func seedCustomers() []domain.Customer {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	return []domain.Customer{
		{ID: "CUST001", Name: "John Doe", Email: "john.doe@example.com", Phone: "123-456-7890", TotalOrders: 5, TotalSpent: 250.75, JoinDate: day(2025, time.January, 15)},
		{ID: "CUST002", Name: "Jane Smith", Email: "jane.smith@example.com", Phone: "987-654-3210", TotalOrders: 3, TotalSpent: 150.00, JoinDate: day(2025, time.February, 20)},
		{ID: "CUST003", Name: "Peter Jones", Email: "peter.jones@example.com", Phone: "555-555-5555", TotalOrders: 8, TotalSpent: 450.50, JoinDate: day(2024, time.November, 10)},
		{ID: "CUST004", Name: "Alice Johnson", Email: "alice.j@example.com", Phone: "111-222-3333", TotalOrders: 1, TotalSpent: 35.50, JoinDate: day(2025, time.March, 1)},
		{ID: "CUST005", Name: "Bob Brown", Email: "bob.b@example.com", Phone: "444-555-6666", TotalOrders: 12, TotalSpent: 1200.00, JoinDate: day(2023, time.December, 12)},
		{ID: "CUST006", Name: "Charlie Davis", Email: "charlie.d@example.com", Phone: "777-888-9999", TotalOrders: 2, TotalSpent: 99.98, JoinDate: day(2025, time.April, 10)},
		{ID: "CUST007", Name: "Diana Miller", Email: "diana.m@example.com", Phone: "123-123-1234", TotalOrders: 7, TotalSpent: 345.67, JoinDate: day(2025, time.May, 21)},
		{ID: "CUST008", Name: "Ethan Wilson", Email: "ethan.w@example.com", Phone: "456-456-4567", TotalOrders: 4, TotalSpent: 180.25, JoinDate: day(2025, time.June, 1)},
	}
}
