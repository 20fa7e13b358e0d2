package company

import (
	"time"

	"github.com/workdeck/console/internal/store"
)

// Status is the company lifecycle status.
type Status string

const (
	StatusActive   Status = "Ativo"
	StatusInactive Status = "Inativo"
)

// Company represents a client or partner organization.
type Company struct {
	ID        string    `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	TradeName string    `json:"trade_name,omitempty" yaml:"trade_name,omitempty"`
	Email     string    `json:"email,omitempty" yaml:"email,omitempty"`
	Phone     string    `json:"phone,omitempty" yaml:"phone,omitempty"`
	City      string    `json:"city,omitempty" yaml:"city,omitempty"`
	Status    Status    `json:"status" yaml:"status"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// Descriptor wires Company into the generic collection.
func Descriptor() store.Descriptor[Company] {
	return store.Descriptor[Company]{
		Name:  "company",
		ID:    func(c *Company) string { return c.ID },
		SetID: func(c *Company, id string) { c.ID = id },
		Fields: map[string]func(*Company) string{
			"name":      func(c *Company) string { return c.Name },
			"tradeName": func(c *Company) string { return c.TradeName },
			"email":     func(c *Company) string { return c.Email },
			"city":      func(c *Company) string { return c.City },
			"status":    func(c *Company) string { return string(c.Status) },
		},
		Dates: map[string]func(*Company) time.Time{
			"createdAt": func(c *Company) time.Time { return c.CreatedAt },
		},
		Searchable: []string{"name", "tradeName", "email"},
		Required:   []string{"name"},
	}
}
