package person

import (
	"time"

	"github.com/workdeck/console/internal/store"
)

// Status is the person lifecycle status.
type Status string

const (
	StatusActive   Status = "Ativo"
	StatusInactive Status = "Inativo"
)

// Person represents a team member or collaborator.
type Person struct {
	ID        string    `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	Email     string    `json:"email,omitempty" yaml:"email,omitempty"`
	Role      string    `json:"role,omitempty" yaml:"role,omitempty"`
	CompanyID string    `json:"company_id,omitempty" yaml:"company_id,omitempty"`
	Status    Status    `json:"status" yaml:"status"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// Descriptor wires Person into the generic collection.
func Descriptor() store.Descriptor[Person] {
	return store.Descriptor[Person]{
		Name:  "person",
		ID:    func(p *Person) string { return p.ID },
		SetID: func(p *Person, id string) { p.ID = id },
		Fields: map[string]func(*Person) string{
			"name":      func(p *Person) string { return p.Name },
			"email":     func(p *Person) string { return p.Email },
			"role":      func(p *Person) string { return p.Role },
			"companyId": func(p *Person) string { return p.CompanyID },
			"status":    func(p *Person) string { return string(p.Status) },
		},
		Dates: map[string]func(*Person) time.Time{
			"createdAt": func(p *Person) time.Time { return p.CreatedAt },
		},
		Searchable: []string{"name", "email", "role"},
		Required:   []string{"name"},
	}
}
