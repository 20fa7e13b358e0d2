package project

import (
	"time"

	"github.com/workdeck/console/internal/store"
)

// Status is the project lifecycle status.
type Status string

const (
	StatusPlanned   Status = "Planejado"
	StatusActive    Status = "Em Andamento"
	StatusDone      Status = "Concluído"
	StatusCancelled Status = "Cancelado"
)

// Project represents an engagement delivered for a company.
type Project struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	CompanyID   string    `json:"company_id,omitempty" yaml:"company_id,omitempty"`
	ManagerID   string    `json:"manager_id,omitempty" yaml:"manager_id,omitempty"`
	Status      Status    `json:"status" yaml:"status"`
	StartDate   time.Time `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	EndDate     time.Time `json:"end_date,omitempty" yaml:"end_date,omitempty"`
}

// Descriptor wires Project into the generic collection.
func Descriptor() store.Descriptor[Project] {
	return store.Descriptor[Project]{
		Name:  "project",
		ID:    func(p *Project) string { return p.ID },
		SetID: func(p *Project, id string) { p.ID = id },
		Fields: map[string]func(*Project) string{
			"name":      func(p *Project) string { return p.Name },
			"companyId": func(p *Project) string { return p.CompanyID },
			"managerId": func(p *Project) string { return p.ManagerID },
			"status":    func(p *Project) string { return string(p.Status) },
		},
		Dates: map[string]func(*Project) time.Time{
			"startDate": func(p *Project) time.Time { return p.StartDate },
			"endDate":   func(p *Project) time.Time { return p.EndDate },
		},
		Searchable: []string{"name"},
		Required:   []string{"name"},
	}
}
