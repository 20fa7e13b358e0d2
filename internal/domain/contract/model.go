package contract

import (
	"strconv"
	"time"

	"github.com/workdeck/console/internal/store"
)

// Status is the contract lifecycle status.
type Status string

const (
	StatusPending Status = "Pendente"
	StatusActive  Status = "Ativo"
	StatusClosed  Status = "Encerrado"
)

// Contract represents a commercial agreement with a company. CompanyID and
// ProjectID are foreign-key-style references; the contract owns no other
// record.
type Contract struct {
	ID        string    `json:"id" yaml:"id"`
	Number    string    `json:"number" yaml:"number"`
	CompanyID string    `json:"company_id" yaml:"company_id"`
	ProjectID string    `json:"project_id,omitempty" yaml:"project_id,omitempty"`
	Value     float64   `json:"value,omitempty" yaml:"value,omitempty"`
	Status    Status    `json:"status" yaml:"status"`
	StartDate time.Time `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	EndDate   time.Time `json:"end_date,omitempty" yaml:"end_date,omitempty"`
}

// Descriptor wires Contract into the generic collection.
func Descriptor() store.Descriptor[Contract] {
	return store.Descriptor[Contract]{
		Name:  "contract",
		ID:    func(c *Contract) string { return c.ID },
		SetID: func(c *Contract, id string) { c.ID = id },
		Fields: map[string]func(*Contract) string{
			"number":    func(c *Contract) string { return c.Number },
			"companyId": func(c *Contract) string { return c.CompanyID },
			"projectId": func(c *Contract) string { return c.ProjectID },
			"status":    func(c *Contract) string { return string(c.Status) },
			"value": func(c *Contract) string {
				if c.Value == 0 {
					return ""
				}
				return strconv.FormatFloat(c.Value, 'f', 2, 64)
			},
		},
		Dates: map[string]func(*Contract) time.Time{
			"startDate": func(c *Contract) time.Time { return c.StartDate },
			"endDate":   func(c *Contract) time.Time { return c.EndDate },
		},
		Searchable: []string{"number"},
		Required:   []string{"number", "companyId"},
	}
}
