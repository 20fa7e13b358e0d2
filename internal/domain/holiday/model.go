package holiday

import (
	"time"

	"github.com/workdeck/console/internal/store"
)

// Scope is the breadth of applicability of a holiday.
type Scope string

const (
	ScopeGlobal  Scope = "global"
	ScopeCompany Scope = "company"
	ScopeProject Scope = "project"
	ScopePerson  Scope = "person"
)

// Holiday represents a non-working day. ScopeRef carries the company,
// project or person identifier when the scope is not global.
type Holiday struct {
	ID       string    `json:"id" yaml:"id"`
	Name     string    `json:"name" yaml:"name"`
	Date     time.Time `json:"date" yaml:"date"`
	Scope    Scope     `json:"scope" yaml:"scope"`
	ScopeRef string    `json:"scope_ref,omitempty" yaml:"scope_ref,omitempty"`
}

// Descriptor wires Holiday into the generic collection.
func Descriptor() store.Descriptor[Holiday] {
	return store.Descriptor[Holiday]{
		Name:  "holiday",
		ID:    func(h *Holiday) string { return h.ID },
		SetID: func(h *Holiday, id string) { h.ID = id },
		Fields: map[string]func(*Holiday) string{
			"name":     func(h *Holiday) string { return h.Name },
			"scope":    func(h *Holiday) string { return string(h.Scope) },
			"scopeRef": func(h *Holiday) string { return h.ScopeRef },
		},
		Dates: map[string]func(*Holiday) time.Time{
			"date": func(h *Holiday) time.Time { return h.Date },
		},
		Searchable: []string{"name"},
		Required:   []string{"name"},
	}
}
