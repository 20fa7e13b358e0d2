package activity

import (
	"strconv"
	"time"

	"github.com/workdeck/console/internal/store"
)

// Status is the approval status of a logged activity.
type Status string

const (
	StatusPending  Status = "Pendente"
	StatusApproved Status = "Aprovado"
	StatusRejected Status = "Rejeitado"
)

// Activity represents a time-tracking entry: hours worked by a person on a
// project.
type Activity struct {
	ID          string    `json:"id" yaml:"id"`
	ProjectID   string    `json:"project_id" yaml:"project_id"`
	PersonID    string    `json:"person_id,omitempty" yaml:"person_id,omitempty"`
	Description string    `json:"description" yaml:"description"`
	Hours       float64   `json:"hours" yaml:"hours"`
	Date        time.Time `json:"date,omitempty" yaml:"date,omitempty"`
	Status      Status    `json:"status" yaml:"status"`
}

// Descriptor wires Activity into the generic collection. New entries are
// prepended so the most recent activity lists first. Creating an activity
// requires project, hours and description; a zero Hours stringifies empty so
// the required-field check rejects it.
func Descriptor() store.Descriptor[Activity] {
	return store.Descriptor[Activity]{
		Name:  "activity",
		ID:    func(a *Activity) string { return a.ID },
		SetID: func(a *Activity, id string) { a.ID = id },
		Fields: map[string]func(*Activity) string{
			"projectId":   func(a *Activity) string { return a.ProjectID },
			"personId":    func(a *Activity) string { return a.PersonID },
			"description": func(a *Activity) string { return a.Description },
			"status":      func(a *Activity) string { return string(a.Status) },
			"hours": func(a *Activity) string {
				if a.Hours == 0 {
					return ""
				}
				return strconv.FormatFloat(a.Hours, 'f', -1, 64)
			},
		},
		Dates: map[string]func(*Activity) time.Time{
			"date": func(a *Activity) time.Time { return a.Date },
		},
		Searchable: []string{"description"},
		Required:   []string{"projectId", "hours", "description"},
		Prepend:    true,
	}
}
