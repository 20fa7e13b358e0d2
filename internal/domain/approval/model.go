package approval

import (
	"time"

	"github.com/workdeck/console/internal/store"
)

// Status is the decision status of an approval request.
type Status string

const (
	StatusPending  Status = "Pendente"
	StatusApproved Status = "Aprovado"
	StatusRejected Status = "Rejeitado"
)

// Approval represents a pending decision raised by a team member, e.g. a
// vacation or expense request.
type Approval struct {
	ID          string     `json:"id" yaml:"id"`
	Type        string     `json:"type" yaml:"type"`
	RequesterID string     `json:"requester_id" yaml:"requester_id"`
	ApproverID  string     `json:"approver_id,omitempty" yaml:"approver_id,omitempty"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Status      Status     `json:"status" yaml:"status"`
	RequestedAt time.Time  `json:"requested_at" yaml:"requested_at"`
	DecidedAt   *time.Time `json:"decided_at,omitempty" yaml:"decided_at,omitempty"`
}

// Approve marks the request approved by the given approver.
func (a *Approval) Approve(approverID string, at time.Time) {
	a.Status = StatusApproved
	a.ApproverID = approverID
	a.DecidedAt = &at
}

// Reject marks the request rejected by the given approver.
func (a *Approval) Reject(approverID string, at time.Time) {
	a.Status = StatusRejected
	a.ApproverID = approverID
	a.DecidedAt = &at
}

// Descriptor wires Approval into the generic collection.
func Descriptor() store.Descriptor[Approval] {
	return store.Descriptor[Approval]{
		Name:  "approval",
		ID:    func(a *Approval) string { return a.ID },
		SetID: func(a *Approval, id string) { a.ID = id },
		Fields: map[string]func(*Approval) string{
			"type":        func(a *Approval) string { return a.Type },
			"requesterId": func(a *Approval) string { return a.RequesterID },
			"approverId":  func(a *Approval) string { return a.ApproverID },
			"description": func(a *Approval) string { return a.Description },
			"status":      func(a *Approval) string { return string(a.Status) },
		},
		Dates: map[string]func(*Approval) time.Time{
			"requestedAt": func(a *Approval) time.Time { return a.RequestedAt },
		},
		Searchable: []string{"type", "description"},
		Required:   []string{"type", "requesterId"},
	}
}
