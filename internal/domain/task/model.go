package task

import (
	"time"

	"github.com/workdeck/console/internal/store"
)

// Status is the task workflow status. Transitions are free-form: the edit
// form may set any status at any time.
type Status string

const (
	StatusNotStarted Status = "Not Started"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
	StatusOverdue    Status = "Overdue"
)

// Priority is the task priority label.
type Priority string

const (
	PriorityLow    Priority = "Baixa"
	PriorityMedium Priority = "Média"
	PriorityHigh   Priority = "Alta"
)

// HistoryEntry is one line of a task's audit trail.
type HistoryEntry struct {
	At      time.Time `json:"at" yaml:"at"`
	Summary string    `json:"summary" yaml:"summary"`
}

// Task is a unit of project work. An empty ParentID means the task is a
// root; a ParentID referencing a task missing from the collection makes it
// an implicit root for display purposes.
type Task struct {
	ID          string         `json:"id" yaml:"id"`
	ProjectID   string         `json:"project_id,omitempty" yaml:"project_id,omitempty"`
	ParentID    string         `json:"parent_id,omitempty" yaml:"parent_id,omitempty"`
	Title       string         `json:"title" yaml:"title"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Bucket      string         `json:"bucket,omitempty" yaml:"bucket,omitempty"`
	AssigneeID  string         `json:"assignee_id,omitempty" yaml:"assignee_id,omitempty"`
	Priority    Priority       `json:"priority,omitempty" yaml:"priority,omitempty"`
	Status      Status         `json:"status" yaml:"status"`
	DueDate     time.Time      `json:"due_date,omitempty" yaml:"due_date,omitempty"`
	CreatedAt   time.Time      `json:"created_at" yaml:"created_at"`
	History     []HistoryEntry `json:"history,omitempty" yaml:"history,omitempty"`
}

// Descriptor wires Task into the generic collection.
func Descriptor() store.Descriptor[Task] {
	return store.Descriptor[Task]{
		Name:  "task",
		ID:    func(t *Task) string { return t.ID },
		SetID: func(t *Task, id string) { t.ID = id },
		Fields: map[string]func(*Task) string{
			"title":       func(t *Task) string { return t.Title },
			"description": func(t *Task) string { return t.Description },
			"projectId":   func(t *Task) string { return t.ProjectID },
			"parentId":    func(t *Task) string { return t.ParentID },
			"bucket":      func(t *Task) string { return t.Bucket },
			"assigneeId":  func(t *Task) string { return t.AssigneeID },
			"priority":    func(t *Task) string { return string(t.Priority) },
			"status":      func(t *Task) string { return string(t.Status) },
		},
		Dates: map[string]func(*Task) time.Time{
			"dueDate":   func(t *Task) time.Time { return t.DueDate },
			"createdAt": func(t *Task) time.Time { return t.CreatedAt },
		},
		Searchable: []string{"title", "description"},
		Required:   []string{"title"},
	}
}
