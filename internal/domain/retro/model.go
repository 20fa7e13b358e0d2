// Package retro holds the retrospective feedback and planning-poker
// estimation records. Both are session-only collections with no workflow
// beyond voting and tallying.
package retro

import (
	"strconv"

	"github.com/workdeck/console/internal/store"
)

// Category classifies a retrospective feedback item.
type Category string

const (
	CategoryWentWell  Category = "went_well"
	CategoryToImprove Category = "to_improve"
	CategoryAction    Category = "action"
)

// FeedbackItem is one card on the retrospective board.
type FeedbackItem struct {
	ID        string   `json:"id" yaml:"id"`
	ProjectID string   `json:"project_id" yaml:"project_id"`
	AuthorID  string   `json:"author_id,omitempty" yaml:"author_id,omitempty"`
	Category  Category `json:"category" yaml:"category"`
	Text      string   `json:"text" yaml:"text"`
	Votes     int      `json:"votes" yaml:"votes"`
}

// FeedbackDescriptor wires FeedbackItem into the generic collection.
func FeedbackDescriptor() store.Descriptor[FeedbackItem] {
	return store.Descriptor[FeedbackItem]{
		Name:  "feedback",
		ID:    func(f *FeedbackItem) string { return f.ID },
		SetID: func(f *FeedbackItem, id string) { f.ID = id },
		Fields: map[string]func(*FeedbackItem) string{
			"projectId": func(f *FeedbackItem) string { return f.ProjectID },
			"authorId":  func(f *FeedbackItem) string { return f.AuthorID },
			"category":  func(f *FeedbackItem) string { return string(f.Category) },
			"text":      func(f *FeedbackItem) string { return f.Text },
		},
		Searchable: []string{"text"},
		Required:   []string{"projectId", "text"},
	}
}

// Vote increments the vote counter of the feedback item with the given id.
func Vote(items *store.Collection[FeedbackItem], id string) (FeedbackItem, error) {
	return items.Update(id, func(f *FeedbackItem) { f.Votes++ })
}

// Estimate is one planning-poker vote: story points given by a person for a
// task.
type Estimate struct {
	ID       string `json:"id" yaml:"id"`
	TaskID   string `json:"task_id" yaml:"task_id"`
	PersonID string `json:"person_id" yaml:"person_id"`
	Points   int    `json:"points" yaml:"points"`
}

// EstimateDescriptor wires Estimate into the generic collection.
func EstimateDescriptor() store.Descriptor[Estimate] {
	return store.Descriptor[Estimate]{
		Name:  "estimate",
		ID:    func(e *Estimate) string { return e.ID },
		SetID: func(e *Estimate, id string) { e.ID = id },
		Fields: map[string]func(*Estimate) string{
			"taskId":   func(e *Estimate) string { return e.TaskID },
			"personId": func(e *Estimate) string { return e.PersonID },
			"points": func(e *Estimate) string {
				if e.Points == 0 {
					return ""
				}
				return strconv.Itoa(e.Points)
			},
		},
		Required: []string{"taskId", "personId", "points"},
	}
}

// Summary aggregates the poker estimates cast for one task.
type Summary struct {
	TaskID    string
	Votes     int
	Average   float64
	Consensus bool
}

// Summarize tallies the estimates for the given task. Consensus means every
// vote landed on the same point value.
func Summarize(estimates *store.Collection[Estimate], taskID string) Summary {
	sum := Summary{TaskID: taskID, Consensus: true}
	total := 0
	first := 0
	for _, e := range estimates.All() {
		if e.TaskID != taskID {
			continue
		}
		if sum.Votes == 0 {
			first = e.Points
		} else if e.Points != first {
			sum.Consensus = false
		}
		sum.Votes++
		total += e.Points
	}
	if sum.Votes == 0 {
		sum.Consensus = false
		return sum
	}
	sum.Average = float64(total) / float64(sum.Votes)
	return sum
}
