// Package seed supplies the startup dataset behind a substitutable data
// access interface, so a real backend can later replace the in-memory mock
// data without touching the stores.
package seed

import (
	"github.com/workdeck/console/internal/domain/activity"
	"github.com/workdeck/console/internal/domain/approval"
	"github.com/workdeck/console/internal/domain/company"
	"github.com/workdeck/console/internal/domain/contract"
	"github.com/workdeck/console/internal/domain/holiday"
	"github.com/workdeck/console/internal/domain/person"
	"github.com/workdeck/console/internal/domain/project"
	"github.com/workdeck/console/internal/domain/retro"
	"github.com/workdeck/console/internal/domain/task"
)

// Source loads the seed collection for each entity type.
type Source interface {
	Companies() []company.Company
	People() []person.Person
	Projects() []project.Project
	Contracts() []contract.Contract
	Activities() []activity.Activity
	Holidays() []holiday.Holiday
	Approvals() []approval.Approval
	Tasks() []task.Task
	Feedback() []retro.FeedbackItem
	Estimates() []retro.Estimate
}
