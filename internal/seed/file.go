package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

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

// fileSource is a Source backed by a YAML seed document. It stands in for a
// future backend: swapping it for a remote data source touches nothing but
// the composition root.
type fileSource struct {
	CompanyRecs  []company.Company    `yaml:"companies"`
	PersonRecs   []person.Person      `yaml:"people"`
	ProjectRecs  []project.Project    `yaml:"projects"`
	ContractRecs []contract.Contract  `yaml:"contracts"`
	ActivityRecs []activity.Activity  `yaml:"activities"`
	HolidayRecs  []holiday.Holiday    `yaml:"holidays"`
	ApprovalRecs []approval.Approval  `yaml:"approvals"`
	TaskRecs     []task.Task          `yaml:"tasks"`
	FeedbackRecs []retro.FeedbackItem `yaml:"feedback"`
	EstimateRecs []retro.Estimate     `yaml:"estimates"`
}

// LoadFile parses a YAML seed document into a Source.
func LoadFile(path string) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var src fileSource
	if err := yaml.Unmarshal(data, &src); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &src, nil
}

func (s *fileSource) Companies() []company.Company    { return s.CompanyRecs }
func (s *fileSource) People() []person.Person         { return s.PersonRecs }
func (s *fileSource) Projects() []project.Project     { return s.ProjectRecs }
func (s *fileSource) Contracts() []contract.Contract  { return s.ContractRecs }
func (s *fileSource) Activities() []activity.Activity { return s.ActivityRecs }
func (s *fileSource) Holidays() []holiday.Holiday     { return s.HolidayRecs }
func (s *fileSource) Approvals() []approval.Approval  { return s.ApprovalRecs }
func (s *fileSource) Tasks() []task.Task              { return s.TaskRecs }
func (s *fileSource) Feedback() []retro.FeedbackItem  { return s.FeedbackRecs }
func (s *fileSource) Estimates() []retro.Estimate     { return s.EstimateRecs }
