package seed

import (
	"time"

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

// staticSource is the hard-coded mock dataset the console boots with.
type staticSource struct{}

// Static returns the built-in mock dataset.
func Static() Source {
	return staticSource{}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (staticSource) Companies() []company.Company {
	return []company.Company{
		{ID: "comp-1", Name: "Acme Consultoria", TradeName: "Acme", Email: "contato@acme.com.br", City: "São Paulo", Status: company.StatusActive, CreatedAt: date(2023, 3, 10)},
		{ID: "comp-2", Name: "Beta Sistemas", TradeName: "Beta", Email: "contato@betasistemas.com.br", City: "Curitiba", Status: company.StatusInactive, CreatedAt: date(2023, 7, 22)},
		{ID: "comp-3", Name: "Vetor Digital", TradeName: "Vetor", Email: "oi@vetordigital.com.br", City: "Recife", Status: company.StatusActive, CreatedAt: date(2024, 1, 5)},
	}
}

func (staticSource) People() []person.Person {
	return []person.Person{
		{ID: "pers-1", Name: "Ana Souza", Email: "ana@acme.com.br", Role: "Desenvolvedora", CompanyID: "comp-1", Status: person.StatusActive, CreatedAt: date(2023, 4, 1)},
		{ID: "pers-2", Name: "Beatriz Lima", Email: "beatriz@acme.com.br", Role: "Designer", CompanyID: "comp-1", Status: person.StatusActive, CreatedAt: date(2023, 5, 15)},
		{ID: "pers-3", Name: "Carlos Mendes", Email: "carlos@vetordigital.com.br", Role: "Gerente de Projetos", CompanyID: "comp-3", Status: person.StatusActive, CreatedAt: date(2023, 9, 2)},
		{ID: "pers-4", Name: "Daniel Rocha", Email: "daniel@betasistemas.com.br", Role: "Analista", CompanyID: "comp-2", Status: person.StatusInactive, CreatedAt: date(2024, 2, 18)},
	}
}

func (staticSource) Projects() []project.Project {
	return []project.Project{
		{ID: "proj-1", Name: "Portal do Cliente", Description: "Novo portal de autoatendimento", CompanyID: "comp-1", ManagerID: "pers-3", Status: project.StatusActive, StartDate: date(2024, 2, 1), EndDate: date(2024, 11, 30)},
		{ID: "proj-2", Name: "Migração ERP", Description: "Migração do ERP legado", CompanyID: "comp-2", ManagerID: "pers-3", Status: project.StatusPlanned, StartDate: date(2024, 8, 1)},
		{ID: "proj-3", Name: "App de Campo", CompanyID: "comp-3", ManagerID: "pers-3", Status: project.StatusDone, StartDate: date(2023, 6, 1), EndDate: date(2024, 1, 31)},
	}
}

func (staticSource) Contracts() []contract.Contract {
	return []contract.Contract{
		{ID: "ctr-1", Number: "CT-2024-001", CompanyID: "comp-1", ProjectID: "proj-1", Value: 180000, Status: contract.StatusActive, StartDate: date(2024, 2, 1), EndDate: date(2024, 12, 31)},
		{ID: "ctr-2", Number: "CT-2024-014", CompanyID: "comp-2", ProjectID: "proj-2", Value: 95000, Status: contract.StatusPending, StartDate: date(2024, 8, 1)},
		{ID: "ctr-3", Number: "CT-2023-037", CompanyID: "comp-3", ProjectID: "proj-3", Value: 62000, Status: contract.StatusClosed, StartDate: date(2023, 6, 1), EndDate: date(2024, 1, 31)},
	}
}

func (staticSource) Activities() []activity.Activity {
	return []activity.Activity{
		{ID: "act-1", ProjectID: "proj-1", PersonID: "pers-1", Description: "Implementação da tela de login", Hours: 6, Date: date(2024, 5, 6), Status: activity.StatusApproved},
		{ID: "act-2", ProjectID: "proj-1", PersonID: "pers-2", Description: "Protótipo do dashboard", Hours: 4.5, Date: date(2024, 5, 7), Status: activity.StatusPending},
		{ID: "act-3", ProjectID: "proj-3", PersonID: "pers-1", Description: "Correções finais", Hours: 3, Date: date(2024, 1, 29), Status: activity.StatusApproved},
	}
}

func (staticSource) Holidays() []holiday.Holiday {
	return []holiday.Holiday{
		{ID: "hol-1", Name: "Confraternização Universal", Date: date(2024, 1, 1), Scope: holiday.ScopeGlobal},
		{ID: "hol-2", Name: "Aniversário da Empresa", Date: date(2024, 3, 10), Scope: holiday.ScopeCompany, ScopeRef: "comp-1"},
		{ID: "hol-3", Name: "Recesso do Projeto", Date: date(2024, 7, 15), Scope: holiday.ScopeProject, ScopeRef: "proj-1"},
	}
}

func (staticSource) Approvals() []approval.Approval {
	return []approval.Approval{
		{ID: "apr-1", Type: "Férias", RequesterID: "pers-1", Description: "Férias de 10 dias em julho", Status: approval.StatusPending, RequestedAt: date(2024, 5, 2)},
		{ID: "apr-2", Type: "Despesa", RequesterID: "pers-2", Description: "Reembolso de deslocamento", Status: approval.StatusApproved, ApproverID: "pers-3", RequestedAt: date(2024, 4, 20)},
	}
}

func (staticSource) Tasks() []task.Task {
	return []task.Task{
		{ID: "task-1", ProjectID: "proj-1", Title: "Autenticação", Bucket: "Development", AssigneeID: "pers-1", Priority: task.PriorityHigh, Status: task.StatusInProgress, DueDate: date(2024, 6, 15), CreatedAt: date(2024, 3, 1)},
		{ID: "task-2", ProjectID: "proj-1", ParentID: "task-1", Title: "Tela de login", Bucket: "Development", AssigneeID: "pers-1", Priority: task.PriorityMedium, Status: task.StatusCompleted, DueDate: date(2024, 5, 10), CreatedAt: date(2024, 3, 5)},
		{ID: "task-3", ProjectID: "proj-1", ParentID: "task-1", Title: "Recuperação de senha", Bucket: "Development", AssigneeID: "pers-2", Priority: task.PriorityLow, Status: task.StatusNotStarted, DueDate: date(2024, 6, 1), CreatedAt: date(2024, 3, 5)},
		{ID: "task-4", ProjectID: "proj-1", Title: "Dashboard", Bucket: "To Do", AssigneeID: "pers-2", Priority: task.PriorityMedium, Status: task.StatusNotStarted, DueDate: date(2024, 7, 1), CreatedAt: date(2024, 3, 8)},
	}
}

func (staticSource) Feedback() []retro.FeedbackItem {
	return []retro.FeedbackItem{
		{ID: "fb-1", ProjectID: "proj-1", AuthorID: "pers-1", Category: retro.CategoryWentWell, Text: "Entregas no prazo", Votes: 3},
		{ID: "fb-2", ProjectID: "proj-1", AuthorID: "pers-2", Category: retro.CategoryToImprove, Text: "Reuniões muito longas", Votes: 5},
	}
}

func (staticSource) Estimates() []retro.Estimate {
	return []retro.Estimate{
		{ID: "est-1", TaskID: "task-4", PersonID: "pers-1", Points: 5},
		{ID: "est-2", TaskID: "task-4", PersonID: "pers-2", Points: 5},
	}
}
