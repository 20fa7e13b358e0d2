// Command console is the composition root: it builds one store per entity
// collection from the seed source and hands them to the rendering layer.
// Here the rendering layer is a plain-text demo listing on stdout.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/workdeck/console/internal/domain/activity"
	"github.com/workdeck/console/internal/domain/approval"
	"github.com/workdeck/console/internal/domain/company"
	"github.com/workdeck/console/internal/domain/contract"
	"github.com/workdeck/console/internal/domain/holiday"
	"github.com/workdeck/console/internal/domain/person"
	"github.com/workdeck/console/internal/domain/project"
	"github.com/workdeck/console/internal/domain/retro"
	"github.com/workdeck/console/internal/domain/task"
	"github.com/workdeck/console/internal/export"
	"github.com/workdeck/console/internal/seed"
	"github.com/workdeck/console/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	src := seed.Static()
	if path := flagSeedPath(); path != "" {
		loaded, err := seed.LoadFile(path)
		if err != nil {
			logger.Error("failed to load seed file", "path", path, "error", err)
			os.Exit(1)
		}
		src = loaded
	}

	companies := store.NewCollection(company.Descriptor(), src.Companies(), logger)
	people := store.NewCollection(person.Descriptor(), src.People(), logger)
	projects := store.NewCollection(project.Descriptor(), src.Projects(), logger)
	contracts := store.NewCollection(contract.Descriptor(), src.Contracts(), logger)
	activities := store.NewCollection(activity.Descriptor(), src.Activities(), logger)
	holidays := store.NewCollection(holiday.Descriptor(), src.Holidays(), logger)
	approvals := store.NewCollection(approval.Descriptor(), src.Approvals(), logger)
	feedback := store.NewCollection(retro.FeedbackDescriptor(), src.Feedback(), logger)
	estimates := store.NewCollection(retro.EstimateDescriptor(), src.Estimates(), logger)

	tasks := store.NewCollection(task.Descriptor(), src.Tasks(), logger)
	tree := task.NewTree(tasks, func(id string) string {
		p, err := people.Get(id)
		if err != nil {
			return ""
		}
		return p.Name
	}, logger)

	logger.Info("console loaded",
		"companies", companies.Len(),
		"people", people.Len(),
		"projects", projects.Len(),
		"contracts", contracts.Len(),
		"activities", activities.Len(),
		"holidays", holidays.Len(),
		"approvals", approvals.Len(),
		"tasks", tasks.Len(),
		"feedback", feedback.Len(),
		"estimates", estimates.Len(),
	)

	renderCompanies(companies)
	renderTree(tree, people)

	exporter := export.Stub{Logger: logger}
	_ = exporter.PDF(export.View{Title: "Empresas", Columns: []string{"Nome", "Status"}})
}

func flagSeedPath() string {
	if len(os.Args) > 1 {
		return os.Args[1]
	}
	return ""
}

func renderCompanies(companies *store.Collection[company.Company]) {
	filters := store.NewFilterState("status")
	filters.Set("status", string(company.StatusActive))

	fmt.Println("Empresas ativas:")
	for _, c := range companies.List(filters.Query()) {
		fmt.Printf("  %-24s %s\n", c.Name, c.Status)
	}
	fmt.Println()
}

func renderTree(tree *task.Tree, people *store.Collection[person.Person]) {
	q := store.Query{Sort: &store.Sort{Field: "assigneeId", Ascending: true}}

	fmt.Println("Tarefas:")
	for _, node := range tree.BuildView(q) {
		assignee := ""
		if p, err := people.Get(node.Task.AssigneeID); err == nil {
			assignee = p.Name
		}
		indent := strings.Repeat("  ", node.Depth)
		fmt.Printf("  %s%-28s %-12s %s\n", indent, node.Task.Title, node.Task.Status, assignee)
	}
}
