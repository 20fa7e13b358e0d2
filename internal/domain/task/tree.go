// Package task implements the hierarchical task tree: a parent/child task
// collection with expand/collapse view state, hierarchy-preserving sort and
// declarative row coloring.
package task

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/workdeck/console/internal/store"
)

// Node is one row of the rendered tree: a task and its ancestry depth.
// Depth is used purely for visual indentation.
type Node struct {
	Task  Task
	Depth int
}

// NameResolver maps an assignee id to a display name for sorting. A nil
// resolver sorts by the raw id.
type NameResolver func(id string) string

// Tree renders a task collection as an indented, sortable, filterable list
// while preserving hierarchy. Expand/collapse state is view state keyed by
// task id, independent of task data; tasks default to expanded at creation.
type Tree struct {
	tasks    *store.Collection[Task]
	expanded map[string]bool
	resolve  NameResolver
	logger   *slog.Logger
}

// NewTree creates a tree over the given collection. Every task already in
// the collection starts expanded.
func NewTree(tasks *store.Collection[Task], resolve NameResolver, logger *slog.Logger) *Tree {
	if logger == nil {
		logger = slog.Default()
	}
	t := &Tree{
		tasks:    tasks,
		expanded: make(map[string]bool),
		resolve:  resolve,
		logger:   logger,
	}
	for _, each := range tasks.All() {
		t.expanded[each.ID] = true
	}
	return t
}

// Tasks returns the backing collection.
func (t *Tree) Tasks() *store.Collection[Task] {
	return t.tasks
}

// Create validates and inserts a task, marking it expanded.
func (t *Tree) Create(newTask Task) (Task, error) {
	if newTask.Status == "" {
		newTask.Status = StatusNotStarted
	}
	if newTask.CreatedAt.IsZero() {
		newTask.CreatedAt = time.Now()
	}
	created, err := t.tasks.Create(newTask)
	if err != nil {
		return Task{}, err
	}
	t.expanded[created.ID] = true
	return created, nil
}

// AddSubtask creates a child of the given parent, inheriting the parent's
// bucket and assignee as defaults, and expands the parent so the new child
// is visible.
func (t *Tree) AddSubtask(parentID, title string) (Task, error) {
	parent, err := t.tasks.Get(parentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Task{}, ErrTaskNotFound
		}
		return Task{}, fmt.Errorf("loading parent task: %w", err)
	}

	child, err := t.Create(Task{
		ProjectID:  parent.ProjectID,
		ParentID:   parent.ID,
		Title:      title,
		Bucket:     parent.Bucket,
		AssigneeID: parent.AssigneeID,
	})
	if err != nil {
		return Task{}, err
	}

	t.expanded[parent.ID] = true
	return child, nil
}

// Duplicate creates a shallow structural copy of the named task: a new
// identifier, the title suffixed to mark the copy, and an empty history.
// Children of the original are not duplicated.
func (t *Tree) Duplicate(id string) (Task, error) {
	orig, err := t.tasks.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Task{}, ErrTaskNotFound
		}
		return Task{}, fmt.Errorf("loading task: %w", err)
	}

	dup := orig
	dup.ID = ""
	dup.Title = orig.Title + " (cópia)"
	dup.History = nil
	dup.CreatedAt = time.Now()
	return t.Create(dup)
}

// Delete removes the task and all of its transitive descendants.
func (t *Tree) Delete(id string) error {
	if _, err := t.tasks.Get(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("loading task: %w", err)
	}

	doomed := map[string]bool{id: true}
	all := t.tasks.All()
	// Walk until the descendant set stops growing; the visited map also
	// bounds traversal if a cycle was introduced.
	for grew := true; grew; {
		grew = false
		for _, each := range all {
			if each.ParentID != "" && doomed[each.ParentID] && !doomed[each.ID] {
				doomed[each.ID] = true
				grew = true
			}
		}
	}

	removed := t.tasks.RemoveAll(doomed)
	for taskID := range doomed {
		delete(t.expanded, taskID)
	}
	t.logger.Debug("deleted task subtree", "id", id, "removed", removed)
	return nil
}

// ToggleExpand flips the expand/collapse flag for the given task id. It does
// not affect task data.
func (t *Tree) ToggleExpand(id string) {
	t.expanded[id] = !t.expanded[id]
}

// Expanded reports whether the given task id is expanded.
func (t *Tree) Expanded(id string) bool {
	return t.expanded[id]
}

// BuildView derives the flat ordered render sequence:
//
//  1. filter the raw collection flat (non-hierarchical predicates),
//  2. partition the filtered set into roots and a parent→children index
//     built only from filtered tasks (a task whose parent was filtered out
//     becomes a root),
//  3. sort each sibling group independently,
//  4. emit depth-first, recursing into children only for expanded tasks.
//
// A cyclic parent chain never recurses infinitely: the visited set stops the
// descent and the unreached cycle members are emitted as roots.
func (t *Tree) BuildView(q store.Query) []Node {
	flat := q
	flat.Sort = nil
	filtered := t.tasks.List(flat)

	present := make(map[string]bool, len(filtered))
	for _, each := range filtered {
		present[each.ID] = true
	}

	children := make(map[string][]Task)
	var roots []Task
	for _, each := range filtered {
		if each.ParentID == "" || !present[each.ParentID] {
			roots = append(roots, each)
			continue
		}
		children[each.ParentID] = append(children[each.ParentID], each)
	}

	t.sortSiblings(roots, q.Sort)
	for _, group := range children {
		t.sortSiblings(group, q.Sort)
	}

	// emit walks the whole reachable subtree so collapsed descendants are
	// still marked visited; show is false below a collapsed task.
	visited := make(map[string]bool, len(filtered))
	out := make([]Node, 0, len(filtered))
	var emit func(each Task, depth int, show bool)
	emit = func(each Task, depth int, show bool) {
		if visited[each.ID] {
			return
		}
		visited[each.ID] = true
		if show {
			out = append(out, Node{Task: each, Depth: depth})
		}
		show = show && t.expanded[each.ID]
		for _, child := range children[each.ID] {
			emit(child, depth+1, show)
		}
	}

	for _, root := range roots {
		emit(root, 0, true)
	}

	// Anything left unvisited sits on a cycle; treat it as a root rather
	// than losing it from the view.
	for _, each := range filtered {
		if !visited[each.ID] {
			emit(each, 0, true)
		}
	}

	return out
}

func (t *Tree) sortSiblings(group []Task, s *store.Sort) {
	if s == nil || len(group) < 2 {
		return
	}
	var resolve func(string) string
	if s.Field == "assigneeId" && t.resolve != nil {
		resolve = t.resolve
	}
	t.tasks.SortSlice(group, *s, resolve)
}

// RowColor evaluates the conditional rules in order against the task and
// returns the first match's color. No match means no override color.
func (t *Tree) RowColor(each Task, rules []store.Rule) (string, bool) {
	return store.FirstMatch(t.tasks, rules, &each)
}
