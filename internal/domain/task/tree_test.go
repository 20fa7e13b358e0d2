package task_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/workdeck/console/internal/domain/task"
	"github.com/workdeck/console/internal/store"
)

func newTree(t *testing.T, tasks []task.Task, resolve task.NameResolver) *task.Tree {
	t.Helper()
	c := store.NewCollection(task.Descriptor(), tasks, nil)
	return task.NewTree(c, resolve, nil)
}

func chain() []task.Task {
	return []task.Task{
		{ID: "a", Title: "A"},
		{ID: "b", ParentID: "a", Title: "B"},
		{ID: "c", ParentID: "b", Title: "C"},
	}
}

func viewIDs(nodes []task.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Task.ID
	}
	return out
}

func TestBuildView_DepthFirstOrder(t *testing.T) {
	tree := newTree(t, chain(), nil)

	nodes := tree.BuildView(store.Query{})
	require.Equal(t, []string{"a", "b", "c"}, viewIDs(nodes))
	require.Equal(t, 0, nodes[0].Depth)
	require.Equal(t, 1, nodes[1].Depth)
	require.Equal(t, 2, nodes[2].Depth)
}

func TestBuildView_ChildEmittedBeforeParentSibling(t *testing.T) {
	tree := newTree(t, []task.Task{
		{ID: "a", Title: "A"},
		{ID: "b", Title: "B"},
		{ID: "a1", ParentID: "a", Title: "A1"},
	}, nil)

	nodes := tree.BuildView(store.Query{})
	require.Equal(t, []string{"a", "a1", "b"}, viewIDs(nodes))
}

func TestBuildView_CollapseHidesSubtreeOnly(t *testing.T) {
	tree := newTree(t, chain(), nil)

	tree.ToggleExpand("a")
	nodes := tree.BuildView(store.Query{})
	require.Equal(t, []string{"a"}, viewIDs(nodes))

	tree.ToggleExpand("a")
	nodes = tree.BuildView(store.Query{})
	require.Equal(t, []string{"a", "b", "c"}, viewIDs(nodes))
}

func TestBuildView_CollapseMidChain(t *testing.T) {
	tree := newTree(t, chain(), nil)

	tree.ToggleExpand("b")
	nodes := tree.BuildView(store.Query{})
	require.Equal(t, []string{"a", "b"}, viewIDs(nodes))
}

func TestBuildView_FilteredParentPromotesChildToRoot(t *testing.T) {
	tree := newTree(t, []task.Task{
		{ID: "a", Title: "A", Status: task.StatusCompleted},
		{ID: "b", ParentID: "a", Title: "B", Status: task.StatusInProgress},
	}, nil)

	nodes := tree.BuildView(store.Query{
		Filters: map[string]string{"status": string(task.StatusInProgress)},
	})
	require.Equal(t, []string{"b"}, viewIDs(nodes))
	require.Equal(t, 0, nodes[0].Depth)
}

func TestBuildView_OrphanedChildBecomesRoot(t *testing.T) {
	tree := newTree(t, []task.Task{
		{ID: "b", ParentID: "gone", Title: "B"},
	}, nil)

	nodes := tree.BuildView(store.Query{})
	require.Equal(t, []string{"b"}, viewIDs(nodes))
	require.Equal(t, 0, nodes[0].Depth)
}

func TestBuildView_CycleDoesNotLoop(t *testing.T) {
	tree := newTree(t, []task.Task{
		{ID: "x", ParentID: "y", Title: "X"},
		{ID: "y", ParentID: "x", Title: "Y"},
		{ID: "r", Title: "R"},
	}, nil)

	nodes := tree.BuildView(store.Query{})
	require.Len(t, nodes, 3)
	require.ElementsMatch(t, []string{"x", "y", "r"}, viewIDs(nodes))
}

func TestBuildView_SortsByAssigneeDisplayName(t *testing.T) {
	// Raw id order would put Beatriz (pers-1) first; name resolution must
	// order Ana before Beatriz.
	names := map[string]string{"pers-1": "Beatriz", "pers-2": "Ana"}
	tree := newTree(t, []task.Task{
		{ID: "t1", Title: "T1", AssigneeID: "pers-1"},
		{ID: "t2", Title: "T2", AssigneeID: "pers-2"},
	}, func(id string) string { return names[id] })

	nodes := tree.BuildView(store.Query{
		Sort: &store.Sort{Field: "assigneeId", Ascending: true},
	})
	require.Equal(t, []string{"t2", "t1"}, viewIDs(nodes))
}

func TestBuildView_MissingAssigneeSortsAsEmpty(t *testing.T) {
	names := map[string]string{"pers-1": "Beatriz"}
	tree := newTree(t, []task.Task{
		{ID: "t1", Title: "T1", AssigneeID: "pers-1"},
		{ID: "t2", Title: "T2"},
	}, func(id string) string { return names[id] })

	nodes := tree.BuildView(store.Query{
		Sort: &store.Sort{Field: "assigneeId", Ascending: true},
	})
	require.Equal(t, []string{"t2", "t1"}, viewIDs(nodes))
}

func TestBuildView_SortsSiblingGroupsIndependently(t *testing.T) {
	tree := newTree(t, []task.Task{
		{ID: "p", Title: "Zeta"},
		{ID: "c2", ParentID: "p", Title: "Beta"},
		{ID: "c1", ParentID: "p", Title: "Alfa"},
		{ID: "q", Title: "Alpha root"},
	}, nil)

	nodes := tree.BuildView(store.Query{
		Sort: &store.Sort{Field: "title", Ascending: true},
	})
	require.Equal(t, []string{"q", "p", "c1", "c2"}, viewIDs(nodes))
}

func TestDelete_CascadesToDescendants(t *testing.T) {
	tree := newTree(t, append(chain(), task.Task{ID: "other", Title: "Other"}), nil)

	require.NoError(t, tree.Delete("a"))
	require.Equal(t, 1, tree.Tasks().Len())

	remaining, err := tree.Tasks().Get("other")
	require.NoError(t, err)
	require.Equal(t, "other", remaining.ID)
}

func TestDelete_NotFound(t *testing.T) {
	tree := newTree(t, chain(), nil)
	require.ErrorIs(t, tree.Delete("missing"), task.ErrTaskNotFound)
}

func TestAddSubtask_InheritsDefaultsAndExpandsParent(t *testing.T) {
	tree := newTree(t, []task.Task{
		{ID: "p", Title: "Parent", Bucket: "Development", AssigneeID: "pers-1"},
	}, nil)
	tree.ToggleExpand("p")
	require.False(t, tree.Expanded("p"))

	child, err := tree.AddSubtask("p", "Child")
	require.NoError(t, err)
	require.Equal(t, "p", child.ParentID)
	require.Equal(t, "Development", child.Bucket)
	require.Equal(t, "pers-1", child.AssigneeID)
	require.Equal(t, task.StatusNotStarted, child.Status)
	require.True(t, tree.Expanded("p"))

	nodes := tree.BuildView(store.Query{})
	require.Equal(t, []string{"p", child.ID}, viewIDs(nodes))
	require.Equal(t, 1, nodes[1].Depth)
}

func TestAddSubtask_NotFound(t *testing.T) {
	tree := newTree(t, nil, nil)
	_, err := tree.AddSubtask("missing", "Child")
	require.ErrorIs(t, err, task.ErrTaskNotFound)
}

func TestDuplicate_ShallowCopyWithFreshIdentity(t *testing.T) {
	tree := newTree(t, []task.Task{
		{ID: "p", Title: "Parent", Bucket: "To Do", History: []task.HistoryEntry{{Summary: "created"}}},
		{ID: "c", ParentID: "p", Title: "Child"},
	}, nil)

	dup, err := tree.Duplicate("p")
	require.NoError(t, err)
	require.NotEqual(t, "p", dup.ID)
	require.Equal(t, "Parent (cópia)", dup.Title)
	require.Empty(t, dup.History)
	require.Equal(t, "To Do", dup.Bucket)

	// Children of the original are not duplicated.
	require.Equal(t, 3, tree.Tasks().Len())
	nodes := tree.BuildView(store.Query{})
	for _, n := range nodes {
		if n.Task.ParentID == dup.ID {
			t.Fatalf("duplicate gained a child: %s", n.Task.ID)
		}
	}
}

func TestDuplicate_NotFound(t *testing.T) {
	tree := newTree(t, nil, nil)
	_, err := tree.Duplicate("missing")
	require.ErrorIs(t, err, task.ErrTaskNotFound)
}

func TestRowColor_FirstMatchWins(t *testing.T) {
	tree := newTree(t, []task.Task{
		{ID: "t1", Title: "Urgente", Status: task.StatusOverdue, Priority: task.PriorityHigh},
	}, nil)
	rules := []store.Rule{
		{Field: "status", Op: store.OpEquals, Value: "overdue", Color: "red"},
		{Field: "priority", Op: store.OpEquals, Value: "alta", Color: "orange"},
	}

	got, err := tree.Tasks().Get("t1")
	require.NoError(t, err)

	color, ok := tree.RowColor(got, rules)
	require.True(t, ok)
	require.Equal(t, "red", color)
}
