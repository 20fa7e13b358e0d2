// Package store implements the in-memory filterable entity collection that
// backs every list screen of the console: companies, people, projects,
// contracts, activities, holidays, approvals and tasks all share it.
package store

import (
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Descriptor wires an entity type into the generic collection. Field
// accessors return the stringified value used for filtering, searching,
// sorting and rule matching.
type Descriptor[T any] struct {
	// Name is the entity name used in log attrs.
	Name string
	// ID returns the record's unique identifier.
	ID func(*T) string
	// SetID assigns a freshly generated identifier on create.
	SetID func(*T, string)
	// Fields maps filter/sort/rule field names to stringified accessors.
	Fields map[string]func(*T) string
	// Dates maps date field names to accessors for range filtering.
	Dates map[string]func(*T) time.Time
	// Searchable lists the field names matched by free-text search.
	Searchable []string
	// Required lists the field names that must be non-empty on create.
	Required []string
	// Prepend inserts new records at the head instead of appending.
	Prepend bool
}

// Collection is an in-memory collection of one entity type. List is a pure
// derivation recomputed on demand; Create/Update/Remove mutate in place.
type Collection[T any] struct {
	mu     sync.RWMutex
	desc   Descriptor[T]
	items  []T
	logger *slog.Logger
}

// NewCollection creates a collection seeded with the given records.
func NewCollection[T any](desc Descriptor[T], seed []T, logger *slog.Logger) *Collection[T] {
	if logger == nil {
		logger = slog.Default()
	}
	items := make([]T, len(seed))
	copy(items, seed)
	return &Collection[T]{desc: desc, items: items, logger: logger}
}

// Len returns the number of records in the collection.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// All returns a copy of the backing collection in insertion order.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Get returns the record with the given id.
func (c *Collection[T]) Get(id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.items {
		if c.desc.ID(&c.items[i]) == id {
			return c.items[i], nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// List returns the records matching the query. Every active filter must
// match, and the search text (if any) must be a case-insensitive substring
// of at least one searchable field. Result order is insertion order unless
// the query carries a sort.
func (c *Collection[T]) List(q Query) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.items))
	for i := range c.items {
		if c.matches(&c.items[i], q) {
			out = append(out, c.items[i])
		}
	}

	if q.Sort != nil {
		c.sortBy(out, *q.Sort, nil)
	}
	return out
}

// Create validates required fields, assigns a fresh identifier and inserts
// the record. A missing required field surfaces ErrInvalidInput and leaves
// the collection unchanged.
func (c *Collection[T]) Create(rec T) (T, error) {
	var zero T
	for _, name := range c.desc.Required {
		accessor, ok := c.desc.Fields[name]
		if !ok {
			continue
		}
		if strings.TrimSpace(accessor(&rec)) == "" {
			c.logger.Debug("create rejected", "entity", c.desc.Name, "missing", name)
			return zero, ErrInvalidInput
		}
	}

	if c.desc.ID(&rec) == "" {
		c.desc.SetID(&rec, uuid.NewString())
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.desc.Prepend {
		c.items = append([]T{rec}, c.items...)
	} else {
		c.items = append(c.items, rec)
	}
	return rec, nil
}

// Update applies the mutation to the record matching id and returns the
// updated record.
func (c *Collection[T]) Update(id string, apply func(*T)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.desc.ID(&c.items[i]) == id {
			apply(&c.items[i])
			return c.items[i], nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// Remove deletes the record matching id.
func (c *Collection[T]) Remove(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.desc.ID(&c.items[i]) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// RemoveAll deletes every record whose id is in the given set and returns
// the number removed.
func (c *Collection[T]) RemoveAll(ids map[string]bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.items[:0]
	removed := 0
	for i := range c.items {
		if ids[c.desc.ID(&c.items[i])] {
			removed++
			continue
		}
		kept = append(kept, c.items[i])
	}
	c.items = kept
	return removed
}

// Field returns the stringified value of the named field, or the empty
// string when the descriptor doesn't define it.
func (c *Collection[T]) Field(rec *T, name string) string {
	if accessor, ok := c.desc.Fields[name]; ok {
		return accessor(rec)
	}
	return ""
}

func (c *Collection[T]) matches(rec *T, q Query) bool {
	for name, want := range q.Filters {
		if want == "" || want == FilterAll {
			continue
		}
		accessor, ok := c.desc.Fields[name]
		if !ok {
			continue
		}
		if !strings.EqualFold(accessor(rec), want) {
			return false
		}
	}

	if q.DateRange != nil {
		accessor, ok := c.desc.Dates[q.DateRange.Field]
		if ok {
			v := accessor(rec)
			if !q.DateRange.From.IsZero() && v.Before(q.DateRange.From) {
				return false
			}
			if !q.DateRange.To.IsZero() && v.After(q.DateRange.To) {
				return false
			}
		}
	}

	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		found := false
		for _, name := range c.desc.Searchable {
			accessor, ok := c.desc.Fields[name]
			if !ok {
				continue
			}
			if strings.Contains(strings.ToLower(accessor(rec)), needle) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// sortBy stably sorts records by the stringified field. A resolve function,
// when given, maps the raw field value before comparison (used for sorting
// tasks by assignee display name). Missing values compare as empty strings.
func (c *Collection[T]) sortBy(recs []T, s Sort, resolve func(string) string) {
	key := func(rec *T) string {
		v := ""
		if accessor, ok := c.desc.Fields[s.Field]; ok {
			v = accessor(rec)
		}
		if resolve != nil {
			v = resolve(v)
		}
		return strings.ToLower(v)
	}
	sort.SliceStable(recs, func(i, j int) bool {
		if s.Ascending {
			return key(&recs[i]) < key(&recs[j])
		}
		return key(&recs[i]) > key(&recs[j])
	})
}

// SortSlice sorts an already-derived slice of records by the descriptor
// field named in s, optionally resolving values first. Exposed for callers
// that sort sibling groups independently.
func (c *Collection[T]) SortSlice(recs []T, s Sort, resolve func(string) string) {
	c.sortBy(recs, s, resolve)
}
