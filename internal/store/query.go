package store

import "time"

// FilterAll is the sentinel filter value meaning "no constraint".
const FilterAll = "all"

// Sort describes a single-field sort order.
type Sort struct {
	Field     string
	Ascending bool
}

// DateRange constrains a named date field to [From, To]. Zero bounds are open.
type DateRange struct {
	Field string
	From  time.Time
	To    time.Time
}

// Query describes one derivation of the collection view: named categorical
// filters, a free-text search and an optional sort and date range.
type Query struct {
	Filters   map[string]string
	Search    string
	Sort      *Sort
	DateRange *DateRange
}

// FilterState holds a screen's ephemeral filter/search/sort state. It is not
// persisted; Clear resets every filter to FilterAll and empties the search.
type FilterState struct {
	names   []string
	filters map[string]string
	search  string
	sort    *Sort
	dates   *DateRange
}

// NewFilterState creates filter state with the given filter names, all set
// to FilterAll.
func NewFilterState(names ...string) *FilterState {
	fs := &FilterState{names: names}
	fs.Clear()
	return fs
}

// Set assigns a filter value. Unknown names are accepted; they simply never
// match a descriptor field and thus never constrain.
func (fs *FilterState) Set(name, value string) {
	fs.filters[name] = value
}

// SetSearch assigns the free-text search string.
func (fs *FilterState) SetSearch(s string) {
	fs.search = s
}

// SetSort assigns the sort descriptor. Passing nil removes the sort.
func (fs *FilterState) SetSort(sort *Sort) {
	fs.sort = sort
}

// SetDateRange assigns the date range constraint. Passing nil removes it.
func (fs *FilterState) SetDateRange(dr *DateRange) {
	fs.dates = dr
}

// Clear resets all filters to FilterAll, the search to empty and drops the
// sort and date range.
func (fs *FilterState) Clear() {
	fs.filters = make(map[string]string, len(fs.names))
	for _, name := range fs.names {
		fs.filters[name] = FilterAll
	}
	fs.search = ""
	fs.sort = nil
	fs.dates = nil
}

// Query materializes the current state as a Query.
func (fs *FilterState) Query() Query {
	filters := make(map[string]string, len(fs.filters))
	for k, v := range fs.filters {
		filters[k] = v
	}
	return Query{
		Filters:   filters,
		Search:    fs.search,
		Sort:      fs.sort,
		DateRange: fs.dates,
	}
}
