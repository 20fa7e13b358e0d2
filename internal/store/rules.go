package store

import "strings"

// Operator is a conditional rule comparison operator.
type Operator string

const (
	OpEquals    Operator = "equals"
	OpNotEquals Operator = "not_equals"
	OpContains  Operator = "contains"
)

// Rule is a declarative predicate+color pair used to highlight rows.
// Comparison is case-insensitive on the stringified field value.
type Rule struct {
	Field string
	Op    Operator
	Value string
	Color string
}

// Matches reports whether the rule matches the given field value.
func (r Rule) Matches(value string) bool {
	switch r.Op {
	case OpEquals:
		return strings.EqualFold(value, r.Value)
	case OpNotEquals:
		return !strings.EqualFold(value, r.Value)
	case OpContains:
		return strings.Contains(strings.ToLower(value), strings.ToLower(r.Value))
	}
	return false
}

// FirstMatch evaluates rules in order against the record's fields and
// returns the first matching rule's color. Ordered evaluation with
// short-circuit: earlier rules win.
func FirstMatch[T any](c *Collection[T], rules []Rule, rec *T) (string, bool) {
	for _, rule := range rules {
		if rule.Matches(c.Field(rec, rule.Field)) {
			return rule.Color, true
		}
	}
	return "", false
}
