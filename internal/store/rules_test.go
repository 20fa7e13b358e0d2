package store_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/workdeck/console/internal/store"
)

func TestRule_Operators(t *testing.T) {
	eq := store.Rule{Field: "status", Op: store.OpEquals, Value: "ativo"}
	require.True(t, eq.Matches("Ativo"))
	require.False(t, eq.Matches("Inativo"))

	ne := store.Rule{Field: "status", Op: store.OpNotEquals, Value: "ativo"}
	require.False(t, ne.Matches("Ativo"))
	require.True(t, ne.Matches("Inativo"))

	contains := store.Rule{Field: "note", Op: store.OpContains, Value: "RENOV"}
	require.True(t, contains.Matches("renovação em aberto"))
	require.False(t, contains.Matches("prospecção"))
}

func TestFirstMatch_EarlierRuleWins(t *testing.T) {
	c := store.NewCollection(itemDescriptor(), seedItems(), nil)
	rules := []store.Rule{
		{Field: "status", Op: store.OpEquals, Value: "Ativo", Color: "green"},
		{Field: "name", Op: store.OpContains, Value: "acme", Color: "red"},
	}

	rec, err := c.Get("1")
	require.NoError(t, err)

	// Both rules match record 1; the first one must win.
	color, ok := store.FirstMatch(c, rules, &rec)
	require.True(t, ok)
	require.Equal(t, "green", color)
}

func TestFirstMatch_NoMatch(t *testing.T) {
	c := store.NewCollection(itemDescriptor(), seedItems(), nil)
	rules := []store.Rule{
		{Field: "status", Op: store.OpEquals, Value: "Suspenso", Color: "gray"},
	}

	rec, err := c.Get("1")
	require.NoError(t, err)

	color, ok := store.FirstMatch(c, rules, &rec)
	require.False(t, ok)
	require.Empty(t, color)
}

func TestFirstMatch_UnknownFieldComparesAsEmpty(t *testing.T) {
	c := store.NewCollection(itemDescriptor(), seedItems(), nil)
	rules := []store.Rule{
		{Field: "bogus", Op: store.OpEquals, Value: "", Color: "blue"},
	}

	rec, err := c.Get("1")
	require.NoError(t, err)

	color, ok := store.FirstMatch(c, rules, &rec)
	require.True(t, ok)
	require.Equal(t, "blue", color)
}
