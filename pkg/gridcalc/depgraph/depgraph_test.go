package depgraph

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sorted(s []string) []string {
	out := append([]string(nil), s...)
	sort.Strings(out)
	return out
}

func TestAddNode(t *testing.T) {
	g := New()

	g.AddNode("A1")
	require.True(t, g.HasNode("A1"))
	assert.Equal(t, 1, g.NodeCount())
	assert.Empty(t, g.Dependencies("A1"))
	assert.Empty(t, g.Dependents("A1"))

	g.AddNode("A1") // idempotent
	assert.Equal(t, 1, g.NodeCount())
}

func TestAddEdge(t *testing.T) {
	t.Run("symmetry", func(t *testing.T) {
		g := New()
		g.AddEdge("B1", "A1")

		assert.Contains(t, g.Dependencies("B1"), "A1")
		assert.Contains(t, g.Dependents("A1"), "B1")
	})

	t.Run("implicit node creation", func(t *testing.T) {
		g := New()
		g.AddEdge("x", "y")
		assert.True(t, g.HasNode("x"))
		assert.True(t, g.HasNode("y"))
		assert.Equal(t, 2, g.NodeCount())
	})

	t.Run("edges form a set", func(t *testing.T) {
		g := New()
		g.AddEdge("a", "b")
		g.AddEdge("a", "b")
		assert.Len(t, g.Dependencies("a"), 1)
	})

	t.Run("self-loop permitted", func(t *testing.T) {
		g := New()
		g.AddEdge("a", "a")
		assert.Contains(t, g.Dependencies("a"), "a")
		assert.Contains(t, g.Dependents("a"), "a")
	})
}

func TestRemoveEdge(t *testing.T) {
	g := New()
	g.AddEdge("a", "b")
	g.AddEdge("a", "c")

	g.RemoveEdge("a", "b")
	assert.Equal(t, []string{"c"}, g.Dependencies("a"))
	assert.Empty(t, g.Dependents("b"))
	assert.True(t, g.HasNode("b"))

	g.RemoveEdge("a", "missing") // no-op
	g.RemoveEdge("missing", "a") // no-op
}

func TestRemoveNode(t *testing.T) {
	g := New()
	g.AddEdge("b", "a")
	g.AddEdge("c", "a")
	g.AddEdge("a", "d")

	g.RemoveNode("a")

	require.False(t, g.HasNode("a"))
	for _, id := range []string{"b", "c", "d"} {
		assert.NotContains(t, g.Dependencies(id), "a")
		assert.NotContains(t, g.Dependents(id), "a")
	}

	g.RemoveNode("a") // no-op on absent node
}

func TestAdjacency(t *testing.T) {
	g := New()
	g.AddEdge("d1", "a")
	g.AddEdge("d1", "b")
	g.AddEdge("d1", "c")
	g.AddEdge("x", "d1")
	g.AddEdge("y", "d1")

	if diff := cmp.Diff([]string{"a", "b", "c"}, sorted(g.Dependencies("d1"))); diff != "" {
		t.Errorf("dependencies mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"x", "y"}, sorted(g.Dependents("d1"))); diff != "" {
		t.Errorf("dependents mismatch (-want +got):\n%s", diff)
	}
}
