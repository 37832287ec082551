package hierarchy

import (
	"testing"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/stretchr/testify/require"

	"github.com/glazari/javaimports/scope"
	"github.com/glazari/javaimports/selector"
)

func classEntity(name string, super *selector.Selector, members ...string) *scope.ClassEntity {
	ce := scope.NewClassEntity(scope.Identifier(name), scope.Public, false, super)
	for _, m := range members {
		ce.AddMember(scope.Identifier(m))
	}
	return ce
}

func TestExtendFullChain(t *testing.T) {
	h := New()
	h.Add(selector.New("Parent"), classEntity("Parent", nil, "g", "h", "a"))
	h.Add(selector.New("Child"), classEntity("Child", selector.New("Parent"), "c"))

	unresolved := treeset.NewWithStringComparator("g", "h", "a", "b", "n")
	orphan := NewOrphanClass(selector.New("Child"), unresolved, selector.New("Parent"))

	result := Extend(orphan, h)

	require.True(t, result.IsFullyExtended())
	remaining := result.NotYetResolved()
	require.False(t, remaining.Contains("g"))
	require.False(t, remaining.Contains("h"))
	require.False(t, remaining.Contains("a"))
	require.True(t, remaining.Contains("b"))
	require.True(t, remaining.Contains("n"))
}

func TestExtendMultiHopChain(t *testing.T) {
	h := New()
	h.Add(selector.New("Grandparent"), classEntity("Grandparent", nil, "x"))
	h.Add(selector.New("Parent"), classEntity("Parent", selector.New("Grandparent"), "y"))
	h.Add(selector.New("Child"), classEntity("Child", selector.New("Parent"), "z"))

	unresolved := treeset.NewWithStringComparator("x", "y", "leftover")
	orphan := NewOrphanClass(selector.New("Child"), unresolved, selector.New("Parent"))

	result := Extend(orphan, h)

	require.True(t, result.IsFullyExtended())
	remaining := result.NotYetResolved()
	require.Equal(t, []interface{}{"leftover"}, remaining.Values())
}

func TestExtendStopsOnHierarchyMiss(t *testing.T) {
	h := New() // empty: Unknown is never registered

	unresolved := treeset.NewWithStringComparator("a", "b")
	orphan := NewOrphanClass(selector.New("Child"), unresolved, selector.New("Unknown"))

	result := Extend(orphan, h)

	require.False(t, result.IsFullyExtended())
	require.Equal(t, "Unknown", result.NextSuperclass().String())
	remaining := result.NotYetResolved()
	require.True(t, remaining.Contains("a"))
	require.True(t, remaining.Contains("b"))
}

func TestExtendTerminatesOnCycle(t *testing.T) {
	h := New()
	// A extends B, B extends A: a malformed but possible claim.
	h.Add(selector.New("A"), classEntity("A", selector.New("B")))
	h.Add(selector.New("B"), classEntity("B", selector.New("A")))

	orphan := NewOrphanClass(
		selector.New("A"),
		treeset.NewWithStringComparator("z"),
		selector.New("B"),
	)

	result := Extend(orphan, h)

	require.False(t, result.IsFullyExtended())
	require.True(t, result.NotYetResolved().Contains("z"))
}

func TestExtendIsMonotonic(t *testing.T) {
	h := New()
	h.Add(selector.New("Parent"), classEntity("Parent", nil, "m"))

	before := treeset.NewWithStringComparator("m", "keep")
	orphan := NewOrphanClass(selector.New("Child"), before, selector.New("Parent"))

	after := Extend(orphan, h).NotYetResolved()

	it := after.Iterator()
	for it.Next() {
		require.True(t, before.Contains(it.Value()))
	}
}

func TestExtendResolvesFullyQualifiedSuperclass(t *testing.T) {
	h := New()
	// Registered under its whole dotted path, as classpath.Populate
	// registers every dependency-artifact class.
	h.Add(selector.New("com", "acme", "Base"), classEntity("Base", nil, "helper"))

	unresolved := treeset.NewWithStringComparator("helper", "leftover")
	orphan := NewOrphanClass(
		selector.New("Child"),
		unresolved,
		selector.New("com", "acme", "Base"),
	)

	result := Extend(orphan, h)

	require.True(t, result.IsFullyExtended())
	remaining := result.NotYetResolved()
	require.False(t, remaining.Contains("helper"))
	require.True(t, remaining.Contains("leftover"))
}

func TestResolveUsingIsIndependentOfExtension(t *testing.T) {
	h := New()
	orphan := NewOrphanClass(
		selector.New("Child"),
		treeset.NewWithStringComparator("a", "b"),
		nil,
	)

	ResolveUsing(orphan, treeset.NewWithStringComparator("a"))

	require.True(t, orphan.IsFullyExtended())
	require.False(t, orphan.NotYetResolved().Contains("a"))
	require.True(t, orphan.NotYetResolved().Contains("b"))
}
