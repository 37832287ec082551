package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glazari/javaimports/scope"
	"github.com/glazari/javaimports/selector"
)

func TestLookupExactMatch(t *testing.T) {
	h := New()
	ce := classEntity("Widget", nil)
	h.Add(selector.New("com", "acme", "Widget"), ce)

	got, ok := h.Lookup(selector.New("com", "acme", "Widget"))
	require.True(t, ok)
	require.Same(t, ce, got)
}

func TestLookupMissesUnknownSelector(t *testing.T) {
	h := New()
	_, ok := h.Lookup(selector.New("Nope"))
	require.False(t, ok)
}

func TestLookupIsCaseSensitive(t *testing.T) {
	h := New()
	h.Add(selector.New("Widget"), classEntity("Widget", nil))

	_, ok := h.Lookup(selector.New("widget"))
	require.False(t, ok)
}

func TestLookupNestedClassRequiresDeclaredMembership(t *testing.T) {
	h := New()
	outer := classEntity("Outer", nil, "Inner")
	inner := classEntity("Inner", nil)
	h.Add(selector.New("Outer"), outer)
	h.Add(selector.New("Outer", "Inner"), inner)

	got, ok := h.Lookup(selector.New("Outer", "Inner"))
	require.True(t, ok)
	require.Same(t, inner, got)
}

func TestLookupNestedClassMissesWithoutDeclaredMembership(t *testing.T) {
	h := New()
	// Outer is known but never declares Inner as a member, and
	// "Outer.Inner" itself was never registered as its own selector --
	// an exact match can't bail the membership walk out here.
	outer := classEntity("Outer", nil)
	h.Add(selector.New("Outer"), outer)

	_, ok := h.Lookup(selector.New("Outer", "Inner"))
	require.False(t, ok)
}

func TestLookupMissesWhenEnclosingClassUnknown(t *testing.T) {
	h := New()
	// Neither "Outer" nor "Outer.Inner" was ever registered.
	_, ok := h.Lookup(selector.New("Outer", "Inner"))
	require.False(t, ok)
}

func TestLookupReturnsEnclosingEntityForItsOwnSelector(t *testing.T) {
	h := New()
	outer := classEntity("Outer", nil, "Inner")
	h.Add(selector.New("Outer"), outer)

	got, ok := h.Lookup(selector.New("Outer"))
	require.True(t, ok)
	require.Equal(t, scope.Identifier("Outer"), got.Name())
}
