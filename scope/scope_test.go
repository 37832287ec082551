package scope

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeclareAndLookup(t *testing.T) {
	root := NewScope(nil)
	root.Declare("Foo", NewVariableEntity("Foo", Public, false))

	e, ok := root.Lookup("Foo")
	require.True(t, ok)
	require.Equal(t, Identifier("Foo"), e.Name())
}

func TestChildShadowsParent(t *testing.T) {
	root := NewScope(nil)
	root.Declare("x", NewVariableEntity("x", Public, false))

	child := NewScope(root)
	child.Declare("x", NewVariableEntity("x", Private, false))

	e, ok := child.Lookup("x")
	require.True(t, ok)
	require.Equal(t, Private, e.Visibility())

	outerE, _ := root.Lookup("x")
	require.Equal(t, Public, outerE.Visibility())
}

func TestDeclareFirstWins(t *testing.T) {
	s := NewScope(nil)
	s.Declare("f", NewVariableEntity("f", Public, false))
	s.Declare("f", NewVariableEntity("f", Private, true))

	e, _ := s.Lookup("f")
	require.Equal(t, Public, e.Visibility())
	require.False(t, e.Static())
}

func TestResolveMissRecordsUnresolved(t *testing.T) {
	s := NewScope(nil)
	require.False(t, s.Resolve("unknown"))
	require.True(t, s.Unresolved().Contains("unknown"))
}

func TestResolveHitDoesNotRecordUnresolved(t *testing.T) {
	s := NewScope(nil)
	s.Declare("known", NewVariableEntity("known", Public, false))
	require.True(t, s.Resolve("known"))
	require.False(t, s.Unresolved().Contains("known"))
}

func TestBubbleToSkipsNamesParentCanResolve(t *testing.T) {
	parent := NewScope(nil)
	parent.Declare("outer", NewVariableEntity("outer", Public, false))

	child := NewScope(parent)
	child.MarkUnresolved("outer") // a residual of child that parent can resolve
	child.Resolve("genuinelyMissing")

	child.BubbleTo(parent)

	require.False(t, parent.Unresolved().Contains("outer"))
	require.True(t, parent.Unresolved().Contains("genuinelyMissing"))
}

func TestDeclarationShadowingNoneLeavesOtherScopesUnchanged(t *testing.T) {
	root := NewScope(nil)
	sibling := NewScope(root)
	sibling.Resolve("n")

	other := NewScope(root)
	other.Resolve("m")

	root.Declare("n", NewVariableEntity("n", Public, false))

	// sibling's unresolved set was recorded before the declaration and is
	// a snapshot; re-resolving after the declaration now succeeds, but
	// other's unresolved set (a name unrelated to "n") must be untouched.
	require.True(t, other.Unresolved().Contains("m"))
	require.False(t, other.Unresolved().Contains("n"))
}
