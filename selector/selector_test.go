package selector

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeTypeRef struct {
	kind      TypeRefKind
	raw       *fakeTypeRef
	qualifier *fakeTypeRef
	name      string
}

func (f *fakeTypeRef) Kind() TypeRefKind    { return f.kind }
func (f *fakeTypeRef) RawType() TypeRefNode { return f.raw }
func (f *fakeTypeRef) Qualifier() TypeRefNode {
	return f.qualifier
}
func (f *fakeTypeRef) SimpleName() string { return f.name }

func simple(name string) *fakeTypeRef {
	return &fakeTypeRef{kind: SimpleName, name: name}
}

func qualified(qualifier *fakeTypeRef, name string) *fakeTypeRef {
	return &fakeTypeRef{kind: QualifiedName, qualifier: qualifier, name: name}
}

func parametrized(raw *fakeTypeRef) *fakeTypeRef {
	return &fakeTypeRef{kind: ParametrizedType, raw: raw}
}

func TestNewAndRendering(t *testing.T) {
	s := New("Pkg", "Class")
	require.Equal(t, "Pkg", s.Head())
	require.Equal(t, "Class", s.Tail().Head())
	require.Nil(t, s.Tail().Tail())
	require.Equal(t, 2, s.Len())
	require.Equal(t, "Pkg.Class", s.String())
}

func TestOfDropsTypeArguments(t *testing.T) {
	// Pkg.Class<T,R> -> Pkg.Class
	plain := qualified(simple("Pkg"), "Class")
	generic := parametrized(plain)

	require.True(t, Of(plain).Equal(Of(generic)))
	require.Equal(t, "Pkg.Class", Of(generic).String())
}

func TestOfInvariantUnderNestedTypeArguments(t *testing.T) {
	// Pkg.Outer<T>.Inner<R> style nesting: stripping parametrization at
	// any depth must not change the resulting selector.
	base := qualified(qualified(simple("Pkg"), "Outer"), "Inner")
	wrapped := parametrized(qualified(parametrized(qualified(simple("Pkg"), "Outer")), "Inner"))

	require.True(t, Of(base).Equal(Of(wrapped)))
}

func TestEqualityIsStructural(t *testing.T) {
	require.True(t, New("A", "B", "C").Equal(New("A", "B", "C")))
	require.False(t, New("A", "B").Equal(New("A", "B", "C")))
	require.False(t, New("A", "B").Equal(New("A", "X")))
}

func TestSegments(t *testing.T) {
	require.Equal(t, []string{"A", "B", "C"}, New("A", "B", "C").Segments())
}
