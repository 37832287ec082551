package driver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Mirrors scanner's own in-file inheritance-chain scenario, but through
// the driver's flattened CachedScan/CachedClass/CachedOrphan shapes, the
// way a cache hit would hand them back.
func TestBuildHierarchyAndExtendOrphan(t *testing.T) {
	scan := &CachedScan{
		File: "Example.java",
		Classes: []CachedClass{
			{Selector: "Parent", Members: []string{"g", "h", "a"}},
			{Selector: "Child", Superclass: "Parent", Members: []string{"c", "useInherited"}},
			{Selector: "OtherChild", Superclass: "Child", Members: []string{"useMore"}},
		},
		Orphans: []CachedOrphan{
			{Owner: "Child", Superclass: "Parent", Unresolved: []string{"g", "h", "a", "b", "n"}},
			{Owner: "OtherChild", Superclass: "Child", Unresolved: []string{"c", "useInherited", "n"}},
		},
	}

	h := BuildHierarchy([]*CachedScan{scan}, nil)

	results := ExtendAll(scan, h)
	require.Len(t, results, 2)

	for _, r := range results {
		require.True(t, r.FullyExtended)
		require.False(t, r.Unresolved.Contains("g"))
		require.False(t, r.Unresolved.Contains("h"))
		require.False(t, r.Unresolved.Contains("a"))
		require.False(t, r.Unresolved.Contains("c"))
		require.False(t, r.Unresolved.Contains("useInherited"))
	}

	// b and n are genuinely unresolved -- neither Parent nor Child
	// declares them.
	require.True(t, results[0].Unresolved.Contains("b"))
	require.True(t, results[0].Unresolved.Contains("n"))
}

func TestClassesInPackage(t *testing.T) {
	scans := []*CachedScan{
		{Classes: []CachedClass{{Selector: "Foo"}, {Selector: "Bar"}}},
		{Classes: []CachedClass{{Selector: "Baz"}}},
	}

	names := ClassesInPackage(scans)
	require.True(t, names.Contains("Foo"))
	require.True(t, names.Contains("Bar"))
	require.True(t, names.Contains("Baz"))
	require.Equal(t, 3, names.Size())
}
