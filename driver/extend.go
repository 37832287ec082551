package driver

import (
	"strings"

	"github.com/emirpasic/gods/sets/treeset"

	"github.com/glazari/javaimports/classpath"
	"github.com/glazari/javaimports/hierarchy"
	"github.com/glazari/javaimports/scope"
	"github.com/glazari/javaimports/selector"
)

// ExtendResult is spec §6's exposed extend() outcome: the orphan's
// residual unresolved set and whether its superclass chain was fully
// walked.
type ExtendResult struct {
	Owner         string
	Unresolved    *treeset.Set
	FullyExtended bool
}

func splitDots(s string) []string {
	return strings.Split(s, ".")
}

// BuildHierarchy assembles a project-wide hierarchy.Hierarchy from every
// top-level class declared across scans (siblings(file) in spec §6's
// consumed interface, already reduced to CachedClass summaries) plus any
// externally indexed dependency classes. Project classes are added after
// classpath classes and are keyed by CachedClass.Selector, which is the
// simple class name (see FromScanResult); a project class therefore
// replaces only a dependency class registered under that same key.
func BuildHierarchy(scans []*CachedScan, classpathIdx *classpath.Index) *hierarchy.Hierarchy {
	h := hierarchy.New()

	if classpathIdx != nil {
		classpath.Populate(h, classpathIdx)
	}

	for _, scan := range scans {
		for _, class := range scan.Classes {
			sel := selector.New(splitDots(class.Selector)...)

			var super *selector.Selector
			if class.Superclass != "" {
				super = selector.New(splitDots(class.Superclass)...)
			}

			entity := scope.NewClassEntity(
				scope.Identifier(class.Selector),
				scope.Public,
				false,
				super,
			)
			for _, m := range class.Members {
				entity.AddMember(scope.Identifier(m))
			}

			h.Add(sel, entity)
		}
	}

	return h
}

// ExtendOrphan resolves a single CachedOrphan against h (spec §6's
// extend(orphan, hierarchy)).
func ExtendOrphan(co CachedOrphan, h *hierarchy.Hierarchy) ExtendResult {
	ownerSel := selector.New(splitDots(co.Owner)...)

	var super *selector.Selector
	if co.Superclass != "" {
		super = selector.New(splitDots(co.Superclass)...)
	}

	unresolved := treeset.NewWithStringComparator()
	for _, u := range co.Unresolved {
		unresolved.Add(u)
	}

	orphan := hierarchy.NewOrphanClass(ownerSel, unresolved, super)
	extended := hierarchy.Extend(orphan, h)

	return ExtendResult{
		Owner:         co.Owner,
		Unresolved:    extended.NotYetResolved(),
		FullyExtended: extended.IsFullyExtended(),
	}
}

// ExtendAll runs ExtendOrphan over every orphan a file scan produced.
func ExtendAll(scan *CachedScan, h *hierarchy.Hierarchy) []ExtendResult {
	results := make([]ExtendResult, len(scan.Orphans))
	for i, o := range scan.Orphans {
		results[i] = ExtendOrphan(o, h)
	}
	return results
}

// ClassesInPackage is spec §6's consumed classesInPackage(pkg): the set
// of top-level class names declared across every sibling scan of a
// package, keyed by their simple (undotted) name.
func ClassesInPackage(scans []*CachedScan) *treeset.Set {
	names := treeset.NewWithStringComparator()
	for _, scan := range scans {
		for _, class := range scan.Classes {
			segs := splitDots(class.Selector)
			names.Add(segs[len(segs)-1])
		}
	}
	return names
}
