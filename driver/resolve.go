package driver

import (
	"strings"

	"github.com/emirpasic/gods/sets/treeset"

	"github.com/glazari/javaimports/hierarchy"
)

// ImportDecision is one resolved (or unresolved) identifier from spec
// §1's "(c) emits the set of import declarations the file requires".
type ImportDecision struct {
	Identifier string
	Resolved   string
	Candidates []string
}

// isExcluded reports whether selector falls under one of the excluded
// package prefixes configured via JavaImportsExcludePackage (e.g. a
// package the project always star-imports, so javaimports should never
// propose a fully-qualified import from it).
func isExcluded(selector string, excludedPackages *treeset.Set) bool {
	if excludedPackages == nil || excludedPackages.Empty() {
		return false
	}
	lastDot := strings.LastIndex(selector, ".")
	if lastDot < 0 {
		return false
	}
	pkg := selector[:lastDot]
	it := excludedPackages.Iterator()
	for it.Next() {
		prefix := it.Value().(string)
		if pkg == prefix || strings.HasPrefix(pkg, prefix+".") {
			return true
		}
	}
	return false
}

// ResolveImports maps every name in unresolved to the fully-qualified
// class providing it, via h. A name already declared elsewhere in the
// same package needs no import and is skipped, as does any candidate
// under an excludedPackages prefix. Disambiguating between multiple
// equally qualified candidates is explicitly left to the driver rather
// than decided silently here (spec §1's Non-goals); callers inspect
// ImportDecision.Candidates when Resolved is empty.
func ResolveImports(
	unresolved *treeset.Set,
	h *hierarchy.Hierarchy,
	samePackage *treeset.Set,
	excludedPackages *treeset.Set,
) []ImportDecision {
	var decisions []ImportDecision

	it := unresolved.Iterator()
	for it.Next() {
		name := it.Value().(string)
		if samePackage != nil && samePackage.Contains(name) {
			continue
		}

		var candidates []string
		for _, c := range h.CandidatesForSimpleName(name) {
			if !isExcluded(c, excludedPackages) {
				candidates = append(candidates, c)
			}
		}

		decision := ImportDecision{Identifier: name, Candidates: candidates}
		if len(candidates) == 1 {
			decision.Resolved = candidates[0]
		}
		decisions = append(decisions, decision)
	}

	return decisions
}
