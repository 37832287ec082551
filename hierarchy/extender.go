package hierarchy

import (
	"github.com/emirpasic/gods/sets/treeset"
)

// Extend repeatedly looks up orphan's next superclass in h, subtracting
// that parent's members from orphan's unresolved set and replacing
// nextSuperclass with the parent's own superclass selector, until the
// chain is fully consumed or a link is missing (spec §4.3). It mutates
// and also returns orphan so callers can chain the result.
//
// Termination: a visited-selector set guards against cyclic inheritance
// claims, and the loop never runs more than h.Size()+1 hops (spec
// §4.3, §8): every hop either resolves a selector not yet visited (at
// most Size() of those) or finds the cycle guard has already seen it,
// which stops the loop in that same iteration.
func Extend(orphan *OrphanClass, h *Hierarchy) *OrphanClass {
	visited := treeset.NewWithStringComparator()
	maxHops := h.Size() + 1

	for hop := 0; hop < maxHops; hop++ {
		next := orphan.NextSuperclass()
		if next == nil {
			return orphan // fully extended
		}

		key := next.String()
		if visited.Contains(key) {
			// Cycle guard tripped: stop here, nextSuperclass stays set so
			// IsFullyExtended() correctly reports "partially extended".
			return orphan
		}
		visited.Add(key)

		parent, ok := h.Lookup(next)
		if !ok {
			return orphan // hierarchy miss: partially extended, link stands
		}

		orphan.advance(parent.Members(), parent.Superclass())
	}

	return orphan
}

// ResolveUsing additionally subtracts an externally supplied identifier
// set (e.g. names declared in the same package but outside the file)
// from orphan's unresolved set. Independent of superclass extension and
// may be called in any order (spec §4.3's Resolution API).
func ResolveUsing(orphan *OrphanClass, names *treeset.Set) *OrphanClass {
	orphan.resolveUsing(names)
	return orphan
}
