// Package hierarchy implements ClassHierarchy and ClassExtender (spec
// §4.3-§4.4): a selector-keyed lookup of known classes, and the
// progressive superclass walk that shrinks an orphan class's
// unresolved-identifier set using member lists from its ancestors.
package hierarchy

import (
	"github.com/emirpasic/gods/sets/treeset"

	"github.com/glazari/javaimports/selector"
)

// OrphanClass pairs an owning class selector with its unresolved set and
// the next superclass link still to be consulted (spec §3). It is
// created by the scanner when it closes the scope of any class that
// declares a superclass, whether or not that superclass is declared in
// the same compilation unit, and is consumed by ClassExtender.
type OrphanClass struct {
	owner          *selector.Selector
	unresolved     *treeset.Set
	nextSuperclass *selector.Selector
}

// NewOrphanClass constructs an OrphanClass. unresolved is copied so the
// scanner's own scope state and the orphan's residual set evolve
// independently afterwards.
func NewOrphanClass(
	owner *selector.Selector,
	unresolved *treeset.Set,
	superclass *selector.Selector,
) *OrphanClass {
	return &OrphanClass{
		owner:          owner,
		unresolved:     treeset.NewWithStringComparator(unresolved.Values()...),
		nextSuperclass: superclass,
	}
}

// Owner returns the selector of the class this orphan belongs to.
func (o *OrphanClass) Owner() *selector.Selector {
	return o.owner
}

// NextSuperclass returns the superclass selector still to be resolved,
// or nil once the chain has been fully walked.
func (o *OrphanClass) NextSuperclass() *selector.Selector {
	return o.nextSuperclass
}

// IsFullyExtended reports whether the superclass chain has been
// completely consumed.
func (o *OrphanClass) IsFullyExtended() bool {
	return o.nextSuperclass == nil
}

// NotYetResolved returns a snapshot of the orphan's current residual set
// (spec §4.3, Observability).
func (o *OrphanClass) NotYetResolved() *treeset.Set {
	return treeset.NewWithStringComparator(o.unresolved.Values()...)
}

// resolveUsing subtracts an externally supplied identifier set from the
// orphan's unresolved set. Independent of superclass extension and may
// be called in any order (spec §4.3's Resolution API).
func (o *OrphanClass) resolveUsing(names *treeset.Set) {
	o.unresolved.Remove(names.Values()...)
}

// advance replaces nextSuperclass with parent and subtracts parent's
// members from unresolved. Each step can only remove identifiers
// (monotonic shrinkage, spec §8).
func (o *OrphanClass) advance(memberNames *treeset.Set, parent *selector.Selector) {
	o.unresolved.Remove(memberNames.Values()...)
	o.nextSuperclass = parent
}

// seal marks the chain fully consumed with no further link to resolve.
func (o *OrphanClass) seal() {
	o.nextSuperclass = nil
}
