package hierarchy

import (
	"strings"

	"github.com/glazari/javaimports/scope"
	"github.com/glazari/javaimports/selector"
)

// Hierarchy is a read-through keyed lookup from ClassSelector to
// ClassEntity (spec §4.4). It is the union of classes parsed from the
// project and class shapes derived from external dependency artifacts;
// either source may be partial, and a miss is a normal outcome. The
// hierarchy is read-only during extension (spec §5): build it fully,
// then hand out shared references to concurrent ClassExtender calls.
type Hierarchy struct {
	classes map[string]*scope.ClassEntity
}

// New returns an empty Hierarchy.
func New() *Hierarchy {
	return &Hierarchy{classes: make(map[string]*scope.ClassEntity)}
}

// Add registers a known class under its full selector path. Callers
// populate a Hierarchy once, from project sources and dependency
// artifact indexes (spec §6), before sharing it across concurrent
// extender calls.
func (h *Hierarchy) Add(sel *selector.Selector, entity *scope.ClassEntity) {
	h.classes[sel.String()] = entity
}

// Lookup resolves sel to its ClassEntity. An exact selector match
// (segment-for-segment) returns the corresponding entity directly — this
// is checked first, since every dependency-artifact class and every
// fully-qualified superclass selector is registered under its whole
// dotted path. An exact hit is returned whether or not the enclosing
// classes declare the nested segments as members. Failing that, Lookup
// walks from the first segment, requiring each further segment to be a
// declared member of its immediately enclosing class and registered
// under its dotted path; since the walk's final path is the selector
// itself, a selector without an exact hit misses.
// Lookup is case-sensitive throughout.
func (h *Hierarchy) Lookup(sel *selector.Selector) (*scope.ClassEntity, bool) {
	if exact, ok := h.classes[sel.String()]; ok {
		return exact, true
	}

	segments := sel.Segments()

	current, ok := h.classes[segments[0]]
	if !ok {
		return nil, false
	}

	path := segments[0]
	for _, seg := range segments[1:] {
		if !current.HasMember(scope.Identifier(seg)) {
			return nil, false
		}

		path = path + "." + seg
		next, ok := h.classes[path]
		if !ok {
			return nil, false
		}
		current = next
	}

	return current, true
}

// Size returns the number of classes registered in the hierarchy. The
// extender uses this to bound its cycle-guarded hop count (spec §4.3).
func (h *Hierarchy) Size() int {
	return len(h.classes)
}

// CandidatesForSimpleName returns every registered selector (rendered
// as a dotted string) whose final segment equals name. Import
// resolution from a bare identifier to a fully-qualified class is
// inherently one-to-many -- disambiguating a multi-candidate result is
// explicitly left to the driver's policy, not the core (spec §1's
// Non-goals).
func (h *Hierarchy) CandidatesForSimpleName(name string) []string {
	var out []string
	for key := range h.classes {
		if key == name || strings.HasSuffix(key, "."+name) {
			out = append(out, key)
		}
	}
	return out
}
