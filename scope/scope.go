package scope

import (
	"github.com/emirpasic/gods/sets/treeset"
)

// Scope is a lexical namespace: a mapping from Identifier to Entity plus
// an optional parent link, and a mutable set of identifiers referenced
// within it that remained unresolved when it was closed (spec §3).
// Scopes form a tree rooted at the compilation unit's package scope.
type Scope struct {
	parent     *Scope
	bindings   map[Identifier]Entity
	unresolved *treeset.Set
}

// NewScope creates a child scope of parent. parent may be nil only for
// the package (root) scope.
func NewScope(parent *Scope) *Scope {
	return &Scope{
		parent:     parent,
		bindings:   make(map[Identifier]Entity),
		unresolved: treeset.NewWithStringComparator(),
	}
}

// Parent returns the enclosing scope, or nil for the package scope.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// Declare binds name to e in s. Each identifier is unique within a scope
// (spec §3's invariant): if name is already bound directly in s, Declare
// leaves the existing binding in place rather than overwriting it. This
// lets the scanner pre-declare every sibling member of a class body
// before scanning any of their bodies without a second declaration ever
// clobbering the first.
func (s *Scope) Declare(name Identifier, e Entity) {
	if _, exists := s.bindings[name]; !exists {
		s.bindings[name] = e
	}
}

// Lookup walks the scope stack innermost-first for name. A child scope
// shadows a parent's binding of the same name (spec §3).
func (s *Scope) Lookup(name Identifier) (Entity, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if e, ok := cur.bindings[name]; ok {
			return e, true
		}
	}
	return nil, false
}

// LocalLookup looks up name only in s itself, ignoring parents.
func (s *Scope) LocalLookup(name Identifier) (Entity, bool) {
	e, ok := s.bindings[name]
	return e, ok
}

// Resolve looks name up against the scope stack. A hit consumes the
// reference and returns true. A miss adds name to s's own unresolved set
// and returns false (spec §4.1, "Usage sites").
func (s *Scope) Resolve(name Identifier) bool {
	if _, ok := s.Lookup(name); ok {
		return true
	}
	s.unresolved.Add(string(name))
	return false
}

// MarkUnresolved records name as unresolved in s directly, bypassing a
// lookup, for callers that already know a name could not be resolved.
func (s *Scope) MarkUnresolved(name Identifier) {
	s.unresolved.Add(string(name))
}

// Unresolved returns a snapshot of the identifiers unresolved directly
// within s (not descendants) at the time of the call.
func (s *Scope) Unresolved() *treeset.Set {
	return treeset.NewWithStringComparator(s.unresolved.Values()...)
}

// BubbleTo merges s's unresolved residuals into parent's unresolved set,
// except for names parent itself can already resolve — those may yet be
// satisfied by an outer binding rather than genuinely missing (spec
// §4.1, "Close scope").
func (s *Scope) BubbleTo(parent *Scope) {
	it := s.unresolved.Iterator()
	for it.Next() {
		name := Identifier(it.Value().(string))
		if _, ok := parent.Lookup(name); !ok {
			parent.unresolved.Add(string(name))
		}
	}
}

// Names returns every identifier directly declared in s (not ancestors,
// not descendants).
func (s *Scope) Names() []Identifier {
	names := make([]Identifier, 0, len(s.bindings))
	for name := range s.bindings {
		names = append(names, name)
	}
	return names
}
