package scope

import (
	"github.com/emirpasic/gods/sets/treeset"

	"github.com/glazari/javaimports/selector"
)

// Visibility is one of the language's four access levels.
type Visibility int

const (
	Public Visibility = iota
	Protected
	PackageVisible
	Private
)

// EntityKind tags which concrete shape an Entity carries. Per spec §9
// ("Inheritance in the entity model") this models the source's
// interface-plus-concrete-class pairs as an explicit tagged variant
// instead of dynamic dispatch.
type EntityKind int

const (
	KindClass EntityKind = iota
	KindMethod
	KindVariable
	KindTypeParameter
	KindPackage
)

// Entity is a declared name: a variable, method, class, or type
// parameter (spec §3). Every concrete entity kind below implements this
// plus its own kind-specific accessors.
type Entity interface {
	Name() Identifier
	Kind() EntityKind
	Visibility() Visibility
	Static() bool
}

type base struct {
	name       Identifier
	visibility Visibility
	static     bool
}

func (b base) Name() Identifier       { return b.name }
func (b base) Visibility() Visibility { return b.visibility }
func (b base) Static() bool           { return b.static }

// ClassEntity augments Entity with its declared superclass selector (nil
// for classes with no explicit parent) and the set of member names
// visible to subclasses (spec §3). members() is closed over the class's
// own declarations only, never transitively over its parents — extending
// across the superclass chain is ClassExtender's job, not this type's.
type ClassEntity struct {
	base
	scope      *Scope
	superclass *selector.Selector
	members    *treeset.Set
}

// NewClassEntity constructs a ClassEntity. superclass may be nil.
func NewClassEntity(
	name Identifier,
	visibility Visibility,
	static bool,
	superclass *selector.Selector,
) *ClassEntity {
	return &ClassEntity{
		base:       base{name, visibility, static},
		superclass: superclass,
		members:    treeset.NewWithStringComparator(),
	}
}

func (c *ClassEntity) Kind() EntityKind { return KindClass }

// Scope returns the class body's own scope, or nil if it has not been
// attached yet (the scanner attaches it when it opens the class body,
// before scanning the members).
func (c *ClassEntity) Scope() *Scope { return c.scope }

func (c *ClassEntity) SetScope(s *Scope) { c.scope = s }

// Superclass returns the class's declared superclass selector, or nil.
func (c *ClassEntity) Superclass() *selector.Selector { return c.superclass }

// SetSuperclass updates the declared superclass selector. The extender
// does not use it: it tracks its progress up a chain on the OrphanClass,
// leaving the hierarchy's ClassEntity values unchanged.
func (c *ClassEntity) SetSuperclass(s *selector.Selector) { c.superclass = s }

// AddMember records name as a member visible to subclasses. Callers are
// responsible for only calling this for non-private declarations (spec
// §3's "public, protected, and package-visible non-private
// declarations").
func (c *ClassEntity) AddMember(name Identifier) {
	c.members.Add(string(name))
}

// Members returns the set of member identifier names visible to
// subclasses.
func (c *ClassEntity) Members() *treeset.Set {
	return c.members
}

func (c *ClassEntity) HasMember(name Identifier) bool {
	return c.members.Contains(string(name))
}

// MethodEntity is a declared method or constructor. Its parameters bind
// in its own fresh scope (spec §4.1).
type MethodEntity struct {
	base
	scope *Scope
}

func NewMethodEntity(name Identifier, visibility Visibility, static bool) *MethodEntity {
	return &MethodEntity{base: base{name, visibility, static}}
}

func (m *MethodEntity) Kind() EntityKind { return KindMethod }
func (m *MethodEntity) Scope() *Scope    { return m.scope }
func (m *MethodEntity) SetScope(s *Scope) { m.scope = s }

// VariableEntity is a declared local variable, field, or imported static
// member.
type VariableEntity struct {
	base
}

func NewVariableEntity(name Identifier, visibility Visibility, static bool) *VariableEntity {
	return &VariableEntity{base{name, visibility, static}}
}

func (v *VariableEntity) Kind() EntityKind { return KindVariable }

// TypeParameterEntity is a generic type parameter of a class or method,
// bound in the declaration's own scope (spec §4.1).
type TypeParameterEntity struct {
	base
}

func NewTypeParameterEntity(name Identifier) *TypeParameterEntity {
	return &TypeParameterEntity{base{name: name, visibility: Public}}
}

func (t *TypeParameterEntity) Kind() EntityKind { return KindTypeParameter }

// PackageEntity binds an imported single-type name with no body (spec
// §4.1's "Imports" declaration site). Static-member imports bind as
// VariableEntity instead.
type PackageEntity struct {
	base
}

func NewPackageEntity(name Identifier) *PackageEntity {
	return &PackageEntity{base{name: name, visibility: Public}}
}

func (p *PackageEntity) Kind() EntityKind { return KindPackage }
