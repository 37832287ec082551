// Package selector implements ClassSelector (spec §4.2): a non-empty,
// head-first linked chain of name segments denoting a dotted qualified
// name such as "com.acme.Widget", with support for discarding
// type-argument fragments when built from a parsed type reference.
package selector

import "strings"

// Selector is a non-empty linked chain of segments. It is constructed
// once and never mutated afterwards — constructors only ever append,
// so the chain can never become cyclic (spec §9).
type Selector struct {
	head string
	tail *Selector
}

// TypeRefNode is the minimal shape of a parsed type-reference AST node
// that Of needs. Concrete AST packages (e.g. astview) implement this
// directly on their node type; it lets this package stay independent of
// any particular parser's node representation.
type TypeRefNode interface {
	// Kind reports whether this node is a "parametrized type" (generic
	// instantiation, e.g. Pkg.Class<T, R>), a qualified/dotted name, or a
	// plain simple name.
	Kind() TypeRefKind
	// RawType returns the underlying type being parametrized. Only valid
	// when Kind() == ParametrizedType.
	RawType() TypeRefNode
	// Qualifier returns the left-hand side of a dotted name (e.g. "Pkg"
	// in "Pkg.Class"). Only valid when Kind() == QualifiedName.
	Qualifier() TypeRefNode
	// SimpleName returns this node's own trailing name segment. Valid
	// for QualifiedName (the right-hand segment) and SimpleName.
	SimpleName() string
}

// TypeRefKind enumerates the three shapes Of needs to destructure.
type TypeRefKind int

const (
	SimpleName TypeRefKind = iota
	QualifiedName
	ParametrizedType
)

// New builds a Selector from a non-empty list of segments, head first.
func New(segments ...string) *Selector {
	if len(segments) == 0 {
		panic("selector: New requires at least one segment")
	}
	return build(segments)
}

func build(segments []string) *Selector {
	s := &Selector{head: segments[len(segments)-1]}
	for i := len(segments) - 2; i >= 0; i-- {
		s = &Selector{head: segments[i], tail: s}
	}
	return s
}

// Of constructs a Selector from a parsed type-reference node, discarding
// any type-argument subtrees: on encountering a ParametrizedType node it
// descends into the underlying raw type and continues (spec §4.2).
func Of(node TypeRefNode) *Selector {
	segments := flatten(node, nil)
	return build(segments)
}

func flatten(node TypeRefNode, acc []string) []string {
	switch node.Kind() {
	case ParametrizedType:
		return flatten(node.RawType(), acc)
	case QualifiedName:
		acc = flatten(node.Qualifier(), acc)
		return append(acc, node.SimpleName())
	default: // SimpleName
		return append(acc, node.SimpleName())
	}
}

// Head returns the leftmost segment.
func (s *Selector) Head() string {
	return s.head
}

// Tail returns the selector formed by dropping the leftmost segment, or
// nil if s has only one segment.
func (s *Selector) Tail() *Selector {
	return s.tail
}

// Len returns the number of segments in the chain.
func (s *Selector) Len() int {
	n := 0
	for cur := s; cur != nil; cur = cur.tail {
		n++
	}
	return n
}

// Segments returns the chain's segments in order.
func (s *Selector) Segments() []string {
	segs := make([]string, 0, s.Len())
	for cur := s; cur != nil; cur = cur.tail {
		segs = append(segs, cur.head)
	}
	return segs
}

// Equal reports whether two selectors denote the same segment sequence.
func (s *Selector) Equal(other *Selector) bool {
	a, b := s, other
	for a != nil && b != nil {
		if a.head != b.head {
			return false
		}
		a, b = a.tail, b.tail
	}
	return a == nil && b == nil
}

// String renders the selector using "." separators, e.g. "com.acme.Widget".
func (s *Selector) String() string {
	var b strings.Builder
	for cur := s; cur != nil; cur = cur.tail {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(cur.head)
	}
	return b.String()
}
