package scanner

import (
	"github.com/glazari/javaimports/astview"
	"github.com/glazari/javaimports/selector"
)

// typeRefNode adapts an astview.Node standing in type position (a
// type_identifier, scoped_type_identifier, or generic_type) to
// selector.TypeRefNode, so selector.Of can discard type-argument
// subtrees without the selector package importing astview (spec §4.2).
type typeRefNode struct {
	n astview.Node
}

func asTypeRef(n astview.Node) selector.TypeRefNode {
	return typeRefNode{n: n}
}

func (t typeRefNode) Kind() selector.TypeRefKind {
	switch t.n.Kind() {
	case astview.KindGenericType:
		return selector.ParametrizedType
	case astview.KindScopedIdentifier:
		return selector.QualifiedName
	default:
		return selector.SimpleName
	}
}

// RawType returns the node's underlying type, discarding the trailing
// type_arguments child of a generic_type.
func (t typeRefNode) RawType() selector.TypeRefNode {
	children := t.n.NamedChildren()
	if len(children) == 0 {
		return t
	}
	return typeRefNode{n: children[0]}
}

// Qualifier returns the left-hand side of a scoped (dotted) type name.
func (t typeRefNode) Qualifier() selector.TypeRefNode {
	children := t.n.NamedChildren()
	if len(children) < 2 {
		return t
	}
	return typeRefNode{n: children[0]}
}

func (t typeRefNode) SimpleName() string {
	if t.n.Kind() == astview.KindScopedIdentifier {
		children := t.n.NamedChildren()
		if len(children) > 0 {
			return children[len(children)-1].Content()
		}
	}
	return t.n.Content()
}

// selectorFromTypeNode builds a Selector from a node in type position,
// or nil if n is nil.
func selectorFromTypeNode(n astview.Node) *selector.Selector {
	if n == nil {
		return nil
	}
	return selector.Of(asTypeRef(n))
}

// typeArguments returns the generic_type's type_arguments child, if n is
// a generic_type and carries one, else nil.
func typeArguments(n astview.Node) astview.Node {
	if n.Kind() != astview.KindGenericType {
		return nil
	}
	children := n.NamedChildren()
	if len(children) < 2 {
		return nil
	}
	return children[1]
}
