package scanner

import (
	"strings"

	"github.com/glazari/javaimports/astview"
	"github.com/glazari/javaimports/scope"
)

// visibilityAndStatic inspects decl's "modifiers" child (if any) for the
// access-level and static keywords. astview.Node only surfaces named
// children, and modifier keywords are anonymous grammar tokens, so this
// reads the modifiers node's raw source text instead of walking its
// children — simple and sufficient, since Java's three access keywords
// are distinct and non-overlapping (package visibility has no keyword).
func visibilityAndStatic(decl astview.Node) (scope.Visibility, bool) {
	mods := decl.ChildByField("modifiers")
	if mods == nil {
		mods = childOfKind(decl, astview.KindModifiers)
	}
	if mods == nil {
		return scope.PackageVisible, false
	}
	text := mods.Content()
	static := strings.Contains(text, "static")

	switch {
	case strings.Contains(text, "private"):
		return scope.Private, static
	case strings.Contains(text, "protected"):
		return scope.Protected, static
	case strings.Contains(text, "public"):
		return scope.Public, static
	default:
		return scope.PackageVisible, static
	}
}

// declareTypeParameters binds each type parameter of a type_parameters
// node into target (spec §4.1: "bind in the declaration's own scope").
func declareTypeParameters(target *scope.Scope, typeParams astview.Node) {
	if typeParams == nil {
		return
	}
	for _, tp := range typeParams.NamedChildren() {
		if tp.Kind() != astview.KindTypeParameter {
			continue
		}
		name := tp.ChildByField("name")
		if name == nil {
			name = childOfKind(tp, astview.KindTypeIdentifier)
		}
		if name == nil {
			continue
		}
		target.Declare(scope.Identifier(name.Content()), scope.NewTypeParameterEntity(scope.Identifier(name.Content())))
	}
}

// memberNames extracts the declared names of a class-body member (method,
// constructor, every declarator of a field, or nested type), or nil if n
// is not a recognized member shape.
func memberNames(n astview.Node) []string {
	switch n.Kind() {
	case astview.KindMethodDecl, astview.KindConstructorDecl,
		astview.KindClassDecl, astview.KindInterfaceDecl,
		astview.KindEnumDecl, astview.KindAnnotationDecl, astview.KindRecordDecl:
		if name := n.ChildByField("name"); name != nil {
			return []string{name.Content()}
		}
	case astview.KindFieldDecl:
		var names []string
		for _, c := range n.NamedChildren() {
			if c.Kind() == astview.KindVariableDeclarator {
				if name := c.ChildByField("name"); name != nil {
					names = append(names, name.Content())
				}
			}
		}
		return names
	}
	return nil
}
