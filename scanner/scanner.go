// Package scanner implements the Unresolved-Identifier Scanner (spec
// §4.1): a single lexical-scope-aware traversal of a parsed compilation
// unit that populates a package scope, collects the set of identifiers
// that could not be resolved anywhere visible to their use site, and
// seals every class that declares a superclass into an OrphanClass value
// for the ClassExtender to pick up later.
package scanner

import (
	"github.com/emirpasic/gods/sets/treeset"

	"github.com/glazari/javaimports/astview"
	"github.com/glazari/javaimports/hierarchy"
	"github.com/glazari/javaimports/scope"
	"github.com/glazari/javaimports/selector"
)

// ScanResult is the scanner's output (spec §6's Driver interface).
type ScanResult struct {
	PackageScope *scope.Scope
	Unresolved   *treeset.Set
	Orphans      []*hierarchy.OrphanClass
}

type scanner struct {
	cancel    <-chan struct{}
	orphans   []*hierarchy.OrphanClass
	classPath []string
}

func selFromPath(path []string) *selector.Selector {
	return selector.New(path...)
}

// Scan traverses cu and produces a ScanResult. cancel, if non-nil, is
// polled at every scope open; a closed/ready channel aborts the
// traversal with Cancelled (spec §5, §7). A compilation unit carrying
// parser diagnostics is rejected outright with ParseFailure — the
// scanner never produces a partial result in that case.
func Scan(cu *astview.CompilationUnit, diagnostics []astview.Diagnostic, cancel <-chan struct{}) (*ScanResult, error) {
	if len(diagnostics) > 0 {
		return nil, &ParseFailure{Diagnostics: diagnostics}
	}

	s := &scanner{cancel: cancel}
	pkg := scope.NewScope(nil)

	for _, imp := range cu.Imports {
		declareImport(pkg, imp)
	}

	if cu.Root == nil {
		return &ScanResult{PackageScope: pkg, Unresolved: pkg.Unresolved(), Orphans: nil}, nil
	}

	topLevel := cu.Root.NamedChildren()

	// Pre-declare every top-level type so siblings (and, critically,
	// subclasses declared earlier in the file than their parent) can
	// forward-reference each other — the same rule spec §4.1 states for
	// a single class body's members, lifted to file scope (scenario 6).
	for _, decl := range topLevel {
		if decl.Kind().IsDefinition() {
			predeclareType(pkg, decl)
		}
	}

	for _, decl := range topLevel {
		if err := s.checkCancelled(); err != nil {
			return nil, err
		}
		if decl.Kind().IsDefinition() {
			if err := s.visitTypeDecl(pkg, decl); err != nil {
				return nil, err
			}
		}
	}

	return &ScanResult{
		PackageScope: pkg,
		Unresolved:   pkg.Unresolved(),
		Orphans:      s.orphans,
	}, nil
}

func (s *scanner) checkCancelled() error {
	if s.cancel == nil {
		return nil
	}
	select {
	case <-s.cancel:
		return &Cancelled{}
	default:
		return nil
	}
}

// declareImport binds a single-type or static-member import into the
// package scope. Wildcard imports (plain or static) contribute no
// bindings (spec §4.1's "Imports").
func declareImport(pkg *scope.Scope, imp astview.ImportDecl) {
	if imp.Wildcard || len(imp.Segments) == 0 {
		return
	}
	name := imp.Segments[len(imp.Segments)-1]
	if imp.Static {
		pkg.Declare(scope.Identifier(name), scope.NewVariableEntity(scope.Identifier(name), scope.Public, true))
		return
	}
	pkg.Declare(scope.Identifier(name), scope.NewPackageEntity(scope.Identifier(name)))
}

// predeclareType registers a top-level or nested type declaration's name
// in target, as a ClassEntity carrying its declared superclass selector
// (classes only — interfaces, enums, and annotation types have no
// extends clause the extender needs to walk). The entity's scope and
// member set are filled in later by visitTypeDecl.
func predeclareType(target *scope.Scope, decl astview.Node) {
	nameNode := decl.ChildByField("name")
	if nameNode == nil {
		return
	}
	name := scope.Identifier(nameNode.Content())
	if _, exists := target.LocalLookup(name); exists {
		return
	}

	visibility, static := visibilityAndStatic(decl)
	var super *selector.Selector
	if decl.Kind() == astview.KindClassDecl {
		super = superclassSelector(decl)
	}
	target.Declare(name, scope.NewClassEntity(name, visibility, static, super))
}

func superclassSelector(classDecl astview.Node) *selector.Selector {
	sc := classDecl.ChildByField("superclass")
	if sc == nil {
		return nil
	}
	children := sc.NamedChildren()
	if len(children) == 0 {
		return nil
	}
	return selectorFromTypeNode(children[0])
}
