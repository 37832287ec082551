// Package astview is the read-only AST View the scanner traverses (spec
// §2, §6). It wraps a concrete parser's output behind a small Node
// interface so the scanner never imports a grammar package directly —
// the same shape the teacher's scala/parser.go built for one language's
// tree-sitter grammar, generalized so another grammar (or a fake, in
// tests) can stand in for it.
package astview

import "strings"

// Node is one AST node, reduced to what the scanner needs: its kind, its
// source text, its named children, and specific children reachable by
// grammar field name (tree-sitter's "field" concept, e.g. a
// method_declaration's "name" or "body" field).
type Node interface {
	Kind() Kind
	Type() string
	Content() string
	NamedChildren() []Node
	ChildByField(name string) Node
	Line() int
	Column() int
}

// Diagnostic reports a syntax error the parser recovered from (spec
// §4.1's error semantics: a parse failure is reported, not panicked).
type Diagnostic struct {
	Line    int
	Column  int
	Message string
}

// ImportDecl is one import statement, already split into its dotted
// segments (spec §3's selector-shaped names feeding the Unresolved-
// Identifier Scanner's import table).
type ImportDecl struct {
	Segments []string
	Static   bool
	Wildcard bool
}

// String renders the import declaration's body text (without the
// leading "import " keyword or trailing semicolon), e.g.
// "java.util.List", "static java.lang.Math.PI", or "java.util.*".
func (i ImportDecl) String() string {
	var b strings.Builder
	if i.Static {
		b.WriteString("static ")
	}
	b.WriteString(strings.Join(i.Segments, "."))
	if i.Wildcard {
		b.WriteString(".*")
	}
	return b.String()
}

// CompilationUnit is a fully parsed source file: its package name, its
// import table, and the root node the scanner walks for top-level type
// declarations.
type CompilationUnit struct {
	PackageName []string
	Imports     []ImportDecl
	Root        Node
}
