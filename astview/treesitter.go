package astview

import (
	"context"
	"fmt"
	"os"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
)

// JavaLanguage is the grammar every Parser instance is configured with.
// Held as a package var, the way the teacher's scala package held
// SCALA_LANG, so the *sitter.Query built against it (errorQuery) is
// compiled once.
var JavaLanguage = java.GetLanguage()

func errorQuery() *sitter.Query {
	q, err := sitter.NewQuery([]byte(`(ERROR) @error`), JavaLanguage)
	if err != nil {
		fmt.Fprintf(os.Stderr, "astview: failed compiling the tree-sitter error query: %v\n", err)
		panic(err)
	}
	return q
}

var errQuery = errorQuery()

// Parser wraps a *sitter.Parser configured for Java, producing
// CompilationUnit values the scanner walks. One Parser is not safe for
// concurrent use (mirrors *sitter.Parser itself); the driver gives each
// goroutine its own (spec §5).
type Parser struct {
	sitter *sitter.Parser
}

// NewParser returns a Parser ready to parse Java source.
func NewParser() *Parser {
	p := sitter.NewParser()
	p.SetLanguage(JavaLanguage)
	return &Parser{sitter: p}
}

// Parse parses source and returns the resulting CompilationUnit along
// with any diagnostics recovered from (ERROR) nodes. A parse failure
// severe enough that tree-sitter returns no tree at all is reported as a
// single diagnostic at 1:1, never a panic (spec §4.1's error semantics:
// "a parse failure is reported as a diagnostic, not raised as a fault").
func (p *Parser) Parse(ctx context.Context, source []byte) (*CompilationUnit, []Diagnostic) {
	tree, err := p.sitter.ParseCtx(ctx, nil, source)
	if err != nil || tree == nil {
		return &CompilationUnit{Root: nil}, []Diagnostic{{Line: 1, Column: 1, Message: "parse failed: " + errString(err)}}
	}

	root := tree.RootNode()
	cu := &CompilationUnit{}

	var typeDecls []Node
	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		switch child.Type() {
		case "package_declaration":
			cu.PackageName = readDottedName(scopedIdentifierChild(child), source)
		case "import_declaration":
			cu.Imports = append(cu.Imports, readImport(child, source))
		default:
			typeDecls = append(typeDecls, wrap(child, source))
		}
	}
	cu.Root = &syntheticRoot{kind: KindProgram, children: typeDecls}

	diags := diagnosticsFrom(root, source)
	return cu, diags
}

func errString(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}

// diagnosticsFrom runs the (ERROR) @error query over the tree and turns
// every match into a Diagnostic (grounded on scala/parser.go's
// queryErrors/ERROR_QUERY use of the same tree-sitter idiom).
func diagnosticsFrom(root *sitter.Node, source []byte) []Diagnostic {
	qc := sitter.NewQueryCursor()
	qc.Exec(errQuery, root)

	var diags []Diagnostic
	for {
		m, ok := qc.NextMatch()
		if !ok {
			break
		}
		for _, c := range m.Captures {
			pt := c.Node.StartPoint()
			diags = append(diags, Diagnostic{
				Line:    int(pt.Row) + 1,
				Column:  int(pt.Column) + 1,
				Message: "syntax error near: " + snippet(c.Node, source),
			})
		}
	}
	return diags
}

func snippet(n *sitter.Node, source []byte) string {
	text := n.Content(source)
	if len(text) > 40 {
		text = text[:40] + "..."
	}
	return strings.ReplaceAll(text, "\n", " ")
}

func scopedIdentifierChild(n *sitter.Node) *sitter.Node {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		switch c.Type() {
		case "scoped_identifier", "identifier":
			return c
		}
	}
	return nil
}

func readDottedName(n *sitter.Node, source []byte) []string {
	if n == nil {
		return nil
	}
	if n.Type() == "identifier" {
		return []string{n.Content(source)}
	}
	// scoped_identifier: (scope, name) fields, recursively nested.
	scope := n.ChildByFieldName("scope")
	name := n.ChildByFieldName("name")
	return append(readDottedName(scope, source), name.Content(source))
}

func readImport(n *sitter.Node, source []byte) ImportDecl {
	decl := ImportDecl{}
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		switch {
		case c.Type() == "static":
			decl.Static = true
		case c.Type() == "asterisk":
			decl.Wildcard = true
		case c.IsNamed() && (c.Type() == "scoped_identifier" || c.Type() == "identifier"):
			decl.Segments = readDottedName(c, source)
		}
	}
	return decl
}

// wrap adapts a *sitter.Node into the Node interface the scanner
// consumes, keeping the grammar dependency confined to this file.
func wrap(n *sitter.Node, source []byte) Node {
	if n == nil {
		return nil
	}
	return &treeSitterNode{n: n, source: source}
}

type treeSitterNode struct {
	n      *sitter.Node
	source []byte
}

func (t *treeSitterNode) Kind() Kind   { return kindOf(t.n.Type()) }
func (t *treeSitterNode) Type() string { return t.n.Type() }
func (t *treeSitterNode) Content() string {
	return t.n.Content(t.source)
}

func (t *treeSitterNode) NamedChildren() []Node {
	count := int(t.n.NamedChildCount())
	out := make([]Node, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, wrap(t.n.NamedChild(i), t.source))
	}
	return out
}

func (t *treeSitterNode) ChildByField(name string) Node {
	return wrap(t.n.ChildByFieldName(name), t.source)
}

func (t *treeSitterNode) Line() int {
	return int(t.n.StartPoint().Row) + 1
}

func (t *treeSitterNode) Column() int {
	return int(t.n.StartPoint().Column) + 1
}

// syntheticRoot stands in for the tree-sitter "program" node, holding
// only the top-level type declarations (package and import nodes are
// consumed separately into CompilationUnit's dedicated fields).
type syntheticRoot struct {
	kind     Kind
	children []Node
}

func (s *syntheticRoot) Kind() Kind           { return s.kind }
func (s *syntheticRoot) Type() string         { return "program" }
func (s *syntheticRoot) Content() string      { return "" }
func (s *syntheticRoot) NamedChildren() []Node { return s.children }
func (s *syntheticRoot) ChildByField(string) Node { return nil }
func (s *syntheticRoot) Line() int            { return 1 }
func (s *syntheticRoot) Column() int          { return 1 }
