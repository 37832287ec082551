package driver

import (
	"context"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"

	"github.com/glazari/javaimports/astview"
	"github.com/glazari/javaimports/scanner"
	"github.com/glazari/javaimports/scope"
)

// CachedClass is the JSON-serializable projection of a top-level class
// declared in a file: its own selector, declared superclass (empty for
// none), and member names visible to subclasses. Nested classes are not
// projected here, matching the scope at which the scanner's own tests
// build a cross-class Hierarchy (top-level declarations only).
type CachedClass struct {
	Selector   string   `json:"selector"`
	Superclass string   `json:"superclass,omitempty"`
	Members    []string `json:"members,omitempty"`
}

// CachedOrphan is the JSON-serializable projection of a
// *hierarchy.OrphanClass produced for a single file's scan.
type CachedOrphan struct {
	Owner      string   `json:"owner"`
	Superclass string   `json:"superclass,omitempty"`
	Unresolved []string `json:"unresolved"`
}

// CachedScan is the cacheable projection of a scanner.ScanResult. The
// scanner's live *scope.Scope tree is not itself cached -- its bindings
// map holds the Entity interface, which has no generic JSON shape to
// round-trip through -- only the two outputs a driver run actually
// consumes across a cache hit (unresolved names, orphan classes) plus
// the per-class member summaries extend() needs to build a project-wide
// Hierarchy are kept.
type CachedScan struct {
	File       string         `json:"source"`
	Package    string         `json:"package,omitempty"`
	Imports    []string       `json:"imports,omitempty"`
	Unresolved []string       `json:"unresolved"`
	Classes    []CachedClass  `json:"classes"`
	Orphans    []CachedOrphan `json:"orphans"`
}

func stringValues(s *treeset.Set) []string {
	vals := s.Values()
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = v.(string)
	}
	return out
}

// FromScanResult flattens a scanner.ScanResult down to a CachedScan.
// cu supplies the package name and import table the scan itself does
// not return (they are consumed into the package scope before
// scanning ever begins).
func FromScanResult(file string, cu *astview.CompilationUnit, r *scanner.ScanResult) *CachedScan {
	cs := &CachedScan{File: file, Unresolved: stringValues(r.Unresolved)}

	if cu != nil {
		cs.Package = strings.Join(cu.PackageName, ".")
		for _, imp := range cu.Imports {
			cs.Imports = append(cs.Imports, imp.String())
		}
	}

	for _, name := range r.PackageScope.Names() {
		entity, ok := r.PackageScope.LocalLookup(name)
		if !ok || entity.Kind() != scope.KindClass {
			continue
		}
		class := entity.(*scope.ClassEntity)

		var super string
		if sc := class.Superclass(); sc != nil {
			super = sc.String()
		}
		cs.Classes = append(cs.Classes, CachedClass{
			Selector:   string(name),
			Superclass: super,
			Members:    stringValues(class.Members()),
		})
	}

	for _, o := range r.Orphans {
		var super string
		if sc := o.NextSuperclass(); sc != nil {
			super = sc.String()
		}
		cs.Orphans = append(cs.Orphans, CachedOrphan{
			Owner:      o.Owner().String(),
			Superclass: super,
			Unresolved: stringValues(o.NotYetResolved()),
		})
	}

	return cs
}

// JavaParser adapts astview + scanner into the parse.CacheableParser
// shape parse.CachingParser wraps, grounded on scala.treeSitterParser:
// parse, scan, project down to a cache-friendly result.
type JavaParser struct{}

func NewJavaParser() *JavaParser {
	return &JavaParser{}
}

func (p *JavaParser) Parse(filePath string, sourceString string) (*CachedScan, []error) {
	parser := astview.NewParser()
	cu, diagnostics := parser.Parse(context.Background(), []byte(sourceString))

	if len(diagnostics) > 0 {
		errs := make([]error, len(diagnostics))
		for i, d := range diagnostics {
			errs[i] = fmt.Errorf("%s:%d:%d: %s", filePath, d.Line, d.Column, d.Message)
		}
		return nil, errs
	}

	result, err := scanner.Scan(cu, diagnostics, nil)
	if err != nil {
		return nil, []error{err}
	}

	return FromScanResult(filePath, cu, result), nil
}

// UnmarshalParsingCache reconstructs a typed cache map from the
// generic map[string]interface{} a raw JSON decode produces. Mirrors
// scala.treeSitterParser.UnmarshalParsingCache's workaround: the parse
// package decodes the cache file generically (untypedParsingCache), so
// each entry is rebuilt field by field here.
func (*JavaParser) UnmarshalParsingCache(
	cacheMap *map[string]*CachedScan,
	interfaceMap *map[string]interface{},
) {
	for hash, data := range *interfaceMap {
		m, ok := data.(map[string]interface{})
		if !ok {
			continue
		}

		file, _ := m["source"].(string)
		pkg, _ := m["package"].(string)
		scan := &CachedScan{
			File:       file,
			Package:    pkg,
			Imports:    interfaceStrings(m["imports"]),
			Unresolved: interfaceStrings(m["unresolved"]),
		}

		if rawClasses, ok := m["classes"].([]interface{}); ok {
			for _, rc := range rawClasses {
				cm, ok := rc.(map[string]interface{})
				if !ok {
					continue
				}
				selector, _ := cm["selector"].(string)
				superclass, _ := cm["superclass"].(string)
				scan.Classes = append(scan.Classes, CachedClass{
					Selector:   selector,
					Superclass: superclass,
					Members:    interfaceStrings(cm["members"]),
				})
			}
		}

		if rawOrphans, ok := m["orphans"].([]interface{}); ok {
			for _, ro := range rawOrphans {
				om, ok := ro.(map[string]interface{})
				if !ok {
					continue
				}
				owner, _ := om["owner"].(string)
				superclass, _ := om["superclass"].(string)
				scan.Orphans = append(scan.Orphans, CachedOrphan{
					Owner:      owner,
					Superclass: superclass,
					Unresolved: interfaceStrings(om["unresolved"]),
				})
			}
		}

		(*cacheMap)[hash] = scan
	}
}

func interfaceStrings(v interface{}) []string {
	raw, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, x := range raw {
		if s, ok := x.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
