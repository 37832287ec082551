// Package classpath implements the project-environment side of spec
// §6's "Project environment (consumed)" interface: turning dependency
// artifacts into ClassHierarchy entries. Real member/superclass data for
// an externally compiled class cannot be recovered from a source parse,
// so this package consumes a pre-built classpath index — one JSON
// document per dependency artifact, produced offline by indexing the
// artifact's compiled classes — rather than re-deriving it from a
// build-system lockfile the way the teacher's jvm/resolve.go does for
// Bazel labels.
package classpath

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/emirpasic/gods/sets/treeset"

	"github.com/glazari/javaimports/hierarchy"
	"github.com/glazari/javaimports/scope"
	"github.com/glazari/javaimports/selector"
)

// ClassRecord is one class's shape as recorded in a classpath index:
// its dotted selector, its declared superclass selector (empty for none),
// and the member names visible to subclasses (spec §3's Member
// definition — already filtered to non-private by the indexer that
// produced the file).
type ClassRecord struct {
	Selector   string   `json:"selector"`
	Superclass string   `json:"superclass,omitempty"`
	Members    []string `json:"members,omitempty"`
}

// Artifact is one dependency artifact's contribution to the hierarchy
// (spec §6's "dependencyArtifacts(file) → Iterable<Artifact>" where each
// artifact offers "classes() → Iterable<ClassEntity>").
type Artifact struct {
	Coordinate string        `json:"coordinate"`
	Classes    []ClassRecord `json:"classes"`
}

// Index is a parsed classpath index file: every artifact on a
// compilation unit's dependency classpath, together with the classes it
// provides.
type Index struct {
	Artifacts []Artifact `json:"artifacts"`
}

// ParseIndex reads a classpath index JSON file from path. Grounded on
// jvm/resolve.go's ParseMavenInstall: open, json.Decode into a typed
// struct, fail loudly on a malformed file since a broken dependency index
// silently starves every extend() call of real hierarchy data.
func ParseIndex(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("classpath: opening index %s: %w", path, err)
	}
	defer f.Close()

	var idx Index
	if err := json.NewDecoder(f).Decode(&idx); err != nil {
		return nil, fmt.Errorf("classpath: decoding index %s: %w", path, err)
	}
	return &idx, nil
}

// ToClassEntity converts a ClassRecord into a *scope.ClassEntity
// suitable for registering in a hierarchy.Hierarchy. Visibility is
// Public — external members surfacing in an index are assumed already
// filtered to the subset visible to subclasses (non-private); staticness
// is not tracked by the index since the extender never consults it.
func (r ClassRecord) ToClassEntity() (*selector.Selector, *scope.ClassEntity) {
	segs := splitSelector(r.Selector)
	sel := selector.New(segs...)

	var super *selector.Selector
	if r.Superclass != "" {
		super = selector.New(splitSelector(r.Superclass)...)
	}

	entity := scope.NewClassEntity(scope.Identifier(segs[len(segs)-1]), scope.Public, false, super)
	members := treeset.NewWithStringComparator()
	for _, m := range r.Members {
		members.Add(m)
	}
	it := members.Iterator()
	for it.Next() {
		entity.AddMember(scope.Identifier(it.Value().(string)))
	}
	return sel, entity
}

func splitSelector(s string) []string {
	var segs []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			segs = append(segs, s[start:i])
			start = i + 1
		}
	}
	segs = append(segs, s[start:])
	return segs
}

// Populate registers every class record across every artifact in idx
// into h. Artifacts are independent and may be populated in any order;
// a class redeclared by a later artifact overwrites the earlier entry,
// matching the classpath's own "last one wins" shadowing behavior.
func Populate(h *hierarchy.Hierarchy, idx *Index) {
	for _, artifact := range idx.Artifacts {
		for _, record := range artifact.Classes {
			sel, entity := record.ToClassEntity()
			h.Add(sel, entity)
		}
	}
}
