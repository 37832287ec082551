package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/emirpasic/gods/sets/treeset"

	"github.com/glazari/javaimports/classpath"
	"github.com/glazari/javaimports/driver"
	"github.com/glazari/javaimports/parse"
)

// fileResult is one source file's fully resolved outcome: its raw scan
// plus the import declarations the driver proposes adding.
type fileResult struct {
	Scan      *driver.CachedScan
	Decisions []driver.ImportDecision
	Err       error
}

// runPipeline runs spec §6's full data flow over files: scan every file
// concurrently, build a project-wide hierarchy from everything scanned
// plus the classpath index, extend every orphan class against it, and
// resolve the combined residual identifiers to import declarations.
func runPipeline(
	ctx context.Context,
	files []string,
	classpathIndexFile string,
	parsingCacheFile string,
	concurrency int,
	excludedPackages *treeset.Set,
) (map[string]*fileResult, error) {
	var javaParser parse.Parser[driver.CachedScan]
	if parsingCacheFile != "" {
		abs, err := filepath.Abs(parsingCacheFile)
		if err != nil {
			return nil, err
		}
		wrapped := parse.NewCachingParser[driver.CachedScan](driver.NewJavaParser(), abs)
		javaParser = &wrapped
		defer wrapped.WriteParsingCache()
	} else {
		wrapped := parse.NewUncachedParser[driver.CachedScan](driver.NewJavaParser())
		javaParser = &wrapped
	}

	req := driver.NewScanRequest(files)
	scans, err := driver.ScanProject(ctx, req, javaParser, concurrency)
	if err != nil {
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	var allScans []*driver.CachedScan
	byPackage := make(map[string][]*driver.CachedScan)
	results := make(map[string]*fileResult, len(scans))

	for _, fs := range scans {
		if fs.Err != nil {
			results[fs.File] = &fileResult{Err: fs.Err}
			continue
		}
		allScans = append(allScans, fs.Scan)
		byPackage[fs.Scan.Package] = append(byPackage[fs.Scan.Package], fs.Scan)
	}

	var classpathIdx *classpath.Index
	if classpathIndexFile != "" {
		classpathIdx, err = classpath.ParseIndex(classpathIndexFile)
		if err != nil {
			return nil, fmt.Errorf("loading classpath index: %w", err)
		}
	}

	hierarchy := driver.BuildHierarchy(allScans, classpathIdx)

	for _, fs := range scans {
		if fs.Err != nil {
			continue
		}
		scan := fs.Scan

		combined := treeset.NewWithStringComparator(scan.Unresolved...)
		for _, extended := range driver.ExtendAll(scan, hierarchy) {
			combined = combined.Union(extended.Unresolved)
		}

		samePackage := driver.ClassesInPackage(byPackage[scan.Package])

		results[fs.File] = &fileResult{
			Scan:      scan,
			Decisions: driver.ResolveImports(combined, hierarchy, samePackage, excludedPackages),
		}
	}

	return results, nil
}

// classifyDecisions splits a file's resolved import decisions into
// three buckets: imports genuinely missing from the file, identifiers
// that resolve to more than one candidate class (spec §1's Non-goal:
// the core never disambiguates, so these are surfaced rather than
// guessed at), and identifiers that resolve to nothing at all.
func classifyDecisions(
	decisions []driver.ImportDecision,
	existing map[string]bool,
) (missing, ambiguous, unknown []driver.ImportDecision) {
	for _, d := range decisions {
		switch {
		case d.Resolved != "":
			if !existing[d.Resolved] {
				missing = append(missing, d)
			}
		case len(d.Candidates) > 1:
			ambiguous = append(ambiguous, d)
		default:
			unknown = append(unknown, d)
		}
	}
	return missing, ambiguous, unknown
}
