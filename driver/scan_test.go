package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glazari/javaimports/parse"
)

func writeJavaFile(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))
	return path
}

func TestScanProjectRunsConcurrentlyAcrossFiles(t *testing.T) {
	dir := t.TempDir()

	fileA := writeJavaFile(t, dir, "A.java", `class A { int f(){ return missingA(); } }`)
	fileB := writeJavaFile(t, dir, "B.java", `class B { int g(){ return missingB(); } }`)

	parser := parse.NewUncachedParser[CachedScan](NewJavaParser())
	req := NewScanRequest([]string{fileA, fileB})

	results, err := ScanProject(context.Background(), req, &parser, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)

	for _, r := range results {
		require.NoError(t, r.Err)
		require.NotNil(t, r.Scan)
	}

	require.Contains(t, results[0].Scan.Unresolved, "missingA")
	require.Contains(t, results[1].Scan.Unresolved, "missingB")
}

func TestScanProjectSurfacesParseErrorsPerFile(t *testing.T) {
	dir := t.TempDir()

	goodFile := writeJavaFile(t, dir, "Good.java", `class Good { int f(){ return 1; } }`)
	badFile := writeJavaFile(t, dir, "Bad.java", `class Bad { int f(){ return 1 } }`)

	parser := parse.NewUncachedParser[CachedScan](NewJavaParser())
	req := NewScanRequest([]string{goodFile, badFile})

	results, err := ScanProject(context.Background(), req, &parser, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)

	require.NoError(t, results[0].Err)
	require.Error(t, results[1].Err)
}
