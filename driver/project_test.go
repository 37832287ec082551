package driver

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSiblingsExcludesSelfAndNonJavaFiles(t *testing.T) {
	dir := t.TempDir()

	target := writeJavaFile(t, dir, "Target.java", `class Target {}`)
	writeJavaFile(t, dir, "Other.java", `class Other {}`)
	writeJavaFile(t, dir, "README.md", `not java`)

	siblings, err := Siblings(target)
	require.NoError(t, err)
	require.Len(t, siblings, 1)
	require.Equal(t, filepath.Join(dir, "Other.java"), siblings[0])
}
