package driver

import (
	"os"
	"path/filepath"
)

// Siblings is spec §6's consumed siblings(file): every other .java file
// in file's directory (a package, in the language this spec targets, is
// a single directory of source files -- there is no nested-package
// recursion here, matching how the scanner treats one compilation unit
// at a time).
func Siblings(file string) ([]string, error) {
	dir := filepath.Dir(file)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(file)
	if err != nil {
		return nil, err
	}

	var siblings []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != JAVA_EXT {
			continue
		}
		candidate := filepath.Join(dir, entry.Name())
		absCandidate, err := filepath.Abs(candidate)
		if err != nil {
			return nil, err
		}
		if absCandidate == abs {
			continue
		}
		siblings = append(siblings, candidate)
	}

	return siblings, nil
}
