package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

func newFixCommand() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "fix [files or directories...]",
		Short: "Inserts the import declarations a file requires, leaving ambiguous names untouched",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := startProfileIfRequested()
			defer stop()

			files, err := collectJavaFiles(args)
			if err != nil {
				return err
			}

			results, err := runPipeline(context.Background(), files, classpathIndexFile, parsingCacheFile, concurrency, excludedPackages)
			if err != nil {
				return err
			}

			for _, file := range files {
				result := results[file]
				if result.Err != nil {
					fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("%s: %s", file, result.Err)))
					continue
				}

				existing := existingImportSet(result.Scan.Imports)
				missing, _, _ := classifyDecisions(result.Decisions, existing)
				if len(missing) == 0 {
					continue
				}

				var toAdd []string
				for _, d := range missing {
					toAdd = append(toAdd, d.Resolved)
				}
				sort.Strings(toAdd)

				source, err := os.ReadFile(file)
				if err != nil {
					return err
				}

				updated := insertImports(string(source), toAdd)

				if dryRun {
					fmt.Println(neutralStyle.Render(file + ":"))
					for _, imp := range toAdd {
						fmt.Printf("  + import %s;\n", imp)
					}
					continue
				}

				if err := os.WriteFile(file, []byte(updated), 0644); err != nil {
					return err
				}
				fmt.Println(okStyle.Render(fmt.Sprintf("%s: added %d import(s)", file, len(toAdd))))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry_run", false, "Print the imports that would be added instead of writing them")
	return cmd
}

// insertImports splices new import lines into source immediately after
// the last existing import declaration, or after the package
// declaration if there are none, or at the very top of the file
// otherwise. This is a textual splice, not an AST rewrite -- spec §1's
// Non-goals explicitly exclude preserving comments or formatting, and
// the core itself never touches source text at all.
func insertImports(source string, newImports []string) string {
	if len(newImports) == 0 {
		return source
	}

	lines := strings.Split(source, "\n")

	insertAt := 0
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "import ") || strings.HasPrefix(trimmed, "package ") {
			insertAt = i + 1
		}
	}

	var block []string
	for _, imp := range newImports {
		block = append(block, fmt.Sprintf("import %s;", imp))
	}

	out := make([]string, 0, len(lines)+len(block))
	out = append(out, lines[:insertAt]...)
	out = append(out, block...)
	out = append(out, lines[insertAt:]...)
	return strings.Join(out, "\n")
}
