package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	neutralStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [files or directories...]",
		Short: "Reports missing, ambiguous, or unresolvable imports without modifying any file",
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

			problems := 0
			for _, file := range files {
				result := results[file]
				if result.Err != nil {
					fmt.Println(errorStyle.Render(fmt.Sprintf("%s: %s", file, result.Err)))
					problems++
					continue
				}

				existing := existingImportSet(result.Scan.Imports)
				missing, ambiguous, unknown := classifyDecisions(result.Decisions, existing)

				if len(missing) == 0 && len(ambiguous) == 0 && len(unknown) == 0 {
					fmt.Println(okStyle.Render(fmt.Sprintf("%s: ok", file)))
					continue
				}

				problems++
				fmt.Println(neutralStyle.Render(file + ":"))
				for _, d := range missing {
					fmt.Printf("  + import %s;\n", d.Resolved)
				}
				for _, d := range ambiguous {
					fmt.Printf("  ? %s is ambiguous among: %v\n", d.Identifier, d.Candidates)
				}
				for _, d := range unknown {
					fmt.Printf("  ! %s could not be resolved\n", d.Identifier)
				}
			}

			if problems > 0 {
				os.Exit(1)
			}
			return nil
		},
	}
}

func existingImportSet(imports []string) map[string]bool {
	set := make(map[string]bool, len(imports))
	for _, imp := range imports {
		set[imp] = true
	}
	return set
}
