package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func newWatchCommand() *cobra.Command {
	var apply bool

	cmd := &cobra.Command{
		Use:   "watch [directories...]",
		Short: "Watches directories for .java file changes and re-runs check (or fix with --fix) on each one",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return err
			}
			defer watcher.Close()

			for _, dir := range args {
				if err := addDirRecursive(watcher, dir); err != nil {
					return err
				}
			}

			fmt.Println(neutralStyle.Render(fmt.Sprintf("watching %d director(ies), ctrl-c to stop", len(args))))

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			for {
				select {
				case event, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if filepath.Ext(event.Name) != ".java" {
						continue
					}
					if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
						continue
					}
					runOnChange(event.Name, apply)

				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))

				case <-ctx.Done():
					return nil
				}
			}
		},
	}

	cmd.Flags().BoolVar(&apply, "fix", false, "Apply resolved imports instead of only reporting them")
	return cmd
}

func addDirRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.Walk(root, func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}

func runOnChange(file string, apply bool) {
	results, err := runPipeline(context.Background(), []string{file}, classpathIndexFile, parsingCacheFile, concurrency, excludedPackages)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("%s: %s", file, err)))
		return
	}

	result := results[file]
	if result.Err != nil {
		fmt.Println(errorStyle.Render(fmt.Sprintf("%s: %s", file, result.Err)))
		return
	}

	existing := existingImportSet(result.Scan.Imports)
	missing, ambiguous, unknown := classifyDecisions(result.Decisions, existing)

	if len(missing) == 0 && len(ambiguous) == 0 && len(unknown) == 0 {
		fmt.Println(okStyle.Render(fmt.Sprintf("%s: ok", file)))
		return
	}

	if !apply {
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
		return
	}

	if len(missing) == 0 {
		return
	}

	var toAdd []string
	for _, d := range missing {
		toAdd = append(toAdd, d.Resolved)
	}
	sort.Strings(toAdd)

	source, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		return
	}
	if err := os.WriteFile(file, []byte(insertImports(string(source), toAdd)), 0644); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		return
	}
	fmt.Println(okStyle.Render(fmt.Sprintf("%s: added %d import(s)", file, len(toAdd))))
}
