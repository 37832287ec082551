package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/pprof"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/spf13/cobra"

	"github.com/glazari/javaimports/driver"
)

var (
	classpathIndexFile string
	parsingCacheFile   string
	concurrency        int
	cpuProfile         string
	excludedPackages   *treeset.Set
)

func main() {
	excludedPackages = treeset.NewWithStringComparator()

	projectFile, err := driver.LoadProjectFile(driver.DEFAULT_PROJECT_CONFIG_FILE)
	if err == nil {
		if classpathIndexFile == "" {
			classpathIndexFile = projectFile.ClasspathIndexFile
		}
		if parsingCacheFile == "" {
			parsingCacheFile = projectFile.ParsingCacheFile
		}
		if concurrency == 0 {
			concurrency = projectFile.Concurrency
		}
		for _, pkg := range projectFile.ExcludePackages {
			excludedPackages.Add(pkg)
		}
	}

	root := &cobra.Command{
		Use:   "javaimports",
		Short: "Computes and applies the import declarations a set of source files requires",
	}

	root.PersistentFlags().StringVar(
		&classpathIndexFile,
		"classpath_index",
		classpathIndexFile,
		"Path to a classpath index JSON file describing external dependency classes",
	)
	root.PersistentFlags().StringVar(
		&parsingCacheFile,
		"parsing_cache_file",
		parsingCacheFile,
		"When specified, scanning will generate and update a json file on disk at the "+
			"given location. Specify a .gz file extension to enable gzipping of the json "+
			"cache file.",
	)
	root.PersistentFlags().IntVar(
		&concurrency,
		"concurrency",
		max(concurrency, driver.DEFAULT_CONCURRENCY),
		"Maximum number of files to scan concurrently",
	)
	root.PersistentFlags().StringVar(
		&cpuProfile,
		"cpuprofile",
		"",
		"Generate a cpu profile while running and write it to the given file",
	)
	var excludeFlag []string
	root.PersistentFlags().StringSliceVar(
		&excludeFlag,
		"exclude_package",
		nil,
		"Package prefix to never propose an import from. Can be repeated.",
	)

	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		for _, pkg := range excludeFlag {
			excludedPackages.Add(pkg)
		}
	}

	root.AddCommand(newCheckCommand())
	root.AddCommand(newFixCommand())
	root.AddCommand(newWatchCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func startProfileIfRequested() (stop func()) {
	if cpuProfile == "" {
		return func() {}
	}

	f, err := os.Create(cpuProfile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating cpu profile file: %s\n", err)
		os.Exit(1)
	}
	pprof.StartCPUProfile(f)
	return pprof.StopCPUProfile
}

// collectJavaFiles expands a mix of file and directory arguments into a
// flat, sorted-by-walk-order list of .java source paths.
func collectJavaFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}

		err = filepath.Walk(arg, func(path string, fi os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !fi.IsDir() && filepath.Ext(path) == ".java" {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}
