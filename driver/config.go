package driver

import (
	"flag"
	"path"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bazelbuild/bazel-gazelle/config"
	"github.com/bazelbuild/bazel-gazelle/rule"
	"github.com/emirpasic/gods/sets/treeset"

	"github.com/glazari/javaimports/parse"
)

const (
	// JavaImportsClasspathIndexFile points at the JSON classpath index
	// (classpath.Index) describing external dependency classes.
	//
	// Defaults to DEFAULT_CLASSPATH_INDEX_FILE.
	JavaImportsClasspathIndexFile = "java_imports_classpath_index_file"

	// JavaImportsParsingCacheFile, when set, enables a SHA-256-keyed parse
	// cache at the given path. Suffix with .gz to gzip it.
	JavaImportsParsingCacheFile = "java_imports_parsing_cache_file"

	// JavaImportsExcludePackage tells the driver to never propose an
	// import from the given package prefix (e.g. same-package classes, or
	// a package the project always star-imports). Can be repeated.
	JavaImportsExcludePackage = "java_imports_exclude_package"
)

// ProjectConfig is the per-Bazel-package configuration extension (spec
// §6's ambient project configuration).
type ProjectConfig struct {
	ClasspathIndexFile string
	ParsingCacheFile    string
	ExcludedPackages    *treeset.Set
}

func NewProjectConfig() *ProjectConfig {
	return &ProjectConfig{
		ClasspathIndexFile: DEFAULT_CLASSPATH_INDEX_FILE,
		ExcludedPackages:   treeset.NewWithStringComparator(),
	}
}

// NewChild creates a child ProjectConfig inheriting the parent's values,
// mirroring jvm.JvmConfig.NewChild/scala.ScalaConfig.NewChild.
func (c *ProjectConfig) NewChild() *ProjectConfig {
	return &ProjectConfig{
		ClasspathIndexFile: c.ClasspathIndexFile,
		ParsingCacheFile:   c.ParsingCacheFile,
		ExcludedPackages:   c.ExcludedPackages,
	}
}

// ProjectConfigs is an extension of map[string]*ProjectConfig, keyed by
// Bazel package path.
type ProjectConfigs map[string]*ProjectConfig

func (c *ProjectConfigs) ParentForPackage(pkg string) *ProjectConfig {
	dir := path.Dir(pkg)
	if dir == "." {
		dir = ""
	}
	return (map[string]*ProjectConfig)(*c)[dir]
}

func ConfigForConfig(c *config.Config, pkg string) *ProjectConfig {
	configs := c.Exts[LANGUAGE_NAME].(*ProjectConfigs)
	return (*configs)[pkg]
}

// Configurer satisfies bazel-gazelle's config.Configurer interface, the
// same extension point jvm.JvmConfigurer/scala.ScalaConfigurer use to
// thread per-package configuration through a Gazelle run.
type Configurer struct {
	parsingCacheFile string

	// Parser is populated by CheckFlags once flags are known: either a
	// caching or uncached wrapper around a JavaParser, depending on
	// whether a parsing cache file was configured.
	Parser parse.Parser[CachedScan]
}

func NewConfigurer() *Configurer {
	return &Configurer{}
}

func (dc *Configurer) getOrInitConfigs(c *config.Config) *ProjectConfigs {
	if _, exists := c.Exts[LANGUAGE_NAME]; !exists {
		configs := ProjectConfigs{"": NewProjectConfig()}
		c.Exts[LANGUAGE_NAME] = &configs
	}
	return c.Exts[LANGUAGE_NAME].(*ProjectConfigs)
}

func (dc *Configurer) RegisterFlags(fs *flag.FlagSet, cmd string, c *config.Config) {
	fs.StringVar(
		&dc.parsingCacheFile,
		"java_imports_parsing_cache_file",
		"",
		"When specified, scanning will generate and update a json file on disk at the "+
			"given location. Specify a .gz file extension to enable gzipping of the json "+
			"cache file.",
	)
}

func (dc *Configurer) CheckFlags(fs *flag.FlagSet, c *config.Config) error {
	javaParser := NewJavaParser()

	if dc.parsingCacheFile != "" {
		if !filepath.IsAbs(dc.parsingCacheFile) {
			dc.parsingCacheFile = filepath.Join(c.RepoRoot, dc.parsingCacheFile)
		}
		wrapped := parse.NewCachingParser[CachedScan](javaParser, dc.parsingCacheFile)
		dc.Parser = &wrapped
	} else {
		wrapped := parse.NewUncachedParser[CachedScan](javaParser)
		dc.Parser = &wrapped
	}

	return nil
}

func (dc *Configurer) KnownDirectives() []string {
	return []string{
		JavaImportsClasspathIndexFile,
		JavaImportsParsingCacheFile,
		JavaImportsExcludePackage,
	}
}

func (dc *Configurer) Configure(c *config.Config, rel string, f *rule.File) {
	configs := dc.getOrInitConfigs(c)

	projectConfig, exists := (*configs)[rel]
	if !exists {
		parent := configs.ParentForPackage(rel)
		projectConfig = parent.NewChild()
		(*configs)[rel] = projectConfig
	}

	if f == nil {
		return
	}

	var excludes *treeset.Set
	for _, d := range f.Directives {
		switch d.Key {
		case JavaImportsClasspathIndexFile:
			projectConfig.ClasspathIndexFile = d.Value

		case JavaImportsParsingCacheFile:
			projectConfig.ParsingCacheFile = d.Value

		case JavaImportsExcludePackage:
			if excludes == nil {
				excludes = treeset.NewWithStringComparator(d.Value)
			} else {
				excludes.Add(d.Value)
			}
		}
	}

	if excludes != nil {
		projectConfig.ExcludedPackages = projectConfig.ExcludedPackages.Union(excludes)
	}
}

// ProjectFile is the standalone (non-Bazel) project manifest shape read
// from DEFAULT_PROJECT_CONFIG_FILE, for driving the CLI without a
// surrounding Gazelle/Bazel workspace.
type ProjectFile struct {
	ClasspathIndexFile string   `toml:"classpath_index_file"`
	ParsingCacheFile    string   `toml:"parsing_cache_file"`
	ExcludePackages     []string `toml:"exclude_packages"`
	Concurrency         int      `toml:"concurrency"`
	SourceRoots         []string `toml:"source_roots"`
}

// LoadProjectFile decodes a .javaimports.toml manifest over a ProjectFile
// pre-filled with DEFAULT_CLASSPATH_INDEX_FILE and DEFAULT_CONCURRENCY.
// Any decode failure, including a missing file, is returned as an error
// alongside that ProjectFile; the CLI ignores the manifest in that case.
func LoadProjectFile(path string) (*ProjectFile, error) {
	pf := &ProjectFile{
		ClasspathIndexFile: DEFAULT_CLASSPATH_INDEX_FILE,
		Concurrency:        DEFAULT_CONCURRENCY,
	}
	if _, err := toml.DecodeFile(path, pf); err != nil {
		return pf, err
	}
	return pf, nil
}

// SplitCommaList is a small directive-parsing helper shared by the
// driver's flag and directive handling, matching scala.Configurer's use
// of strings.Split on comma-delimited directive values.
func SplitCommaList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
