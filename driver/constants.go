package driver

const (
	LANGUAGE_NAME = "java_imports"

	JAVA_EXT = ".java"

	DEFAULT_CLASSPATH_INDEX_FILE = "classpath_index.json"
	DEFAULT_CONCURRENCY          = 8

	// DEFAULT_PROJECT_CONFIG_FILE is the standalone (non-Bazel) project
	// manifest read by LoadProjectFile.
	DEFAULT_PROJECT_CONFIG_FILE = ".javaimports.toml"
)
