package bfconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/logs"
)

//go:embed schema.cue
var schema string

var filenames = []string{
	"bf.cue",
	".bf.cue",
}

// ConfigPaths lists config files, most specific first.
type ConfigPaths []string

func (Module) ConfigPaths() ConfigPaths {
	var paths []string
	add := func(dir string) {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	// working directory
	if workingDir, err := os.Getwd(); err == nil {
		add(workingDir)
	}

	// user config dir
	if configDir, err := os.UserConfigDir(); err == nil {
		add(configDir)
	}

	// system wide
	add("/etc")

	return paths
}

func (Module) ConfigsLoader(
	paths ConfigPaths,
	logger logs.Logger,
) configs.Loader {
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", []string(paths),
		)
	}
	return configs.NewLoader(paths, schema)
}
