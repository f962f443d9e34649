package loxconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/lox/configs"
	"github.com/reusee/lox/logs"
	"github.com/reusee/lox/modes"
)

//go:embed schema.cue
var schema string

var filenames = []string{
	"lox.cue",
	".lox.cue",
}

// ConfigsLoader reads lox.cue files from the working directory, the user config dir and /etc,
// earlier paths taking precedence. Development mode reads none.
func (Module) ConfigsLoader(
	logger logs.Logger,
	mode modes.Mode,
) configs.Loader {
	if mode == modes.ModeDevelopment {
		return configs.NewLoader(nil, schema)
	}

	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")

	paths := findConfigFiles(dirs)
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}

	return configs.NewLoader(paths, schema)
}

func findConfigFiles(dirs []string) (paths []string) {
	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return
}
