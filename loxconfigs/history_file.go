package loxconfigs

import (
	"os"
	"path/filepath"

	"github.com/reusee/lox/configs"
)

// HistoryFile is where the interactive prompt keeps its history. Empty disables history.
type HistoryFile string

var _ configs.Configurable = HistoryFile("")

func (HistoryFile) ConfigPath() string {
	return "history_file"
}

func (Module) HistoryFile(
	loader configs.Loader,
) HistoryFile {
	if path := configs.Lookup[HistoryFile](loader); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return HistoryFile(filepath.Join(home, ".lox_history"))
}
