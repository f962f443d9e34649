package logs

import (
	"bufio"
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/reusee/lox/cmds"
	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

type Logger = *slog.Logger

var level = new(slog.LevelVar)

func init() {
	// the terminal is shared with interpreter output
	level.Set(slog.LevelWarn)
	cmds.Define("-log", cmds.Func(func(name string) error {
		return level.UnmarshalText([]byte(name))
	}).Desc("set log level: debug, info, warn or error"))
}

// Logger writes text records to Writer unless running as a systemd service,
// and to the journal whenever it is reachable.
func (Module) Logger(
	writer Writer,
) Logger {
	var handlers []slog.Handler
	service := isSystemdService()

	var terminal slog.Handler
	if !service {
		terminal = slog.NewTextHandler(writer, &slog.HandlerOptions{
			Level: level,
		})
		handlers = append(handlers, terminal)
	}

	journal, err := slogjournal.NewHandler(&slogjournal.Options{
		ReplaceGroup: func(key string) string {
			return toJournalKey(key)
		},
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			attr.Key = toJournalKey(attr.Key)
			return attr
		},
	})
	if err == nil {
		handlers = append(handlers, journal)
	} else if terminal != nil {
		slog.New(terminal).LogAttrs(context.Background(), slog.LevelDebug, "journal unavailable",
			slog.Any("error", err),
		)
	}

	return slog.New(&Handler{
		Handler: slogmulti.Fanout(handlers...),
	})
}

// toJournalKey namespaces attribute keys under LOX_, journald reserves keys starting with an underscore.
func toJournalKey(key string) string {
	return "LOX_" + strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		}
		return '_'
	}, key)
}

// isSystemdService reports whether the process runs inside a .service unit cgroup.
func isSystemdService() bool {
	f, err := os.Open("/proc/self/cgroup")
	if err != nil {
		return false
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		// hierarchy-ID:controllers:path
		_, rest, _ := strings.Cut(scanner.Text(), ":")
		_, path, ok := strings.Cut(rest, ":")
		if !ok {
			continue
		}
		if strings.Contains(path+"/", ".service/") {
			return true
		}
	}
	return false
}
