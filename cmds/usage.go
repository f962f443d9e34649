package cmds

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"text/tabwriter"
)

func (e *Executor) PrintUsage() {
	e.FprintUsage(os.Stderr)
}

// FprintUsage lists commands sorted by name, aliases on one line.
func (e *Executor) FprintUsage(w io.Writer) {
	names := make(map[*Command][]string)
	for name, command := range e.commands {
		names[command] = append(names[command], name)
	}
	commands := slices.Collect(maps.Keys(names))
	for _, command := range commands {
		slices.Sort(names[command])
	}
	slices.SortFunc(commands, func(a, b *Command) int {
		return strings.Compare(names[a][0], names[b][0])
	})

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, command := range commands {
		fmt.Fprintf(tw, "  %s\t%s\n", strings.Join(names[command], ", "), command.Description)
	}
	tw.Flush()
}
