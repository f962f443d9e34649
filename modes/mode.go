package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

type Mode uint8

const (
	ModeProduction Mode = iota + 1
	ModeDevelopment
)

func (m Mode) String() string {
	switch m {
	case ModeProduction:
		return "production"
	case ModeDevelopment:
		return "development"
	}
	return "unknown"
}

// Module provides Mode and, in tests, the running *testing.T.
type Module struct {
	dscope.Module
	mode Mode
	t    *testing.T
}

func ForProduction() Module {
	return Module{
		mode: ModeProduction,
	}
}

// ForTest reads no config files and ties the scope to t.
func ForTest(t *testing.T) Module {
	return Module{
		mode: ModeDevelopment,
		t:    t,
	}
}

func (m Module) Mode() Mode {
	return m.mode
}

func (m Module) T() *testing.T {
	return m.t
}
