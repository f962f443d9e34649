package configs

import (
	"fmt"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Loader reads cue files validated against a closed schema.
// Files are loaded once on first use, earlier files take precedence.
type Loader struct {
	load func() ([]cue.Value, error)
}

func NewLoader(paths []string, schema string) Loader {
	return Loader{
		load: sync.OnceValues(func() ([]cue.Value, error) {
			ctx := cuecontext.New()

			var closed cue.Value
			if schema != "" {
				closed = ctx.CompileString("close({"+schema+"})", cue.Filename("schema.cue"))
				if err := closed.Err(); err != nil {
					return nil, fmt.Errorf("compile schema: %w", err)
				}
			}

			values := make([]cue.Value, 0, len(paths))
			for _, path := range paths {
				src, err := os.ReadFile(path)
				if err != nil {
					return nil, err
				}
				value := ctx.CompileBytes(src, cue.Filename(path))
				if err := value.Err(); err != nil {
					return nil, err
				}
				if closed.Exists() {
					value = closed.Unify(value)
				}
				if err := value.Validate(); err != nil {
					return nil, fmt.Errorf("%s: %w", path, err)
				}
				values = append(values, value)
			}
			return values, nil
		}),
	}
}

// Decode assigns the value at path from the first file setting it.
func (l Loader) Decode(path string, target any) error {
	values, err := l.load()
	if err != nil {
		return err
	}
	cuePath := cue.ParsePath(path)
	for _, value := range values {
		field := value.LookupPath(cuePath)
		if field.Err() != nil || !field.Exists() || !field.IsConcrete() {
			continue
		}
		return field.Decode(target)
	}
	return ErrValueNotFound
}
