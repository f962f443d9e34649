package configs

import "errors"

// First decodes path, or returns zero when no file sets it. Unreadable or invalid files panic.
func First[T any](loader Loader, path string) (ret T) {
	if err := loader.Decode(path, &ret); err != nil && !errors.Is(err, ErrValueNotFound) {
		panic(err)
	}
	return
}

// Configurable values know their own path in the config files.
type Configurable interface {
	ConfigPath() string
}

func Lookup[T Configurable](loader Loader) T {
	var zero T
	return First[T](loader, zero.ConfigPath())
}
