package configs

import (
	"errors"
	"fmt"
)

// First decodes the first value found under path, or returns the zero value.
// A value that exists but does not decode into T is a configuration bug and panics.
func First[T any](loader Loader, path string) T {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return value
		}
		panic(fmt.Errorf("config %s: %w", path, err))
	}
	return value
}
