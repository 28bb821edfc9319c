package configs

// Configurable is a value that can be set from config files under ConfigKey.
type Configurable interface {
	ConfigKey() string
}

// Resolve returns override when it is non-zero, otherwise the first value
// found in loader under the type's key, otherwise the zero value.
func Resolve[T interface {
	comparable
	Configurable
}](loader Loader, override T) T {
	var zero T
	if override != zero {
		return override
	}
	return First[T](loader, zero.ConfigKey())
}
