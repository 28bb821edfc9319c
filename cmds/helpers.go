package cmds

import "fmt"

// Var defines name to set a value, and name+"." to reset it to zero.
func Var[T any](name string) *T {
	var value T
	Define(name, Func(func(v T) {
		value = v
	}).Args(typeName[T]()))
	Define(name+".", Func(func() {
		var zero T
		value = zero
	}).Desc("reset "+name))
	return &value
}

// Switch defines name to turn a flag on and "!"+name to turn it off.
func Switch(name string) *bool {
	var value bool
	Define(name, Func(func() {
		value = true
	}))
	Define("!"+name, Func(func() {
		value = false
	}).Desc("unset "+name))
	return &value
}

// Collect defines name to append a value each time it appears.
func Collect[T any](name string) *[]T {
	var value []T
	Define(name, Func(func(v T) {
		value = append(value, v)
	}).Args(typeName[T]()).Desc("repeatable"))
	return &value
}

func typeName[T any]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}
