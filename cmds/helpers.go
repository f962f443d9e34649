package cmds

import "strings"

// Var defines name as a command setting the returned value from its argument.
func Var[T any](name, desc string) *T {
	return VarOn[T](GlobalExecutor, name, desc)
}

func VarOn[T any](e *Executor, name, desc string) *T {
	value := new(T)
	e.Define(name, Func(func(v T) {
		*value = v
	}).Desc(desc))
	return value
}

// Switch defines name to set the returned flag, and -no-<name> to clear it.
func Switch(name, desc string) *bool {
	return SwitchOn(GlobalExecutor, name, desc)
}

func SwitchOn(e *Executor, name, desc string) *bool {
	value := new(bool)
	e.Define(name, Func(func() {
		*value = true
	}).Desc(desc))
	e.Define("-no-"+strings.TrimLeft(name, "-"), Func(func() {
		*value = false
	}))
	return value
}

// Collect defines name as a repeatable command appending its argument.
func Collect[T any](name, desc string) *[]T {
	return CollectOn[T](GlobalExecutor, name, desc)
}

func CollectOn[T any](e *Executor, name, desc string) *[]T {
	values := new([]T)
	e.Define(name, Func(func(v T) {
		*values = append(*values, v)
	}).Desc(desc))
	return values
}
