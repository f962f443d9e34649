package cmds

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/reusee/lox/vars"
)

// Command is a function bound to one or more names. Each parameter consumes the next argument,
// pointer parameters are optional and get a pointer to zero when arguments run out.
type Command struct {
	fn          reflect.Value
	Description string
	Aliases     []string
}

var errorType = reflect.TypeFor[error]()

func Func(fn any) *Command {
	value := reflect.ValueOf(fn)
	if value.Kind() != reflect.Func {
		panic(fmt.Errorf("command must be a function, got %T", fn))
	}
	t := value.Type()
	switch t.NumOut() {
	case 0:
	case 1:
		if t.Out(0) != errorType {
			panic(fmt.Errorf("command may only return error, got %v", t))
		}
	default:
		panic(fmt.Errorf("command may only return error, got %v", t))
	}
	for i := range t.NumIn() {
		param := t.In(i)
		if param.Kind() == reflect.Pointer {
			param = param.Elem()
		}
		if !parsable(param.Kind()) {
			panic(fmt.Errorf("unsupported parameter type %v in %v", t.In(i), t))
		}
	}
	return &Command{
		fn: value,
	}
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

func (c *Command) call(args []string) (rest []string, err error) {
	t := c.fn.Type()
	in := make([]reflect.Value, t.NumIn())
	for i := range in {
		in[i], args, err = bind(t.In(i), args)
		if err != nil {
			return nil, err
		}
	}
	out := c.fn.Call(in)
	if len(out) == 1 && !out[0].IsNil() {
		return nil, out[0].Interface().(error)
	}
	return args, nil
}

func bind(t reflect.Type, args []string) (reflect.Value, []string, error) {
	if t.Kind() == reflect.Pointer {
		ptr := reflect.New(t.Elem())
		if len(args) == 0 {
			return ptr, args, nil
		}
		elem, rest, err := bind(t.Elem(), args)
		if err != nil {
			return reflect.Value{}, nil, err
		}
		ptr.Elem().Set(elem)
		return ptr, rest, nil
	}

	if len(args) == 0 {
		return reflect.Value{}, nil, fmt.Errorf("%w: expecting %v", ErrMissingArgument, t)
	}
	value := reflect.New(t).Elem()
	if err := parse(value, args[0]); err != nil {
		return reflect.Value{}, nil, fmt.Errorf("%w: %q as %v: %v", ErrBadArgument, args[0], t, err)
	}
	return value, args[1:], nil
}

func parsable(kind reflect.Kind) bool {
	switch kind {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func parse(value reflect.Value, str string) error {
	switch value.Kind() {

	case reflect.Bool:
		b, err := vars.ParseBool(str)
		if err != nil {
			return err
		}
		value.SetBool(b)

	case reflect.String:
		value.SetString(str)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(str, 10, value.Type().Bits())
		if err != nil {
			return err
		}
		value.SetInt(i)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(str, 10, value.Type().Bits())
		if err != nil {
			return err
		}
		value.SetUint(u)

	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(str, value.Type().Bits())
		if err != nil {
			return err
		}
		value.SetFloat(f)

	default:
		return fmt.Errorf("unsupported type %v", value.Type())
	}
	return nil
}
