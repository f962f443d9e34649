package debugs

import (
	"fmt"
	"reflect"

	"github.com/reusee/lox/exprs"
	"github.com/reusee/lox/tokens"
	"github.com/reusee/lox/values"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

func toStarlarkValue(v any) starlark.Value {
	switch v := v.(type) {

	case nil:
		return starlark.None
	case []byte:
		return starlark.Bytes(v)

	// runtime values
	case values.Nil:
		return starlark.None
	case values.Number:
		return starlark.Float(v)
	case values.String:
		return starlark.String(v)
	case values.Boolean:
		return starlark.Bool(v)

	// enums by name
	case tokens.Kind:
		return starlark.String(v.String())
	case exprs.UnaryOpKind:
		return starlark.String(v.String())
	case exprs.BinaryOpKind:
		return starlark.String(v.String())

	// tree nodes carry their variant name
	case exprs.Expr:
		value := reflect.ValueOf(v)
		if value.IsNil() {
			return starlark.None
		}
		d := structToStarlark(value.Elem())
		d.SetKey(starlark.String("Node"), starlark.String(value.Elem().Type().Name()))
		return d

	}

	value := reflect.ValueOf(v)
	switch value.Kind() {

	case reflect.Bool:
		return starlark.Bool(value.Bool())

	case reflect.String:
		return starlark.String(value.String())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return starlark.MakeInt64(value.Int())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return starlark.MakeUint64(value.Uint())

	case reflect.Float32, reflect.Float64:
		return starlark.Float(value.Float())

	case reflect.Slice, reflect.Array:
		elems := make([]starlark.Value, value.Len())
		for i := range elems {
			elems[i] = toStarlarkValue(value.Index(i).Interface())
		}
		return starlark.NewList(elems)

	case reflect.Map:
		d := starlark.NewDict(value.Len())
		iter := value.MapRange()
		for iter.Next() {
			d.SetKey(
				toStarlarkValue(iter.Key().Interface()),
				toStarlarkValue(iter.Value().Interface()),
			)
		}
		return d

	case reflect.Struct:
		return structToStarlark(value)

	case reflect.Pointer, reflect.Interface:
		elem := value.Elem()
		if !elem.IsValid() {
			return starlark.None
		}
		return toStarlarkValue(elem.Interface())

	case reflect.Func:
		return starlarkutil.MakeFunc("", value.Interface())

	}

	panic(fmt.Errorf("unsupported type for starlark: %T", v))
}

func structToStarlark(value reflect.Value) *starlark.Dict {
	typ := value.Type()
	d := starlark.NewDict(typ.NumField())
	for i := range typ.NumField() {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		d.SetKey(
			starlark.String(field.Name),
			toStarlarkValue(value.Field(i).Interface()),
		)
	}
	return d
}
