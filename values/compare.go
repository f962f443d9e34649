package values

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Truthy: nil is false, booleans are themselves, numbers are true unless zero, everything else is true.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case Nil:
		return false
	case Boolean:
		return bool(v)
	case Number:
		return v != 0
	case String:
		return true
	}
	panic(fmt.Errorf("unknown value type: %T", v))
}

// Equal never fails. A number and a string are equal when the string parses to the same number.
func Equal(a, b Value) bool {
	switch a := a.(type) {

	case Nil:
		_, ok := b.(Nil)
		return ok

	case Number:
		switch b := b.(type) {
		case Number:
			return a == b
		case String:
			return numberEqualsString(a, b)
		}
		return false

	case String:
		switch b := b.(type) {
		case String:
			return a == b
		case Number:
			return numberEqualsString(b, a)
		}
		return false

	case Boolean:
		b, ok := b.(Boolean)
		return ok && a == b

	}
	panic(fmt.Errorf("unknown value type: %T", a))
}

// numberEqualsString accepts decimal notation only, hexadecimal floats never match.
func numberEqualsString(n Number, s String) bool {
	unsigned := strings.TrimPrefix(strings.TrimPrefix(string(s), "+"), "-")
	if len(unsigned) > 1 && unsigned[0] == '0' && (unsigned[1] == 'x' || unsigned[1] == 'X') {
		return false
	}
	f, err := strconv.ParseFloat(string(s), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return false
	}
	return float64(n) == f
}
