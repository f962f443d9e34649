package values

import (
	"math"
	"strconv"
)

// Value is one of Number, String, Boolean or Nil.
type Value interface {
	Kind() string
	String() string
	isValue()
}

type Number float64

type String string

type Boolean bool

type Nil struct{}

var (
	_ Value = Number(0)
	_ Value = String("")
	_ Value = Boolean(false)
	_ Value = Nil{}
)

func (Number) isValue()  {}
func (String) isValue()  {}
func (Boolean) isValue() {}
func (Nil) isValue()     {}

func (Number) Kind() string  { return "number" }
func (String) Kind() string  { return "string" }
func (Boolean) Kind() string { return "boolean" }
func (Nil) Kind() string     { return "nil" }

func (n Number) String() string {
	f := float64(n)
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (s String) String() string {
	return string(s)
}

func (b Boolean) String() string {
	return strconv.FormatBool(bool(b))
}

func (Nil) String() string {
	return "nil"
}
