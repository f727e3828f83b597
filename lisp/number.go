package lisp

import (
	"strconv"
	"strings"

	"github.com/fuzzyforest/shallot-strings/parser/token"
)

// Number is an integer or a floating point number.
type Number struct {
	i       int64
	f       float64
	isFloat bool
}

// NumberKind reads decimal integer and floating point literals.
var NumberKind = NewKind[Number]("number", parseNumber)

// Int returns a Value for the integer x.
func Int(x int64) Value {
	return NumberKind.Widen(Number{i: x})
}

// Float returns a Value for the floating point number x.
func Float(x float64) Value {
	return NumberKind.Widen(Number{f: x, isFloat: true})
}

func parseNumber(tok *token.Token) (Number, bool) {
	if tok.Type != token.ATOM || !looksNumeric(tok.Text) {
		return Number{}, false
	}
	if x, err := strconv.ParseInt(tok.Text, 10, 64); err == nil {
		return Number{i: x}, true
	}
	if strings.ContainsAny(tok.Text, "xXpP_") {
		return Number{}, false
	}
	x, err := strconv.ParseFloat(tok.Text, 64)
	if err != nil {
		return Number{}, false
	}
	return Number{f: x, isFloat: true}, true
}

// looksNumeric rejects words like "inf" and "nan" which strconv would
// otherwise accept.
func looksNumeric(s string) bool {
	s = strings.TrimLeft(s, "+-")
	s = strings.TrimPrefix(s, ".")
	return s != "" && s[0] >= '0' && s[0] <= '9'
}

// IsFloat reports whether n holds a floating point number.
func (n Number) IsFloat() bool {
	return n.isFloat
}

// Int returns n as an integer, truncating a float.
func (n Number) Int() int64 {
	if n.isFloat {
		return int64(n.f)
	}
	return n.i
}

// Float returns n as a floating point number.
func (n Number) Float() float64 {
	if n.isFloat {
		return n.f
	}
	return float64(n.i)
}

// Name implements Atom.
func (Number) Name() string {
	return "number"
}

func (n Number) String() string {
	if n.isFloat {
		return strconv.FormatFloat(n.f, 'g', -1, 64)
	}
	return strconv.FormatInt(n.i, 10)
}
