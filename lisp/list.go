package lisp

import "strings"

// List is an immutable sequence of values.
type List struct {
	cells []Value
}

// ListKind holds lists.  Lists are built by the reader and by functions,
// never parsed from a single token.
var ListKind = NewKind[*List]("list", nil)

// NewList returns a Value for a list of the given cells.  The cells are
// copied.
func NewList(cells ...Value) Value {
	return ListKind.Widen(&List{cells: append([]Value(nil), cells...)})
}

// Nil returns the empty list.
func Nil() Value {
	return NewList()
}

// IsNil reports whether v is the empty list.
func IsNil(v Value) bool {
	lis, ok := ListKind.Narrow(v)
	return ok && lis.Len() == 0
}

// Len returns the number of cells in lis.
func (lis *List) Len() int {
	return len(lis.cells)
}

// At returns cell i of lis.
func (lis *List) At(i int) Value {
	return lis.cells[i]
}

// Cells returns a copy of the cells of lis.
func (lis *List) Cells() []Value {
	return append([]Value(nil), lis.cells...)
}

// Name implements Atom.
func (*List) Name() string {
	return "list"
}

// Equal implements Equaler.
func (lis *List) Equal(other Atom) bool {
	o, ok := other.(*List)
	if !ok || len(o.cells) != len(lis.cells) {
		return false
	}
	for i := range lis.cells {
		if !Equal(lis.cells[i], o.cells[i]) {
			return false
		}
	}
	return true
}

func (lis *List) String() string {
	var buf strings.Builder
	buf.WriteString("(")
	for i, c := range lis.cells {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(c.String())
	}
	buf.WriteString(")")
	return buf.String()
}
