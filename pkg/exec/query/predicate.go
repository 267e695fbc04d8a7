// Package query implements the streaming, non-blocking operators: Print,
// Projection, Select, and Limit.
package query

import (
	"fmt"

	"github.com/egotist0/DB-Operators/pkg/primitives"
	"github.com/egotist0/DB-Operators/pkg/register"
	"github.com/egotist0/DB-Operators/pkg/tuple"
)

// Predicate evaluates a boolean condition against a row. Select accepts any
// Predicate, which is what lets it cover all three shapes the spec names
// (§4.4) — column-vs-Int64-constant, column-vs-Char16-constant, and
// column-vs-column — through a single operator body, the way the source's
// three PredicateAttribute* structs were really three constructors for one
// evaluation shape.
type Predicate interface {
	Eval(row tuple.Tuple) bool
	fmt.Stringer
}

// columnConstant compares one column against a fixed Register, covering the
// predicate's Int64-constant and Char16-constant shapes: the constant's
// Kind determines which shape it is, so both are the same struct.
type columnConstant struct {
	column   primitives.ColumnID
	op       primitives.Predicate
	constant register.Register
}

// NewColumnConstantPredicate builds a Select predicate comparing column
// against a fixed Register value. Use register.Int64 or register.Char16 to
// build the constant.
func NewColumnConstantPredicate(column primitives.ColumnID, op primitives.Predicate, constant register.Register) Predicate {
	return columnConstant{column: column, op: op, constant: constant}
}

func (p columnConstant) Eval(row tuple.Tuple) bool {
	return row.At(int(p.column)).Compare(p.op, p.constant)
}

func (p columnConstant) String() string {
	return fmt.Sprintf("col[%d] %s %s", p.column, p.op, p.constant)
}

// columnColumn compares two columns of the same row against each other,
// covering the predicate's column-vs-column shape.
type columnColumn struct {
	left  primitives.ColumnID
	op    primitives.Predicate
	right primitives.ColumnID
}

// NewColumnColumnPredicate builds a Select predicate comparing two columns
// of the same input row.
func NewColumnColumnPredicate(left primitives.ColumnID, op primitives.Predicate, right primitives.ColumnID) Predicate {
	return columnColumn{left: left, op: op, right: right}
}

func (p columnColumn) Eval(row tuple.Tuple) bool {
	return row.At(int(p.left)).Compare(p.op, row.At(int(p.right)))
}

func (p columnColumn) String() string {
	return fmt.Sprintf("col[%d] %s col[%d]", p.left, p.op, p.right)
}
