package iterator

import (
	"fmt"

	"github.com/egotist0/DB-Operators/pkg/tuple"
)

// UnaryOperator provides a base implementation for operators with a single
// child (Projection, Select, Sort, HashAggregation, Limit). It combines
// BaseOperator's caching logic with child management, eliminating
// boilerplate — grounded on the teacher's iterator.UnaryOperator.
type UnaryOperator struct {
	base  *BaseOperator
	child Operator
}

// NewUnaryOperator creates a unary operator base with the given child and
// read function.
func NewUnaryOperator(child Operator, readNext ReadNextFunc) (*UnaryOperator, error) {
	if child == nil {
		return nil, fmt.Errorf("iterator: child operator cannot be nil")
	}
	return &UnaryOperator{child: child, base: NewBaseOperator(readNext)}, nil
}

// FetchNext retrieves the next tuple from the child operator, or nil once
// the child is exhausted. It hides the Next/Row ceremony from concrete
// operators' readNext implementations.
func (u *UnaryOperator) FetchNext() (tuple.Tuple, error) {
	ok, err := u.child.Next()
	if err != nil {
		return nil, fmt.Errorf("iterator: fetching from child: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return u.child.Row(), nil
}

// Open opens the child operator and marks this operator as ready.
func (u *UnaryOperator) Open() error {
	if err := u.child.Open(); err != nil {
		return fmt.Errorf("iterator: opening child: %w", err)
	}
	u.base.MarkOpened()
	return nil
}

// Close closes the child operator and releases resources.
func (u *UnaryOperator) Close() error {
	if err := u.child.Close(); err != nil {
		return fmt.Errorf("iterator: closing child: %w", err)
	}
	return u.base.Close()
}

// Next returns the next tuple from the operator.
func (u *UnaryOperator) Next() (bool, error) {
	return u.base.Next()
}

// Row returns the current output tuple.
func (u *UnaryOperator) Row() tuple.Tuple {
	return u.base.Row()
}

// Child returns the child operator (useful for inspection/testing).
func (u *UnaryOperator) Child() Operator {
	return u.child
}
