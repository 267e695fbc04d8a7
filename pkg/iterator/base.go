package iterator

import (
	"fmt"

	"github.com/egotist0/DB-Operators/pkg/tuple"
)

// ReadNextFunc produces the next output tuple for an operator, or nil (with
// a nil error) once the operator is exhausted. It is the moral equivalent
// of the teacher's ReadNextFunc, adapted to this module's Operator
// interface: instead of *tuple.Tuple driving a separate HasNext/Next pair,
// a nil Tuple here directly signals end-of-input to BaseOperator.Next.
type ReadNextFunc func() (tuple.Tuple, error)

// BaseOperator implements the caching/state-machine plumbing shared by
// every non-leaf operator: tracking whether Open has been called, holding
// the current row, and turning ReadNextFunc's nil-means-done convention
// into the Next() (bool, error) contract of spec §4.1.
//
// It is grounded on the teacher's execution.BaseIterator lookahead-caching
// base, minus the lookahead itself: this protocol has no separate HasNext,
// so there is nothing to look ahead into before the caller asks for it.
type BaseOperator struct {
	row      tuple.Tuple
	opened   bool
	finished bool
	readNext ReadNextFunc
}

// NewBaseOperator creates a base operator around the given read function.
// The operator starts closed; MarkOpened must be called before Next.
func NewBaseOperator(readNext ReadNextFunc) *BaseOperator {
	return &BaseOperator{readNext: readNext}
}

// Next advances the operator by one tuple, per spec §4.1.
func (b *BaseOperator) Next() (bool, error) {
	if !b.opened {
		return false, fmt.Errorf("iterator: Next called before Open")
	}
	if b.finished {
		return false, nil
	}

	row, err := b.readNext()
	if err != nil {
		return false, err
	}
	if row == nil {
		b.finished = true
		b.row = nil
		return false, nil
	}

	b.row = row
	return true, nil
}

// Row returns the tuple produced by the most recent successful Next.
func (b *BaseOperator) Row() tuple.Tuple {
	return b.row
}

// MarkOpened resets the operator to a fresh, opened state.
func (b *BaseOperator) MarkOpened() {
	b.opened = true
	b.finished = false
	b.row = nil
}

// Close releases the cached row and marks the operator closed.
func (b *BaseOperator) Close() error {
	b.row = nil
	b.opened = false
	b.finished = true
	return nil
}
