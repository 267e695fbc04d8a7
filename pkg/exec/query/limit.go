package query

import (
	"fmt"

	"github.com/egotist0/DB-Operators/pkg/iterator"
	"github.com/egotist0/DB-Operators/pkg/tuple"
)

// Limit caps output at n rows after skipping the first offset rows from its
// child (SPEC_FULL.md §4.9, supplemented — not present in the distilled
// spec, grounded on the teacher's query.LimitOperator). Once n rows have
// been produced it returns false forever without pulling further from the
// child.
type Limit struct {
	*iterator.UnaryOperator
	n, offset int
	skipped   int
	emitted   int
}

// NewLimit creates a Limit operator over child. n must be non-negative;
// offset must be non-negative.
func NewLimit(child iterator.Operator, n, offset int) (*Limit, error) {
	if n < 0 {
		return nil, fmt.Errorf("query: limit must be non-negative, got %d", n)
	}
	if offset < 0 {
		return nil, fmt.Errorf("query: offset must be non-negative, got %d", offset)
	}

	l := &Limit{n: n, offset: offset}
	base, err := iterator.NewUnaryOperator(child, l.readNext)
	if err != nil {
		return nil, err
	}
	l.UnaryOperator = base
	return l, nil
}

func (l *Limit) Open() error {
	if err := l.UnaryOperator.Open(); err != nil {
		return err
	}
	l.skipped = 0
	l.emitted = 0
	return nil
}

func (l *Limit) readNext() (tuple.Tuple, error) {
	for l.skipped < l.offset {
		row, err := l.FetchNext()
		if err != nil {
			return nil, err
		}
		if row == nil {
			return nil, nil
		}
		l.skipped++
	}

	if l.emitted >= l.n {
		return nil, nil
	}

	row, err := l.FetchNext()
	if err != nil || row == nil {
		return row, err
	}
	l.emitted++
	return row, nil
}
