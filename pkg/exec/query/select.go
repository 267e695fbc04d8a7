package query

import (
	"fmt"

	"github.com/egotist0/DB-Operators/pkg/iterator"
	"github.com/egotist0/DB-Operators/pkg/tuple"
)

// Select filters rows against a Predicate, passing through only those that
// match. It loops over the child until a matching row is found or the
// child is exhausted (spec §4.4, §9 OQ1) — the source's Select::next had a
// stray return true outside the if that matched the predicate, which would
// have emitted every row regardless of match; the loop here is the fix,
// re-testing the predicate on every candidate row instead of on only the
// first one.
type Select struct {
	*iterator.UnaryOperator
	predicate Predicate
}

// NewSelect creates a Select operator filtering child's rows by predicate.
func NewSelect(child iterator.Operator, predicate Predicate) (*Select, error) {
	if predicate == nil {
		return nil, fmt.Errorf("query: predicate cannot be nil")
	}

	s := &Select{predicate: predicate}
	base, err := iterator.NewUnaryOperator(child, s.readNext)
	if err != nil {
		return nil, err
	}
	s.UnaryOperator = base
	return s, nil
}

func (s *Select) readNext() (tuple.Tuple, error) {
	for {
		row, err := s.FetchNext()
		if err != nil || row == nil {
			return row, err
		}
		if s.predicate.Eval(row) {
			return row, nil
		}
	}
}
