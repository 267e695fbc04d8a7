// Package sort implements the blocking, multi-key Sort operator.
package sort

import (
	stdsort "sort"

	"github.com/egotist0/DB-Operators/pkg/iterator"
	"github.com/egotist0/DB-Operators/pkg/logging"
	"github.com/egotist0/DB-Operators/pkg/primitives"
	"github.com/egotist0/DB-Operators/pkg/tuple"
)

// largeBufferThreshold is the row count above which Sort logs a Warn on
// materializing its buffer (spec §1.1).
const largeBufferThreshold = 100_000

// Criterion is one sort key: a column and its direction. Sort honors every
// criterion in the list regardless of direction (spec §9 OQ2) — the
// source's Sort::next only called std::sort at all when a criterion's desc
// flag was set, silently leaving ascending-only sort specs unsorted; here
// every criterion, ascending or descending, participates.
type Criterion struct {
	Column primitives.ColumnID
	Desc   bool
}

// Sort materializes its entire child, orders the result by criteria using
// a stable sort (so rows tying on every criterion keep their input
// relative order), then streams the sorted rows. Blocking: the first
// output row is only available once the child is fully drained (spec §4.5).
type Sort struct {
	*iterator.UnaryOperator
	criteria []Criterion
	sorted   *iterator.SliceIterator[tuple.Tuple]
}

// NewSort creates a Sort operator ordering child's rows by criteria, in
// the order given (criteria[0] is the primary key).
func NewSort(child iterator.Operator, criteria []Criterion) (*Sort, error) {
	s := &Sort{criteria: criteria}
	base, err := iterator.NewUnaryOperator(child, s.readNext)
	if err != nil {
		return nil, err
	}
	s.UnaryOperator = base
	return s, nil
}

func (s *Sort) Open() error {
	log := logging.WithOperator("Sort")
	log.Debug("open")

	if err := s.UnaryOperator.Open(); err != nil {
		return err
	}

	var rows []tuple.Tuple
	for {
		row, err := s.FetchNext()
		if err != nil {
			return err
		}
		if row == nil {
			break
		}
		rows = append(rows, row)
	}

	stdsort.SliceStable(rows, func(i, j int) bool { return s.less(rows[i], rows[j]) })
	s.sorted = iterator.NewSliceIterator(rows)

	if len(rows) > largeBufferThreshold {
		log.Warn("materialized unusually large buffer", "rows", len(rows))
	}
	log.Debug("materialized", "rows", len(rows))
	return nil
}

// Close releases the sorted buffer and the child operator.
func (s *Sort) Close() error {
	logging.WithOperator("Sort").Debug("close")
	s.sorted = nil
	return s.UnaryOperator.Close()
}

func (s *Sort) less(a, b tuple.Tuple) bool {
	for _, c := range s.criteria {
		ra, rb := a.At(int(c.Column)), b.At(int(c.Column))
		if ra.Equals(rb) {
			continue
		}
		if c.Desc {
			return rb.Less(ra)
		}
		return ra.Less(rb)
	}
	return false
}

func (s *Sort) readNext() (tuple.Tuple, error) {
	if !s.sorted.HasNext() {
		return nil, nil
	}
	return s.sorted.Next()
}
