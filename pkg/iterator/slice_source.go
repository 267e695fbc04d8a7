package iterator

import (
	"fmt"

	"github.com/egotist0/DB-Operators/pkg/tuple"
)

// SliceSource is a leaf Operator over an in-memory []tuple.Tuple. Source
// operators are caller-supplied per spec §2 and not otherwise implemented
// by this module; SliceSource exists purely as a convenience for tests and
// simple callers who already have their tuples in memory, grounded on
// SliceIterator's slice+index idiom.
type SliceSource struct {
	rows   []tuple.Tuple
	pos    int
	opened bool
}

// NewSliceSource wraps rows as a leaf Operator. rows is not copied; the
// caller must not mutate it while the source is in use.
func NewSliceSource(rows []tuple.Tuple) *SliceSource {
	return &SliceSource{rows: rows}
}

func (s *SliceSource) Open() error {
	s.pos = 0
	s.opened = true
	return nil
}

func (s *SliceSource) Next() (bool, error) {
	if !s.opened {
		return false, fmt.Errorf("iterator: SliceSource.Next called before Open")
	}
	if s.pos >= len(s.rows) {
		return false, nil
	}
	s.pos++
	return true, nil
}

func (s *SliceSource) Row() tuple.Tuple {
	if s.pos == 0 || s.pos > len(s.rows) {
		return nil
	}
	return s.rows[s.pos-1]
}

func (s *SliceSource) Close() error {
	s.opened = false
	return nil
}
