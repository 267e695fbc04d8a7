// Package setops implements the six bag/set-algebra operators: Union,
// UnionAll, Intersect, IntersectAll, Except, and ExceptAll.
package setops

import (
	stdsort "sort"

	"github.com/egotist0/DB-Operators/pkg/iterator"
	"github.com/egotist0/DB-Operators/pkg/logging"
	"github.com/egotist0/DB-Operators/pkg/tuple"
)

// largeBufferThreshold is the row count above which SetOp logs a Warn on
// materializing its output buffer (spec §1.1).
const largeBufferThreshold = 100_000

// kind selects which multiplicity formula a SetOp applies (spec §4.8).
type kind int

const (
	union kind = iota
	unionAll
	intersect
	intersectAll
	except
	exceptAll
)

// String names kind the way callers configured it, so log lines tag the
// operator tree node that actually produced them rather than the shared
// "SetOp" implementation type.
func (k kind) String() string {
	switch k {
	case union:
		return "Union"
	case unionAll:
		return "UnionAll"
	case intersect:
		return "Intersect"
	case intersectAll:
		return "IntersectAll"
	case except:
		return "Except"
	case exceptAll:
		return "ExceptAll"
	default:
		return "SetOp"
	}
}

// SetOp is the shared blocking, binary-input, unary-output implementation
// behind all six set-algebra operators. On Open it drains both
// children fully into per-tuple multiplicity counts, applies the
// configured formula to derive each distinct tuple's output multiplicity,
// and streams the result in ascending tuple-lex order.
type SetOp struct {
	*iterator.BinaryOperator
	kind    kind
	results *iterator.SliceIterator[tuple.Tuple]
}

func newSetOp(left, right iterator.Operator, k kind) (*SetOp, error) {
	s := &SetOp{kind: k}
	base, err := iterator.NewBinaryOperator(left, right, s.readNext)
	if err != nil {
		return nil, err
	}
	s.BinaryOperator = base
	return s, nil
}

// NewUnion returns 1 for a tuple present on either side (set union).
func NewUnion(left, right iterator.Operator) (*SetOp, error) { return newSetOp(left, right, union) }

// NewUnionAll returns L(t)+R(t) copies of every tuple (bag union).
func NewUnionAll(left, right iterator.Operator) (*SetOp, error) {
	return newSetOp(left, right, unionAll)
}

// NewIntersect returns 1 for a tuple present on both sides.
func NewIntersect(left, right iterator.Operator) (*SetOp, error) {
	return newSetOp(left, right, intersect)
}

// NewIntersectAll returns min(L(t), R(t)) copies of every tuple.
func NewIntersectAll(left, right iterator.Operator) (*SetOp, error) {
	return newSetOp(left, right, intersectAll)
}

// NewExcept returns 1 for a tuple present on the left but absent from the
// right.
func NewExcept(left, right iterator.Operator) (*SetOp, error) { return newSetOp(left, right, except) }

// NewExceptAll returns max(L(t)-R(t), 0) copies of every tuple.
func NewExceptAll(left, right iterator.Operator) (*SetOp, error) {
	return newSetOp(left, right, exceptAll)
}

func (s *SetOp) Open() error {
	log := logging.WithOperator(s.kind.String())
	log.Debug("open")

	if err := s.BinaryOperator.Open(); err != nil {
		return err
	}

	leftCounts, err := s.countSide(s.FetchLeft)
	if err != nil {
		return err
	}
	rightCounts, err := s.countSide(s.FetchRight)
	if err != nil {
		return err
	}

	var rows []tuple.Tuple
	seen := tuple.NewKeyMap[bool]()
	for _, key := range leftCounts.Keys() {
		l, _ := leftCounts.Get(key)
		r, _ := rightCounts.Get(key)
		n := s.multiplicity(l, r)
		if n == 0 && (l > 0 || r > 0) {
			logging.WithGroupKey(key.String()).Debug("key dropped by multiplicity formula", "left", l, "right", r)
		}
		rows = appendCopies(rows, key, n)
		seen.Set(key, true)
	}
	for _, key := range rightCounts.Keys() {
		if _, ok := seen.Get(key); ok {
			continue
		}
		r, _ := rightCounts.Get(key)
		n := s.multiplicity(0, r)
		if n == 0 {
			logging.WithGroupKey(key.String()).Debug("key dropped by multiplicity formula", "left", 0, "right", r)
		}
		rows = appendCopies(rows, key, n)
	}

	stdsort.SliceStable(rows, func(i, j int) bool { return rows[i].Less(rows[j]) })

	if len(rows) > largeBufferThreshold {
		log.Warn("materialized unusually large buffer", "rows", len(rows))
	}
	log.Debug("materialized", "rows", len(rows))

	s.results = iterator.NewSliceIterator(rows)
	return nil
}

// Close releases the output buffer and both child operators.
func (s *SetOp) Close() error {
	logging.WithOperator(s.kind.String()).Debug("close")
	s.results = nil
	return s.BinaryOperator.Close()
}

func (s *SetOp) countSide(fetch func() (tuple.Tuple, error)) (*tuple.KeyMap[int], error) {
	counts := tuple.NewKeyMap[int]()
	for {
		row, err := fetch()
		if err != nil {
			return nil, err
		}
		if row == nil {
			return counts, nil
		}
		n, _ := counts.Get(row)
		counts.Set(row, n+1)
	}
}

func (s *SetOp) multiplicity(l, r int) int {
	switch s.kind {
	case union:
		if l+r > 0 {
			return 1
		}
		return 0
	case unionAll:
		return l + r
	case intersect:
		if l > 0 && r > 0 {
			return 1
		}
		return 0
	case intersectAll:
		return min(l, r)
	case except:
		if l > 0 && r == 0 {
			return 1
		}
		return 0
	case exceptAll:
		return max(l-r, 0)
	default:
		return 0
	}
}

func appendCopies(rows []tuple.Tuple, t tuple.Tuple, n int) []tuple.Tuple {
	for i := 0; i < n; i++ {
		rows = append(rows, t.Clone())
	}
	return rows
}

func (s *SetOp) readNext() (tuple.Tuple, error) {
	if !s.results.HasNext() {
		return nil, nil
	}
	return s.results.Next()
}
