// Package aggregate implements HashAggregation, the blocking GROUP BY
// operator.
package aggregate

import (
	stdsort "sort"

	"github.com/egotist0/DB-Operators/pkg/iterator"
	"github.com/egotist0/DB-Operators/pkg/logging"
	"github.com/egotist0/DB-Operators/pkg/primitives"
	"github.com/egotist0/DB-Operators/pkg/register"
	"github.com/egotist0/DB-Operators/pkg/tuple"
)

// largeBufferThreshold is the group count above which HashAggregation logs
// a Warn on materializing its group table (spec §1.1).
const largeBufferThreshold = 100_000

// Func names an aggregate function.
type Func int

const (
	Min Func = iota
	Max
	Sum
	Count
)

// Aggregate is one configured aggregate: apply Func to Column, per group.
type Aggregate struct {
	Func   Func
	Column primitives.ColumnID
}

// HashAggregation groups its child's rows by the tuple of GroupBy columns
// and computes Aggregates per group, emitting one output row per group in
// ascending group-key tuple-lex order (spec §4.7). Output column layout is
// [g0, ..., gk-1, f0, f1, ...] in configured order.
//
// A group-by list of zero columns is not a special case here: it is one
// implicit group whose key is the empty tuple, so its accumulators are
// exactly the same per-group state every other group uses. The source
// handled this by keeping MIN/MAX in a pair of ungrouped globals that
// ignored group_by_attrs entirely while SUM/COUNT stayed correctly
// per-group (spec §9 OQ5) — collapsing both onto one map keyed by the
// (possibly empty) group tuple removes that split.
type HashAggregation struct {
	*iterator.UnaryOperator
	groupBy []primitives.ColumnID
	aggs    []Aggregate
	results *iterator.SliceIterator[tuple.Tuple]
}

type accumulator struct {
	min, max *register.Register
	sum      int64
	count    int64
}

// NewHashAggregation creates a HashAggregation grouping by groupBy and
// computing aggs per group. An empty groupBy computes a single group over
// the whole input.
func NewHashAggregation(child iterator.Operator, groupBy []primitives.ColumnID, aggs []Aggregate) (*HashAggregation, error) {
	a := &HashAggregation{groupBy: groupBy, aggs: aggs}
	base, err := iterator.NewUnaryOperator(child, a.readNext)
	if err != nil {
		return nil, err
	}
	a.UnaryOperator = base
	return a, nil
}

func (a *HashAggregation) Open() error {
	log := logging.WithOperator("HashAggregation")
	log.Debug("open")

	if err := a.UnaryOperator.Open(); err != nil {
		return err
	}

	groups := tuple.NewKeyMap[*accumulator]()
	for {
		row, err := a.FetchNext()
		if err != nil {
			return err
		}
		if row == nil {
			break
		}

		key := a.groupKey(row)
		acc, ok := groups.Get(key)
		if !ok {
			acc = &accumulator{}
			groups.Set(key, acc)
			logging.WithGroupKey(key.String()).Debug("group opened")
		}
		a.merge(acc, row)
	}

	keys := groups.Keys()
	rows := make([]tuple.Tuple, len(keys))
	for i, key := range keys {
		acc, _ := groups.Get(key)
		rows[i] = a.output(key, acc)
	}
	stdsort.SliceStable(rows, func(i, j int) bool { return rows[i].Less(rows[j]) })

	if groups.Len() > largeBufferThreshold {
		log.Warn("materialized unusually large buffer", "groups", groups.Len())
	}
	log.Debug("materialized", "groups", groups.Len())

	a.results = iterator.NewSliceIterator(rows)
	return nil
}

// Close releases the materialized group rows and the child operator.
func (a *HashAggregation) Close() error {
	logging.WithOperator("HashAggregation").Debug("close")
	a.results = nil
	return a.UnaryOperator.Close()
}

func (a *HashAggregation) groupKey(row tuple.Tuple) tuple.Tuple {
	key := make(tuple.Tuple, len(a.groupBy))
	for i, col := range a.groupBy {
		key[i] = row.At(int(col))
	}
	return key
}

func (a *HashAggregation) merge(acc *accumulator, row tuple.Tuple) {
	acc.count++
	for _, f := range a.aggs {
		val := row.At(int(f.Column))
		switch f.Func {
		case Min:
			if acc.min == nil || val.Less(*acc.min) {
				v := val
				acc.min = &v
			}
		case Max:
			if acc.max == nil || acc.max.Less(val) {
				v := val
				acc.max = &v
			}
		case Sum:
			acc.sum += val.AsInt64()
		case Count:
			// counted once per row above, regardless of which aggregate
			// triggers it.
		}
	}
}

func (a *HashAggregation) output(key tuple.Tuple, acc *accumulator) tuple.Tuple {
	out := make(tuple.Tuple, 0, len(key)+len(a.aggs))
	out = append(out, key...)
	for _, f := range a.aggs {
		switch f.Func {
		case Min:
			out = append(out, *acc.min)
		case Max:
			out = append(out, *acc.max)
		case Sum:
			out = append(out, register.Int64(acc.sum))
		case Count:
			out = append(out, register.Int64(acc.count))
		}
	}
	return out
}

func (a *HashAggregation) readNext() (tuple.Tuple, error) {
	if !a.results.HasNext() {
		return nil, nil
	}
	return a.results.Next()
}
