// Package join implements HashJoin, the equi-join operator.
package join

import (
	"fmt"

	"github.com/egotist0/DB-Operators/pkg/iterator"
	"github.com/egotist0/DB-Operators/pkg/logging"
	"github.com/egotist0/DB-Operators/pkg/primitives"
	"github.com/egotist0/DB-Operators/pkg/tuple"
)

// largeBufferThreshold is the row count above which HashJoin logs a Warn on
// materializing its build table (spec §1.1).
const largeBufferThreshold = 100_000

// HashJoin is a blocking equi-join: it builds a hash table over the LEFT
// child keyed by leftColumn, then streams the RIGHT child and probes the
// table by rightColumn, emitting tuple.Combine(left, right) per match
// (spec §4.6). Building on the left rather than the conventional
// smaller-relation side, and letting a later left row silently overwrite
// an earlier one under the same key rather than chaining, both match the
// source's regs_map[key] = registers assignment exactly (spec §9 OQ3) —
// this join therefore returns at most one match per right row, not a full
// cross-product of duplicate keys.
type HashJoin struct {
	*iterator.BinaryOperator
	leftColumn, rightColumn primitives.ColumnID
	build                   *tuple.KeyMap[tuple.Tuple]
}

// NewHashJoin creates a HashJoin building its hash table from left keyed
// by leftColumn, and probing with right keyed by rightColumn.
func NewHashJoin(left, right iterator.Operator, leftColumn, rightColumn primitives.ColumnID) (*HashJoin, error) {
	hj := &HashJoin{leftColumn: leftColumn, rightColumn: rightColumn}
	base, err := iterator.NewBinaryOperator(left, right, hj.readNext)
	if err != nil {
		return nil, err
	}
	hj.BinaryOperator = base
	return hj, nil
}

func (hj *HashJoin) Open() error {
	log := logging.WithOperator("HashJoin")
	log.Debug("open")

	if err := hj.BinaryOperator.Open(); err != nil {
		return err
	}

	hj.build = tuple.NewKeyMap[tuple.Tuple]()
	for {
		row, err := hj.FetchLeft()
		if err != nil {
			return fmt.Errorf("join: building hash table: %w", err)
		}
		if row == nil {
			break
		}
		key := tuple.Tuple{row.At(int(hj.leftColumn))}
		hj.build.Set(key, row)
	}

	if hj.build.Len() > largeBufferThreshold {
		log.Warn("materialized unusually large buffer", "rows", hj.build.Len())
	}
	log.Debug("build table materialized", "rows", hj.build.Len())
	return nil
}

// Close releases the build table and both child operators.
func (hj *HashJoin) Close() error {
	logging.WithOperator("HashJoin").Debug("close")
	hj.build = nil
	return hj.BinaryOperator.Close()
}

func (hj *HashJoin) readNext() (tuple.Tuple, error) {
	for {
		right, err := hj.FetchRight()
		if err != nil || right == nil {
			return right, err
		}

		key := tuple.Tuple{right.At(int(hj.rightColumn))}
		left, ok := hj.build.Get(key)
		if !ok {
			continue
		}
		return tuple.Combine(left, right), nil
	}
}
