package primitives

import "math"

// ColumnID identifies a column within a tuple by ordinal position.
type ColumnID uint32

// HashCode represents a hash value used for fast comparisons or lookups
// in the hash-based operators (HashJoin, HashAggregation, set algebra).
type HashCode uint64

// InvalidColumnID is the sentinel value for an unset column reference.
const InvalidColumnID ColumnID = math.MaxUint32
