// Package tuple defines the unit of flow between operators: an ordered
// sequence of Registers. This spec does not materialize a schema
// descriptor (spec §3.2) — operators assume callers build well-typed trees,
// so unlike the teacher's tuple.Tuple/TupleDescription pair, there is no
// schema object here at all.
package tuple

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/egotist0/DB-Operators/pkg/primitives"
	"github.com/egotist0/DB-Operators/pkg/register"
)

// Tuple is an ordered sequence of Registers, all flowing through one
// operator edge with the same arity and per-column variant.
type Tuple []register.Register

// At returns the register at column i. Panics if i is out of range — an
// out-of-bounds column reference is a construction-time programmer error
// (spec §7).
func (t Tuple) At(i int) register.Register {
	if i < 0 || i >= len(t) {
		panic(errOutOfRange(i, len(t)))
	}
	return t[i]
}

// Clone returns an independent copy of t. Registers are value types, so a
// shallow slice copy is sufficient to make the copy independent.
func (t Tuple) Clone() Tuple {
	out := make(Tuple, len(t))
	copy(out, t)
	return out
}

// Combine concatenates the columns of left and right into a single tuple,
// used by HashJoin to build its output row (left_tuple ++ right_tuple).
func Combine(left, right Tuple) Tuple {
	out := make(Tuple, 0, len(left)+len(right))
	out = append(out, left...)
	out = append(out, right...)
	return out
}

// Equals reports whether t and other have the same arity and are
// column-wise Register-equal.
func (t Tuple) Equals(other Tuple) bool {
	if len(t) != len(other) {
		return false
	}
	for i := range t {
		if !t[i].Equals(other[i]) {
			return false
		}
	}
	return true
}

// Less reports whether t sorts strictly before other in ascending
// tuple-lex order (spec §4.8): compare corresponding Registers left to
// right using their variant's order, first difference decides.
func (t Tuple) Less(other Tuple) bool {
	n := len(t)
	if len(other) < n {
		n = len(other)
	}
	for i := 0; i < n; i++ {
		if t[i].Equals(other[i]) {
			continue
		}
		return t[i].Less(other[i])
	}
	return len(t) < len(other)
}

// Hash returns a stable hash of t, folding together every column's Register
// hash the way the source's RegisterVectorHasher folds a vector<Register>:
// concatenate each column's hash bytes, then hash the concatenation. Used
// by the hash-based operators (HashJoin, HashAggregation, set algebra) to
// bucket composite keys before resolving collisions with Equals.
func (t Tuple) Hash() primitives.HashCode {
	d := xxhash.New()
	var buf [8]byte
	for _, r := range t {
		binary.LittleEndian.PutUint64(buf[:], uint64(r.Hash()))
		d.Write(buf[:])
	}
	return primitives.HashCode(d.Sum64())
}

// String renders t for diagnostics as comma-joined column values.
func (t Tuple) String() string {
	parts := make([]string, len(t))
	for i, r := range t {
		parts[i] = r.String()
	}
	return strings.Join(parts, ",")
}

func errOutOfRange(i, n int) string {
	return fmt.Sprintf("tuple: column index %d out of range [0, %d)", i, n)
}
