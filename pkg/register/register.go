// Package register implements Register, the tagged scalar value that flows
// between every operator in the execution engine.
package register

import (
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/egotist0/DB-Operators/pkg/primitives"
)

// Kind identifies which variant a Register holds.
type Kind uint8

const (
	Int64Kind Kind = iota
	Char16Kind
)

func (k Kind) String() string {
	switch k {
	case Int64Kind:
		return "INT64"
	case Char16Kind:
		return "CHAR16"
	default:
		return "UNKNOWN"
	}
}

// Char16MaxLen is the maximum byte length of a Char16 register's payload.
const Char16MaxLen = 16

// Register is a tagged scalar: either a 64-bit signed integer or a string of
// at most Char16MaxLen bytes. It is a plain value type — copyable, with no
// heap allocation on the construction or comparison hot path.
type Register struct {
	kind Kind
	i    int64
	buf  [Char16MaxLen]byte
	n    uint8
}

// Int64 constructs an Int64-variant Register.
func Int64(v int64) Register {
	return Register{kind: Int64Kind, i: v}
}

// Char16 constructs a Char16-variant Register. Panics if value is longer
// than Char16MaxLen bytes — an oversized constant is a construction-time
// programmer error (spec §7).
func Char16(value string) Register {
	if len(value) > Char16MaxLen {
		panic(fmt.Sprintf("register: Char16 value %q exceeds %d bytes", value, Char16MaxLen))
	}
	r := Register{kind: Char16Kind, n: uint8(len(value))}
	copy(r.buf[:], value)
	return r
}

// Kind returns the variant held by r.
func (r Register) Kind() Kind {
	return r.kind
}

// AsInt64 returns the integer value of r. Panics if r is not an Int64
// register (programmer error, spec §7).
func (r Register) AsInt64() int64 {
	if r.kind != Int64Kind {
		panic(fmt.Sprintf("register: AsInt64 called on a %s register", r.kind))
	}
	return r.i
}

// AsString returns the string value of r. Panics if r is not a Char16
// register (programmer error, spec §7).
func (r Register) AsString() string {
	if r.kind != Char16Kind {
		panic(fmt.Sprintf("register: AsString called on a %s register", r.kind))
	}
	return string(r.buf[:r.n])
}

// Equals reports whether r and other hold the same variant and value.
// Equality is defined across variants and simply returns false when the
// variants differ (spec §3.1).
func (r Register) Equals(other Register) bool {
	if r.kind != other.kind {
		return false
	}
	if r.kind == Int64Kind {
		return r.i == other.i
	}
	return r.AsString() == other.AsString()
}

// Less reports whether r sorts strictly before other. Panics if the two
// registers do not share a variant — comparing across variants is a
// programmer error (spec §7, §9 OQ6).
func (r Register) Less(other Register) bool {
	r.assertSameKind(other)
	if r.kind == Int64Kind {
		return r.i < other.i
	}
	return r.AsString() < other.AsString()
}

// Compare evaluates r ⊙ other for the given predicate and returns the
// boolean result. Panics on a variant mismatch for ordering predicates,
// exactly like Less; Equals/NotEqual are always well-defined.
func (r Register) Compare(op primitives.Predicate, other Register) bool {
	switch op {
	case primitives.Equals:
		return r.Equals(other)
	case primitives.NotEqual:
		return !r.Equals(other)
	case primitives.LessThan:
		return r.Less(other)
	case primitives.LessThanOrEqual:
		return r.Less(other) || r.Equals(other)
	case primitives.GreaterThan:
		return other.Less(r)
	case primitives.GreaterThanOrEqual:
		return other.Less(r) || r.Equals(other)
	default:
		panic(fmt.Sprintf("register: unsupported predicate %v", op))
	}
}

func (r Register) assertSameKind(other Register) {
	if r.kind != other.kind {
		panic(fmt.Sprintf("register: cannot order a %s register against a %s register", r.kind, other.kind))
	}
}

// Hash returns a stable hash of r. The variant tag is folded into the hash
// so that an Int64 and a Char16 register can never collide by construction
// (spec §3.1, §9 OQ4 — stricter than the source, which hashes only the
// payload).
func (r Register) Hash() primitives.HashCode {
	d := xxhash.New()
	d.Write([]byte{byte(r.kind)})
	if r.kind == Int64Kind {
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], uint64(r.i))
		d.Write(buf[:])
	} else {
		d.Write(r.buf[:r.n])
	}
	return primitives.HashCode(d.Sum64())
}

// String renders r for diagnostics: Int64 as decimal, Char16 as its raw
// bytes, matching the rendering rules Print uses on the output path
// (spec §6).
func (r Register) String() string {
	if r.kind == Int64Kind {
		return strconv.FormatInt(r.i, 10)
	}
	return r.AsString()
}
