package iterator

import "github.com/egotist0/DB-Operators/pkg/tuple"

// Operator is the uniform iterator contract every physical operator
// implements (spec §4.1). The call sequence within one instance must be
// Open (Next)* Close; operators are not required to be re-openable, unlike
// the teacher's DbIterator, which also exposes Rewind.
type Operator interface {
	// Open performs one-shot initialization, recursively opening children.
	// Pipeline-breakers do their blocking materialization work here.
	Open() error

	// Next advances by one tuple. Returns true if a new output tuple is
	// available via Row; false once the input is exhausted, from which
	// point every subsequent call also returns false.
	Next() (bool, error)

	// Row returns the current tuple. Only meaningful immediately after a
	// Next that returned true. Sinks with no output return an empty tuple.
	Row() tuple.Tuple

	// Close releases resources and recursively closes children, exactly
	// once. Calling Next after Close is undefined.
	Close() error
}
