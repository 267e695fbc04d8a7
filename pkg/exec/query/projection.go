package query

import (
	"fmt"

	"github.com/egotist0/DB-Operators/pkg/iterator"
	"github.com/egotist0/DB-Operators/pkg/primitives"
	"github.com/egotist0/DB-Operators/pkg/tuple"
)

// Projection outputs a caller-chosen subset (and order, and repetition) of
// its child's columns per row (spec §4.3). Columns may repeat or be
// reordered; there is no schema to validate against, so any index within
// range of the child's arity is accepted.
type Projection struct {
	*iterator.UnaryOperator
	columns []primitives.ColumnID
}

// NewProjection creates a Projection operator that outputs the given
// columns, in order, from each row produced by child.
func NewProjection(child iterator.Operator, columns []primitives.ColumnID) (*Projection, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("query: projection must keep at least one column")
	}

	p := &Projection{columns: columns}
	base, err := iterator.NewUnaryOperator(child, p.readNext)
	if err != nil {
		return nil, err
	}
	p.UnaryOperator = base
	return p, nil
}

func (p *Projection) readNext() (tuple.Tuple, error) {
	row, err := p.FetchNext()
	if err != nil || row == nil {
		return row, err
	}

	out := make(tuple.Tuple, len(p.columns))
	for i, col := range p.columns {
		out[i] = row.At(int(col))
	}
	return out, nil
}
