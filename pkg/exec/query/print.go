package query

import (
	"fmt"
	"io"

	"github.com/egotist0/DB-Operators/pkg/iterator"
	"github.com/egotist0/DB-Operators/pkg/tuple"
)

// Print is the sink operator: it formats each row from its child to a
// caller-supplied io.Writer and passes the child's Next result straight
// through, always producing an empty output tuple (spec §4.2, §6). Columns
// are comma-joined with no surrounding whitespace and each non-empty row
// ends in a newline; an empty row writes nothing at all, not even the
// newline.
type Print struct {
	*iterator.UnaryOperator
	w io.Writer
}

// NewPrint creates a Print operator writing child's rows to w.
func NewPrint(child iterator.Operator, w io.Writer) (*Print, error) {
	if w == nil {
		return nil, fmt.Errorf("query: sink writer cannot be nil")
	}

	p := &Print{w: w}
	base, err := iterator.NewUnaryOperator(child, p.readNext)
	if err != nil {
		return nil, err
	}
	p.UnaryOperator = base
	return p, nil
}

func (p *Print) readNext() (tuple.Tuple, error) {
	row, err := p.FetchNext()
	if err != nil || row == nil {
		return row, err
	}

	if len(row) > 0 {
		if _, err := io.WriteString(p.w, row.String()+"\n"); err != nil {
			return nil, fmt.Errorf("query: writing to sink: %w", err)
		}
	}
	return tuple.Tuple{}, nil
}
