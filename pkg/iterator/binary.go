package iterator

import (
	"errors"
	"fmt"

	"github.com/egotist0/DB-Operators/pkg/tuple"
)

// BinaryOperator provides a base implementation for operators with two
// children (HashJoin, and the six set-algebra operators). It combines
// BaseOperator's caching logic with dual-child management, eliminating
// boilerplate — grounded on the teacher's iterator.BinaryOperator.
type BinaryOperator struct {
	base       *BaseOperator
	leftChild  Operator
	rightChild Operator
}

// NewBinaryOperator creates a binary operator base with the given children
// and read function.
func NewBinaryOperator(leftChild, rightChild Operator, readNext ReadNextFunc) (*BinaryOperator, error) {
	if leftChild == nil {
		return nil, fmt.Errorf("iterator: left child operator cannot be nil")
	}
	if rightChild == nil {
		return nil, fmt.Errorf("iterator: right child operator cannot be nil")
	}
	return &BinaryOperator{
		leftChild:  leftChild,
		rightChild: rightChild,
		base:       NewBaseOperator(readNext),
	}, nil
}

// FetchLeft retrieves the next tuple from the left child operator, or nil
// once the left child is exhausted.
func (b *BinaryOperator) FetchLeft() (tuple.Tuple, error) {
	t, err := fetchChild(b.leftChild)
	if err != nil {
		return nil, fmt.Errorf("iterator: fetching left child: %w", err)
	}
	return t, nil
}

// FetchRight retrieves the next tuple from the right child operator, or nil
// once the right child is exhausted.
func (b *BinaryOperator) FetchRight() (tuple.Tuple, error) {
	t, err := fetchChild(b.rightChild)
	if err != nil {
		return nil, fmt.Errorf("iterator: fetching right child: %w", err)
	}
	return t, nil
}

func fetchChild(child Operator) (tuple.Tuple, error) {
	ok, err := child.Next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return child.Row(), nil
}

// Open opens both child operators and marks this operator as ready.
func (b *BinaryOperator) Open() error {
	if err := b.leftChild.Open(); err != nil {
		return fmt.Errorf("iterator: opening left child: %w", err)
	}
	if err := b.rightChild.Open(); err != nil {
		return fmt.Errorf("iterator: opening right child: %w", err)
	}
	b.base.MarkOpened()
	return nil
}

// Close closes both child operators and releases resources, collecting
// errors from both children if both fail.
func (b *BinaryOperator) Close() error {
	var errs []error
	if err := b.leftChild.Close(); err != nil {
		errs = append(errs, fmt.Errorf("iterator: closing left child: %w", err))
	}
	if err := b.rightChild.Close(); err != nil {
		errs = append(errs, fmt.Errorf("iterator: closing right child: %w", err))
	}
	if err := b.base.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Next returns the next tuple from the operator.
func (b *BinaryOperator) Next() (bool, error) {
	return b.base.Next()
}

// Row returns the current output tuple.
func (b *BinaryOperator) Row() tuple.Tuple {
	return b.base.Row()
}

// LeftChild returns the left child operator (useful for inspection/testing).
func (b *BinaryOperator) LeftChild() Operator {
	return b.leftChild
}

// RightChild returns the right child operator (useful for inspection/testing).
func (b *BinaryOperator) RightChild() Operator {
	return b.rightChild
}
