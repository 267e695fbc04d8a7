package setops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/egotist0/DB-Operators/pkg/iterator"
	"github.com/egotist0/DB-Operators/pkg/register"
	"github.com/egotist0/DB-Operators/pkg/tuple"
)

func ints(vals ...int64) []tuple.Tuple {
	out := make([]tuple.Tuple, len(vals))
	for i, v := range vals {
		out[i] = tuple.Tuple{register.Int64(v)}
	}
	return out
}

func drain(t *testing.T, s *SetOp) []int64 {
	t.Helper()
	require.NoError(t, s.Open())
	var got []int64
	for {
		ok, err := s.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		got = append(got, s.Row().At(0).AsInt64())
	}
	require.NoError(t, s.Close())
	return got
}

func TestUnionDeduplicates(t *testing.T) {
	left := iterator.NewSliceSource(ints(1, 2, 2))
	right := iterator.NewSliceSource(ints(2, 3))
	u, err := NewUnion(left, right)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, drain(t, u))
}

func TestUnionAllPreservesMultiplicity(t *testing.T) {
	left := iterator.NewSliceSource(ints(1, 2, 2))
	right := iterator.NewSliceSource(ints(2, 3))
	u, err := NewUnionAll(left, right)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 2, 2, 3}, drain(t, u))
}

func TestIntersectIsSetSemantics(t *testing.T) {
	left := iterator.NewSliceSource(ints(1, 2, 2, 3))
	right := iterator.NewSliceSource(ints(2, 2, 3, 3, 3))
	i, err := NewIntersect(left, right)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3}, drain(t, i))
}

func TestIntersectAllTakesMin(t *testing.T) {
	left := iterator.NewSliceSource(ints(1, 2, 2, 3))
	right := iterator.NewSliceSource(ints(2, 2, 2, 3, 3))
	i, err := NewIntersectAll(left, right)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 2, 3}, drain(t, i))
}

func TestExceptRemovesAnythingPresentOnRight(t *testing.T) {
	left := iterator.NewSliceSource(ints(1, 2, 2, 3))
	right := iterator.NewSliceSource(ints(2))
	e, err := NewExcept(left, right)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, drain(t, e))
}

func TestExceptAllSubtractsMultiplicity(t *testing.T) {
	left := iterator.NewSliceSource(ints(2, 2, 2, 3))
	right := iterator.NewSliceSource(ints(2, 3, 3))
	e, err := NewExceptAll(left, right)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 2}, drain(t, e))
}

func TestSetOpsOutputIsTupleLexSorted(t *testing.T) {
	left := iterator.NewSliceSource([]tuple.Tuple{
		{register.Int64(3), register.Int64(1)},
		{register.Int64(1), register.Int64(9)},
	})
	right := iterator.NewSliceSource([]tuple.Tuple{
		{register.Int64(2), register.Int64(0)},
	})
	u, err := NewUnion(left, right)
	require.NoError(t, err)

	require.NoError(t, u.Open())
	var firsts []int64
	for {
		ok, err := u.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		firsts = append(firsts, u.Row().At(0).AsInt64())
	}
	require.NoError(t, u.Close())
	assert.Equal(t, []int64{1, 2, 3}, firsts)
}
