package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/egotist0/DB-Operators/pkg/iterator"
	"github.com/egotist0/DB-Operators/pkg/primitives"
	"github.com/egotist0/DB-Operators/pkg/register"
	"github.com/egotist0/DB-Operators/pkg/tuple"
)

func drain(t *testing.T, a *HashAggregation) []tuple.Tuple {
	t.Helper()
	require.NoError(t, a.Open())
	var got []tuple.Tuple
	for {
		ok, err := a.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		got = append(got, a.Row().Clone())
	}
	require.NoError(t, a.Close())
	return got
}

func TestHashAggregationGroupedSumAndCount(t *testing.T) {
	src := iterator.NewSliceSource([]tuple.Tuple{
		{register.Char16("a"), register.Int64(10)},
		{register.Char16("b"), register.Int64(5)},
		{register.Char16("a"), register.Int64(20)},
	})
	agg, err := NewHashAggregation(src,
		[]primitives.ColumnID{0},
		[]Aggregate{{Func: Sum, Column: 1}, {Func: Count, Column: 1}},
	)
	require.NoError(t, err)

	got := drain(t, agg)
	require.Len(t, got, 2)
	// Sorted ascending by group key ("a" < "b").
	assert.Equal(t, "a", got[0].At(0).AsString())
	assert.Equal(t, int64(30), got[0].At(1).AsInt64())
	assert.Equal(t, int64(2), got[0].At(2).AsInt64())
	assert.Equal(t, "b", got[1].At(0).AsString())
	assert.Equal(t, int64(5), got[1].At(1).AsInt64())
	assert.Equal(t, int64(1), got[1].At(2).AsInt64())
}

func TestHashAggregationMinMaxPerGroup(t *testing.T) {
	src := iterator.NewSliceSource([]tuple.Tuple{
		{register.Int64(1), register.Int64(5)},
		{register.Int64(1), register.Int64(1)},
		{register.Int64(2), register.Int64(9)},
	})
	agg, err := NewHashAggregation(src,
		[]primitives.ColumnID{0},
		[]Aggregate{{Func: Min, Column: 1}, {Func: Max, Column: 1}},
	)
	require.NoError(t, err)

	got := drain(t, agg)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].At(1).AsInt64())
	assert.Equal(t, int64(5), got[0].At(2).AsInt64())
	assert.Equal(t, int64(9), got[1].At(1).AsInt64())
	assert.Equal(t, int64(9), got[1].At(2).AsInt64())
}

func TestHashAggregationGroupLessSingleGroup(t *testing.T) {
	src := iterator.NewSliceSource([]tuple.Tuple{
		{register.Int64(3)},
		{register.Int64(7)},
		{register.Int64(1)},
	})
	agg, err := NewHashAggregation(src, nil, []Aggregate{{Func: Min, Column: 0}, {Func: Max, Column: 0}})
	require.NoError(t, err)

	got := drain(t, agg)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].At(0).AsInt64())
	assert.Equal(t, int64(7), got[0].At(1).AsInt64())
}
