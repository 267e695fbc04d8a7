package sort

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/egotist0/DB-Operators/pkg/iterator"
	"github.com/egotist0/DB-Operators/pkg/register"
	"github.com/egotist0/DB-Operators/pkg/tuple"
)

func row(a, b int64) tuple.Tuple {
	return tuple.Tuple{register.Int64(a), register.Int64(b)}
}

func drain(t *testing.T, s *Sort) []tuple.Tuple {
	t.Helper()
	require.NoError(t, s.Open())
	var got []tuple.Tuple
	for {
		ok, err := s.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		got = append(got, s.Row().Clone())
	}
	require.NoError(t, s.Close())
	return got
}

func TestSortAscendingSingleKey(t *testing.T) {
	src := iterator.NewSliceSource([]tuple.Tuple{row(3, 0), row(1, 0), row(2, 0)})
	s, err := NewSort(src, []Criterion{{Column: 0, Desc: false}})
	require.NoError(t, err)

	got := drain(t, s)
	require.Len(t, got, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{got[0].At(0).AsInt64(), got[1].At(0).AsInt64(), got[2].At(0).AsInt64()})
}

func TestSortDescendingHonored(t *testing.T) {
	src := iterator.NewSliceSource([]tuple.Tuple{row(1, 0), row(3, 0), row(2, 0)})
	s, err := NewSort(src, []Criterion{{Column: 0, Desc: true}})
	require.NoError(t, err)

	got := drain(t, s)
	require.Len(t, got, 3)
	assert.Equal(t, []int64{3, 2, 1}, []int64{got[0].At(0).AsInt64(), got[1].At(0).AsInt64(), got[2].At(0).AsInt64()})
}

func TestSortMultiKeyStable(t *testing.T) {
	src := iterator.NewSliceSource([]tuple.Tuple{
		row(1, 30), row(1, 10), row(0, 99), row(1, 20),
	})
	s, err := NewSort(src, []Criterion{{Column: 0, Desc: false}})
	require.NoError(t, err)

	got := drain(t, s)
	require.Len(t, got, 4)
	// Column 0 groups (0), (1,1,1); within the 1-group, relative input
	// order (30, 10, 20) must be preserved since only column 0 is a key.
	assert.Equal(t, int64(0), got[0].At(0).AsInt64())
	assert.Equal(t, []int64{30, 10, 20}, []int64{got[1].At(1).AsInt64(), got[2].At(1).AsInt64(), got[3].At(1).AsInt64()})
}

func TestSortTwoCriteria(t *testing.T) {
	src := iterator.NewSliceSource([]tuple.Tuple{
		row(1, 2), row(1, 1), row(0, 5),
	})
	s, err := NewSort(src, []Criterion{{Column: 0, Desc: false}, {Column: 1, Desc: true}})
	require.NoError(t, err)

	got := drain(t, s)
	require.Len(t, got, 3)
	assert.Equal(t, int64(0), got[0].At(0).AsInt64())
	assert.Equal(t, int64(2), got[1].At(1).AsInt64())
	assert.Equal(t, int64(1), got[2].At(1).AsInt64())
}
