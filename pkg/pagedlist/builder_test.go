package pagedlist_test

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagedlist/pkg/pagedlist"
)

func TestBuilder_Build(t *testing.T) {
	t.Parallel()

	b := pagedlist.NewBuilder[int](2, 3, 7)
	b.Add(4, 5).Add(6)
	require.Equal(t, 3, b.Len())

	list, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5, 6}, list.Slice())
	assert.Equal(t, 4, list.FirstItemOnPage())
	assert.Equal(t, 6, list.LastItemOnPage())
}

func TestBuilder_FrozenAfterBuild(t *testing.T) {
	t.Parallel()

	b := pagedlist.NewBuilder[string](1, 5, 5).Add("a", "b")
	list, err := b.Build()
	require.NoError(t, err)

	b.Add("c")
	assert.Equal(t, 2, list.Count(), "items added after Build must not reach the built page")

	again, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 3, again.Count())
	assert.Equal(t, 2, list.Count())
}

func TestBuilder_Invalid(t *testing.T) {
	t.Parallel()

	_, err := pagedlist.NewBuilder[int](0, 10, 10).Build()
	assert.ErrorIs(t, err, pagedlist.ErrInvalidArgument)

	_, err = pagedlist.NewBuilder[int](1, 1, 10).Add(1, 2).Build()
	assert.ErrorIs(t, err, pagedlist.ErrInvalidArgument)

	// Large page sizes do not reserve their full capacity up front.
	list, err := pagedlist.NewBuilder[int](1, 1<<40, 3).Add(1, 2, 3).Build()
	require.NoError(t, err)
	assert.Equal(t, 1, list.PageCount())
}

func TestFromSeq(t *testing.T) {
	t.Parallel()

	list, err := pagedlist.FromSeq(1, 5, 3, slices.Values([]string{"x", "y", "z"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "z"}, list.Slice())
}

func TestFromSeq_StopsOnOversizedSequence(t *testing.T) {
	t.Parallel()

	pulled := 0
	var naturals iter.Seq[int] = func(yield func(int) bool) {
		for i := 0; ; i++ {
			pulled++
			if !yield(i) {
				return
			}
		}
	}

	list, err := pagedlist.FromSeq(1, 4, 100, naturals)
	require.Error(t, err)
	assert.Nil(t, list)
	assert.ErrorIs(t, err, pagedlist.ErrInvalidArgument)
	assert.Equal(t, 5, pulled)
}

func TestFromSeq_ValidatesBeforeConsuming(t *testing.T) {
	t.Parallel()

	consumed := false
	var seq iter.Seq[int] = func(yield func(int) bool) {
		consumed = true
		yield(1)
	}

	_, err := pagedlist.FromSeq(1, 0, 10, seq)
	assert.ErrorIs(t, err, pagedlist.ErrInvalidArgument)
	assert.False(t, consumed)
}
