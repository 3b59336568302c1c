package slicex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilter(t *testing.T) {
	input := []int{1, 2, 3, 4, 5}

	even := Filter(input, func(value int) bool { return value%2 == 0 })
	require.Equal(t, []int{2, 4}, even)
	require.Equal(t, []int{1, 2, 3, 4, 5}, input)
}

func TestFilterNothingMatches(t *testing.T) {
	result := Filter([]string{"a"}, func(string) bool { return false })
	require.NotNil(t, result)
	require.Empty(t, result)
}

func TestFilterNilPredicate(t *testing.T) {
	require.Panics(t, func() { Filter[int]([]int{1}, nil) })
}
