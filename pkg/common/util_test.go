package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterKeepsOrderAndInput(t *testing.T) {
	items := []int{5, 1, 4, 2, 3}

	evens := Filter(items, func(i int) bool { return i%2 == 0 })
	assert.Equal(t, []int{4, 2}, evens)
	assert.Equal(t, []int{5, 1, 4, 2, 3}, items, "input must not be modified")

	all := Filter(items, func(int) bool { return true })
	assert.Equal(t, items, all)

	none := Filter(items, func(int) bool { return false })
	assert.NotNil(t, none)
	assert.Len(t, none, 0)
}

func TestMapperReducerSome(t *testing.T) {
	doubled := Mapper([]int{1, 2, 3}, func(i int) int { return i * 2 })
	assert.Equal(t, []int{2, 4, 6}, doubled)

	sum := Reducer(doubled, func(acc int, i int) int { return acc + i }, 0)
	assert.Equal(t, 12, sum)

	assert.True(t, Some(doubled, func(i int) bool { return i > 5 }))
	assert.False(t, Some([]int{}, func(int) bool { return true }))
}
