package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitCombinedWeeks(t *testing.T) {
	plus, minus := SplitCombinedWeeks([]WeekPair{{3, 4}, {8, 7}, {10, 11}})

	assert.Equal(t, []int{3, 7, 10}, plus)
	assert.Equal(t, []int{4, 8, 11}, minus)
}

func TestSplitCombinedWeeksEmpty(t *testing.T) {
	plus, minus := SplitCombinedWeeks(nil)

	assert.Empty(t, plus)
	assert.Empty(t, minus)
}
