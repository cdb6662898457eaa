package recursion_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayoffers/internal/recursion"
)

func TestSplitDateRange_InclusiveBothEnds(t *testing.T) {
	dates, err := recursion.SplitDateRange("2024-01-01", "2024-01-03")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-01", "2024-01-02", "2024-01-03"}, dates)
}

func TestSplitDateRange_SingleDay(t *testing.T) {
	dates, err := recursion.SplitDateRange("2024-02-29", "2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-02-29"}, dates)
}

func TestSplitDateRange_CrossesMonthBoundary(t *testing.T) {
	dates, err := recursion.SplitDateRange("2024-01-30", "2024-02-02")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-30", "2024-01-31", "2024-02-01", "2024-02-02"}, dates)
}

func TestSplitDateRange_InvertedRangeIsEmpty(t *testing.T) {
	dates, err := recursion.SplitDateRange("2024-01-05", "2024-01-01")
	require.NoError(t, err)
	assert.Empty(t, dates)
}

func TestSplitDateRange_RejectsMalformedDates(t *testing.T) {
	_, err := recursion.SplitDateRange("yesterday", "2024-01-01")
	assert.Error(t, err)
	_, err = recursion.SplitDateRange("2024-01-01", "tomorrow")
	assert.Error(t, err)
}

func TestSumRecursive(t *testing.T) {
	assert.Equal(t, 0, recursion.SumRecursive(nil))
	assert.Equal(t, 10, recursion.SumRecursive([]int{1, 2, 3, 4}))
}

func TestReverseRecursive(t *testing.T) {
	assert.Equal(t, []string{}, recursion.ReverseRecursive([]string{}))
	assert.Equal(t, []int{3, 2, 1}, recursion.ReverseRecursive([]int{1, 2, 3}))
}
