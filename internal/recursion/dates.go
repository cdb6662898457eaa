// Package recursion holds the reference recursive utilities: date-range
// expansion and operations over arbitrarily nested sequences treated as trees.
package recursion

import (
	"fmt"
	"time"
)

// SplitDateRange returns every calendar date from start to end inclusive, in
// ascending order, as ISO strings. start == end yields a single element; an
// inverted range yields an empty slice. Termination is guaranteed by the
// monotonic day increment.
func SplitDateRange(start, end string) ([]string, error) {
	s, err := time.Parse(time.DateOnly, start)
	if err != nil {
		return nil, fmt.Errorf("parse start date %q: %w", start, err)
	}
	e, err := time.Parse(time.DateOnly, end)
	if err != nil {
		return nil, fmt.Errorf("parse end date %q: %w", end, err)
	}
	return splitDates(s, e, nil), nil
}

func splitDates(cur, end time.Time, acc []string) []string {
	if cur.After(end) {
		return acc
	}
	return splitDates(cur.AddDate(0, 0, 1), end, append(acc, cur.Format(time.DateOnly)))
}

// SumRecursive is the reference recursive sum; empty input sums to zero.
func SumRecursive(nums []int) int {
	if len(nums) == 0 {
		return 0
	}
	return nums[0] + SumRecursive(nums[1:])
}

// ReverseRecursive reverses a slice recursively, returning a fresh slice.
func ReverseRecursive[T any](items []T) []T {
	if len(items) == 0 {
		return []T{}
	}
	return append(ReverseRecursive(items[1:]), items[0])
}
