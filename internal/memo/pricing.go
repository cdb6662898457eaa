package memo

import (
	"time"

	"stayoffers/internal/recursion"
)

const rangePriceCapacity = 1000

type rangeKey struct {
	start, end string
	base       int
}

type penaltyKey struct {
	daysBefore int
	refundable bool
	total      int
}

// Calculator owns the memoization caches for the derived pricing functions.
// Construct one per process (or per test); there is no package-level instance.
type Calculator struct {
	rangePrice *LRU[rangeKey, int]
	penalty    Memo[penaltyKey, int]
	fib        Memo[int, int]
}

func NewCalculator() *Calculator {
	return &Calculator{rangePrice: NewLRU[rangeKey, int](rangePriceCapacity)}
}

// DateRangePrice sums base over every date from start to end inclusive,
// multiplying Saturday and Sunday dates by 1.2 (truncated per date). Results
// are cached on the exact (start, end, base) triple.
func (c *Calculator) DateRangePrice(start, end string, base int) (int, error) {
	key := rangeKey{start: start, end: end, base: base}
	if v, ok := c.rangePrice.Get(key); ok {
		return v, nil
	}
	dates, err := recursion.SplitDateRange(start, end)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, d := range dates {
		day, err := time.Parse(time.DateOnly, d)
		if err != nil {
			return 0, err
		}
		amount := base
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			amount = base * 12 / 10
		}
		total += amount
	}
	c.rangePrice.Add(key, total)
	return total, nil
}

// CancellationPenalty is the non-refundable portion charged on cancellation.
// Non-refundable plans forfeit the full amount; refundable ones are tiered by
// days before check-in. Amounts truncate, never round up.
func (c *Calculator) CancellationPenalty(daysBefore int, refundable bool, total int) int {
	key := penaltyKey{daysBefore: daysBefore, refundable: refundable, total: total}
	return c.penalty.GetOrCompute(key, func() int {
		return cancellationPenalty(daysBefore, refundable, total)
	})
}

func cancellationPenalty(daysBefore int, refundable bool, total int) int {
	if !refundable {
		return total
	}
	switch {
	case daysBefore >= 7:
		return 0
	case daysBefore >= 3:
		return total * 25 / 100
	case daysBefore >= 1:
		return total * 50 / 100
	default:
		return total * 75 / 100
	}
}

// Fibonacci is kept as the textbook demonstration of cache correctness, not a
// product feature.
func (c *Calculator) Fibonacci(n int) int {
	if n <= 1 {
		return n
	}
	return c.fib.GetOrCompute(n, func() int {
		return c.Fibonacci(n-1) + c.Fibonacci(n-2)
	})
}

// Clear empties every cache so the next call recomputes; required when
// underlying pricing rules change.
func (c *Calculator) Clear() {
	c.rangePrice.Clear()
	c.penalty.Clear()
	c.fib.Clear()
}
