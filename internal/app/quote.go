package app

import (
	"stayoffers/internal/domain"
	"stayoffers/internal/fp"
	"stayoffers/internal/recursion"
)

// QuoteService computes price totals for already-resolved rate/date
// combinations; no memoization, the caller owns the lookups.
type QuoteService struct{}

// Quote sums the per-date prices of one rate across the stay. Missing dates
// contribute zero.
func (QuoteService) Quote(rateID int64, checkin, checkout string, price func(int64, string) int) (int, error) {
	dates, err := recursion.SplitDateRange(checkin, checkout)
	if err != nil {
		return 0, err
	}
	amounts := fp.MapAll(dates, func(d string) int { return price(rateID, d) })
	return fp.FoldLeft(amounts, 0, func(acc, a int) int { return acc + a }), nil
}

type OfferStats struct {
	Min   int `json:"min"`
	Max   int `json:"max"`
	Avg   int `json:"avg"`
	Count int `json:"count"`
}

// CompareOffers summarizes a result set; all zeros for an empty one.
func (QuoteService) CompareOffers(offers []domain.SearchOffer) OfferStats {
	if len(offers) == 0 {
		return OfferStats{}
	}
	price := func(o domain.SearchOffer) int { return o.TotalPrice }
	total := fp.FoldLeft(offers, 0, func(acc int, o domain.SearchOffer) int { return acc + o.TotalPrice })
	return OfferStats{
		Min:   fp.MinBy(offers, price).TotalPrice,
		Max:   fp.MaxBy(offers, price).TotalPrice,
		Avg:   total / len(offers),
		Count: len(offers),
	}
}
