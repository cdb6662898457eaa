package app

import (
	"sort"

	"stayoffers/internal/domain"
	"stayoffers/internal/fp"
	"stayoffers/internal/lazy"
)

type FilterRequest struct {
	MinPrice    int
	MaxPrice    int // 0 means no upper bound
	MinStars    int
	SortByPrice bool
}

type FilterService struct{}

type offerSeq = lazy.Seq[domain.SearchOffer]

// Apply runs the fixed stage order min price, max price, min stars,
// available-only over a lazily composed pipeline; only the optional final
// price sort forces evaluation.
func (FilterService) Apply(offers []domain.SearchOffer, req FilterRequest) []domain.SearchOffer {
	stages := fp.Pipe(
		stage(func(o domain.SearchOffer) bool { return o.TotalPrice >= req.MinPrice }),
		stage(func(o domain.SearchOffer) bool { return req.MaxPrice <= 0 || o.TotalPrice <= req.MaxPrice }),
		stage(func(o domain.SearchOffer) bool { return o.Hotel.Stars >= req.MinStars }),
		stage(func(o domain.SearchOffer) bool { return o.Available }),
	)
	out := lazy.Collect(stages(lazy.FromSlice(offers)))
	if req.SortByPrice {
		sort.SliceStable(out, func(i, j int) bool { return out[i].TotalPrice < out[j].TotalPrice })
	}
	return out
}

func stage(pred func(domain.SearchOffer) bool) func(offerSeq) offerSeq {
	return func(s offerSeq) offerSeq { return lazy.Filter(s, pred) }
}
