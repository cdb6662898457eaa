package app

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"stayoffers/internal/domain"
)

// QueryService caches search responses through the Cache port so repeated
// identical searches skip the pipeline entirely.
type QueryService struct {
	search   *SearchService
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(s *SearchService, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{search: s, cache: c, cacheTTL: ttl}
}

func (q *QueryService) Search(ctx context.Context, snap domain.Snapshot, req SearchRequest) ([]domain.SearchOffer, error) {
	key := searchKey(req)
	var cached []domain.SearchOffer
	if ok, _ := q.cache.Get(ctx, key, &cached); ok {
		return cached, nil
	}

	out, err := q.search.Search(snap, req)
	if err != nil {
		return nil, err
	}

	// copy before caching so callers can't mutate the cached value through
	// the shared backing array
	cp := make([]domain.SearchOffer, len(out))
	copy(cp, out)

	// size guard
	if b, _ := json.Marshal(cp); len(b) < 1_000_000 {
		_ = q.cache.Set(ctx, key, cp, int(q.cacheTTL.Seconds()))
	}
	return out, nil
}

func searchKey(req SearchRequest) string {
	limit := req.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	return fmt.Sprintf("search:%s:%s:%s:%d:%d:%d",
		strings.ToLower(req.City), req.Checkin, req.Checkout, req.Guests, req.MinStars, limit)
}
