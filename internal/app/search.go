// Package app composes the functional core into the facades the transport
// and persistence collaborators consume.
package app

import (
	"errors"
	"strings"
	"time"

	"stayoffers/internal/adapters/observability"
	"stayoffers/internal/bus"
	"stayoffers/internal/domain"
	"stayoffers/internal/fp"
	"stayoffers/internal/lazy"
)

const DefaultSearchLimit = 50

type SearchRequest struct {
	City     string
	Checkin  string
	Checkout string
	Guests   int
	MinStars int
	Limit    int // 0 means DefaultSearchLimit
	// Eager materializes every offer before capping instead of stopping the
	// pipeline at the cap. Same pipeline, same filters, different execution
	// strategy.
	Eager bool
}

type SearchService struct {
	bus *bus.Bus
}

func NewSearchService(b *bus.Bus) *SearchService {
	return &SearchService{bus: b}
}

// Search filters hotels by city (case-insensitive exact match) and optional
// minimum stars, then drives the lazy offer pipeline over the snapshot with a
// result cap. A SEARCH event is published for every invocation.
func (s *SearchService) Search(snap domain.Snapshot, req SearchRequest) ([]domain.SearchOffer, error) {
	if v := fp.ValidateDateRange(req.Checkin, req.Checkout); v.IsLeft() {
		return nil, errors.New(v.GetLeft())
	}
	start := time.Now()

	s.bus.Publish(bus.NewEvent(bus.EventSearch,
		bus.F("city", req.City),
		bus.F("checkin", req.Checkin),
		bus.F("checkout", req.Checkout),
	))

	hotels := FilterHotelsByCity(snap.Hotels, req.City)
	if req.MinStars > 0 {
		hotels = FilterHotelsByStars(hotels, req.MinStars)
	}

	lk := lazy.SnapshotLookups(snap)
	if req.Guests > 0 {
		lk = withCapacity(lk, req.Guests)
	}

	offers, err := lazy.Offers(hotels, lk, req.Checkin, req.Checkout)
	if err != nil {
		return nil, err
	}

	limit := req.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	var out []domain.SearchOffer
	if req.Eager {
		out = fp.Take(limit, lazy.Collect(offers))
	} else {
		out = lazy.Collect(lazy.Take(offers, limit))
	}
	observability.ObserveSearch(time.Since(start), len(out))
	return out, nil
}

// withCapacity restricts the room-type lookup to rooms that fit the party.
func withCapacity(lk lazy.Lookups, guests int) lazy.Lookups {
	inner := lk.RoomTypes
	lk.RoomTypes = func(hotelID int64) []domain.RoomType {
		return fp.Filter(inner(hotelID), func(rt domain.RoomType) bool {
			return rt.Capacity >= guests
		})
	}
	return lk
}

func FilterHotelsByCity(hotels []domain.Hotel, city string) []domain.Hotel {
	return fp.Filter(hotels, func(h domain.Hotel) bool {
		return strings.EqualFold(h.City, city)
	})
}

func FilterHotelsByStars(hotels []domain.Hotel, minStars int) []domain.Hotel {
	return fp.Filter(hotels, func(h domain.Hotel) bool {
		return h.Stars >= minStars
	})
}
