package domain

import "context"

// RoomDate keys availability lookups.
type RoomDate struct {
	RoomTypeID int64
	Date       string
}

// RateDate keys price lookups.
type RateDate struct {
	RateID int64
	Date   string
}

// Snapshot is the immutable inventory handed to the computation core by the
// persistence collaborator. The core never reaches back into storage.
type Snapshot struct {
	Hotels       []Hotel
	RoomTypes    []RoomType
	RatePlans    []RatePlan
	Prices       []Price
	Availability []Availability
}

func (s Snapshot) RoomTypesByHotel() map[int64][]RoomType {
	out := make(map[int64][]RoomType, len(s.Hotels))
	for _, rt := range s.RoomTypes {
		out[rt.HotelID] = append(out[rt.HotelID], rt)
	}
	return out
}

func (s Snapshot) RatesByRoomType() map[int64][]RatePlan {
	out := make(map[int64][]RatePlan, len(s.RoomTypes))
	for _, rp := range s.RatePlans {
		out[rp.RoomTypeID] = append(out[rp.RoomTypeID], rp)
	}
	return out
}

func (s Snapshot) AvailabilityByRoomDate() map[RoomDate]int {
	out := make(map[RoomDate]int, len(s.Availability))
	for _, a := range s.Availability {
		out[RoomDate{RoomTypeID: a.RoomTypeID, Date: a.Date}] = a.Available
	}
	return out
}

func (s Snapshot) PricesByRateDate() map[RateDate]int {
	out := make(map[RateDate]int, len(s.Prices))
	for _, p := range s.Prices {
		out[RateDate{RateID: p.RateID, Date: p.Date}] = p.Amount
	}
	return out
}

type SnapshotRepository interface {
	// Write paths (seeding / ingestion)
	UpsertHotel(ctx context.Context, h Hotel) (int64, error)
	UpsertRoomType(ctx context.Context, rt RoomType) (int64, error)
	UpsertRatePlan(ctx context.Context, rp RatePlan) (int64, error)
	UpsertPrice(ctx context.Context, p Price) error
	UpsertAvailability(ctx context.Context, a Availability) error
	SaveEvent(ctx context.Context, e Event) (int64, error)

	// Read path
	LoadSnapshot(ctx context.Context) (Snapshot, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
