package lazy

import (
	"fmt"
	"time"

	"stayoffers/internal/domain"
	"stayoffers/internal/recursion"
)

// Lookups are the inventory accessors the pipeline pulls from. They are
// functions rather than maps so callers can instrument or restrict them
// without materializing anything.
type Lookups struct {
	RoomTypes    func(hotelID int64) []domain.RoomType
	Rates        func(roomTypeID int64) []domain.RatePlan
	Availability func(roomTypeID int64, date string) int
	Price        func(rateID int64, date string) int
}

// SnapshotLookups adapts a snapshot's lookup maps to the pipeline.
func SnapshotLookups(snap domain.Snapshot) Lookups {
	roomTypes := snap.RoomTypesByHotel()
	rates := snap.RatesByRoomType()
	avail := snap.AvailabilityByRoomDate()
	prices := snap.PricesByRateDate()
	return Lookups{
		RoomTypes: func(hotelID int64) []domain.RoomType { return roomTypes[hotelID] },
		Rates:     func(roomTypeID int64) []domain.RatePlan { return rates[roomTypeID] },
		Availability: func(roomTypeID int64, date string) int {
			return avail[domain.RoomDate{RoomTypeID: roomTypeID, Date: date}]
		},
		Price: func(rateID int64, date string) int {
			return prices[domain.RateDate{RateID: rateID, Date: date}]
		},
	}
}

// Offers walks hotel x room type x rate plan without materializing the cross
// product. A candidate is available only when every stay date has a recorded
// availability > 0 (missing dates fail closed). The total is the sum of
// per-date price lookups; a missing price contributes 0.
//
// The sequence does no work for offers beyond what the consumer pulls, and
// re-invoking it restarts from the first hotel.
func Offers(hotels []domain.Hotel, lk Lookups, checkin, checkout string) (Seq[domain.SearchOffer], error) {
	dates, err := recursion.SplitDateRange(checkin, checkout)
	if err != nil {
		return nil, err
	}
	return func(yield func(domain.SearchOffer) bool) {
		for _, hotel := range hotels {
			for _, roomType := range lk.RoomTypes(hotel.ID) {
				for _, rate := range lk.Rates(roomType.ID) {
					available := true
					for _, d := range dates {
						if lk.Availability(roomType.ID, d) <= 0 {
							available = false
							break
						}
					}
					if !available {
						continue
					}
					total := 0
					for _, d := range dates {
						total += lk.Price(rate.ID, d)
					}
					offer := domain.SearchOffer{
						Hotel:      hotel,
						RoomType:   roomType,
						RatePlan:   rate,
						TotalPrice: total,
						Available:  true,
					}
					if !yield(offer) {
						return
					}
				}
			}
		}
	}, nil
}

// CalendarDay is one entry of a lazy availability calendar.
type CalendarDay struct {
	Date      string
	Available int
}

// Calendar yields (date, available) pairs for days consecutive dates starting
// at start. Missing records show as 0.
func Calendar(roomTypeID int64, start string, days int, availability func(int64, string) int) (Seq[CalendarDay], error) {
	first, err := time.Parse(time.DateOnly, start)
	if err != nil {
		return nil, fmt.Errorf("parse start date %q: %w", start, err)
	}
	return func(yield func(CalendarDay) bool) {
		cur := first
		for i := 0; i < days; i++ {
			date := cur.Format(time.DateOnly)
			if !yield(CalendarDay{Date: date, Available: availability(roomTypeID, date)}) {
				return
			}
			cur = cur.AddDate(0, 0, 1)
		}
	}, nil
}
