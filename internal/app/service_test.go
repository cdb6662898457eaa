package app_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayoffers/internal/app"
	"stayoffers/internal/bus"
	"stayoffers/internal/domain"
	"stayoffers/internal/memo"
)

// testSnapshot covers 2024-05-01..03: two Tashkent hotels (5 and 3 stars) and
// one in Samarkand, one room type and rate each.
func testSnapshot() domain.Snapshot {
	dates := []string{"2024-05-01", "2024-05-02", "2024-05-03"}
	snap := domain.Snapshot{
		Hotels: []domain.Hotel{
			{ID: 1, Name: "Silk Road Palace", Stars: 5, City: "Tashkent"},
			{ID: 2, Name: "Chorsu Inn", Stars: 3, City: "Tashkent"},
			{ID: 3, Name: "Registan View", Stars: 5, City: "Samarkand"},
		},
		RoomTypes: []domain.RoomType{
			{ID: 11, HotelID: 1, Name: "Deluxe", Capacity: 2},
			{ID: 21, HotelID: 2, Name: "Family", Capacity: 4},
			{ID: 31, HotelID: 3, Name: "Standard", Capacity: 2},
		},
		RatePlans: []domain.RatePlan{
			{ID: 111, HotelID: 1, RoomTypeID: 11, Title: "Flexible", Refundable: true},
			{ID: 211, HotelID: 2, RoomTypeID: 21, Title: "Saver"},
			{ID: 311, HotelID: 3, RoomTypeID: 31, Title: "Flexible", Refundable: true},
		},
	}
	perDate := map[int64]int{111: 1000, 211: 800, 311: 1200}
	for rateID, amount := range perDate {
		for _, d := range dates {
			snap.Prices = append(snap.Prices, domain.Price{RateID: rateID, Date: d, Amount: amount, Currency: "UZS"})
		}
	}
	for _, rtID := range []int64{11, 21, 31} {
		for _, d := range dates {
			snap.Availability = append(snap.Availability, domain.Availability{RoomTypeID: rtID, Date: d, Available: 3})
		}
	}
	return snap
}

func newSearchService() (*app.SearchService, *bus.Bus) {
	b := bus.New(zerolog.Nop())
	return app.NewSearchService(b), b
}

func TestSearch_CityIsCaseInsensitive(t *testing.T) {
	svc, _ := newSearchService()
	out, err := svc.Search(testSnapshot(), app.SearchRequest{
		City: "tashkent", Checkin: "2024-05-01", Checkout: "2024-05-03",
	})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, int64(1), out[0].Hotel.ID)
	assert.Equal(t, 3000, out[0].TotalPrice, "3 inclusive stay dates at 1000")
	assert.Equal(t, int64(2), out[1].Hotel.ID)
	assert.Equal(t, 2400, out[1].TotalPrice)
}

func TestSearch_MinStarsFilters(t *testing.T) {
	svc, _ := newSearchService()
	out, err := svc.Search(testSnapshot(), app.SearchRequest{
		City: "Tashkent", Checkin: "2024-05-01", Checkout: "2024-05-03", MinStars: 4,
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, int64(1), out[0].Hotel.ID)
}

func TestSearch_GuestsFilterByCapacity(t *testing.T) {
	svc, _ := newSearchService()
	out, err := svc.Search(testSnapshot(), app.SearchRequest{
		City: "Tashkent", Checkin: "2024-05-01", Checkout: "2024-05-03", Guests: 3,
	})
	require.NoError(t, err)
	require.Len(t, out, 1, "only the 4-person room fits a party of 3")
	assert.Equal(t, int64(21), out[0].RoomType.ID)
}

func TestSearch_RejectsInvalidDates(t *testing.T) {
	svc, _ := newSearchService()

	_, err := svc.Search(testSnapshot(), app.SearchRequest{
		City: "Tashkent", Checkin: "not-a-date", Checkout: "2024-05-03",
	})
	require.Error(t, err)
	assert.Equal(t, "invalid date format", err.Error())

	_, err = svc.Search(testSnapshot(), app.SearchRequest{
		City: "Tashkent", Checkin: "2024-05-03", Checkout: "2024-05-01",
	})
	require.Error(t, err)
	assert.Equal(t, "end date must be after start date", err.Error())
}

func TestSearch_PublishesSearchEvent(t *testing.T) {
	svc, b := newSearchService()
	var events []domain.Event
	b.Subscribe(bus.EventSearch, func(e domain.Event) { events = append(events, e) })

	_, err := svc.Search(testSnapshot(), app.SearchRequest{
		City: "Samarkand", Checkin: "2024-05-01", Checkout: "2024-05-03",
	})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, bus.EventSearch, events[0].Name)
	assert.Contains(t, events[0].Payload, domain.Field{Key: "city", Value: "Samarkand"})
}

func TestSearch_LimitCapsResults(t *testing.T) {
	svc, _ := newSearchService()
	out, err := svc.Search(testSnapshot(), app.SearchRequest{
		City: "Tashkent", Checkin: "2024-05-01", Checkout: "2024-05-03", Limit: 1,
	})
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestSearch_EagerAndLazyAgree(t *testing.T) {
	svc, _ := newSearchService()
	req := app.SearchRequest{City: "Tashkent", Checkin: "2024-05-01", Checkout: "2024-05-03", Limit: 1}

	lazyOut, err := svc.Search(testSnapshot(), req)
	require.NoError(t, err)

	req.Eager = true
	eagerOut, err := svc.Search(testSnapshot(), req)
	require.NoError(t, err)

	assert.Equal(t, lazyOut, eagerOut)
}

func TestQuote_SumsPerDatePrices(t *testing.T) {
	var q app.QuoteService
	prices := map[string]int{"2024-05-01": 1000, "2024-05-02": 1200}
	total, err := q.Quote(7, "2024-05-01", "2024-05-03", func(rateID int64, date string) int {
		return prices[date]
	})
	require.NoError(t, err)
	// 05-03 has no price and contributes zero
	assert.Equal(t, 2200, total)
}

func TestQuote_RejectsMalformedDates(t *testing.T) {
	var q app.QuoteService
	_, err := q.Quote(7, "junk", "2024-05-03", func(int64, string) int { return 0 })
	assert.Error(t, err)
}

func TestCompareOffers(t *testing.T) {
	var q app.QuoteService
	offers := []domain.SearchOffer{
		{TotalPrice: 3000}, {TotalPrice: 1000}, {TotalPrice: 2300},
	}
	assert.Equal(t, app.OfferStats{Min: 1000, Max: 3000, Avg: 2100, Count: 3}, q.CompareOffers(offers))
	assert.Equal(t, app.OfferStats{}, q.CompareOffers(nil))
}

func TestValidateBooking_FirstFailureWins(t *testing.T) {
	items := []domain.CartItem{{HotelID: 1, RoomTypeID: 11, RateID: 111}}

	ok := app.ValidateBooking(1, 5000, items)
	require.True(t, ok.IsRight())
	assert.Equal(t, 5000, ok.GetRight())

	bad := app.ValidateBooking(0, 5000, items)
	require.True(t, bad.IsLeft())
	assert.Equal(t, "guest_id must be positive", bad.GetLeft())

	bad = app.ValidateBooking(1, 0, items)
	assert.Equal(t, "total must be positive", bad.GetLeft())

	bad = app.ValidateBooking(1, 5000, nil)
	assert.Equal(t, "items cannot be empty", bad.GetLeft())

	// guest_id is checked first even when everything is wrong
	bad = app.ValidateBooking(-1, 0, nil)
	assert.Equal(t, "guest_id must be positive", bad.GetLeft())
}

func newBookingService() (*app.BookingService, *bus.Bus) {
	b := bus.New(zerolog.Nop())
	return app.NewBookingService(b, memo.NewCalculator()), b
}

func TestBook_ConfirmsAndPublishes(t *testing.T) {
	svc, b := newBookingService()
	var names []string
	for _, n := range bus.Names {
		name := n
		b.Subscribe(name, func(domain.Event) { names = append(names, name) })
	}

	guest := domain.Guest{ID: 9, Name: "Aziza", Email: "aziza@example.com"}
	items := []domain.CartItem{{HotelID: 1, RoomTypeID: 11, RateID: 111, Checkin: "2024-05-01", Checkout: "2024-05-03", Guests: 2}}

	booking, err := svc.Book(guest, items, 3000)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", booking.Status)
	assert.Equal(t, int64(9), booking.GuestID)
	assert.Equal(t, []string{bus.EventBooked}, names)
}

func TestBook_RejectsInvalidInput(t *testing.T) {
	svc, b := newBookingService()
	published := 0
	b.Subscribe(bus.EventBooked, func(domain.Event) { published++ })

	_, err := svc.Book(domain.Guest{ID: 0}, nil, 3000)
	require.Error(t, err)
	assert.Equal(t, "guest_id must be positive", err.Error())
	assert.Zero(t, published, "no event for a rejected booking")
}

func TestCancel_ReturnsNewValueAndPenalty(t *testing.T) {
	svc, b := newBookingService()
	var events []domain.Event
	b.Subscribe(bus.EventCancelled, func(e domain.Event) { events = append(events, e) })

	original := domain.Booking{ID: 4, GuestID: 9, Total: 100000, Status: "confirmed"}
	cancelled, penalty := svc.Cancel(original, 3, true)

	assert.Equal(t, "cancelled", cancelled.Status)
	assert.Equal(t, "confirmed", original.Status, "input booking is untouched")
	assert.Equal(t, 25000, penalty)
	require.Len(t, events, 1)
	assert.Contains(t, events[0].Payload, domain.Field{Key: "penalty", Value: "25000"})
}

func TestPay_PublishesPayment(t *testing.T) {
	svc, b := newBookingService()
	var events []domain.Event
	b.Subscribe(bus.EventPayment, func(e domain.Event) { events = append(events, e) })

	p := svc.Pay(domain.Booking{ID: 4, Total: 3000}, "card")
	assert.Equal(t, 3000, p.Amount)
	assert.Equal(t, "card", p.Method)
	require.Len(t, events, 1)
	assert.Contains(t, events[0].Payload, domain.Field{Key: "amount", Value: "3000"})
}

func TestFilterApply_StageOrderAndSort(t *testing.T) {
	var f app.FilterService
	offers := []domain.SearchOffer{
		{Hotel: domain.Hotel{ID: 1, Stars: 5}, TotalPrice: 3000, Available: true},
		{Hotel: domain.Hotel{ID: 2, Stars: 3}, TotalPrice: 1000, Available: true},
		{Hotel: domain.Hotel{ID: 3, Stars: 5}, TotalPrice: 500, Available: true},
		{Hotel: domain.Hotel{ID: 4, Stars: 5}, TotalPrice: 2000, Available: false},
		{Hotel: domain.Hotel{ID: 5, Stars: 4}, TotalPrice: 9000, Available: true},
	}

	out := f.Apply(offers, app.FilterRequest{MinPrice: 800, MaxPrice: 5000, MinStars: 4, SortByPrice: true})
	require.Len(t, out, 1, "price band, stars and availability all apply")
	assert.Equal(t, int64(1), out[0].Hotel.ID)

	// MaxPrice 0 means unbounded
	out = f.Apply(offers, app.FilterRequest{MinStars: 4, SortByPrice: true})
	require.Len(t, out, 3)
	assert.Equal(t, []int{500, 3000, 9000}, []int{out[0].TotalPrice, out[1].TotalPrice, out[2].TotalPrice})
}

func TestFilterApply_NoFiltersKeepsAvailableOnly(t *testing.T) {
	var f app.FilterService
	offers := []domain.SearchOffer{
		{Hotel: domain.Hotel{ID: 1}, TotalPrice: 100, Available: true},
		{Hotel: domain.Hotel{ID: 2}, TotalPrice: 200, Available: false},
	}
	out := f.Apply(offers, app.FilterRequest{})
	require.Len(t, out, 1)
	assert.Equal(t, int64(1), out[0].Hotel.ID)
}
