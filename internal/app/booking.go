package app

import (
	"errors"
	"time"

	"stayoffers/internal/bus"
	"stayoffers/internal/domain"
	"stayoffers/internal/fp"
	"stayoffers/internal/memo"
)

type BookingService struct {
	bus  *bus.Bus
	calc *memo.Calculator
}

func NewBookingService(b *bus.Bus, calc *memo.Calculator) *BookingService {
	return &BookingService{bus: b, calc: calc}
}

// ValidateBooking chains the individual validators with FlatMap so the first
// failure short-circuits and its message is the one surfaced.
func ValidateBooking(guestID int64, total int, items []domain.CartItem) fp.Either[string, int] {
	return fp.FlatMapEither(
		fp.ValidatePositive(int(guestID), "guest_id"),
		func(int) fp.Either[string, int] {
			return fp.ValidatePositive(total, "total").FlatMap(func(t int) fp.Either[string, int] {
				if len(items) == 0 {
					return fp.Left[string, int]("items cannot be empty")
				}
				return fp.Right[string](t)
			})
		},
	)
}

// Book constructs a new Booking value and publishes BOOKED. The persistence
// collaborator owns storing it and assigning an ID.
func (s *BookingService) Book(guest domain.Guest, items []domain.CartItem, total int) (domain.Booking, error) {
	if v := ValidateBooking(guest.ID, total, items); v.IsLeft() {
		return domain.Booking{}, errors.New(v.GetLeft())
	}
	b := domain.Booking{
		GuestID: guest.ID,
		Items:   items,
		Total:   total,
		Status:  "confirmed",
	}
	s.bus.Publish(bus.NewEvent(bus.EventBooked,
		bus.F("guest_id", guest.ID),
		bus.F("total", total),
	))
	return b, nil
}

// Cancel produces the cancelled booking value plus the penalty owed. The
// input booking is left untouched.
func (s *BookingService) Cancel(b domain.Booking, daysUntilCheckin int, refundable bool) (domain.Booking, int) {
	penalty := s.calc.CancellationPenalty(daysUntilCheckin, refundable, b.Total)
	cancelled := b
	cancelled.Status = "cancelled"
	s.bus.Publish(bus.NewEvent(bus.EventCancelled,
		bus.F("booking_id", b.ID),
		bus.F("penalty", penalty),
	))
	return cancelled, penalty
}

// CancellationPenalty exposes the memoized tier calculation directly.
func (s *BookingService) CancellationPenalty(daysBefore int, refundable bool, total int) int {
	return s.calc.CancellationPenalty(daysBefore, refundable, total)
}

// Pay constructs a Payment value for the booking's total and publishes
// PAYMENT.
func (s *BookingService) Pay(b domain.Booking, method string) domain.Payment {
	p := domain.Payment{
		BookingID: b.ID,
		Amount:    b.Total,
		TS:        time.Now().UTC().Format(time.RFC3339),
		Method:    method,
	}
	s.bus.Publish(bus.NewEvent(bus.EventPayment,
		bus.F("booking_id", b.ID),
		bus.F("amount", p.Amount),
	))
	return p
}
