package domain

// All entities are immutable value types. Nothing here carries behavior or a
// mutator; "changing" a booking's status means constructing a new Booking.
// Persistence of these snapshots is owned by the storage adapter.

type Hotel struct {
	ID       int64
	Name     string
	Stars    int // 1..5
	City     string
	Features []string
}

type RoomType struct {
	ID       int64
	HotelID  int64
	Name     string
	Capacity int
	Beds     []string
	Features []string
}

type RatePlan struct {
	ID               int64
	HotelID          int64
	RoomTypeID       int64
	Title            string
	Meal             string // BB|HB|FB|AI
	Refundable       bool
	CancelBeforeDays int
}

// Price is unique per (RateID, Date). Amount is in minor currency units.
type Price struct {
	ID       int64
	RateID   int64
	Date     string // ISO yyyy-mm-dd
	Amount   int
	Currency string
}

// Availability is unique per (RoomTypeID, Date).
type Availability struct {
	ID         int64
	RoomTypeID int64
	Date       string
	Available  int
}

type Guest struct {
	ID    int64
	Name  string
	Email string
}

type CartItem struct {
	ID         int64
	HotelID    int64
	RoomTypeID int64
	RateID     int64
	Checkin    string
	Checkout   string
	Guests     int
}

type Booking struct {
	ID      int64
	GuestID int64
	Items   []CartItem
	Total   int
	Status  string
}

type Payment struct {
	ID        int64
	BookingID int64
	Amount    int
	TS        string
	Method    string
}

// Field is one (key, value) pair of an event payload. Payload order is the
// order fields were attached; duplicate keys are legal and both retained.
type Field struct {
	Key   string
	Value string
}

// Event records a domain occurrence. ID stays 0 until the storage collaborator
// persists it.
type Event struct {
	ID      int64
	TS      string
	Name    string
	Payload []Field
}

// SearchOffer is derived by the offer pipeline and never stored.
type SearchOffer struct {
	Hotel      Hotel
	RoomType   RoomType
	RatePlan   RatePlan
	TotalPrice int
	Available  bool
}
