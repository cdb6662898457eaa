package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"stayoffers/internal/app"
	"stayoffers/internal/domain"
)

type Handlers struct {
	Q       *app.QueryService
	Quote   app.QuoteService
	Booking *app.BookingService
	Filter  app.FilterService
	Repo    domain.SnapshotRepository
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/search", h.search)
	s.mux.Get("/v1/quote", h.quote)
	s.mux.Get("/v1/penalty", h.penalty)
	s.mux.Post("/v1/bookings", h.createBooking)
	s.mux.Post("/v1/bookings/{id}/cancel", h.cancelBooking)
	s.mux.Post("/v1/payments", h.createPayment)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func queryInt(r *http.Request, key string, def int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func (h *Handlers) search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := app.SearchRequest{
		City:     q.Get("city"),
		Checkin:  q.Get("checkin"),
		Checkout: q.Get("checkout"),
		Guests:   queryInt(r, "guests", 0),
		MinStars: queryInt(r, "min_stars", 0),
		Limit:    queryInt(r, "limit", 0),
	}
	if req.City == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid query", "city is required")
		return
	}

	snap, err := h.Repo.LoadSnapshot(r.Context())
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Storage error", "failed to load inventory")
		return
	}

	offers, err := h.Q.Search(r.Context(), snap, req)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid query", err.Error())
		return
	}

	offers = h.Filter.Apply(offers, app.FilterRequest{
		MinPrice:    queryInt(r, "min_price", 0),
		MaxPrice:    queryInt(r, "max_price", 0),
		SortByPrice: q.Get("sort") == "price",
	})
	writeJSON(w, http.StatusOK, map[string]any{
		"offers": offers,
		"stats":  h.Quote.CompareOffers(offers),
	})
}

func (h *Handlers) quote(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rateID, err := strconv.ParseInt(q.Get("rate_id"), 10, 64)
	if err != nil || rateID <= 0 {
		writeProblem(w, http.StatusBadRequest, "Invalid query", "rate_id must be a positive number")
		return
	}

	snap, err := h.Repo.LoadSnapshot(r.Context())
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Storage error", "failed to load inventory")
		return
	}

	prices := snap.PricesByRateDate()
	total, err := h.Quote.Quote(rateID, q.Get("checkin"), q.Get("checkout"), func(id int64, date string) int {
		return prices[domain.RateDate{RateID: id, Date: date}]
	})
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid query", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"total": total})
}

func (h *Handlers) penalty(w http.ResponseWriter, r *http.Request) {
	days := queryInt(r, "days_before", 0)
	total := queryInt(r, "total", -1)
	if total < 0 {
		writeProblem(w, http.StatusBadRequest, "Invalid query", "total must be a non-negative number")
		return
	}
	refundable := r.URL.Query().Get("refundable") == "true"
	writeJSON(w, http.StatusOK, map[string]int{
		"penalty": h.Booking.CancellationPenalty(days, refundable, total),
	})
}

type bookingRequest struct {
	GuestID int64             `json:"guest_id"`
	Total   int               `json:"total"`
	Items   []domain.CartItem `json:"items"`
}

func (h *Handlers) createBooking(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "malformed JSON")
		return
	}
	b, err := h.Booking.Book(domain.Guest{ID: req.GuestID}, req.Items, req.Total)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid booking", err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

type cancelRequest struct {
	DaysBefore int  `json:"days_before"`
	Refundable bool `json:"refundable"`
	Total      int  `json:"total"`
}

func (h *Handlers) cancelBooking(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a positive number")
		return
	}
	var req cancelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "malformed JSON")
		return
	}
	booking := domain.Booking{ID: id, Total: req.Total, Status: "confirmed"}
	cancelled, penalty := h.Booking.Cancel(booking, req.DaysBefore, req.Refundable)
	writeJSON(w, http.StatusOK, map[string]any{
		"booking": cancelled,
		"penalty": penalty,
	})
}

type paymentRequest struct {
	BookingID int64  `json:"booking_id"`
	Amount    int    `json:"amount"`
	Method    string `json:"method"`
}

func (h *Handlers) createPayment(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "malformed JSON")
		return
	}
	if v := validPayment(req); v != "" {
		writeProblem(w, http.StatusBadRequest, "Invalid payment", v)
		return
	}
	p := h.Booking.Pay(domain.Booking{ID: req.BookingID, Total: req.Amount}, req.Method)
	writeJSON(w, http.StatusCreated, p)
}

func validPayment(req paymentRequest) string {
	if req.BookingID <= 0 {
		return "booking_id must be positive"
	}
	if req.Amount <= 0 {
		return "amount must be positive"
	}
	return ""
}
