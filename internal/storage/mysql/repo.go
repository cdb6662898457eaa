// Package mysql is the persistence collaborator: it stores inventory and
// appends published events, and hands the core immutable snapshots.
package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"stayoffers/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// EnsureSchema applies the DDL idempotently.
func (r *Repo) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}

func jsonCol(v any) string {
	b, _ := json.Marshal(v)
	return string(b)
}

// UpsertHotel inserts or updates; a zero ID lets MySQL assign one, which is
// returned either way.
func (r *Repo) UpsertHotel(ctx context.Context, h domain.Hotel) (int64, error) {
	res, err := r.db.ExecContext(ctx, upsertHotelSQL, zeroToNil(h.ID), h.Name, h.Stars, h.City, jsonCol(h.Features))
	if err != nil {
		return 0, err
	}
	return upsertedID(res, h.ID)
}

func (r *Repo) UpsertRoomType(ctx context.Context, rt domain.RoomType) (int64, error) {
	res, err := r.db.ExecContext(ctx, upsertRoomTypeSQL,
		zeroToNil(rt.ID), rt.HotelID, rt.Name, rt.Capacity, jsonCol(rt.Beds), jsonCol(rt.Features))
	if err != nil {
		return 0, err
	}
	return upsertedID(res, rt.ID)
}

func (r *Repo) UpsertRatePlan(ctx context.Context, rp domain.RatePlan) (int64, error) {
	res, err := r.db.ExecContext(ctx, upsertRatePlanSQL,
		zeroToNil(rp.ID), rp.HotelID, rp.RoomTypeID, rp.Title, rp.Meal, rp.Refundable, rp.CancelBeforeDays)
	if err != nil {
		return 0, err
	}
	return upsertedID(res, rp.ID)
}

func (r *Repo) UpsertPrice(ctx context.Context, p domain.Price) error {
	_, err := r.db.ExecContext(ctx, upsertPriceSQL, p.RateID, p.Date, p.Amount, p.Currency)
	return err
}

func (r *Repo) UpsertAvailability(ctx context.Context, a domain.Availability) error {
	_, err := r.db.ExecContext(ctx, upsertAvailabilitySQL, a.RoomTypeID, a.Date, a.Available)
	return err
}

// SaveEvent appends the event and returns its assigned ID. The payload is
// stored as a JSON array of [key, value] pairs so order and duplicate keys
// survive the round trip.
func (r *Repo) SaveEvent(ctx context.Context, e domain.Event) (int64, error) {
	pairs := make([][2]string, 0, len(e.Payload))
	for _, f := range e.Payload {
		pairs = append(pairs, [2]string{f.Key, f.Value})
	}
	res, err := r.db.ExecContext(ctx, insertEventSQL, e.TS, e.Name, jsonCol(pairs))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *Repo) LoadSnapshot(ctx context.Context) (domain.Snapshot, error) {
	var snap domain.Snapshot

	if err := r.loadHotels(ctx, &snap); err != nil {
		return domain.Snapshot{}, err
	}
	if err := r.loadRoomTypes(ctx, &snap); err != nil {
		return domain.Snapshot{}, err
	}
	if err := r.loadRatePlans(ctx, &snap); err != nil {
		return domain.Snapshot{}, err
	}
	if err := r.loadPrices(ctx, &snap); err != nil {
		return domain.Snapshot{}, err
	}
	if err := r.loadAvailability(ctx, &snap); err != nil {
		return domain.Snapshot{}, err
	}
	return snap, nil
}

func (r *Repo) loadHotels(ctx context.Context, snap *domain.Snapshot) error {
	rows, err := r.db.QueryContext(ctx, selectHotelsSQL)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var h domain.Hotel
		var features sql.NullString
		if err := rows.Scan(&h.ID, &h.Name, &h.Stars, &h.City, &features); err != nil {
			return err
		}
		if features.Valid {
			_ = json.Unmarshal([]byte(features.String), &h.Features)
		}
		snap.Hotels = append(snap.Hotels, h)
	}
	return rows.Err()
}

func (r *Repo) loadRoomTypes(ctx context.Context, snap *domain.Snapshot) error {
	rows, err := r.db.QueryContext(ctx, selectRoomTypesSQL)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var rt domain.RoomType
		var beds, features sql.NullString
		if err := rows.Scan(&rt.ID, &rt.HotelID, &rt.Name, &rt.Capacity, &beds, &features); err != nil {
			return err
		}
		if beds.Valid {
			_ = json.Unmarshal([]byte(beds.String), &rt.Beds)
		}
		if features.Valid {
			_ = json.Unmarshal([]byte(features.String), &rt.Features)
		}
		snap.RoomTypes = append(snap.RoomTypes, rt)
	}
	return rows.Err()
}

func (r *Repo) loadRatePlans(ctx context.Context, snap *domain.Snapshot) error {
	rows, err := r.db.QueryContext(ctx, selectRatePlansSQL)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var rp domain.RatePlan
		if err := rows.Scan(&rp.ID, &rp.HotelID, &rp.RoomTypeID, &rp.Title, &rp.Meal, &rp.Refundable, &rp.CancelBeforeDays); err != nil {
			return err
		}
		snap.RatePlans = append(snap.RatePlans, rp)
	}
	return rows.Err()
}

func (r *Repo) loadPrices(ctx context.Context, snap *domain.Snapshot) error {
	rows, err := r.db.QueryContext(ctx, selectPricesSQL)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var p domain.Price
		if err := rows.Scan(&p.ID, &p.RateID, &p.Date, &p.Amount, &p.Currency); err != nil {
			return err
		}
		snap.Prices = append(snap.Prices, p)
	}
	return rows.Err()
}

func (r *Repo) loadAvailability(ctx context.Context, snap *domain.Snapshot) error {
	rows, err := r.db.QueryContext(ctx, selectAvailabilitySQL)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var a domain.Availability
		if err := rows.Scan(&a.ID, &a.RoomTypeID, &a.Date, &a.Available); err != nil {
			return err
		}
		snap.Availability = append(snap.Availability, a)
	}
	return rows.Err()
}

func zeroToNil(id int64) any {
	if id == 0 {
		return nil
	}
	return id
}

func upsertedID(res sql.Result, given int64) (int64, error) {
	if given != 0 {
		return given, nil
	}
	return res.LastInsertId()
}
