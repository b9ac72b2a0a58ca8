// README: Trip store backed by PostgreSQL (schema in migrations/).
package trip

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) SaveTrip(ctx context.Context, t *Trip) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO trips (
			id, user_id, destination, start_date, end_date,
			budget, mood, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at`,
		t.ID, t.UserID, t.Destination, t.StartDate, t.EndDate,
		t.Budget, t.Mood, string(t.Status), t.CreatedAt, t.UpdatedAt,
	)
	return err
}

func (s *Store) SaveItinerary(ctx context.Context, it *Itinerary) error {
	days, err := json.Marshal(it.Days)
	if err != nil {
		return fmt.Errorf("marshal days: %w", err)
	}
	accommodation, err := json.Marshal(it.Accommodation)
	if err != nil {
		return fmt.Errorf("marshal accommodation: %w", err)
	}
	transportation, err := json.Marshal(it.Transportation)
	if err != nil {
		return fmt.Errorf("marshal transportation: %w", err)
	}

	_, err = s.db.Exec(ctx, `
		INSERT INTO itineraries (
			id, trip_id, days, accommodation, transportation, total_cost
		) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			days = EXCLUDED.days,
			accommodation = EXCLUDED.accommodation,
			transportation = EXCLUDED.transportation,
			total_cost = EXCLUDED.total_cost`,
		it.ID, it.TripID, days, accommodation, transportation, it.TotalCost,
	)
	return err
}

func (s *Store) GetTrip(ctx context.Context, id string) (*Trip, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, user_id, destination, start_date, end_date,
		       budget, mood, status, created_at, updated_at
		FROM trips
		WHERE id = $1`, id,
	)

	var t Trip
	var status string
	err := row.Scan(
		&t.ID, &t.UserID, &t.Destination, &t.StartDate, &t.EndDate,
		&t.Budget, &t.Mood, &status, &t.CreatedAt, &t.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	t.Status = Status(status)

	it, err := s.getItineraryByTrip(ctx, id)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	t.Itinerary = it
	return &t, nil
}

func (s *Store) getItineraryByTrip(ctx context.Context, tripID string) (*Itinerary, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, trip_id, days, accommodation, transportation, total_cost
		FROM itineraries
		WHERE trip_id = $1`, tripID,
	)

	var it Itinerary
	var days, accommodation, transportation []byte
	if err := row.Scan(&it.ID, &it.TripID, &days, &accommodation, &transportation, &it.TotalCost); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(days, &it.Days); err != nil {
		return nil, fmt.Errorf("unmarshal days: %w", err)
	}
	if err := json.Unmarshal(accommodation, &it.Accommodation); err != nil {
		return nil, fmt.Errorf("unmarshal accommodation: %w", err)
	}
	if err := json.Unmarshal(transportation, &it.Transportation); err != nil {
		return nil, fmt.Errorf("unmarshal transportation: %w", err)
	}
	return &it, nil
}
