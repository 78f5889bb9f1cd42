package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Domenick1991/travelagent/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	Save(ctx context.Context, booking *domain.Booking) error
	ListRecent(ctx context.Context, limit int) ([]domain.BookingSummary, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

// EnsureSchema creates the bookings table when absent. Bookings are
// append-only; the serial primary key keeps confirmation codes unique and
// monotonically increasing.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	_, err := db.Exec(ctx, `CREATE TABLE IF NOT EXISTS bookings (
		id BIGSERIAL PRIMARY KEY,
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		travel_date TEXT NOT NULL,
		flight_json TEXT NOT NULL,
		hotel_json TEXT NOT NULL,
		itinerary TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`)
	if err != nil {
		return fmt.Errorf("ensure bookings schema: %w", err)
	}
	return nil
}

func (r *PGBookingRepository) Save(ctx context.Context, booking *domain.Booking) error {
	flightJSON, err := json.Marshal(booking.Flight)
	if err != nil {
		return fmt.Errorf("marshal flight: %w", err)
	}
	hotelJSON, err := json.Marshal(booking.Hotel)
	if err != nil {
		return fmt.Errorf("marshal hotel: %w", err)
	}

	if err := r.db.QueryRow(ctx, `INSERT INTO bookings (origin, destination, travel_date, flight_json, hotel_json, itinerary)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		booking.Origin, booking.Destination, booking.TravelDate, string(flightJSON), string(hotelJSON), booking.Itinerary).
		Scan(&booking.ID, &booking.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *PGBookingRepository) ListRecent(ctx context.Context, limit int) ([]domain.BookingSummary, error) {
	rows, err := r.db.Query(ctx, `SELECT id, origin, destination, travel_date, created_at FROM bookings ORDER BY created_at DESC, id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistenceUnavailable, err)
	}
	defer rows.Close()

	summaries := make([]domain.BookingSummary, 0)
	for rows.Next() {
		var s domain.BookingSummary
		if err := rows.Scan(&s.ID, &s.Origin, &s.Destination, &s.TravelDate, &s.CreatedAt); err != nil {
			return nil, err
		}
		s.ConfirmationCode = domain.ConfirmationCode(s.ID)
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

var _ BookingRepository = (*PGBookingRepository)(nil)
