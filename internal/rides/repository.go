package rides

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ride-mitra/ride_mitra/internal/apperr"
)

// Repository persists ride bookings.
type Repository interface {
	Create(ctx context.Context, ride Ride) error
	Get(ctx context.Context, id string) (Ride, error)
	ListByCustomer(ctx context.Context, customerPhone string, limit int) ([]Ride, error)
}

// PostgresRepository stores rides in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a repository backed by PostgreSQL.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a ride record.
func (r *PostgresRepository) Create(ctx context.Context, ride Ride) error {
	id, err := uuid.Parse(ride.ID)
	if err != nil {
		return apperr.Internal(err, "ride store failure")
	}
	_, err = r.db.Exec(ctx, `INSERT INTO rides (id, customer_phone, vendor_phone, pickup_point, drop_point, fare, status, booked_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		id, ride.CustomerPhone, ride.VendorPhone, ride.PickupPoint, ride.DropPoint, ride.Fare, ride.Status, ride.BookedAt.UTC())
	if err != nil {
		return apperr.Internal(err, "ride store failure")
	}
	return nil
}

// Get fetches one ride by identifier.
func (r *PostgresRepository) Get(ctx context.Context, id string) (Ride, error) {
	rideID, err := uuid.Parse(id)
	if err != nil {
		return Ride{}, apperr.InvalidArgument("invalid ride id %q", id)
	}
	row := r.db.QueryRow(ctx, `SELECT id, customer_phone, vendor_phone, pickup_point, drop_point, fare, status, booked_at
        FROM rides WHERE id = $1`, rideID)
	var ride Ride
	var scanned uuid.UUID
	if err := row.Scan(&scanned, &ride.CustomerPhone, &ride.VendorPhone, &ride.PickupPoint, &ride.DropPoint, &ride.Fare, &ride.Status, &ride.BookedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Ride{}, apperr.NotFound("ride %s not found", id)
		}
		return Ride{}, apperr.Internal(err, "ride store failure")
	}
	ride.ID = scanned.String()
	return ride, nil
}

// ListByCustomer returns the customer's most recent rides, newest first.
func (r *PostgresRepository) ListByCustomer(ctx context.Context, customerPhone string, limit int) ([]Ride, error) {
	rows, err := r.db.Query(ctx, `SELECT id, customer_phone, vendor_phone, pickup_point, drop_point, fare, status, booked_at
        FROM rides WHERE customer_phone = $1 ORDER BY booked_at DESC LIMIT $2`, customerPhone, limit)
	if err != nil {
		return nil, apperr.Internal(err, "ride store failure")
	}
	defer rows.Close()

	rides := make([]Ride, 0, limit)
	for rows.Next() {
		var ride Ride
		var id uuid.UUID
		if err := rows.Scan(&id, &ride.CustomerPhone, &ride.VendorPhone, &ride.PickupPoint, &ride.DropPoint, &ride.Fare, &ride.Status, &ride.BookedAt); err != nil {
			return nil, apperr.Internal(err, "ride store failure")
		}
		ride.ID = id.String()
		rides = append(rides, ride)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Internal(err, "ride store failure")
	}
	return rides, nil
}
