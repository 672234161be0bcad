package car

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ride-mitra/ride_mitra/internal/apperr"
)

const pgUniqueViolation = "23505"

// Repository persists vehicle registrations.
type Repository interface {
	Create(ctx context.Context, car Car) error
	GetByPlate(ctx context.Context, plateNo string) (Car, error)
	ListByVendor(ctx context.Context, vendorPhone string) ([]Car, error)
}

// PostgresRepository stores cars in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a repository backed by PostgreSQL.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a car registration.
func (r *PostgresRepository) Create(ctx context.Context, car Car) error {
	id, err := uuid.Parse(car.ID)
	if err != nil {
		return apperr.Internal(err, "car store failure")
	}
	_, err = r.db.Exec(ctx, `INSERT INTO cars (id, vendor_phone, maker, model, plate_no, seats, category, registered_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		id, car.VendorPhone, car.Maker, car.Model, car.PlateNo, car.Seats, car.Category, car.RegisteredAt.UTC())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperr.Conflict("car with plate %s already registered", car.PlateNo)
		}
		return apperr.Internal(err, "car store failure")
	}
	return nil
}

// GetByPlate fetches a car by its number plate.
func (r *PostgresRepository) GetByPlate(ctx context.Context, plateNo string) (Car, error) {
	row := r.db.QueryRow(ctx, `SELECT id, vendor_phone, maker, model, plate_no, seats, category, registered_at
        FROM cars WHERE plate_no = $1`, plateNo)
	var c Car
	var id uuid.UUID
	if err := row.Scan(&id, &c.VendorPhone, &c.Maker, &c.Model, &c.PlateNo, &c.Seats, &c.Category, &c.RegisteredAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Car{}, apperr.NotFound("car with plate %s not found", plateNo)
		}
		return Car{}, apperr.Internal(err, "car store failure")
	}
	c.ID = id.String()
	return c, nil
}

// ListByVendor returns all cars mapped to a vendor.
func (r *PostgresRepository) ListByVendor(ctx context.Context, vendorPhone string) ([]Car, error) {
	rows, err := r.db.Query(ctx, `SELECT id, vendor_phone, maker, model, plate_no, seats, category, registered_at
        FROM cars WHERE vendor_phone = $1 ORDER BY registered_at`, vendorPhone)
	if err != nil {
		return nil, apperr.Internal(err, "car store failure")
	}
	defer rows.Close()

	var cars []Car
	for rows.Next() {
		var c Car
		var id uuid.UUID
		if err := rows.Scan(&id, &c.VendorPhone, &c.Maker, &c.Model, &c.PlateNo, &c.Seats, &c.Category, &c.RegisteredAt); err != nil {
			return nil, apperr.Internal(err, "car store failure")
		}
		c.ID = id.String()
		cars = append(cars, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Internal(err, "car store failure")
	}
	return cars, nil
}
