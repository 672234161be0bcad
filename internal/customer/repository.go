package customer

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ride-mitra/ride_mitra/internal/apperr"
)

const pgUniqueViolation = "23505"

// Repository persists customer profiles.
type Repository interface {
	Create(ctx context.Context, customer Customer) error
	Get(ctx context.Context, phone string) (Customer, error)
	SetActive(ctx context.Context, phone string, active bool) (Customer, error)
}

// PostgresRepository stores customers in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a repository backed by PostgreSQL.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a customer profile.
func (r *PostgresRepository) Create(ctx context.Context, customer Customer) error {
	_, err := r.db.Exec(ctx, `INSERT INTO customers (phone, name, email, active, created_at)
        VALUES ($1, $2, $3, $4, $5)`,
		customer.Phone, customer.Name, customer.Email, customer.Active, customer.CreatedAt.UTC())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperr.Conflict("customer %s already exists", customer.Phone)
		}
		return apperr.Internal(err, "customer store failure")
	}
	return nil
}

// Get fetches a customer profile by phone number.
func (r *PostgresRepository) Get(ctx context.Context, phone string) (Customer, error) {
	row := r.db.QueryRow(ctx, `SELECT phone, name, email, active, created_at FROM customers WHERE phone = $1`, phone)
	var c Customer
	if err := row.Scan(&c.Phone, &c.Name, &c.Email, &c.Active, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Customer{}, apperr.NotFound("customer %s not found", phone)
		}
		return Customer{}, apperr.Internal(err, "customer store failure")
	}
	return c, nil
}

// SetActive flips the profile activation flag and returns the updated customer.
func (r *PostgresRepository) SetActive(ctx context.Context, phone string, active bool) (Customer, error) {
	cmd, err := r.db.Exec(ctx, `UPDATE customers SET active = $2 WHERE phone = $1`, phone, active)
	if err != nil {
		return Customer{}, apperr.Internal(err, "customer store failure")
	}
	if cmd.RowsAffected() == 0 {
		return Customer{}, apperr.NotFound("customer %s not found", phone)
	}
	return r.Get(ctx, phone)
}
