package feedback

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ride-mitra/ride_mitra/internal/apperr"
)

// Repository persists feedback entries.
type Repository interface {
	Create(ctx context.Context, fb Feedback) error
	Exists(ctx context.Context, vendorPhone, customerPhone string) (bool, error)
	ListByVendor(ctx context.Context, vendorPhone string) ([]Feedback, error)
}

// PostgresRepository stores feedback in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a repository backed by PostgreSQL.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a feedback entry.
func (r *PostgresRepository) Create(ctx context.Context, fb Feedback) error {
	id, err := uuid.Parse(fb.ID)
	if err != nil {
		return apperr.Internal(err, "feedback store failure")
	}
	_, err = r.db.Exec(ctx, `INSERT INTO vendor_feedback
        (id, vendor_phone, customer_phone, booking_id, reviewer_name, star_rating, comments, badges, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		id, fb.VendorPhone, fb.CustomerPhone, fb.BookingID, fb.ReviewerName,
		fb.StarRating, fb.Comments, fb.Badges, fb.CreatedAt.UTC())
	if err != nil {
		return apperr.Internal(err, "feedback store failure")
	}
	return nil
}

// Exists reports whether the customer already rated the vendor.
func (r *PostgresRepository) Exists(ctx context.Context, vendorPhone, customerPhone string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM vendor_feedback WHERE vendor_phone = $1 AND customer_phone = $2)`,
		vendorPhone, customerPhone).Scan(&exists)
	if err != nil {
		return false, apperr.Internal(err, "feedback store failure")
	}
	return exists, nil
}

// ListByVendor returns every feedback entry for the vendor.
func (r *PostgresRepository) ListByVendor(ctx context.Context, vendorPhone string) ([]Feedback, error) {
	rows, err := r.db.Query(ctx, `SELECT id, vendor_phone, customer_phone, booking_id, reviewer_name, star_rating, comments, badges, created_at
        FROM vendor_feedback WHERE vendor_phone = $1 ORDER BY created_at DESC`, vendorPhone)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, apperr.Internal(err, "feedback store failure")
	}
	defer rows.Close()

	var out []Feedback
	for rows.Next() {
		var fb Feedback
		var id uuid.UUID
		if err := rows.Scan(&id, &fb.VendorPhone, &fb.CustomerPhone, &fb.BookingID, &fb.ReviewerName, &fb.StarRating, &fb.Comments, &fb.Badges, &fb.CreatedAt); err != nil {
			return nil, apperr.Internal(err, "feedback store failure")
		}
		fb.ID = id.String()
		out = append(out, fb)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Internal(err, "feedback store failure")
	}
	return out, nil
}
