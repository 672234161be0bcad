package wallet

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ride-mitra/ride_mitra/internal/apperr"
)

const pgUniqueViolation = "23505"

// PostgresAccountStore stores wallet accounts in PostgreSQL.
type PostgresAccountStore struct {
	db *pgxpool.Pool
}

// NewPostgresAccountStore builds an account store backed by PostgreSQL.
func NewPostgresAccountStore(db *pgxpool.Pool) *PostgresAccountStore {
	return &PostgresAccountStore{db: db}
}

// Create inserts the account with version 1.
func (s *PostgresAccountStore) Create(ctx context.Context, account Account) error {
	_, err := s.db.Exec(ctx, `INSERT INTO wallet_accounts
        (vendor_phone, scheme, balance, period_start, period_end, active, version, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, 1, $7, $8)`,
		account.VendorPhone, string(account.Scheme), account.Balance,
		account.PeriodStart.UTC(), account.PeriodEnd.UTC(), account.Active,
		account.CreatedAt.UTC(), account.UpdatedAt.UTC())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperr.Conflict("wallet for vendor %s already exists", account.VendorPhone)
		}
		return apperr.Internal(err, "wallet store failure")
	}
	return nil
}

// Get fetches the account row including its version marker.
func (s *PostgresAccountStore) Get(ctx context.Context, vendorPhone string) (Account, error) {
	row := s.db.QueryRow(ctx, `SELECT vendor_phone, scheme, balance, period_start, period_end, active, version, created_at, updated_at
        FROM wallet_accounts WHERE vendor_phone = $1`, vendorPhone)

	var a Account
	var scheme string
	if err := row.Scan(&a.VendorPhone, &scheme, &a.Balance, &a.PeriodStart, &a.PeriodEnd, &a.Active, &a.Version, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Account{}, apperr.NotFound("wallet for vendor %s not found", vendorPhone)
		}
		return Account{}, apperr.Internal(err, "wallet store failure")
	}
	a.Scheme = Scheme(scheme)
	return a, nil
}

// Update commits the account with a conditional write on the version the
// caller read. No row updated means the version moved underneath us.
func (s *PostgresAccountStore) Update(ctx context.Context, account Account) error {
	cmd, err := s.db.Exec(ctx, `UPDATE wallet_accounts
        SET scheme = $2, balance = $3, period_start = $4, period_end = $5, active = $6,
            version = version + 1, updated_at = $7
        WHERE vendor_phone = $1 AND version = $8`,
		account.VendorPhone, string(account.Scheme), account.Balance,
		account.PeriodStart.UTC(), account.PeriodEnd.UTC(), account.Active,
		time.Now().UTC(), account.Version)
	if err != nil {
		return apperr.Internal(err, "wallet store failure")
	}
	if cmd.RowsAffected() == 0 {
		return ErrVersionConflict
	}
	return nil
}

// PostgresPaymentStore stores the append-only payment history in PostgreSQL.
type PostgresPaymentStore struct {
	db *pgxpool.Pool
}

// NewPostgresPaymentStore builds a payment store backed by PostgreSQL.
func NewPostgresPaymentStore(db *pgxpool.Pool) *PostgresPaymentStore {
	return &PostgresPaymentStore{db: db}
}

// Append inserts one audit record. There is no update or delete path.
func (s *PostgresPaymentStore) Append(ctx context.Context, payment Payment) error {
	id, err := uuid.Parse(payment.ID)
	if err != nil {
		return apperr.Internal(err, "payment record failure")
	}
	_, err = s.db.Exec(ctx, `INSERT INTO wallet_payments (id, vendor_phone, channel, amount, status, recorded_at)
        VALUES ($1, $2, $3, $4, $5, $6)`,
		id, payment.VendorPhone, payment.Channel, payment.Amount, payment.Status, payment.RecordedAt.UTC())
	if err != nil {
		return apperr.Internal(err, "payment record failure")
	}
	return nil
}

// ListRecent returns the newest records first, bounded by limit.
func (s *PostgresPaymentStore) ListRecent(ctx context.Context, vendorPhone string, limit int) ([]Payment, error) {
	rows, err := s.db.Query(ctx, `SELECT id, vendor_phone, channel, amount, status, recorded_at
        FROM wallet_payments WHERE vendor_phone = $1
        ORDER BY recorded_at DESC LIMIT $2`, vendorPhone, limit)
	if err != nil {
		return nil, apperr.Internal(err, "payment record failure")
	}
	defer rows.Close()

	payments := make([]Payment, 0, limit)
	for rows.Next() {
		var p Payment
		var id uuid.UUID
		if err := rows.Scan(&id, &p.VendorPhone, &p.Channel, &p.Amount, &p.Status, &p.RecordedAt); err != nil {
			return nil, apperr.Internal(err, "payment record failure")
		}
		p.ID = id.String()
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Internal(err, "payment record failure")
	}
	return payments, nil
}
