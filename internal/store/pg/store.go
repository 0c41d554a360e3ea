package pg

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"flare/internal/observability"
	"flare/internal/store"
)

const uniqueViolation = "23505"

// DB is the subset of *pgxpool.Pool the store uses.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

type Store struct {
	DB DB
}

func New(db DB) *Store { return &Store{DB: db} }

func (s *Store) FindByPhone(ctx context.Context, phone string) (store.PhoneRegistration, error) {
	defer observeLatency("find_by_phone", time.Now())

	row := s.DB.QueryRow(ctx, `
		SELECT id, phone, created_at FROM phone_numbers WHERE phone=$1
	`, phone)
	var out store.PhoneRegistration
	if err := row.Scan(&out.ID, &out.Phone, &out.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return store.PhoneRegistration{}, store.ErrNotFound
		}
		return store.PhoneRegistration{}, fmt.Errorf("find phone: %w", err)
	}
	return out, nil
}

func (s *Store) InsertPhone(ctx context.Context, phone string) (store.PhoneRegistration, error) {
	defer observeLatency("insert_phone", time.Now())

	row := s.DB.QueryRow(ctx, `
		INSERT INTO phone_numbers (phone) VALUES ($1)
		RETURNING id, phone, created_at
	`, phone)
	var out store.PhoneRegistration
	if err := row.Scan(&out.ID, &out.Phone, &out.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return store.PhoneRegistration{}, fmt.Errorf("insert phone: %w", store.ErrDuplicate)
		}
		return store.PhoneRegistration{}, fmt.Errorf("insert phone: %w", err)
	}
	return out, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.DB.Ping(ctx)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func observeLatency(op string, start time.Time) {
	observability.StoreLatency.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
