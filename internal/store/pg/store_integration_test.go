//go:build integration

package pg

import (
	"context"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flare/internal/domain"
	"flare/internal/service"
	"flare/internal/store"
)

func TestIntegrationInsertAndFind(t *testing.T) {
	ctx := context.Background()
	db, cleanup := setupTestDB(t)
	defer cleanup()
	s := New(db)

	_, err := s.FindByPhone(ctx, "5551234567")
	require.ErrorIs(t, err, store.ErrNotFound)

	rec, err := s.InsertPhone(ctx, "5551234567")
	require.NoError(t, err)
	assert.NotZero(t, rec.ID)
	assert.False(t, rec.CreatedAt.IsZero())

	got, err := s.FindByPhone(ctx, "5551234567")
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
}

func TestIntegrationUniqueConstraint(t *testing.T) {
	ctx := context.Background()
	db, cleanup := setupTestDB(t)
	defer cleanup()
	s := New(db)

	_, err := s.InsertPhone(ctx, "5551234567")
	require.NoError(t, err)
	_, err = s.InsertPhone(ctx, "5551234567")
	require.ErrorIs(t, err, store.ErrDuplicate)
}

func TestIntegrationCheckConstraintRejectsNonDigits(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := New(db).InsertPhone(context.Background(), "555-123-45")
	require.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrDuplicate)
}

func TestIntegrationConcurrentRegistration(t *testing.T) {
	const n = 20
	db, cleanup := setupTestDB(t)
	defer cleanup()
	svc := &service.IntakeService{Store: New(db)}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
		kinds   = map[domain.ErrorKind]int{}
	)
	start := make(chan struct{})
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := svc.Register(context.Background(), "(555) 123-4567")
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				created++
				return
			}
			kinds[domain.KindOf(err)]++
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Equal(t, n-1, kinds[domain.KindConflict])

	var count int
	require.NoError(t, db.QueryRow(context.Background(),
		`SELECT count(*) FROM phone_numbers WHERE phone=$1`, "5551234567").Scan(&count))
	assert.Equal(t, 1, count)
}

func setupTestDB(t *testing.T) (*pgxpool.Pool, func()) {
	t.Helper()

	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		dsn = os.Getenv("DB_DSN")
	}
	if dsn == "" {
		t.Skip("TEST_DB_DSN or DB_DSN not set")
	}

	schema := fmt.Sprintf("test_%d", time.Now().UnixNano())
	admin, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err, "connect admin db")

	if _, err := admin.Exec(context.Background(), "CREATE SCHEMA "+schema); err != nil {
		admin.Close()
		t.Fatalf("create schema: %v", err)
	}

	dbDSN, err := withSearchPath(dsn, schema)
	if err != nil {
		admin.Close()
		t.Fatalf("build dsn: %v", err)
	}
	db, err := NewPool(context.Background(), dbDSN, PoolOptions{MaxConns: 8})
	if err != nil {
		admin.Close()
		t.Fatalf("connect test db: %v", err)
	}

	up, err := fs.ReadFile(MigrationFS, "migrations/001_phone_numbers.up.sql")
	if err != nil {
		db.Close()
		admin.Close()
		t.Fatalf("read migration: %v", err)
	}
	if _, err := db.Exec(context.Background(), string(up)); err != nil {
		db.Close()
		admin.Close()
		t.Fatalf("run migration: %v", err)
	}

	cleanup := func() {
		db.Close()
		_, _ = admin.Exec(context.Background(), "DROP SCHEMA "+schema+" CASCADE")
		admin.Close()
	}
	return db, cleanup
}

func withSearchPath(dsn, schema string) (string, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return "", err
	}
	q := u.Query()
	opts := q.Get("options")
	if opts != "" {
		opts = opts + " -c search_path=" + schema
	} else {
		opts = "-c search_path=" + schema
	}
	q.Set("options", opts)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
