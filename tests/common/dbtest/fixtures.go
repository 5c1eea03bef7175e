//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Reference packages seeded into every test database.
var (
	CounsellingPackageID = uuid.MustParse("6f1c8a8e-3a57-4c55-9a0e-7c1d2f000001")
	ContentPackageID     = uuid.MustParse("6f1c8a8e-3a57-4c55-9a0e-7c1d2f000002")
	RetiredPackageID     = uuid.MustParse("6f1c8a8e-3a57-4c55-9a0e-7c1d2f000003")
)

const (
	CounsellingPrice = int64(499900)
	ContentPrice     = int64(99900)
	Currency         = "INR"
)

type PackageFixture struct {
	Name         string
	Kind         string
	PriceMinor   int64
	ValidityDays int
	MaxSessions  int
	Active       bool
}

func CreateTestPackage(t *testing.T, db DBLike, p PackageFixture) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO packages (id, name, kind, price_minor, currency, validity_days, max_sessions, session_duration_minutes, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 30, $8)`,
		id, p.Name, p.Kind, p.PriceMinor, Currency, p.ValidityDays, p.MaxSessions, p.Active)
	require.NoError(t, err)
	return id
}

// SetEntitlementExpiry moves an entitlement's expiry so expiry paths can be
// exercised without waiting.
func SetEntitlementExpiry(t *testing.T, db DBLike, id uuid.UUID, expiresAt time.Time) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"UPDATE entitlements SET enrolled_at = $2 - interval '1 day', expires_at = $2 WHERE id = $1", id, expiresAt)
	require.NoError(t, err)
}

func CountRows(t *testing.T, db DBLike, table, where string, args ...any) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table+" WHERE "+where, args...).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO packages (id, name, kind, price_minor, currency, validity_days, max_sessions, session_duration_minutes, features, is_active) VALUES
		    ($1, 'Counselling 3-pack', 'counselling', $4, 'INR', 90, 3, 30, '{video,notes}', true),
		    ($2, 'Past papers', 'content', $5, 'INR', 365, 0, 0, '{papers}', true),
		    ($3, 'Retired bundle', 'counselling', $4, 'INR', 30, 1, 30, '{}', false)
		ON CONFLICT (id) DO NOTHING;
	`, CounsellingPackageID, ContentPackageID, RetiredPackageID, CounsellingPrice, ContentPrice)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
