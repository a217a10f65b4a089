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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const DefaultPassword = "password123"

var (
	hashOnce    sync.Once
	defaultHash string
)

func defaultPasswordHash(t *testing.T) string {
	hashOnce.Do(func() {
		h, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
		if err == nil {
			defaultHash = string(h)
		}
	})
	require.NotEmpty(t, defaultHash, "failed to hash default password")
	return defaultHash
}

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()
	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, defaultPasswordHash(t), role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID))
	}
	return userID
}

func CreateInactiveUser(t *testing.T, db DBLike, email string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	_, err := db.Exec(context.Background(), "INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, 'staff', false)",
		userID, email, defaultPasswordHash(t))
	require.NoError(t, err)
	return userID
}

func CreateAgency(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO agencies (id, name) VALUES (gen_random_uuid(), $1) RETURNING id", name).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreatePermitType(t *testing.T, db DBLike, agencyID uuid.UUID, name, price, timeEstimate string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		`INSERT INTO permit_types (id, agency_id, name, description, price, time_estimate)
		 VALUES (gen_random_uuid(), $1, $2, '', $3, $4) RETURNING id`,
		agencyID, name, decimal.RequireFromString(price), timeEstimate).Scan(&id)
	require.NoError(t, err)
	return id
}

// SeedReferenceData inserts the catalog every e2e test starts from.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		WITH denr AS (
		    INSERT INTO agencies (id, name) VALUES (gen_random_uuid(), 'DENR')
		    ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		    RETURNING id
		)
		INSERT INTO permit_types (id, agency_id, name, description, price, time_estimate)
		SELECT gen_random_uuid(), denr.id, v.name, v.description, v.price, v.time_estimate
		FROM denr, (VALUES
		    ('Environmental Compliance Certificate', 'ECC for new projects', 5000.00, '30-45 days'),
		    ('Discharge Permit', 'Wastewater discharge', 3500.00, '20 days')
		) AS v(name, description, price, time_estimate)
		ON CONFLICT (agency_id, name) DO NOTHING;
	`)
	return err
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
