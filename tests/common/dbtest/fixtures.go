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
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	// bcrypt hash of "password123"
	passwordHash := "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."
	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, passwordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestBarber(t *testing.T, db DBLike, name string, specialties ...string) uuid.UUID {
	t.Helper()

	if len(specialties) == 0 {
		specialties = []string{"haircut", "beard_trim"}
	}

	barberID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO barbers (id, name, status, specialties) VALUES ($1, $2, 'active', $3)",
		barberID, name, specialties)
	require.NoError(t, err)

	// Working hours Monday through Saturday, 09:00-18:00.
	for weekday := 1; weekday <= 6; weekday++ {
		_, err = db.Exec(ctx, "INSERT INTO barber_working_hours (barber_id, weekday, start_min, end_min) VALUES ($1, $2, $3, $4)",
			barberID, weekday, 9*60, 18*60)
		require.NoError(t, err)
	}

	return barberID
}

func CreateTestClient(t *testing.T, db DBLike, name, email string) uuid.UUID {
	t.Helper()

	clientID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO clients (id, name, email, status) VALUES ($1, $2, $3, 'active') ON CONFLICT (email) DO NOTHING",
		clientID, name, email)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM clients WHERE email = $1", email).Scan(&clientID)
	}

	return clientID
}

func CreateTestService(t *testing.T, db DBLike, name string, durationMin int32, priceCents int64, skills ...string) uuid.UUID {
	t.Helper()

	serviceID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO services (id, name, duration_min, price_cents, currency, required_skills, active) VALUES ($1, $2, $3, $4, 'ARS', $5, true)",
		serviceID, name, durationMin, priceCents, skills)
	require.NoError(t, err)

	return serviceID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	// All fixtures are created per-test; nothing is shared across tests.
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
