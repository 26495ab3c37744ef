//go:build integration
// +build integration

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/lib/pq"
	goose "github.com/pressly/goose/v3"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/callpulse/callpulse/internal/domain/models"
)

// startPostgres spins up a Postgres container and returns a DSN and terminate func.
func startPostgres(t *testing.T) (dsn string, terminate func()) {
	t.Helper()
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "callpulse",
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "postgres", func(host string, port nat.Port) string {
			return fmt.Sprintf("host=%s port=%s user=postgres password=postgres dbname=callpulse sslmode=disable", host, port.Port())
		}).WithStartupTimeout(60 * time.Second),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	if err != nil {
		t.Fatalf("container start: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}

	dsn = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", "postgres", "postgres", host, port.Port(), "callpulse")
	terminate = func() { _ = container.Terminate(context.Background()) }
	return dsn, terminate
}

func openDB(t *testing.T, dsn string) *sql.DB {
	t.Helper()
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Fatalf("ping: %v", err)
	}
	return db
}

func runMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	if err := goose.SetDialect("postgres"); err != nil {
		t.Fatalf("dialect: %v", err)
	}
	// migrations path relative to this test file (internal/storage → ../../db/migrations)
	path := filepath.Join("..", "..", "db", "migrations")
	if err := goose.Up(db, path); err != nil {
		t.Fatalf("migrate up: %v", err)
	}
}

func sampleCalls(base time.Time) []models.CallRecord {
	return []models.CallRecord{
		{ID: "c1", OccurredAt: base.Add(10 * time.Hour), DurationSeconds: 120, Cost: 1.5, EndReason: "customer-ended-call"},
		{ID: "c2", OccurredAt: base.Add(15 * time.Hour), DurationSeconds: 180, Cost: 2.0, EndReason: "assistant-hangup"},
		{ID: "c3", OccurredAt: base.AddDate(0, 0, 1).Add(9 * time.Hour), DurationSeconds: 60, Cost: 0.5, EndReason: "error"},
	}
}

func TestRepository_Integration_RoundTrip(t *testing.T) {
	dsn, term := startPostgres(t)
	defer term()
	db := openDB(t, dsn)
	defer db.Close()
	runMigrations(t, db)

	repo := NewCallsRepository(db)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	if err := repo.InsertCallsBatch(sampleCalls(base)); err != nil {
		t.Fatalf("insert: %v", err)
	}

	// Full window picks up all three calls, ordered by occurrence
	out, err := repo.ListCallsByWindow(base, base.AddDate(0, 0, 2), 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("want 3 calls got %d", len(out))
	}
	if out[0].ID != "c1" || out[2].ID != "c3" {
		t.Fatalf("unexpected order: %+v", out)
	}

	// Narrow window excludes the next day
	out, err = repo.ListCallsByWindow(base, base.Add(24*time.Hour-time.Nanosecond), 0)
	if err != nil {
		t.Fatalf("list narrow: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("want 2 calls in day one, got %d", len(out))
	}

	// Limit applies
	out, err = repo.ListCallsByWindow(base, base.AddDate(0, 0, 2), 1)
	if err != nil {
		t.Fatalf("list limit: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("want 1 call with limit, got %d", len(out))
	}
}

func TestRepository_Integration_SyncLogAndDelete(t *testing.T) {
	dsn, term := startPostgres(t)
	defer term()
	db := openDB(t, dsn)
	defer db.Close()
	runMigrations(t, db)

	repo := NewCallsRepository(db)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	if err := repo.InsertCallsBatch(sampleCalls(base)); err != nil {
		t.Fatalf("insert: %v", err)
	}

	ok, err := repo.HasSyncForDate(base)
	if err != nil || ok {
		t.Fatalf("HasSyncForDate before upsert: ok=%v err=%v", ok, err)
	}

	if err := repo.UpsertSyncLog(base, "voiceapi", 2); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	// Upsert again to exercise the conflict path
	if err := repo.UpsertSyncLog(base, "voiceapi", 3); err != nil {
		t.Fatalf("upsert conflict: %v", err)
	}

	ok, err = repo.HasSyncForDate(base)
	if err != nil || !ok {
		t.Fatalf("HasSyncForDate after upsert: ok=%v err=%v", ok, err)
	}

	// Delete day one; day two's call survives
	if err := repo.DeleteCallsByDate(base); err != nil {
		t.Fatalf("delete: %v", err)
	}
	out, err := repo.ListCallsByWindow(base, base.AddDate(0, 0, 2), 0)
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}
	if len(out) != 1 || out[0].ID != "c3" {
		t.Fatalf("unexpected survivors: %+v", out)
	}
}
