//go:build integration
// +build integration

package api_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/lib/pq"
	goose "github.com/pressly/goose/v3"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/callpulse/callpulse/config"
	"github.com/callpulse/callpulse/internal/app"
	"github.com/callpulse/callpulse/internal/domain/dto"
)

func startPG(t *testing.T) (dsn string, host string, port nat.Port, terminate func()) {
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
		WaitingFor: wait.ForSQL("5432/tcp", "postgres", func(h string, p nat.Port) string {
			return fmt.Sprintf("host=%s port=%s user=postgres password=postgres dbname=callpulse sslmode=disable", h, p.Port())
		}).WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	if err != nil {
		t.Fatalf("container: %v", err)
	}
	h, err := c.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	mp, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	dsn = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", "postgres", "postgres", h, mp.Port(), "callpulse")
	terminate = func() { _ = c.Terminate(context.Background()) }
	return dsn, h, mp, terminate
}

func openAndMigrate(t *testing.T, dsn string) *sql.DB {
	t.Helper()
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Fatalf("ping: %v", err)
	}
	if err := goose.SetDialect("postgres"); err != nil {
		t.Fatalf("dialect: %v", err)
	}
	path := filepath.Join("..", "..", "db", "migrations")
	if err := goose.Up(db, path); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedForE2E(t *testing.T, db *sql.DB, d time.Time) {
	t.Helper()
	// two calls on day one, one on day two
	rows := []struct {
		id   string
		at   time.Time
		dur  float64
		cost float64
	}{
		{"e2e-1", d.Add(10 * time.Hour), 120, 1.5},
		{"e2e-2", d.Add(15 * time.Hour), 180, 2.0},
		{"e2e-3", d.AddDate(0, 0, 1).Add(9 * time.Hour), 60, 0.5},
	}
	for _, r := range rows {
		_, err := db.Exec(`INSERT INTO calls (call_id, occurred_at, duration_seconds, cost, end_reason)
            VALUES ($1, $2, $3, $4, $5)`, r.id, r.at, r.dur, r.cost, "customer-ended-call")
		if err != nil {
			t.Fatalf("seed %s: %v", r.id, err)
		}
	}
}

func TestAPI_E2E_DailyAnalytics(t *testing.T) {
	dsn, host, port, term := startPG(t)
	defer term()
	db := openAndMigrate(t, dsn)
	defer db.Close()

	day := time.Now().UTC().AddDate(0, 0, -3)
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	seedForE2E(t, db, day)

	// Point application config to containerized DB
	config.AppConfig.Postgres.Host = host
	p, _ := nat.ParsePort(port.Port())
	config.AppConfig.Postgres.Port = int(p)
	config.AppConfig.Postgres.User = "postgres"
	config.AppConfig.Postgres.Password = "postgres"
	config.AppConfig.Postgres.DBName = "callpulse"
	config.AppConfig.Postgres.SSLMode = "disable"

	router, cleanup, err := app.InitializeApp()
	if err != nil {
		t.Fatalf("init app: %v", err)
	}
	defer cleanup()

	url := fmt.Sprintf("/api/v1/analytics/daily?start=%s&end=%s",
		day.Format("2006-01-02"), day.AddDate(0, 0, 1).Format("2006-01-02"))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d body=%s", w.Code, w.Body.String())
	}

	var body []dto.DailyBucketResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("json: %v", err)
	}
	if len(body) != 2 {
		t.Fatalf("want 2 buckets got %+v", body)
	}
	if body[0].CallCount != 2 || body[0].TotalMinutes != 5.0 || body[0].TotalCost != 3.5 || body[0].AvgDurationMinutes != 2.5 {
		t.Fatalf("unexpected day one: %+v", body[0])
	}
	if body[1].CallCount != 1 || body[1].TotalMinutes != 1.0 {
		t.Fatalf("unexpected day two: %+v", body[1])
	}

	// Summary over the same window
	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/analytics/summary?start=%s&end=%s",
		day.Format("2006-01-02"), day.AddDate(0, 0, 1).Format("2006-01-02")), nil)
	router.ServeHTTP(w2, req2)
	if w2.Code != http.StatusOK {
		t.Fatalf("summary status: %d body=%s", w2.Code, w2.Body.String())
	}
	var sum dto.SummaryResponse
	if err := json.Unmarshal(w2.Body.Bytes(), &sum); err != nil {
		t.Fatalf("json: %v", err)
	}
	if sum.CallCount != 3 || sum.TotalMinutes != 6.0 || sum.TotalCost != 4.0 || sum.AvgDurationMinutes != 2.0 {
		t.Fatalf("unexpected summary: %+v", sum)
	}
}
