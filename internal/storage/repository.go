package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/callpulse/callpulse/internal/domain/models"
	pq "github.com/lib/pq"
)

// CallsRepository defines contract for DB operations.
type CallsRepository interface {
	InsertCallsBatch(calls []models.CallRecord) error
	ListCallsByWindow(start time.Time, end time.Time, limit int) ([]models.CallRecord, error)
	HasSyncForDate(date time.Time) (bool, error)
	UpsertSyncLog(date time.Time, source string, rowCount int) error
	DeleteCallsByDate(date time.Time) error
}

type callsRepository struct {
	db *sql.DB
}

func NewCallsRepository(db *sql.DB) CallsRepository {
	return &callsRepository{db: db}
}

// InsertCallsBatch inserts multiple calls into DB in a single transaction.
func (r *callsRepository) InsertCallsBatch(calls []models.CallRecord) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}

	// Small optimization for bulk load
	if _, err := tx.Exec(`SET LOCAL synchronous_commit = OFF`); err != nil {
		_ = tx.Rollback()
		return err
	}

	stmt, err := tx.Prepare(pq.CopyIn(
		"calls",
		"call_id",
		"occurred_at",
		"duration_seconds",
		"cost",
		"end_reason",
	))
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	for _, rec := range calls {
		if _, err := stmt.Exec(
			rec.ID,
			rec.OccurredAt.UTC(),
			rec.DurationSeconds,
			rec.Cost,
			rec.EndReason,
		); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return err
		}
	}

	if _, err := stmt.Exec(); err != nil {
		_ = stmt.Close()
		_ = tx.Rollback()
		return err
	}
	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// ListCallsByWindow returns all calls with occurred_at inside [start, end],
// ordered by occurrence so downstream aggregation is deterministic.
// A limit <= 0 means no limit.
func (r *callsRepository) ListCallsByWindow(start time.Time, end time.Time, limit int) ([]models.CallRecord, error) {
	query := `
		SELECT call_id, occurred_at, duration_seconds, cost, end_reason
		FROM calls
		WHERE occurred_at >= $1 AND occurred_at <= $2
		ORDER BY occurred_at ASC, call_id ASC`
	args := []interface{}{start.UTC(), end.UTC()}
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", len(args)+1)
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []models.CallRecord
	for rows.Next() {
		var rec models.CallRecord
		var endReason sql.NullString
		if err := rows.Scan(&rec.ID, &rec.OccurredAt, &rec.DurationSeconds, &rec.Cost, &endReason); err != nil {
			return nil, err
		}
		if endReason.Valid {
			rec.EndReason = endReason.String
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// HasSyncForDate checks if a sync was already recorded for a given day.
func (r *callsRepository) HasSyncForDate(date time.Time) (bool, error) {
	var exists bool
	// sync_log.call_date is the canonical per-day key
	err := r.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM sync_log WHERE call_date = $1)`, date).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// UpsertSyncLog records (or updates) a sync entry for a given day.
func (r *callsRepository) UpsertSyncLog(date time.Time, source string, rowCount int) error {
	_, err := r.db.Exec(`
		INSERT INTO sync_log (call_date, source, row_count)
		VALUES ($1, $2, $3)
		ON CONFLICT (call_date)
		DO UPDATE SET source = EXCLUDED.source,
					  row_count = EXCLUDED.row_count,
					  synced_at = NOW()
	`, date, source, rowCount)
	return err
}

// DeleteCallsByDate removes all calls that occurred on a given day.
func (r *callsRepository) DeleteCallsByDate(date time.Time) error {
	_, err := r.db.Exec(`DELETE FROM calls WHERE occurred_at >= $1 AND occurred_at < $2`, date, date.AddDate(0, 0, 1))
	return err
}
