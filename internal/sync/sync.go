package sync

import (
	"context"
	"database/sql"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/callpulse/callpulse/internal/domain/models"
	"github.com/callpulse/callpulse/internal/logger"
	"github.com/callpulse/callpulse/internal/storage"
)

const (
	syncSource       = "voiceapi"
	defaultBatchSize = 500
	maxWindowDays    = 31
)

// CallFetcher is the upstream capability the pipeline pulls records from.
// *voiceapi.Client satisfies it.
type CallFetcher interface {
	ListCalls(ctx context.Context, start, end time.Time) ([]models.CallRecord, error)
}

// repoCtor is an indirection for creating the repository; tests can override this.
var repoCtor = func(db *sql.DB) storage.CallsRepository {
	return storage.NewCallsRepository(db)
}

// ProcessWindow pulls the last nDays calendar days of calls from the
// upstream voice API and persists them, one day-chunk at a time.
//
// Behavior:
//   - Days already present in sync_log are skipped unless force is set;
//     force deletes the day's calls and refetches.
//   - Day chunks run concurrently, limited to clamp(parallel, 1..7) or
//     min(7, NumCPU) when parallel is 0.
//   - Records are inserted in batches via the repository.
//   - The first error cancels the remaining day chunks.
//
// Returns the first error encountered, if any.
func ProcessWindow(ctx context.Context, fetcher CallFetcher, db *sql.DB, nDays int, parallel int, force bool) error {
	repo := repoCtor(db)

	if nDays < 1 {
		nDays = 1
	}
	if nDays > maxWindowDays {
		nDays = maxWindowDays
	}
	dates := LastNDays(nDays, time.Now())

	logger.L().Info().Int("days", len(dates)).Msg("sync start")

	maxParallel := 7
	if parallel > 0 {
		if parallel > 7 {
			parallel = 7
		}
		maxParallel = parallel
	} else if c := runtime.NumCPU(); c < maxParallel {
		maxParallel = c
	}

	logger.L().Info().Int("max_parallel", maxParallel).Msg("sync configured")

	// errgroup will cancel siblings on first error.
	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, maxParallel)

	for i, date := range dates {
		idx := i
		d := date
		sem <- struct{}{}

		g.Go(func() error {
			defer func() { <-sem }()
			start := time.Now()
			dayLabel := d.Format("2006-01-02")
			logger.L().Info().Int("idx", idx+1).Int("total", len(dates)).Str("day", dayLabel).Msg("day start")

			// Idempotency: skip if already synced, unless force
			exists, err := repo.HasSyncForDate(d)
			if err != nil {
				logger.L().Error().Str("day", dayLabel).Err(err).Msg("check sync log failed")
				return fmt.Errorf("day %s: check sync log: %w", dayLabel, err)
			}
			if exists && !force {
				logger.L().Info().Int("idx", idx+1).Int("total", len(dates)).Str("day", dayLabel).Bool("skipped", true).Msg("already synced")
				return nil
			}
			if exists && force {
				if err := repo.DeleteCallsByDate(d); err != nil {
					logger.L().Error().Str("day", dayLabel).Err(err).Msg("delete existing failed")
					return fmt.Errorf("day %s: delete existing: %w", dayLabel, err)
				}
			}

			total, err := fetchAndPersistDay(gctx, fetcher, repo, d, defaultBatchSize)
			if err != nil {
				logger.L().Error().Str("day", dayLabel).Dur("elapsed", time.Since(start)).Err(err).Msg("day failed")
				return fmt.Errorf("day %s: %w", dayLabel, err)
			}
			if err := repo.UpsertSyncLog(d, syncSource, total); err != nil {
				logger.L().Error().Str("day", dayLabel).Err(err).Msg("update sync log failed")
				return fmt.Errorf("day %s: upsert sync log: %w", dayLabel, err)
			}
			logger.L().Info().Int("idx", idx+1).Int("total", len(dates)).Str("day", dayLabel).Int("rows", total).Dur("elapsed", time.Since(start)).Bool("force", force).Msg("day done")
			return nil
		})
	}

	return g.Wait()
}

// fetchAndPersistDay pulls one UTC day of calls from the upstream and
// inserts them in batches. Returns the number of persisted records.
func fetchAndPersistDay(ctx context.Context, fetcher CallFetcher, repo storage.CallsRepository, day time.Time, batch int) (int, error) {
	start, end := dayBounds(day)

	records, err := fetcher.ListCalls(ctx, start, end)
	if err != nil {
		return 0, fmt.Errorf("fetch calls: %w", err)
	}

	total := 0
	for len(records) > 0 {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}

		n := batch
		if n > len(records) {
			n = len(records)
		}
		if err := repo.InsertCallsBatch(records[:n]); err != nil {
			return 0, fmt.Errorf("insert batch: %w", err)
		}
		total += n
		records = records[n:]
	}
	return total, nil
}
