package seeder

import (
	"context"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// insertChunked applies the optional transform to every row, then writes
// the rows in chunks of chunkSize dispatched concurrently. There is no
// ordering guarantee between chunks and no atomicity across the set; the
// returned count covers chunks that committed.
func insertChunked[T any](ctx context.Context, rows []T, chunkSize int, transform func(T) (T, error), create func(context.Context, []T) error) (int, error) {
	if transform != nil {
		out := make([]T, len(rows))
		for i, row := range rows {
			t, err := transform(row)
			if err != nil {
				return 0, err
			}
			out[i] = t
		}
		rows = out
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		errs     []error
		inserted int
	)

	for start := 0; start < len(rows); start += chunkSize {
		chunk := rows[start:min(start+chunkSize, len(rows))]

		wg.Add(1)
		go func() {
			defer wg.Done()

			err := create(ctx, chunk)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			inserted += len(chunk)
		}()
	}
	wg.Wait()

	if len(errs) > 0 {
		return inserted, joinErrors(errs)
	}
	return inserted, nil
}

// conflictCreate builds the insert function for one record shape: a batch
// INSERT with ON CONFLICT DO NOTHING, so reruns never fail on duplicates.
func conflictCreate[T any](db *gorm.DB) func(context.Context, []T) error {
	return func(ctx context.Context, chunk []T) error {
		return db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&chunk).Error
	}
}

func joinErrors(errs []error) error {
	if len(errs) == 1 {
		return errs[0]
	}
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return errors.New(strings.Join(msgs, "; "))
}
