package search

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/rjsky311/GHS-label-quick-search/internal/infrastructure/monitoring/logging"
	"github.com/rjsky311/GHS-label-quick-search/pkg/errors"
	"github.com/rjsky311/GHS-label-quick-search/pkg/types/ghs"
)

type batchIDKey struct{}

// WithBatchID attaches a batch correlation id to ctx.
func WithBatchID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, batchIDKey{}, id)
}

// BatchID returns the batch correlation id carried by ctx, if any.
func BatchID(ctx context.Context) string {
	id, _ := ctx.Value(batchIDKey{}).(string)
	return id
}

func (s *serviceImpl) SearchBatch(ctx context.Context, raws []string) ([]ghs.Result, error) {
	return s.runBatch(ctx, raws, s.Search)
}

func (s *serviceImpl) SearchBatchAny(ctx context.Context, raws []string) ([]ghs.Result, error) {
	return s.runBatch(ctx, raws, s.SearchAny)
}

// runBatch resolves raws in windows of cfg.WindowSize concurrent lookups with
// cfg.WindowPause between windows.  When ctx ends, no further window starts
// and the unprocessed slots are filled with placeholders carrying ctx's
// error.  Results are written by index so output order matches input order.
func (s *serviceImpl) runBatch(ctx context.Context, raws []string, one func(context.Context, string) ghs.Result) ([]ghs.Result, error) {
	if len(raws) > s.cfg.MaxBatch {
		return nil, errors.Errorf(errors.ErrCodeBatchTooLarge, "一次最多查詢 %d 筆，收到 %d 筆", s.cfg.MaxBatch, len(raws))
	}
	results := make([]ghs.Result, len(raws))
	if len(raws) == 0 {
		return results, nil
	}

	batchID := BatchID(ctx)
	if batchID == "" {
		batchID = uuid.NewString()
		ctx = WithBatchID(ctx, batchID)
	}
	logger := s.logger.With(logging.String("batch_id", batchID))
	s.metrics.RecordBatch(len(raws))

	start := time.Now()
	windows := (len(raws) + s.cfg.WindowSize - 1) / s.cfg.WindowSize
	done := 0
	for w := 0; w < windows; w++ {
		if w > 0 {
			if err := s.pause(ctx, s.cfg.WindowPause); err != nil {
				break
			}
		}
		if ctx.Err() != nil {
			break
		}

		lo := w * s.cfg.WindowSize
		hi := min(lo+s.cfg.WindowSize, len(raws))
		var g errgroup.Group
		for i := lo; i < hi; i++ {
			g.Go(func() error {
				results[i] = one(ctx, raws[i])
				return nil
			})
		}
		_ = g.Wait()
		done = hi

		logger.Info("batch window completed",
			logging.Int("window", w+1),
			logging.Int("windows", windows),
			logging.Int("items", hi-lo),
		)
	}

	if done < len(raws) {
		err := ctx.Err()
		if err == nil {
			err = context.Canceled
		}
		for i := done; i < len(raws); i++ {
			results[i] = s.canceled(raws[i], err)
		}
		logger.Warn("batch interrupted",
			logging.Int("completed", done),
			logging.Int("total", len(raws)),
			logging.Err(err),
		)
		return results, nil
	}

	logger.Info("batch completed",
		logging.Int("total", len(raws)),
		logging.Duration("elapsed", time.Since(start)),
	)
	return results, nil
}
