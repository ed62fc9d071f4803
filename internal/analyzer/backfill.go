package analyzer

import (
	"context"
	"sync"

	"feedbackservice/internal/model"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Backfill analyzes every unanalyzed row with at most concurrency calls in
// flight. A failing row is recorded and does not stop the others.
func (a *Analyzer) Backfill(ctx context.Context) (*model.BackfillReport, error) {
	pending, err := a.repo.ListUnanalyzed(ctx)
	if err != nil {
		return nil, err
	}

	report := &model.BackfillReport{
		Analyzed: make([]int64, 0, len(pending)),
		Failed:   make(map[int64]string),
	}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)

	for _, item := range pending {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			_, err := a.analyzeItem(gctx, item)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				report.Failed[item.ID] = err.Error()
				return nil
			}
			report.Analyzed = append(report.Analyzed, item.ID)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return report, err
	}

	a.logger.Info(ctx, "backfill finished",
		zap.Int("pending", len(pending)),
		zap.Int("analyzed", len(report.Analyzed)),
		zap.Int("failed", len(report.Failed)),
	)
	return report, nil
}
