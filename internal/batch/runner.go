// Package batch runs many calculation requests concurrently and moves them
// in and out of spreadsheets.
package batch

import (
	"context"
	"time"

	"github.com/alexiusacademia/gocfs/internal/engine"
	"github.com/alexiusacademia/gocfs/internal/logging"
	"github.com/alexiusacademia/gocfs/internal/request"
	"github.com/alexiusacademia/gocfs/internal/verdict"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Outcome is the result of one request of a batch. Exactly one of Result
// and Err is set.
type Outcome struct {
	ID       string // id given in the input, may be empty
	CalcID   string // generated for every calculation
	Request  engine.Request
	Result   *verdict.CalculationResult
	Err      error
	Duration time.Duration
}

// Runner checks requests on a shared engine with bounded concurrency.
type Runner struct {
	eng   *engine.Engine
	log   *zap.Logger
	limit int
}

// NewRunner returns a runner that runs at most limit calculations at once.
func NewRunner(eng *engine.Engine, log *zap.Logger, limit int) *Runner {
	if limit < 1 {
		limit = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{eng: eng, log: log, limit: limit}
}

// Run checks every item and returns the outcomes in input order. A rejected
// request is recorded in its outcome and does not stop the batch; only a
// cancelled context does.
func (r *Runner) Run(ctx context.Context, items []request.Item) ([]Outcome, error) {
	out := make([]Outcome, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.limit)
	for i, it := range items {
		i, it := i, it
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = r.runOne(it)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	r.log.Info("batch finished", zap.Int("requests", len(items)), zap.Int("failed", countFailed(out)))
	return out, nil
}

func (r *Runner) runOne(it request.Item) Outcome {
	o := Outcome{
		ID:      it.ID,
		CalcID:  uuid.NewString(),
		Request: it.Request,
	}
	start := time.Now()
	o.Result, o.Err = r.eng.Check(it.Request)
	o.Duration = time.Since(start)

	fields := append(logging.Calculation(o.CalcID, string(it.Request.Member), it.Request.Section),
		zap.String("id", it.ID),
		zap.Duration("duration", o.Duration),
	)
	if o.Err != nil {
		r.log.Warn("request rejected", append(fields, zap.Error(o.Err))...)
		return o
	}
	r.log.Debug("request checked", append(fields, zap.Bool("pass", o.Result.Pass))...)
	return o
}

// countFailed counts outcomes that were rejected or did not pass.
func countFailed(out []Outcome) int {
	n := 0
	for _, o := range out {
		if o.Err != nil || !o.Result.Pass {
			n++
		}
	}
	return n
}
