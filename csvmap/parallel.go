package csvmap

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"csv-mapper/csvio"
	"csv-mapper/mapping"
	"csv-mapper/record"
)

type job struct {
	row int
	rec *record.Record
}

// ProcessParallel reads every row of r and calls fn on one of workers
// goroutines. Each worker binds the row to its own clone of m; m itself is
// left untouched. Rows are handed over as distinct records even when r
// reuses its record.
//
// The first error from r or fn cancels the remaining work and is returned.
// fn errors are wrapped in *RowError. A worker count below one means
// GOMAXPROCS.
func ProcessParallel(ctx context.Context, r *csvio.Reader, m *mapping.Mapping, workers int, fn func(context.Context, *mapping.Mapping) error) error {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	jobs := make(chan job)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(readRows(gctx, r, jobs))

	for w := range workers {
		g.Go(processRows(gctx, w, m.Clone(), jobs, fn))
	}

	return g.Wait()
}

func readRows(ctx context.Context, r *csvio.Reader, jobs chan<- job) func() error {
	return func() error {
		defer close(jobs)

		for {
			rec, err := r.Read()
			if errors.Is(err, io.EOF) {
				return nil
			}

			if err != nil {
				return err
			}

			if r.ReusesRecord() {
				rec = rec.Clone()
			}

			select {
			case <-ctx.Done():
				return ctx.Err()
			case jobs <- job{row: r.Row(), rec: rec}:
			}
		}
	}
}

func processRows(ctx context.Context, worker int, m *mapping.Mapping, jobs <-chan job, fn func(context.Context, *mapping.Mapping) error) func() error {
	return func() error {
		slog.Debug("csvmap: worker started", "worker", worker)

		n := 0
		defer func() { slog.Debug("csvmap: worker stopped", "worker", worker, "rows", n) }()

		for j := range jobs {
			if ctx.Err() != nil {
				return nil
			}

			m.SetRecord(j.rec)

			if err := fn(ctx, m); err != nil {
				return &RowError{Row: j.row, Err: err}
			}

			n++
		}

		return nil
	}
}
