package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"csv-mapper/conv"
	"csv-mapper/csvio"
	"csv-mapper/csvmap"
	"csv-mapper/internal/diagnostic"
	"csv-mapper/mapping"
)

var errCheckFailed = errors.New("check failed")

func newCheckCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Read every row through the schema and report conversion errors",
		Long: `Check reads each file (plain or .zst compressed) through the mapping the
schema describes and reports every value that fails to convert, with its
row number. It exits non-zero when any error is found.

With --fail-fast rows are converted by parallel workers and checking stops
at the first error.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(cmd.Context(), cmd.OutOrStdout(), args)
		},
	}

	fs := cmd.Flags()
	fs.Bool("fail-fast", false, "stop at the first error")
	fs.Int("workers", 0, "workers for --fail-fast (0 uses GOMAXPROCS)")

	a.bind(fs, map[string]string{
		"fail_fast": "fail-fast",
		"workers":   "workers",
	})

	return cmd
}

func (a *app) runCheck(ctx context.Context, out io.Writer, paths []string) error {
	f, m, err := a.loadSchema()
	if err != nil {
		return err
	}

	opts, err := a.csvOptions(f)
	if err != nil {
		return err
	}

	var total diagnostic.Diagnostics

	for _, path := range paths {
		if a.cfg.FailFast {
			if err := a.checkFast(ctx, path, m, opts); err != nil {
				fmt.Fprintf(out, "%s: %v\n", path, err)
				return errCheckFailed
			}

			continue
		}

		d, err := a.checkFile(ctx, path, m, opts)
		for _, e := range d.Errors {
			fmt.Fprintln(out, e.String())
		}

		total.Merge(*d)

		if err != nil {
			return err
		}
	}

	if total.HasErrors() {
		a.log.Error("check failed", "errors", len(total.Errors))
		return errCheckFailed
	}

	a.log.Info("check passed", "files", len(paths))

	return nil
}

// checkFile converts every row of path and reports each failing value.
// A CSV syntax error ends the file.
func (a *app) checkFile(ctx context.Context, path string, m *mapping.Mapping, opts []csvio.Option) (*diagnostic.Diagnostics, error) {
	d := &diagnostic.Diagnostics{}

	rc, err := csvio.Open(path)
	if err != nil {
		return d, err
	}
	defer rc.Close()

	r := csvio.NewReader(rc, append(opts, csvio.WithReuseRecord(true))...)

	for {
		if err := ctx.Err(); err != nil {
			return d, err
		}

		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return d, fmt.Errorf("%s: %w", path, err)
		}

		m.SetRecord(rec)

		for e, err := range m.Entries() {
			if err != nil {
				d.AddError(errorCode(err), err.Error(), fmt.Sprintf("%s row %d", path, r.Row()), e.Name)
			}
		}
	}

	a.log.Debug("file checked", "file", path, "rows", r.Row(), "errors", len(d.Errors))

	return d, nil
}

// checkFast converts rows in parallel and returns the first failure.
func (a *app) checkFast(ctx context.Context, path string, m *mapping.Mapping, opts []csvio.Option) error {
	rc, err := csvio.Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()

	r := csvio.NewReader(rc, opts...)

	return csvmap.ProcessParallel(ctx, r, m, a.cfg.Workers, func(_ context.Context, m *mapping.Mapping) error {
		for _, err := range m.Entries() {
			if err != nil {
				return err
			}
		}

		return nil
	})
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, conv.ErrFormat):
		return "format_error"
	case errors.Is(err, conv.ErrCast):
		return "cast_error"
	default:
		return "read_error"
	}
}
