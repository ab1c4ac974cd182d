package main

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"csv-mapper/csvio"
	"csv-mapper/csvmap"
	"csv-mapper/mapping"
)

func newDumpCmd(a *app) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "dump FILE",
		Short: "Print the typed values of every row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDump(cmd.OutOrStdout(), args[0], raw)
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "dump Go values with spew")

	return cmd
}

func (a *app) runDump(out io.Writer, path string, raw bool) error {
	f, m, err := a.loadSchema()
	if err != nil {
		return err
	}

	opts, err := a.csvOptions(f)
	if err != nil {
		return err
	}

	rc, err := csvio.Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()

	for entries, err := range csvmap.Read(rc, m, collectEntries, opts...) {
		if rowErr := (*csvmap.RowError)(nil); errors.As(err, &rowErr) {
			a.log.Warn("skipping row", "row", rowErr.Row, "err", rowErr.Err)
			continue
		}

		if err != nil {
			return err
		}

		if raw {
			spew.Fdump(out, entries)
			continue
		}

		fmt.Fprintln(out, formatEntries(entries))
	}

	return nil
}

func collectEntries(m *mapping.Mapping) ([]mapping.Entry, error) {
	entries := make([]mapping.Entry, 0, m.Len())

	for e, err := range m.Entries() {
		if err != nil {
			return nil, err
		}

		entries = append(entries, e)
	}

	return entries, nil
}

func formatEntries(entries []mapping.Entry) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = e.Name + "=" + formatValue(e.Value)
	}

	return strings.Join(parts, " ")
}

// formatValue prints pointers by their target.
func formatValue(v any) string {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "<nil>"
		}

		v = rv.Elem().Interface()
	}

	return fmt.Sprint(v)
}
