// Package main provides the CLI entrypoint for csvmap.
//
// csvmap works with YAML mapping schemas:
//   - check reads CSV files through a schema and reports conversion errors
//   - dump prints the typed values of every row
//   - gen generates a typed view for a schema
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}
