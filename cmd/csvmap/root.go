package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	a := newApp()

	root := &cobra.Command{
		Use:          "csvmap",
		Short:        "Typed CSV mapping driven by YAML schemas",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (yaml)")
	pf.String("log-level", "info", "log level: debug, info, warn or error")
	pf.StringP("schema", "s", "", "mapping schema (yaml)")
	pf.String("separator", "", "field separator, overrides the schema")
	pf.Bool("has-header", true, "whether the first row is a header, overrides the schema")
	pf.Bool("ignore-case", false, "match header names case-insensitively, overrides the schema")

	a.bind(pf, map[string]string{
		"config":      "config",
		"log_level":   "log-level",
		"schema":      "schema",
		"separator":   "separator",
		"has_header":  "has-header",
		"ignore_case": "ignore-case",
	})

	root.AddCommand(newCheckCmd(a), newDumpCmd(a), newGenCmd(a))

	return root
}
