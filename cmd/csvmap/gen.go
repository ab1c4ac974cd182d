package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"csv-mapper/internal/gen"
	"csv-mapper/schema"
)

func newGenCmd(a *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a typed view for the schema",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runGen(out)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&out, "out", "o", ".", "output directory")
	fs.String("package", "", "package name of the generated file (default views)")

	a.bind(fs, map[string]string{"package": "package"})

	return cmd
}

func (a *app) runGen(out string) error {
	if a.cfg.Schema == "" {
		return errNoSchema
	}

	f, err := schema.LoadFile(a.cfg.Schema)
	if err != nil {
		return err
	}

	cfg := gen.DefaultConfig()
	cfg.OutputDir = out

	if a.cfg.Package != "" {
		cfg.PackageName = a.cfg.Package
	}

	file, err := gen.Generate(f, cfg)
	if err != nil {
		return err
	}

	if err := gen.WriteFiles([]gen.GeneratedFile{file}, out); err != nil {
		return err
	}

	a.log.Info("view generated", "file", filepath.Join(out, file.Filename), "properties", len(f.Properties))

	return nil
}
