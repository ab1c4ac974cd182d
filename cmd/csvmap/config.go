package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"csv-mapper/csvio"
	"csv-mapper/mapping"
	"csv-mapper/schema"
)

// Config is the CLI configuration. Values come from flags, CSVMAP_*
// environment variables and an optional YAML file, in that order of
// precedence.
type Config struct {
	Schema     string `mapstructure:"schema"`
	Separator  string `mapstructure:"separator"`
	HasHeader  bool   `mapstructure:"has_header"`
	IgnoreCase bool   `mapstructure:"ignore_case"`
	LogLevel   string `mapstructure:"log_level"`
	Package    string `mapstructure:"package"`
	Workers    int    `mapstructure:"workers"`
	FailFast   bool   `mapstructure:"fail_fast"`
}

var errNoSchema = errors.New("no schema given (use --schema)")

type app struct {
	v   *viper.Viper
	cfg Config
	log *slog.Logger
}

func newApp() *app {
	v := viper.New()
	v.SetEnvPrefix("csvmap")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return &app{v: v, log: slog.Default()}
}

// bind maps config keys to flags.
func (a *app) bind(fs *pflag.FlagSet, keys map[string]string) {
	for key, flag := range keys {
		cobra.CheckErr(a.v.BindPFlag(key, fs.Lookup(flag)))
	}
}

func (a *app) load(cmd *cobra.Command) error {
	if path := a.v.GetString("config"); path != "" {
		a.v.SetConfigFile(path)
		a.v.SetConfigType("yaml")

		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}

	if err := a.v.Unmarshal(&a.cfg); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(a.cfg.LogLevel)); err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.log)

	return nil
}

// loadSchema reads the configured schema, logs its warnings and builds
// the mapping.
func (a *app) loadSchema() (*schema.File, *mapping.Mapping, error) {
	if a.cfg.Schema == "" {
		return nil, nil, errNoSchema
	}

	f, err := schema.LoadFile(a.cfg.Schema)
	if err != nil {
		return nil, nil, err
	}

	for _, w := range schema.Validate(f).Warnings {
		a.log.Warn(w.String())
	}

	m, err := schema.Build(f)
	if err != nil {
		return nil, nil, fmt.Errorf("schema %s: %w", a.cfg.Schema, err)
	}

	a.log.Debug("schema loaded", "name", f.Name, "properties", m.Len())

	return f, m, nil
}

// csvOptions returns the schema's CSV options with explicitly configured
// values applied on top.
func (a *app) csvOptions(f *schema.File) ([]csvio.Option, error) {
	opts := schema.CSVOptions(f)

	if a.v.IsSet("separator") {
		if len(a.cfg.Separator) != 1 {
			return nil, fmt.Errorf("separator %q must be a single byte", a.cfg.Separator)
		}

		opts = append(opts, csvio.WithSeparator(a.cfg.Separator[0]))
	}

	if a.v.IsSet("has_header") {
		opts = append(opts, csvio.WithHeader(a.cfg.HasHeader))
	}

	if a.v.IsSet("ignore_case") {
		opts = append(opts, csvio.WithIgnoreCase(a.cfg.IgnoreCase))
	}

	return opts, nil
}
