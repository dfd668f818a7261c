// Package config loads run settings from an optional YAML file and
// PROCSCHED_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/spf13/viper"

	"github.com/jar0582/procsched/internal/sched"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the settings of one procsched invocation.
type Config struct {
	Quantum    int64
	Algorithms []string
	Format     string // table or json
	ChartDir   string
	LogLevel   string
	LogFormat  string // text or json
	ServerAddr string
}

// Default returns the built-in settings.
func Default() Config {
	algs := make([]string, len(sched.Algorithms))
	for i, a := range sched.Algorithms {
		algs[i] = string(a)
	}
	return Config{
		Quantum:    2,
		Algorithms: algs,
		Format:     "table",
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("quantum", d.Quantum)
	v.SetDefault("algorithms", d.Algorithms)
	v.SetDefault("output.format", d.Format)
	v.SetDefault("output.chart_dir", d.ChartDir)
	v.SetDefault("log.level", d.LogLevel)
	v.SetDefault("log.format", d.LogFormat)
	v.SetDefault("server.addr", d.ServerAddr)
}

// Load reads path when given, otherwise ./procsched.yaml if present, and
// applies environment overrides on top.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("procsched")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("procsched")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := Config{
		Quantum:    v.GetInt64("quantum"),
		Algorithms: algorithmList(v),
		Format:     strings.ToLower(v.GetString("output.format")),
		ChartDir:   v.GetString("output.chart_dir"),
		LogLevel:   strings.ToLower(v.GetString("log.level")),
		LogFormat:  strings.ToLower(v.GetString("log.format")),
		ServerAddr: v.GetString("server.addr"),
	}
	return cfg, nil
}

// algorithmList accepts a YAML list or a comma separated string such as
// PROCSCHED_ALGORITHMS=fcfs,rr.
func algorithmList(v *viper.Viper) []string {
	s, ok := v.Get("algorithms").(string)
	if !ok {
		return v.GetStringSlice("algorithms")
	}
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// Validate checks every field and reports all problems together.
func (c Config) Validate() error {
	var errs []error
	if c.Quantum <= 0 {
		errs = append(errs, fmt.Errorf("%w: quantum must be positive, got %d", ErrInvalidConfig, c.Quantum))
	}
	if _, err := sched.ParseAlgorithms(c.Algorithms); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidConfig, err))
	}
	switch c.Format {
	case "table", "json":
	default:
		errs = append(errs, fmt.Errorf("%w: output format must be 'table' or 'json', got %q", ErrInvalidConfig, c.Format))
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("%w: log level must be 'debug', 'info', 'warn' or 'error', got %q", ErrInvalidConfig, c.LogLevel))
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("%w: log format must be 'text' or 'json', got %q", ErrInvalidConfig, c.LogFormat))
	}
	return errors.Join(errs...)
}

// SelectedAlgorithms parses the configured algorithm names. All of them are
// selected when the list is empty.
func (c Config) SelectedAlgorithms() ([]sched.Algorithm, error) {
	algs, err := sched.ParseAlgorithms(c.Algorithms)
	if err != nil {
		return nil, err
	}
	if len(algs) == 0 {
		return sched.Algorithms, nil
	}
	return algs, nil
}
