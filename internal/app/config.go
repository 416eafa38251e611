package app

import (
	"encoding/json"
	"flag"
	"io"
	"log"
	"os"
	"time"

	"github.com/pkg/errors"

	"lifeboard/internal/engine"
)

// Config represents the command-line parameters for the application.
type Config struct {
	ConfigFile string
	LogFile    string

	Rows             int
	Cols             int
	Delay            time.Duration
	AliveProbability float64
	Seed             int64
	Workers          int

	CellSize int
	TPS      int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	e := engine.DefaultConfig()
	return &Config{
		Rows:             e.Rows,
		Cols:             e.Cols,
		Delay:            e.Delay,
		AliveProbability: e.AliveProbability,
		Seed:             e.Seed,
		Workers:          e.Workers,
		CellSize:         20,
		TPS:              60,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "optional JSON configuration file")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "append log output to this file")
	fs.IntVar(&c.Rows, "rows", c.Rows, "board rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "board columns")
	fs.DurationVar(&c.Delay, "delay", c.Delay, "pause between generations while running")
	fs.Float64Var(&c.AliveProbability, "alive", c.AliveProbability, "probability a cell is alive after Random")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for Random (0 picks one from the clock)")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines computing each generation")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels (GUI)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second (GUI)")
}

// Engine returns the engine settings.
func (c *Config) Engine() engine.Config {
	return engine.Config{
		Rows:             c.Rows,
		Cols:             c.Cols,
		Delay:            c.Delay,
		AliveProbability: c.AliveProbability,
		Seed:             c.Seed,
		Workers:          c.Workers,
	}
}

// Validate checks the engine settings and the display settings.
func (c *Config) Validate() error {
	if err := c.Engine().Validate(); err != nil {
		return err
	}
	if c.CellSize <= 0 || c.TPS <= 0 {
		return errors.Errorf("[Config.Validate] cell size and tps must be positive, got %d and %d", c.CellSize, c.TPS)
	}
	return nil
}

// LogPrefix starts every log line written by the entrypoints.
const LogPrefix = "lifeboard: "

// OpenLogger returns a logger appending to LogFile, or writing to fallback
// when no file is configured. The returned close function releases the file.
func (c *Config) OpenLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	if c.LogFile == "" {
		return log.New(fallback, LogPrefix, log.LstdFlags), func() error { return nil }, nil
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "[OpenLogger] failed to open log file: %+v", c.LogFile)
	}
	return log.New(f, LogPrefix, log.LstdFlags), f.Close, nil
}

// fileConfig mirrors Config in the JSON file. Delay is a Go duration string
// such as "100ms".
type fileConfig struct {
	Rows             int     `json:"rows"`
	Cols             int     `json:"cols"`
	Delay            string  `json:"delay"`
	AliveProbability float64 `json:"alive_probability"`
	Seed             int64   `json:"seed"`
	Workers          int     `json:"workers"`
	CellSize         int     `json:"cell_size"`
	TPS              int     `json:"tps"`
	LogFile          string  `json:"log_file"`
}

// LoadConfig reads a JSON file over the defaults. Keys missing from the file
// keep their default values.
func LoadConfig(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadConfig] failed to open file: %+v", filename)
	}
	defer f.Close()

	cfg, err := DecodeConfig(f)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadConfig] failed to decode file: %+v", filename)
	}
	cfg.ConfigFile = filename
	return cfg, nil
}

// DecodeConfig reads JSON configuration from r over the defaults.
func DecodeConfig(r io.Reader) (*Config, error) {
	cfg := NewConfig()
	fc := fileConfig{
		Rows:             cfg.Rows,
		Cols:             cfg.Cols,
		Delay:            cfg.Delay.String(),
		AliveProbability: cfg.AliveProbability,
		Seed:             cfg.Seed,
		Workers:          cfg.Workers,
		CellSize:         cfg.CellSize,
		TPS:              cfg.TPS,
		LogFile:          cfg.LogFile,
	}
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&fc); err != nil {
		return nil, errors.Wrap(err, "[DecodeConfig] failed to unmarshal")
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, errors.Errorf("[DecodeConfig] unexpected data after the configuration object")
	}
	delay, err := time.ParseDuration(fc.Delay)
	if err != nil {
		return nil, errors.Wrapf(err, "[DecodeConfig] bad delay %q", fc.Delay)
	}

	cfg.Rows = fc.Rows
	cfg.Cols = fc.Cols
	cfg.Delay = delay
	cfg.AliveProbability = fc.AliveProbability
	cfg.Seed = fc.Seed
	cfg.Workers = fc.Workers
	cfg.CellSize = fc.CellSize
	cfg.TPS = fc.TPS
	cfg.LogFile = fc.LogFile
	return cfg, nil
}

// Parse builds the configuration from defaults, then the file named by
// -config, then the remaining flags, and validates the result.
func Parse(name string, args []string) (*Config, error) {
	probe := NewConfig()
	fs := newFlagSet(name, os.Stderr)
	probe.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrap(err, "[Parse] flags")
	}

	cfg := probe
	if probe.ConfigFile != "" {
		loaded, err := LoadConfig(probe.ConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		fs = newFlagSet(name, io.Discard)
		cfg.Bind(fs)
		if err := fs.Parse(args); err != nil {
			return nil, errors.Wrap(err, "[Parse] flags")
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newFlagSet(name string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	return fs
}
