// Loads tablekit settings from tablekit.yaml, .env and the environment.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"

	"github.com/maruel/tablekit/internal/table"
	"github.com/maruel/tablekit/internal/tablefile"
)

// DefaultPath is the configuration file read when none is specified.
const DefaultPath = "tablekit.yaml"

// EnvPrefix prefixes every environment variable understood by ApplyEnv.
const EnvPrefix = "TABLEKIT_"

// Config holds the CLI settings.
type Config struct {
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level"`

	// Infer is the inference mode used when loading tables: none, kind or
	// text.
	Infer string `yaml:"infer"`

	// MaxRows is the default chunk size of the convert command.
	MaxRows int `yaml:"max_rows"`

	// Types forces the kind of named columns after inference. Keys are header
	// names, values kind names such as "int" or "date". File order is kept.
	Types *orderedmap.OrderedMap[string, string] `yaml:"types"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Infer:    tablefile.InferText.String(),
		MaxRows:  1000,
		Types:    orderedmap.New[string, string](),
	}
}

// ReadFile parses the YAML file at path over the defaults.
//
// A missing file wraps fs.ErrNotExist so callers can fall back to Default.
func ReadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-specified config path
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config %s not found: %w", path, err)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if c.Types == nil {
		c.Types = orderedmap.New[string, string]()
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return c, nil
}

// Environ returns the TABLEKIT_ variables defined in the dotenv file at path,
// overridden by the process environment. A missing dotenv file is ignored.
func Environ(path string) (map[string]string, error) {
	env := map[string]string{}
	if path != "" {
		m, err := godotenv.Read(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		for k, v := range m {
			if strings.HasPrefix(k, EnvPrefix) {
				env[k] = v
			}
		}
	}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(k, EnvPrefix) {
			env[k] = v
		}
	}
	return env, nil
}

// ApplyEnv overrides c with TABLEKIT_LOG_LEVEL, TABLEKIT_INFER and
// TABLEKIT_MAX_ROWS when present in env, then validates.
func (c *Config) ApplyEnv(env map[string]string) error {
	if v, ok := env[EnvPrefix+"LOG_LEVEL"]; ok {
		c.LogLevel = v
	}
	if v, ok := env[EnvPrefix+"INFER"]; ok {
		c.Infer = v
	}
	if v, ok := env[EnvPrefix+"MAX_ROWS"]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sMAX_ROWS: %w", EnvPrefix, err)
		}
		c.MaxRows = n
	}
	return c.Validate()
}

// Validate checks every field.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if _, err := c.InferMode(); err != nil {
		return err
	}
	if c.MaxRows < 1 {
		return errors.New("max_rows must be positive")
	}
	if c.Types != nil {
		for p := c.Types.Oldest(); p != nil; p = p.Next() {
			if p.Key == "" {
				return errors.New("types: empty column name")
			}
			if _, err := targetKind(p.Value); err != nil {
				return fmt.Errorf("types: column %q: %w", p.Key, err)
			}
		}
	}
	return nil
}

// Level returns LogLevel as a slog.Level.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}

// InferMode returns Infer as a tablefile.InferMode.
func (c *Config) InferMode() (tablefile.InferMode, error) {
	m, err := tablefile.ParseInferMode(c.Infer)
	if err != nil {
		return 0, fmt.Errorf("infer: %w", err)
	}
	return m, nil
}

// ColumnTypes returns Types keyed by column name, or nil when empty.
func (c *Config) ColumnTypes() (*table.ColumnTypes, error) {
	if c.Types == nil || c.Types.Len() == 0 {
		return nil, nil
	}
	types := table.NewColumnTypes()
	for p := c.Types.Oldest(); p != nil; p = p.Next() {
		k, err := targetKind(p.Value)
		if err != nil {
			return nil, fmt.Errorf("types: column %q: %w", p.Key, err)
		}
		types.Set(table.Name(p.Key), k)
	}
	return types, nil
}

// targetKind parses a kind cells can be converted to. Null is not one.
func targetKind(s string) (table.Kind, error) {
	k, err := table.ParseKind(s)
	if err != nil {
		return 0, err
	}
	if k == table.KindNull {
		return 0, errors.New("cannot convert cells to null")
	}
	return k, nil
}
