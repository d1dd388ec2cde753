package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"
)

const (
	fileMode = 0o600
	dirMode  = 0o750
)

// Sentinel errors.
var (
	ErrNotFound = errors.New("no choremate data directory found (run 'choremate init' to create one)")
	ErrInvalid  = errors.New("invalid config")
)

// Config represents the choremate configuration.
type Config struct {
	Version       int            `yaml:"version"`
	Database      string         `yaml:"database"`
	DayResolution bool           `yaml:"day_resolution"`
	NameWidth     int            `yaml:"name_width"`
	Colors        map[int]string `yaml:"colors,omitempty"`

	// dir is the absolute path to the data directory (not serialized).
	dir string `yaml:"-"`
	// dbOverride replaces Database for one invocation (not serialized).
	dbOverride string `yaml:"-"`
}

// NewDefault creates a Config with default values.
func NewDefault() *Config {
	return &Config{
		Version:       CurrentVersion,
		Database:      DefaultDatabase,
		DayResolution: DefaultDayResolution,
		NameWidth:     DefaultNameWidth,
		Colors:        defaultColors(),
	}
}

// Dir returns the absolute path to the data directory.
func (c *Config) Dir() string { return c.dir }

// SetDir sets the data directory path on the config.
func (c *Config) SetDir(dir string) { c.dir = dir }

// ConfigPath returns the absolute path to the config file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.dir, ConfigFileName)
}

// LogPath returns the absolute path to the activity log.
func (c *Config) LogPath() string {
	return filepath.Join(c.dir, LogFileName)
}

// OverrideDatabase points this invocation at another database file.
func (c *Config) OverrideDatabase(path string) {
	c.dbOverride = path
}

// DatabasePath returns the absolute path to the database file. Relative
// database settings are resolved against the data directory.
func (c *Config) DatabasePath() string {
	db := c.Database
	if c.dbOverride != "" {
		if abs, err := filepath.Abs(c.dbOverride); err == nil {
			return abs
		}
		db = c.dbOverride
	}
	if filepath.IsAbs(db) {
		return db
	}
	return filepath.Join(c.dir, db)
}

// Color returns the configured colour for an urgency bucket.
func (c *Config) Color(bucket int) string {
	if col, ok := c.Colors[bucket]; ok && col != "" {
		return col
	}
	return DefaultColors[bucket]
}

// Validate checks the config for errors.
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("%w: unsupported version %d (expected %d)", ErrInvalid, c.Version, CurrentVersion)
	}
	if strings.TrimSpace(c.Database) == "" {
		return fmt.Errorf("%w: database is required", ErrInvalid)
	}
	if c.NameWidth < minNameWidth || c.NameWidth > maxNameWidth {
		return fmt.Errorf("%w: name_width must be between %d and %d", ErrInvalid, minNameWidth, maxNameWidth)
	}
	for bucket, col := range c.Colors {
		if _, ok := DefaultColors[bucket]; !ok {
			return fmt.Errorf("%w: colors references unknown bucket %d", ErrInvalid, bucket)
		}
		if col == "" {
			return fmt.Errorf("%w: colors[%d] is empty", ErrInvalid, bucket)
		}
	}
	return nil
}

// WritableKeys lists the keys accepted by Set.
var WritableKeys = []string{"database", "day_resolution", "name_width"}

// Get returns the value of a config key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "version":
		return strconv.Itoa(c.Version), nil
	case "database":
		return c.Database, nil
	case "day_resolution":
		return strconv.FormatBool(c.DayResolution), nil
	case "name_width":
		return strconv.Itoa(c.NameWidth), nil
	case "dir":
		return c.dir, nil
	}
	if b, ok := strings.CutPrefix(key, "colors."); ok {
		n, err := strconv.Atoi(b)
		if err == nil {
			if _, known := DefaultColors[n]; known {
				return c.Color(n), nil
			}
		}
	}
	return "", fmt.Errorf("unknown config key %q", key)
}

// Set assigns a writable key from its string form and validates the result.
func (c *Config) Set(key, value string) error {
	next := *c
	switch key {
	case "database":
		next.Database = strings.TrimSpace(value)
	case "day_resolution":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: day_resolution must be true or false", ErrInvalid)
		}
		next.DayResolution = b
	case "name_width":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: name_width must be an integer", ErrInvalid)
		}
		next.NameWidth = n
	default:
		return fmt.Errorf("%w: key %q is not writable (writable: %s)",
			ErrInvalid, key, strings.Join(WritableKeys, ", "))
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}

// Init creates the data directory with a default config file.
func Init(dir string) (*Config, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg := NewDefault()
	cfg.SetDir(absDir)

	if err := os.MkdirAll(absDir, dirMode); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	if err := cfg.Save(); err != nil {
		return nil, fmt.Errorf("writing config: %w", err)
	}
	return cfg, nil
}

// Save writes the config to its config file.
func (c *Config) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(c.ConfigPath(), data, fileMode)
}

// Load reads and validates a config from the given data directory.
func Load(dir string) (*Config, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	path := filepath.Join(absDir, ConfigFileName)
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted source
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.dir = absDir

	oldVersion := cfg.Version
	if err := migrate(&cfg); err != nil {
		return nil, err
	}
	if cfg.Version != oldVersion {
		if err := cfg.Save(); err != nil {
			return nil, fmt.Errorf("saving migrated config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultHome returns the data directory used when no flag is given:
// $CHOREMATEHOME if set, else choremate under the user config directory.
func DefaultHome() (string, error) {
	if env := strings.TrimSpace(os.Getenv(HomeEnv)); env != "" {
		return env, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config directory: %w", err)
	}
	return filepath.Join(base, DefaultDirName), nil
}

// LoadOrInit loads the config in dir, creating a default one when the
// directory has none yet.
func LoadOrInit(dir string) (*Config, error) {
	cfg, err := Load(dir)
	if errors.Is(err, ErrNotFound) {
		return Init(dir)
	}
	return cfg, err
}
