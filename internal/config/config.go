package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/bookgrid/internal/books"
	"github.com/five82/bookgrid/internal/grid"
)

// Config holds bookgrid's runtime settings.
type Config struct {
	Source         string
	PageSize       int
	RequestTimeout time.Duration
	UserAgent      string
	LogFile        string // empty discards TUI logs
	Columns        []grid.Column
}

const (
	defaultConfigPath = "~/.config/bookgrid/config.toml"
	defaultPageSize   = grid.DefaultPageSize
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Source:   books.DefaultEndpoint,
		PageSize: defaultPageSize,
		Columns:  books.DefaultColumns(),
	}
}

type rawColumn struct {
	Key      string `toml:"key"`
	Label    string `toml:"label"`
	Sortable *bool  `toml:"sortable"`
}

type rawConfig struct {
	Source         string      `toml:"source"`
	PageSize       int         `toml:"page_size"`
	RequestTimeout string      `toml:"request_timeout"`
	UserAgent      string      `toml:"user_agent"`
	LogFile        string      `toml:"log_file"`
	Columns        []rawColumn `toml:"columns"`
}

// Load reads the config at path, or the default location when path is
// empty. A missing file yields Default().
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if s := strings.TrimSpace(raw.Source); s != "" {
		cfg.Source = s
	}
	if raw.PageSize > 0 {
		cfg.PageSize = raw.PageSize
	}
	if s := strings.TrimSpace(raw.RequestTimeout); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: request_timeout: %w", err)
		}
		if d < 0 {
			return Config{}, fmt.Errorf("parse config: request_timeout must not be negative")
		}
		cfg.RequestTimeout = d
	}
	cfg.UserAgent = strings.TrimSpace(raw.UserAgent)
	if s := strings.TrimSpace(raw.LogFile); s != "" {
		cfg.LogFile = MustExpand(s)
	}

	if len(raw.Columns) > 0 {
		cols, err := buildColumns(raw.Columns)
		if err != nil {
			return Config{}, err
		}
		cfg.Columns = cols
	}
	return cfg, nil
}

func buildColumns(raw []rawColumn) ([]grid.Column, error) {
	cols := make([]grid.Column, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for i, rc := range raw {
		key := strings.TrimSpace(rc.Key)
		if key == "" {
			return nil, fmt.Errorf("parse config: columns[%d]: key is required", i)
		}
		if seen[key] {
			return nil, fmt.Errorf("parse config: columns[%d]: duplicate key %q", i, key)
		}
		seen[key] = true

		label := strings.TrimSpace(rc.Label)
		if label == "" {
			label = key
		}
		cols = append(cols, grid.Column{
			Key:    key,
			Label:  label,
			NoSort: rc.Sortable != nil && !*rc.Sortable,
		})
	}
	return cols, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

// MustExpand is ExpandPath that returns path unchanged on error.
func MustExpand(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath expands a leading ~ to the home directory and makes the path
// absolute.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
