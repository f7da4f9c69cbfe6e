package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/five82/bookgrid/internal/books"
	"github.com/five82/bookgrid/internal/config"
	"github.com/five82/bookgrid/internal/export"
	"github.com/five82/bookgrid/internal/grid"
	"github.com/five82/bookgrid/internal/prefs"
	"github.com/five82/bookgrid/internal/state"
	"github.com/five82/bookgrid/internal/ui"
)

// Options configure the bookgrid application. Zero values fall back to the
// config file.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/bookgrid/prefs.toml
	Source     string // URL or file path; overrides config
	PageSize   int    // zero uses config

	Query     string
	SortKey   string
	SortOrder string // asc, desc; empty means asc when SortKey is set
	Page      int    // 1-based; zero means first page

	Format   string // table, json or yaml; non-empty implies Headless
	Headless bool
	Stdout   io.Writer

	LogOutput string // log file path; overrides config
	Logger    *slog.Logger
}

// Run loads configuration and the dataset, then either starts the TUI or
// prints one page headlessly. It blocks until the user quits or ctx is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	headless := opts.Headless || strings.TrimSpace(opts.Format) != ""

	logger, closeLog, err := buildLogger(opts, cfg, headless)
	if err != nil {
		return err
	}
	defer closeLog()

	sortState, err := resolveSort(cfg.Columns, opts.SortKey, opts.SortOrder)
	if err != nil {
		return err
	}

	source := cfg.Source
	if s := strings.TrimSpace(opts.Source); s != "" {
		source = s
	}
	src, err := books.NewSource(source,
		books.WithTimeout(cfg.RequestTimeout),
		books.WithUserAgent(cfg.UserAgent),
	)
	if err != nil {
		return fmt.Errorf("init book source: %w", err)
	}

	pageSize := cfg.PageSize
	if opts.PageSize > 0 {
		pageSize = opts.PageSize
	}
	page := max(opts.Page-1, 0)

	store := &state.Store{}

	if headless {
		return runHeadless(ctx, store, src, headlessOptions{
			columns:  cfg.Columns,
			pageSize: pageSize,
			query:    opts.Query,
			sort:     sortState,
			page:     page,
			format:   opts.Format,
			stdout:   opts.Stdout,
		}, logger)
	}

	prefsPath := opts.PrefsPath
	if strings.TrimSpace(prefsPath) == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs, err := prefs.Load(prefsPath)
	if err != nil {
		logger.Warn("prefs unreadable, using defaults", slog.String("path", prefsPath), slog.Any("error", err))
	}

	return ui.Run(ui.Options{
		Context: ctx,
		Load: func(ctx context.Context) state.Snapshot {
			return Refresh(ctx, store, src, logger)
		},
		Columns:   cfg.Columns,
		PageSize:  pageSize,
		ThemeName: userPrefs.Theme,
		PrefsPath: prefsPath,
		Logger:    logger,
		Query:     opts.Query,
		Sort:      sortState,
		Page:      page,
	})
}

type headlessOptions struct {
	columns  []grid.Column
	pageSize int
	query    string
	sort     grid.SortState
	page     int
	format   string
	stdout   io.Writer
}

// runHeadless fetches once and writes the selected page to stdout.
func runHeadless(ctx context.Context, store *state.Store, src books.Fetcher, opts headlessOptions, logger *slog.Logger) error {
	format, err := export.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	stdout := opts.stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	snap := Refresh(ctx, store, src, logger)
	if snap.Failed() {
		return fmt.Errorf("load books: %w", snap.LastError)
	}

	printer := export.NewPrinter(stdout, format)
	ctrl, err := grid.NewController(printer, opts.columns, books.Records(snap.Books), grid.WithPageSize(opts.pageSize))
	if err != nil {
		return err
	}
	ui.ApplyInitial(ctrl, opts.query, opts.sort, opts.page)
	return printer.Flush()
}

// resolveSort validates a requested sort against the configured columns.
func resolveSort(columns []grid.Column, key, order string) (grid.SortState, error) {
	key = strings.TrimSpace(key)
	o, err := grid.ParseOrder(order)
	if err != nil {
		return grid.SortState{}, err
	}
	if key == "" {
		if o != grid.OrderNone {
			return grid.SortState{}, fmt.Errorf("sort order %q given without a sort column", order)
		}
		return grid.SortState{}, nil
	}

	for _, c := range columns {
		if c.Key != key {
			continue
		}
		if !c.Sortable() {
			return grid.SortState{}, fmt.Errorf("column %q is not sortable", key)
		}
		if o == grid.OrderNone {
			o = grid.OrderAsc
		}
		return grid.SortState{Key: key, Order: o}, nil
	}
	return grid.SortState{}, fmt.Errorf("unknown sort column %q", key)
}
