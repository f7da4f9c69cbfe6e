package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/five82/bookgrid/internal/app"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "bookgrid: %v\n", err)
		return 1
	}

	opts.Stdout = stdout
	if !opts.Headless {
		opts.Headless = !isTerminal(stdout)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(stderr, "bookgrid: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (app.Options, error) {
	var opts app.Options
	fs := pflag.NewFlagSet("bookgrid", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "bookgrid: browse a book list as a filterable, sortable, paged table.\n\nUsage:\n  bookgrid [flags]\n\nFlags:\n")
		fs.PrintDefaults()
	}

	fs.StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/bookgrid/config.toml)")
	fs.StringVar(&opts.PrefsPath, "prefs", "", "preferences file (default ~/.config/bookgrid/prefs.toml)")
	fs.StringVar(&opts.Source, "source", "", "books URL or local JSON/JSONC file (overrides config)")
	fs.IntVar(&opts.PageSize, "page-size", 0, "rows per page (overrides config, default 10)")
	fs.StringVarP(&opts.Query, "query", "q", "", "initial filter text")
	fs.StringVarP(&opts.SortKey, "sort", "s", "", "initial sort column key")
	fs.StringVar(&opts.SortOrder, "order", "", "initial sort order: asc or desc")
	fs.IntVarP(&opts.Page, "page", "p", 1, "initial page, 1-based")
	fs.StringVarP(&opts.Format, "format", "f", "", "print one page as table, json or yaml and exit")
	fs.StringVar(&opts.LogOutput, "log-output", "", "write JSON logs to this file")

	if err := fs.Parse(args); err != nil {
		return app.Options{}, err
	}
	if fs.NArg() > 0 {
		return app.Options{}, fmt.Errorf("unexpected argument: %s", fs.Arg(0))
	}
	if opts.PageSize < 0 {
		return app.Options{}, fmt.Errorf("--page-size must not be negative")
	}
	if opts.Page < 1 {
		return app.Options{}, fmt.Errorf("--page must be at least 1")
	}
	return opts, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
