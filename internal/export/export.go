// Package export renders grid views without a terminal UI: as a plain text
// table, JSON or YAML. It backs bookgrid's headless mode.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/five82/bookgrid/internal/grid"
)

// ErrUnknownFormat is wrapped by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown format")

// Format selects the output encoding.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Formats lists the supported formats in help order.
func Formats() []Format {
	return []Format{FormatTable, FormatJSON, FormatYAML}
}

// ParseFormat maps a name to a Format. The empty string means table.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "table", "text":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w %q (want table, json or yaml)", ErrUnknownFormat, s)
	}
}

// Document is the structured form of a view used by the JSON and YAML
// encoders. Page is 1-based; it is 0 when there are no pages.
type Document struct {
	Page    int                 `json:"page" yaml:"page"`
	Pages   int                 `json:"pages" yaml:"pages"`
	Matched int                 `json:"matched" yaml:"matched"`
	Total   int                 `json:"total" yaml:"total"`
	Sort    *SortDoc            `json:"sort,omitempty" yaml:"sort,omitempty"`
	Filter  string              `json:"filter,omitempty" yaml:"filter,omitempty"`
	Rows    []map[string]string `json:"rows" yaml:"rows"`
}

// SortDoc describes the active sort.
type SortDoc struct {
	Key   string `json:"key" yaml:"key"`
	Order string `json:"order" yaml:"order"`
}

// NewDocument builds a Document from v. Rows carry only the view's column
// keys.
func NewDocument(v grid.View) Document {
	doc := Document{
		Pages:   v.PageCount(),
		Matched: v.Matched,
		Total:   v.Total,
		Filter:  v.Filter,
		Rows:    make([]map[string]string, 0, len(v.Rows)),
	}
	if doc.Pages > 0 {
		doc.Page = v.CurrentPage + 1
	}
	if v.Sort.Active() {
		doc.Sort = &SortDoc{Key: v.Sort.Key, Order: v.Sort.Order.String()}
	}
	for _, r := range v.Rows {
		row := make(map[string]string, len(v.Columns))
		for _, c := range v.Columns {
			row[c.Key] = r.Text(c.Key)
		}
		doc.Rows = append(doc.Rows, row)
	}
	return doc
}

// Printer is a grid.Renderer that keeps the latest view and writes it on
// Flush. Render cannot report errors, so writing is deferred to Flush.
type Printer struct {
	w      io.Writer
	format Format
	last   *grid.View
}

// NewPrinter returns a Printer writing format to w.
func NewPrinter(w io.Writer, format Format) *Printer {
	if format == "" {
		format = FormatTable
	}
	return &Printer{w: w, format: format}
}

// Render records v as the view to print.
func (p *Printer) Render(v grid.View) {
	p.last = &v
}

// Flush writes the most recent view. It is an error to Flush before any
// view has been rendered.
func (p *Printer) Flush() error {
	if p.last == nil {
		return fmt.Errorf("export: nothing rendered")
	}
	return Write(p.w, p.format, *p.last)
}

// Write encodes v to w in the given format.
func Write(w io.Writer, format Format, v grid.View) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(NewDocument(v)); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(NewDocument(v)); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return nil
	case FormatTable, "":
		_, err := io.WriteString(w, Table(v)+"\n")
		return err
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, string(format))
	}
}

// Table renders v as a plain ASCII table followed by a page footer.
func Table(v grid.View) string {
	headers := make([]string, len(v.Columns))
	for i, c := range v.Columns {
		headers[i] = c.Label + sortSuffix(v.Sort.For(c.Key))
	}
	rows := make([][]string, 0, len(v.Rows))
	for _, r := range v.Rows {
		cells := make([]string, len(v.Columns))
		for i, c := range v.Columns {
			cells[i] = r.Text(c.Key)
		}
		rows = append(rows, cells)
	}

	t := table.New().
		Border(lipgloss.ASCIIBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(_, _ int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		})

	return t.String() + "\n" + Footer(v)
}

// Footer summarizes the page position and filter counts.
func Footer(v grid.View) string {
	page := 0
	if v.PageCount() > 0 {
		page = v.CurrentPage + 1
	}
	footer := fmt.Sprintf("page %d/%d · %d/%d rows", page, v.PageCount(), v.Matched, v.Total)
	if v.Filter != "" {
		footer += fmt.Sprintf(" · filter %q", v.Filter)
	}
	return footer
}

func sortSuffix(o grid.Order) string {
	switch o {
	case grid.OrderAsc:
		return " (asc)"
	case grid.OrderDesc:
		return " (desc)"
	default:
		return ""
	}
}
