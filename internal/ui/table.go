package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/bookgrid/internal/export"
	"github.com/five82/bookgrid/internal/grid"
)

const (
	defaultCellWidth = 32
	minCellWidth     = 4
	ellipsis         = "…"
)

// Sort indicators shown next to sortable column labels.
const (
	indicatorAsc      = "▲"
	indicatorDesc     = "▼"
	indicatorSortable = "⇅"
)

// tableView receives views from the grid controller. The model draws from
// the latest one.
type tableView struct {
	view    grid.View
	renders int
}

// Render implements grid.Renderer.
func (t *tableView) Render(v grid.View) {
	t.view = v
	t.renders++
}

// headerLabel returns the column label with its sort indicator.
func headerLabel(c grid.Column, s grid.SortState) string {
	if !c.Sortable() {
		return c.Label
	}
	switch s.For(c.Key) {
	case grid.OrderAsc:
		return c.Label + " " + indicatorAsc
	case grid.OrderDesc:
		return c.Label + " " + indicatorDesc
	default:
		return c.Label + " " + indicatorSortable
	}
}

// cellWidth returns the text width available to each of n columns.
func cellWidth(total, n int) int {
	if n <= 0 {
		return 0
	}
	if total <= 0 {
		return defaultCellWidth
	}
	// n+1 vertical borders, one space of padding either side of each cell
	w := (total-(n+1))/n - 2
	return max(w, minCellWidth)
}

// renderTable draws the visible page with lipgloss/table.
func (m Model) renderTable() string {
	v := m.table.view
	styles := m.theme.Styles()
	width := cellWidth(m.width, len(v.Columns))

	headers := make([]string, len(v.Columns))
	for i, c := range v.Columns {
		headers[i] = ansi.Truncate(headerLabel(c, v.Sort), width, ellipsis)
	}

	rows := make([][]string, 0, len(v.Rows))
	for _, r := range v.Rows {
		cells := make([]string, len(v.Columns))
		for i, c := range v.Columns {
			cells[i] = ansi.Truncate(r.Text(c.Key), width, ellipsis)
		}
		rows = append(rows, cells)
	}

	cursor := m.cursor
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.Border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow && col == cursor:
				return styles.HeaderCursor
			case row == table.HeaderRow:
				return styles.Header
			case col == cursor:
				return styles.CellCursor
			case row%2 == 1:
				return styles.CellAlt
			default:
				return styles.Cell
			}
		})
	if m.width > 0 {
		t = t.Width(m.width)
	}

	out := t.String()
	if len(v.Rows) == 0 {
		msg := "No books to show"
		if v.Filter != "" {
			msg = fmt.Sprintf("No books match %q", v.Filter)
		}
		out += "\n" + styles.MutedText.Render(msg)
	}
	return out
}

// renderMain renders the table screen.
func (m Model) renderMain() string {
	styles := m.theme.Styles()
	v := m.table.view

	var b strings.Builder
	b.WriteString(styles.Title.Render("bookgrid"))
	b.WriteString(styles.FaintText.Render(" · " + m.theme.Name))
	b.WriteString("\n")

	b.WriteString(m.renderTable())
	b.WriteString("\n")

	if m.searching || v.Filter != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}

	b.WriteString(m.renderFooter(v))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// renderFooter draws the paginator dots and the page summary.
func (m Model) renderFooter(v grid.View) string {
	styles := m.theme.Styles()
	bar := NewBgStyle(m.theme.SurfaceAlt)

	parts := []string{}
	if v.PageCount() > 1 {
		pg := m.pager
		pg.TotalPages = v.PageCount()
		pg.Page = v.CurrentPage
		parts = append(parts, bar.Render(pg.View(), lipgloss.NewStyle()))
	}
	parts = append(parts, bar.Render(export.Footer(v), styles.Footer))
	if v.Sort.Active() {
		label := v.Sort.Key
		for _, c := range v.Columns {
			if c.Key == v.Sort.Key {
				label = c.Label
			}
		}
		parts = append(parts, bar.Render(fmt.Sprintf("sorted by %s %s", label, v.Sort.Order), styles.Footer))
	}
	return bar.FillLine(bar.Join(parts, "  "), m.width)
}

// renderLoading shows the spinner while the dataset is fetched.
func (m Model) renderLoading() string {
	styles := m.theme.Styles()
	return m.spinner.View() + " " + styles.MutedText.Render("Loading books…")
}

// renderError shows the fetch failure and how to retry.
func (m Model) renderError() string {
	styles := m.theme.Styles()
	msg := "unknown error"
	if m.loadErr != nil {
		msg = m.loadErr.Error()
	}

	var b strings.Builder
	b.WriteString(styles.DangerText.Render("Could not load books"))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render(msg))
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render("press "))
	b.WriteString(styles.AccentText.Render("r"))
	b.WriteString(styles.MutedText.Render(" to retry, "))
	b.WriteString(styles.AccentText.Render("q"))
	b.WriteString(styles.MutedText.Render(" to quit"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Danger)).
		Padding(1, 2)
	if m.width > 8 {
		box = box.MaxWidth(m.width)
	}
	return box.Render(b.String())
}
