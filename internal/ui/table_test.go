package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/bookgrid/internal/books"
	"github.com/five82/bookgrid/internal/grid"
)

func TestHeaderLabel(t *testing.T) {
	col := grid.Column{Key: "title", Label: "Title"}
	fixed := grid.Column{Key: "isbn", Label: "ISBN", NoSort: true}

	tests := []struct {
		name string
		col  grid.Column
		sort grid.SortState
		want string
	}{
		{"unsorted", col, grid.SortState{}, "Title ⇅"},
		{"asc", col, grid.SortState{Key: "title", Order: grid.OrderAsc}, "Title ▲"},
		{"desc", col, grid.SortState{Key: "title", Order: grid.OrderDesc}, "Title ▼"},
		{"other column sorted", col, grid.SortState{Key: "author", Order: grid.OrderAsc}, "Title ⇅"},
		{"not sortable", fixed, grid.SortState{}, "ISBN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := headerLabel(tt.col, tt.sort); got != tt.want {
				t.Fatalf("headerLabel = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCellWidth(t *testing.T) {
	if got := cellWidth(0, 4); got != defaultCellWidth {
		t.Fatalf("cellWidth(0, 4) = %d, want default", got)
	}
	if got := cellWidth(85, 4); got != 18 {
		t.Fatalf("cellWidth(85, 4) = %d, want 18", got)
	}
	if got := cellWidth(10, 4); got != minCellWidth {
		t.Fatalf("cellWidth(10, 4) = %d, want min", got)
	}
	if got := cellWidth(80, 0); got != 0 {
		t.Fatalf("cellWidth(80, 0) = %d, want 0", got)
	}
}

func TestRenderTable_TruncatesCells(t *testing.T) {
	long := strings.Repeat("x", 60)
	m := loadedModel(t, []books.Book{{Title: long, Author: "A", Year: "1", ISBN: "2"}}, Options{})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 85, Height: 30})

	out := m.renderTable()
	if strings.Contains(out, long) {
		t.Fatalf("long title was not truncated:\n%s", out)
	}
	if !strings.Contains(out, ellipsis) {
		t.Fatalf("truncated cell should end with ellipsis:\n%s", out)
	}
	for _, line := range strings.Split(out, "\n") {
		if w := ansi.StringWidth(line); w > 85 {
			t.Fatalf("line width %d exceeds terminal width:\n%s", w, line)
		}
	}
}

func TestTableView_CountsRenders(t *testing.T) {
	tv := &tableView{}
	ctrl, err := grid.NewController(tv, books.DefaultColumns(), books.Records([]books.Book{{Title: "a"}}))
	if err != nil {
		t.Fatalf("NewController returned error: %v", err)
	}
	ctrl.ActivateSort(books.FieldTitle)
	ctrl.NextPage()
	if tv.renders != 2 {
		t.Fatalf("renders = %d, want 2", tv.renders)
	}
	if tv.view.Total != 1 {
		t.Fatalf("view total = %d, want 1", tv.view.Total)
	}
}
