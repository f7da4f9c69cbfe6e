package grid

import (
	"errors"
	"slices"
)

// ErrNoRenderer is returned when a Controller is built without a Renderer.
var ErrNoRenderer = errors.New("grid: renderer is nil")

// Column describes how a field is displayed. Columns are sortable unless
// NoSort is set.
type Column struct {
	Key    string
	Label  string
	NoSort bool
}

// Sortable reports whether the column can be sorted.
func (c Column) Sortable() bool {
	return !c.NoSort
}

// View is the derived data published after every recompute.
type View struct {
	Columns     []Column
	Rows        []Record   // visible slice
	Pages       [][]Record // full page list
	CurrentPage int
	Sort        SortState
	Filter      string
	Matched     int // rows left after filtering
	Total       int // canonical rows
}

// PageCount returns the number of pages in the view.
func (v View) PageCount() int {
	return len(v.Pages)
}

// Renderer receives a View after each state change.
type Renderer interface {
	Render(View)
}

// RendererFunc adapts a function to a Renderer.
type RendererFunc func(View)

// Render calls f(v).
func (f RendererFunc) Render(v View) {
	f(v)
}

// Option configures a Controller.
type Option func(*Controller)

// WithPageSize sets the number of rows per page.
func WithPageSize(n int) Option {
	return func(c *Controller) {
		c.pager = NewPager(n)
	}
}

// Controller owns the table state: canonical rows, filter, sort and page.
// Each mutating call recomputes the view and notifies the renderer once.
type Controller struct {
	renderer  Renderer
	columns   []Column
	canonical []Record
	rows      []Record // working set: canonical order or a sorted copy
	filter    string
	sort      SortState
	pager     *Pager
}

// NewController builds a Controller over rows. The rows are copied; the
// caller's slice is never reordered. It does not render until Render or a
// mutating call.
func NewController(r Renderer, columns []Column, rows []Record, opts ...Option) (*Controller, error) {
	if r == nil {
		return nil, ErrNoRenderer
	}
	c := &Controller{
		renderer:  r,
		columns:   slices.Clone(columns),
		canonical: cloneRows(rows),
		pager:     NewPager(DefaultPageSize),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.rows = cloneRows(c.canonical)
	return c, nil
}

// Columns returns the column descriptors.
func (c *Controller) Columns() []Column {
	return slices.Clone(c.columns)
}

// Sort returns the active sort state.
func (c *Controller) Sort() SortState {
	return c.sort
}

// Filter returns the active filter text; "" means no filter.
func (c *Controller) Filter() string {
	return c.filter
}

// SetFilter replaces the filter text. The empty string clears it.
func (c *Controller) SetFilter(text string) {
	c.filter = text
	c.Render()
}

// ActivateSort advances the sort state for the column key. The same column
// cycles asc, desc, unsorted; a different column starts at asc. Keys that
// are not sortable columns are ignored.
func (c *Controller) ActivateSort(key string) {
	if !c.sortable(key) {
		return
	}

	next := SortState{Key: key, Order: OrderAsc}
	if c.sort.Key == key {
		next.Order = c.sort.Order.next()
	}
	if next.Order == OrderNone {
		next.Key = ""
	}
	c.applySort(next)
	c.Render()
}

// SetSort applies a sort state directly, bypassing the activation cycle.
// Unknown or unsortable keys clear the sort.
func (c *Controller) SetSort(s SortState) {
	if s.Order == OrderNone || !c.sortable(s.Key) {
		s = SortState{}
	}
	c.applySort(s)
	c.Render()
}

func (c *Controller) applySort(s SortState) {
	c.sort = s
	if !s.Active() {
		c.rows = cloneRows(c.canonical)
		return
	}
	c.rows = SortRows(c.canonical, s.Key, s.Order)
}

func (c *Controller) sortable(key string) bool {
	if key == "" {
		return false
	}
	for _, col := range c.columns {
		if col.Key == key {
			return col.Sortable()
		}
	}
	return false
}

// SelectPage moves to page i. Out-of-range indexes land on page 0.
func (c *Controller) SelectPage(i int) {
	c.paginate()
	c.pager.Select(i)
	c.Render()
}

// FirstPage moves to the first page.
func (c *Controller) FirstPage() {
	c.paginate()
	c.pager.First()
	c.Render()
}

// PrevPage moves back one page; a no-op on the first page.
func (c *Controller) PrevPage() {
	c.paginate()
	c.pager.Prev()
	c.Render()
}

// NextPage moves forward one page; a no-op on the last page.
func (c *Controller) NextPage() {
	c.paginate()
	c.pager.Next()
	c.Render()
}

// LastPage moves to the last page.
func (c *Controller) LastPage() {
	c.paginate()
	c.pager.Last()
	c.Render()
}

// Render recomputes the view and hands it to the renderer.
func (c *Controller) Render() {
	c.renderer.Render(c.View())
}

// View recomputes and returns the current view without notifying.
func (c *Controller) View() View {
	filtered := c.paginate()
	return View{
		Columns:     slices.Clone(c.columns),
		Rows:        c.pager.Page(),
		Pages:       c.pager.Pages(),
		CurrentPage: c.pager.Current(),
		Sort:        c.sort,
		Filter:      c.filter,
		Matched:     len(filtered),
		Total:       len(c.canonical),
	}
}

// paginate runs filter and pagination over the working rows and returns the
// filtered rows.
func (c *Controller) paginate() []Record {
	filtered := Filter(c.rows, c.filter)
	c.pager.SetRows(filtered)
	return filtered
}

func cloneRows(rows []Record) []Record {
	if len(rows) == 0 {
		return []Record{}
	}
	return slices.Clone(rows)
}
