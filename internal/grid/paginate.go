package grid

// DefaultPageSize is used when a page size of zero or less is requested.
const DefaultPageSize = 10

// Paginate splits records into consecutive pages of pageSize rows. The last
// page holds the remainder. Empty input yields no pages at all.
func Paginate(records []Record, pageSize int) [][]Record {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if len(records) == 0 {
		return [][]Record{}
	}

	pages := make([][]Record, 0, (len(records)+pageSize-1)/pageSize)
	for start := 0; start < len(records); start += pageSize {
		end := min(start+pageSize, len(records))
		pages = append(pages, records[start:end:end])
	}
	return pages
}

// Pager keeps the current page index over a page list that is rebuilt every
// time the underlying rows change.
type Pager struct {
	size    int
	pages   [][]Record
	current int
}

// NewPager returns a Pager that splits rows into pages of size rows.
func NewPager(size int) *Pager {
	if size <= 0 {
		size = DefaultPageSize
	}
	return &Pager{size: size, pages: [][]Record{}}
}

// Size returns the page size.
func (p *Pager) Size() int {
	return p.size
}

// SetRows rebuilds the page list. The current page is kept when it still
// exists and reset to 0 otherwise.
func (p *Pager) SetRows(rows []Record) {
	p.pages = Paginate(rows, p.size)
	p.clamp()
}

// Pages returns the full page list.
func (p *Pager) Pages() [][]Record {
	return p.pages
}

// PageCount returns the number of pages.
func (p *Pager) PageCount() int {
	return len(p.pages)
}

// Current returns the zero-based index of the current page.
func (p *Pager) Current() int {
	return p.current
}

// Page returns the rows of the current page, or an empty slice when there
// are no pages.
func (p *Pager) Page() []Record {
	if p.current < 0 || p.current >= len(p.pages) {
		return []Record{}
	}
	return p.pages[p.current]
}

// First moves to the first page.
func (p *Pager) First() {
	p.current = 0
}

// Prev moves back one page; a no-op on the first page.
func (p *Pager) Prev() {
	if p.current > 0 {
		p.current--
	}
}

// Next moves forward one page; a no-op on the last page.
func (p *Pager) Next() {
	if p.current+1 < len(p.pages) {
		p.current++
	}
}

// Last moves to the last page, or stays on 0 when there are no pages.
func (p *Pager) Last() {
	p.current = max(len(p.pages)-1, 0)
}

// Select moves to page i. Indexes outside the page list land on page 0.
func (p *Pager) Select(i int) {
	p.current = i
	p.clamp()
}

func (p *Pager) clamp() {
	if p.current < 0 || p.current >= len(p.pages) {
		p.current = 0
	}
}
