package books

import (
	"encoding/json"
	"strings"

	"github.com/five82/bookgrid/internal/grid"
)

// Placeholder replaces any book field that is absent, null or empty.
const Placeholder = "N/A"

// Field keys shared by Book.Record and DefaultColumns.
const (
	FieldTitle  = "title"
	FieldAuthor = "author"
	FieldYear   = "year"
	FieldISBN   = "isbn"
)

// Book is a normalized book record. Every field is populated; missing
// values hold Placeholder.
type Book struct {
	Title  string `json:"title" yaml:"title"`
	Author string `json:"author" yaml:"author"`
	Year   string `json:"year" yaml:"year"`
	ISBN   string `json:"isbn" yaml:"isbn"`
}

// Record converts the book into a grid row.
func (b Book) Record() grid.Record {
	return grid.Record{
		FieldTitle:  b.Title,
		FieldAuthor: b.Author,
		FieldYear:   b.Year,
		FieldISBN:   b.ISBN,
	}
}

// Records converts books into grid rows, preserving order.
func Records(items []Book) []grid.Record {
	rows := make([]grid.Record, len(items))
	for i, b := range items {
		rows[i] = b.Record()
	}
	return rows
}

// Normalize builds a Book from a decoded JSON object. Numbers keep the text
// they were sent with when decoded as json.Number.
func Normalize(raw map[string]any) Book {
	return Book{
		Title:  field(raw, FieldTitle),
		Author: field(raw, FieldAuthor),
		Year:   field(raw, FieldYear),
		ISBN:   field(raw, FieldISBN),
	}
}

func field(raw map[string]any, key string) string {
	v, ok := raw[key]
	if !ok || v == nil {
		return Placeholder
	}
	s := strings.TrimSpace(grid.FormatValue(v))
	if s == "" {
		return Placeholder
	}
	return s
}

// DefaultColumns returns the standard book columns, all sortable.
func DefaultColumns() []grid.Column {
	return []grid.Column{
		{Key: FieldTitle, Label: "Title"},
		{Key: FieldAuthor, Label: "Author"},
		{Key: FieldYear, Label: "Year"},
		{Key: FieldISBN, Label: "ISBN"},
	}
}

// envelope accepts {"books": [...]} in addition to a bare array.
type envelope struct {
	Books []map[string]any `json:"books"`
}

// decodeBooks decodes a JSON array (or envelope) of book objects.
func decodeBooks(data []byte) ([]Book, error) {
	trimmed := strings.TrimSpace(string(data))
	dec := json.NewDecoder(strings.NewReader(trimmed))
	dec.UseNumber()

	var raw []map[string]any
	if strings.HasPrefix(trimmed, "{") {
		var env envelope
		if err := dec.Decode(&env); err != nil {
			return nil, err
		}
		raw = env.Books
	} else if err := dec.Decode(&raw); err != nil {
		return nil, err
	}

	out := make([]Book, 0, len(raw))
	for _, obj := range raw {
		out = append(out, Normalize(obj))
	}
	return out, nil
}
