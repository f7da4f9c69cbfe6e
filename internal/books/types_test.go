package books

import (
	"encoding/json"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		want Book
	}{
		{
			name: "complete",
			raw:  map[string]any{"title": "Emma", "author": "Jane Austen", "year": json.Number("1815"), "isbn": "123"},
			want: Book{Title: "Emma", Author: "Jane Austen", Year: "1815", ISBN: "123"},
		},
		{
			name: "missing and null",
			raw:  map[string]any{"title": nil},
			want: Book{Title: Placeholder, Author: Placeholder, Year: Placeholder, ISBN: Placeholder},
		},
		{
			name: "blank strings",
			raw:  map[string]any{"title": "  ", "author": ""},
			want: Book{Title: Placeholder, Author: Placeholder, Year: Placeholder, ISBN: Placeholder},
		},
		{
			name: "zero year is kept",
			raw:  map[string]any{"year": json.Number("0")},
			want: Book{Title: Placeholder, Author: Placeholder, Year: "0", ISBN: Placeholder},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.raw); got != tt.want {
				t.Fatalf("Normalize = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestBookRecord(t *testing.T) {
	b := Book{Title: "Emma", Author: "Jane Austen", Year: "1815", ISBN: Placeholder}
	r := b.Record()
	keys := r.Keys()
	if len(keys) != 4 || keys[0] != FieldAuthor || keys[3] != FieldYear {
		t.Fatalf("record keys = %v", keys)
	}
	if r.Text(FieldISBN) != Placeholder {
		t.Fatalf("isbn = %q, want placeholder", r.Text(FieldISBN))
	}

	rows := Records([]Book{b, {Title: "Dune"}})
	if len(rows) != 2 || rows[1].Text(FieldTitle) != "Dune" {
		t.Fatalf("Records = %v", rows)
	}
}

func TestDefaultColumns(t *testing.T) {
	cols := DefaultColumns()
	if len(cols) != 4 {
		t.Fatalf("DefaultColumns len = %d, want 4", len(cols))
	}
	for _, c := range cols {
		if !c.Sortable() {
			t.Fatalf("column %q should be sortable", c.Key)
		}
		if c.Label == "" {
			t.Fatalf("column %q has no label", c.Key)
		}
	}
}
