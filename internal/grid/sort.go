package grid

import (
	"fmt"
	"slices"
	"strings"
)

// Order is the direction of the active sort.
type Order int

const (
	// OrderNone means rows are in canonical order.
	OrderNone Order = iota
	// OrderAsc sorts ascending.
	OrderAsc
	// OrderDesc is the reverse of the ascending order.
	OrderDesc
)

// String returns "asc", "desc", or "" for OrderNone.
func (o Order) String() string {
	switch o {
	case OrderNone:
		return ""
	case OrderAsc:
		return "asc"
	case OrderDesc:
		return "desc"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder parses "asc" or "desc" (any case). The empty string and "none"
// parse as OrderNone.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return OrderNone, nil
	case "asc":
		return OrderAsc, nil
	case "desc":
		return OrderDesc, nil
	default:
		return OrderNone, fmt.Errorf("unknown sort order %q", s)
	}
}

// next returns the state after activating the same column again.
func (o Order) next() Order {
	switch o {
	case OrderNone:
		return OrderAsc
	case OrderAsc:
		return OrderDesc
	default:
		return OrderNone
	}
}

// SortState is the active sort column and direction. The zero value is
// unsorted.
type SortState struct {
	Key   string
	Order Order
}

// Active reports whether a sort is applied.
func (s SortState) Active() bool {
	return s.Key != "" && s.Order != OrderNone
}

// For returns the order shown for the column key: the active order when key
// is the sorted column, OrderNone otherwise.
func (s SortState) For(key string) Order {
	if s.Active() && s.Key == key {
		return s.Order
	}
	return OrderNone
}

// CompareBy returns a three-way comparator on field key. Missing or falsy
// values compare as "". Values are compared as lower-cased strings, byte by
// byte, so "10" sorts before "9".
func CompareBy(key string) func(a, b Record) int {
	return func(a, b Record) int {
		return strings.Compare(sortKey(a, key), sortKey(b, key))
	}
}

func sortKey(r Record, key string) string {
	v := r[key]
	if Falsy(v) {
		return ""
	}
	return strings.ToLower(FormatValue(v))
}

// SortRows returns a sorted copy of rows. Ascending uses a stable sort on
// CompareBy(key); descending reverses that ascending result, so ties come
// out in reverse input order. OrderNone returns a plain copy.
func SortRows(rows []Record, key string, order Order) []Record {
	out := slices.Clone(rows)
	if out == nil {
		out = []Record{}
	}
	if order == OrderNone || key == "" {
		return out
	}
	slices.SortStableFunc(out, CompareBy(key))
	if order == OrderDesc {
		slices.Reverse(out)
	}
	return out
}
