package grid

import "strings"

// Matches reports whether any of the record's fields named in keys contains
// query, case-insensitively. Matching is plain substring containment, so
// characters like "[" or "*" in the query are taken literally. An empty
// query matches every record; falsy fields never match.
func Matches(r Record, keys []string, query string) bool {
	if query == "" {
		return true
	}
	return matchesLower(r, keys, strings.ToLower(query))
}

func matchesLower(r Record, keys []string, needle string) bool {
	for _, key := range keys {
		v := r[key]
		if Falsy(v) {
			continue
		}
		if strings.Contains(strings.ToLower(FormatValue(v)), needle) {
			return true
		}
	}
	return false
}

// Filter returns the records matching query, in their input order. The
// field set is taken from the first record. When records is empty or query
// is empty the input slice itself is returned.
func Filter(records []Record, query string) []Record {
	if len(records) == 0 || query == "" {
		return records
	}

	keys := records[0].Keys()
	needle := strings.ToLower(query)

	out := make([]Record, 0, len(records))
	for _, r := range records {
		if matchesLower(r, keys, needle) {
			out = append(out, r)
		}
	}
	return out
}
