package export

import "sort"

// UnifiedSchema computes the lexicographically sorted union of all keys
// appearing in any record.  It must see the entire record set before any CSV
// row is emitted; the writer cannot stream rows ahead of a fixed schema.
func UnifiedSchema(records []ParsedRecord) []string {
	seen := make(map[string]struct{})
	for _, rec := range records {
		for key := range rec {
			seen[key] = struct{}{}
		}
	}

	schema := make([]string, 0, len(seen))
	for key := range seen {
		schema = append(schema, key)
	}
	sort.Strings(schema)
	return schema
}
