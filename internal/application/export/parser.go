// Package export turns the text property report back into a normalized
// tabular (CSV) export.  It has no knowledge of the descriptor enumeration:
// whatever keys appear in the report become columns, so the pipeline keeps
// working when the descriptor set evolves.
package export

import "strings"

// ParsedRecord is one report block parsed into a flat key-value mapping.
// Values are opaque strings; no type coercion is performed.
type ParsedRecord map[string]string

// ParseReport splits raw report text into blank-line-delimited blocks and
// parses each block into a ParsedRecord.  Records appear in source order.
//
// Splitting rules:
//   - the whole text is trimmed, then split on the double-newline delimiter;
//     blocks that are empty after trimming are dropped, so any run of blank
//     lines separates blocks;
//   - within a block, each line containing a colon is split on the first
//     colon only, with both sides trimmed;
//   - lines without a colon are silently ignored;
//   - a duplicated key within one block is overwritten: last write wins.
func ParseReport(text string) []ParsedRecord {
	blocks := strings.Split(strings.TrimSpace(text), "\n\n")

	records := make([]ParsedRecord, 0, len(blocks))
	for _, block := range blocks {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		rec := make(ParsedRecord)
		for _, line := range strings.Split(block, "\n") {
			i := strings.Index(line, ":")
			if i < 0 {
				continue
			}
			key := strings.TrimSpace(line[:i])
			val := strings.TrimSpace(line[i+1:])
			rec[key] = val
		}
		records = append(records, rec)
	}
	return records
}
