// Package screening drives the batch pipeline: read structure tokens line by
// line, analyze each into a descriptor record, append the record to the text
// property report, and print the drug-likeness evaluation to the console
// stream.  One bad input line never aborts the batch.
package screening

import (
	"fmt"
	"io"

	"github.com/molscreen/molscreen/internal/domain/descriptor"
	"github.com/molscreen/molscreen/pkg/errors"
)

// renderBlock produces one report block: a leading blank line as the block
// divider, `NAME: <name>`, then one `<Field>: <value>` line per field in the
// record's order.  Rendering into a string first keeps the report free of
// partial blocks: the whole block is written in a single operation.
func renderBlock(rec *descriptor.Record) string {
	out := "\nNAME: " + rec.Name + "\n"
	for _, field := range rec.Fields() {
		v, _ := rec.Get(field)
		out += field + ": " + v.String() + "\n"
	}
	return out
}

// WriteBlock appends one record to the report stream.
func WriteBlock(w io.Writer, rec *descriptor.Record) error {
	if _, err := io.WriteString(w, renderBlock(rec)); err != nil {
		return errors.Wrap(err, errors.CodeIO, "writing report block").
			WithDetail("record=" + rec.Name)
	}
	return nil
}

// WriteResults renders rule evaluation results for one record to the console
// stream, grouped by rule set in the fixed evaluation order.  Empty
// violation lists render as "No violations".
func WriteResults(w io.Writer, name string, results descriptor.Results) error {
	if _, err := fmt.Fprintf(w, "\nResults for %s:\n", name); err != nil {
		return errors.Wrap(err, errors.CodeIO, "writing results header")
	}
	for _, rs := range descriptor.RuleSetOrder {
		if _, err := fmt.Fprintf(w, "%s Rules:\n", rs); err != nil {
			return errors.Wrap(err, errors.CodeIO, "writing rule set header")
		}
		violations := results[rs]
		if len(violations) == 0 {
			if _, err := fmt.Fprintln(w, "\tNo violations"); err != nil {
				return errors.Wrap(err, errors.CodeIO, "writing violations")
			}
			continue
		}
		for _, v := range violations {
			if _, err := fmt.Fprintf(w, "\t%s\n", v); err != nil {
				return errors.Wrap(err, errors.CodeIO, "writing violations")
			}
		}
	}
	return nil
}
