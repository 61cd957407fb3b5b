package screening

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/molscreen/molscreen/internal/domain/descriptor"
	"github.com/molscreen/molscreen/internal/infrastructure/monitoring/logging"
	"github.com/molscreen/molscreen/pkg/errors"
)

// Result summarizes one batch run.  Records carries the descriptor records
// in input order so the export stage can be fed explicitly, without a shared
// intermediate filename.
type Result struct {
	RunID     uuid.UUID
	Records   []*descriptor.Record
	Processed int
	Skipped   int
	Failed    int
}

// Service is the batch driver.  It owns no I/O resources; the caller opens
// the input, report, and console streams and holds them for the duration of
// the run.
type Service struct {
	analyzer descriptor.StructureAnalyzer
	log      logging.Logger
}

// NewService constructs a screening Service around a structure analyzer.
func NewService(analyzer descriptor.StructureAnalyzer, log logging.Logger) *Service {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Service{
		analyzer: analyzer,
		log:      log.Named("screening"),
	}
}

// Run processes the input stream one line at a time.  Each non-blank line is
// `<structure-token> [name]`, whitespace-separated; the default name is
// Compound_<1-based line number>.  Per line, the structure is analyzed, the
// rules are evaluated, the record is appended to the report stream, and the
// evaluation summary is written to the console stream.
//
// Failure isolation: an unparsable structure token skips the line with a
// console warning; any other per-line failure is logged with its line number
// and processing continues.  A record is either fully rendered or fully
// skipped.  Only input/output stream failures abort the whole batch.
func (s *Service) Run(ctx context.Context, input io.Reader, report, console io.Writer) (*Result, error) {
	res := &Result{RunID: uuid.New()}
	log := s.log.With(logging.String("run_id", res.RunID.String()))

	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		rec, err := s.processLine(ctx, line, lineNum)
		if err != nil {
			if errors.IsCode(err, errors.CodeInvalidSMILES) {
				res.Skipped++
				token := strings.Fields(line)[0]
				fmt.Fprintf(console, "Skipping invalid SMILES: %s\n", token)
				log.Warn("skipping invalid SMILES",
					logging.String("smiles", token),
					logging.Int("line", lineNum),
				)
				continue
			}
			res.Failed++
			fmt.Fprintf(console, "Error processing line %d: %v\n", lineNum, err)
			log.Error("failed to process line",
				logging.Int("line", lineNum),
				logging.String("input", line),
				logging.Err(err),
			)
			continue
		}

		results, err := descriptor.Evaluate(rec)
		if err != nil {
			// Missing descriptor: upstream contract violation, isolated to
			// this record.  Nothing has been written yet, so the record is
			// fully skipped.
			res.Failed++
			fmt.Fprintf(console, "Error processing line %d: %v\n", lineNum, err)
			log.Error("rule evaluation failed",
				logging.Int("line", lineNum),
				logging.String("record", rec.Name),
				logging.Err(err),
			)
			continue
		}

		if err := WriteBlock(report, rec); err != nil {
			return nil, err
		}
		if err := WriteResults(console, rec.Name, results); err != nil {
			return nil, err
		}

		res.Records = append(res.Records, rec)
		res.Processed++
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.CodeIO, "reading input")
	}

	log.Info("batch complete",
		logging.Int("processed", res.Processed),
		logging.Int("skipped", res.Skipped),
		logging.Int("failed", res.Failed),
	)
	return res, nil
}

// processLine is the per-line bulkhead: it parses one input line, runs the
// analyzer, and converts any panic from the analysis layer into an error so
// a single pathological record cannot take down the batch.
func (s *Service) processLine(ctx context.Context, line string, lineNum int) (rec *descriptor.Record, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf(errors.CodeInternal, "panic while analyzing structure: %v", r).
				WithDetail(fmt.Sprintf("line=%d", lineNum))
		}
	}()

	parts := strings.Fields(line)
	token := parts[0]
	name := fmt.Sprintf("Compound_%d", lineNum)
	if len(parts) > 1 {
		name = parts[1]
	}

	rec, err = s.analyzer.Analyze(ctx, token)
	if err != nil {
		return nil, err
	}
	rec.Name = name
	return rec, nil
}
