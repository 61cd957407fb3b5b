package export

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/molscreen/molscreen/internal/infrastructure/monitoring/logging"
	"github.com/molscreen/molscreen/pkg/errors"
)

// WriteCSV emits one header row matching schema order verbatim, then one row
// per record in original order.  A record missing a schema key emits an empty
// cell for that column.  Quoting and escaping of embedded delimiters follow
// RFC 4180 via encoding/csv.
func WriteCSV(w io.Writer, schema []string, records []ParsedRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(schema); err != nil {
		return errors.Wrap(err, errors.CodeExportWrite, "writing CSV header")
	}

	row := make([]string, len(schema))
	for _, rec := range records {
		for i, key := range schema {
			row[i] = rec[key]
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrap(err, errors.CodeExportWrite, "writing CSV row")
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Wrap(err, errors.CodeExportWrite, "flushing CSV output")
	}
	return nil
}

// Service runs the report-to-CSV stage.  The report is handed over as an
// explicit path or reader; there is no implicit shared filename between the
// screening and export stages.
type Service struct {
	log logging.Logger
}

// NewService constructs an export Service.
func NewService(log logging.Logger) *Service {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Service{log: log.Named("export")}
}

// Export parses report text from r and writes the CSV table to w, returning
// the number of data rows written.
func (s *Service) Export(r io.Reader, w io.Writer) (int, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return 0, errors.Wrap(err, errors.CodeIO, "reading report")
	}

	records := ParseReport(string(text))
	schema := UnifiedSchema(records)
	s.log.Debug("unified schema computed",
		logging.Int("records", len(records)),
		logging.Int("columns", len(schema)),
	)

	if err := WriteCSV(w, schema, records); err != nil {
		return 0, err
	}
	return len(records), nil
}

// ExportFile is the file-path convenience form of Export.  The CSV file is
// created (or truncated) at csvPath.
func (s *Service) ExportFile(reportPath, csvPath string) (int, error) {
	in, err := os.Open(reportPath)
	if err != nil {
		return 0, errors.Wrap(err, errors.CodeIO, "opening report file").
			WithDetail(reportPath)
	}
	defer in.Close()

	out, err := os.Create(csvPath)
	if err != nil {
		return 0, errors.Wrap(err, errors.CodeIO, "creating CSV file").
			WithDetail(csvPath)
	}

	rows, exportErr := s.Export(in, out)
	if closeErr := out.Close(); exportErr == nil && closeErr != nil {
		exportErr = errors.Wrap(closeErr, errors.CodeIO, "closing CSV file")
	}
	if exportErr != nil {
		return 0, exportErr
	}

	s.log.Info("tabular export written",
		logging.String("report", reportPath),
		logging.String("csv", csvPath),
		logging.Int("rows", rows),
	)
	return rows, nil
}
