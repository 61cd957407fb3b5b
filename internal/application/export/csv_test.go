package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/molscreen/molscreen/internal/infrastructure/monitoring/logging"
)

func readBack(t *testing.T, data string) [][]string {
	t.Helper()
	rows, err := csv.NewReader(strings.NewReader(data)).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteCSV_MissingFieldsBecomeEmptyCells(t *testing.T) {
	records := []ParsedRecord{
		{"NAME": "a", "MW": "1", "TPSA": "2"},
		{"NAME": "b", "MW": "3", "Rings": "4"},
	}
	schema := UnifiedSchema(records)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, schema, records))

	rows := readBack(t, buf.String())
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"MW", "NAME", "Rings", "TPSA"}, rows[0])
	assert.Equal(t, []string{"1", "a", "", "2"}, rows[1])
	assert.Equal(t, []string{"3", "b", "4", ""}, rows[2])
}

func TestWriteCSV_RowShapeInvariant(t *testing.T) {
	records := ParseReport("NAME: x\nMW: 1\n\nNAME: y\nTPSA: 9\n\nNAME: z")
	schema := UnifiedSchema(records)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, schema, records))

	rows := readBack(t, buf.String())
	require.Len(t, rows, len(records)+1)
	for _, row := range rows {
		assert.Len(t, row, len(schema))
	}
}

func TestWriteCSV_EscapesDelimitersAndQuotes(t *testing.T) {
	records := []ParsedRecord{
		{"NAME": `1,3-bis("phenyl")benzene`, "Note": "line1\nline2"},
	}
	schema := UnifiedSchema(records)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, schema, records))

	// Round-trip through a strict CSV reader recovers the original values.
	rows := readBack(t, buf.String())
	require.Len(t, rows, 2)
	assert.Equal(t, `1,3-bis("phenyl")benzene`, rows[1][0])
	assert.Equal(t, "line1\nline2", rows[1][1])

	// Embedded quotes are doubled on the wire.
	assert.Contains(t, buf.String(), `""phenyl""`)
}

func TestService_Export(t *testing.T) {
	svc := NewService(logging.NewNopLogger())

	report := "NAME: ethanol\nMW: 46.04\n\nNAME: benzene\nRings: 1\n"
	var buf bytes.Buffer
	rows, err := svc.Export(strings.NewReader(report), &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, rows)

	parsed := readBack(t, buf.String())
	require.Len(t, parsed, 3)
	assert.Equal(t, []string{"MW", "NAME", "Rings"}, parsed[0])
}

func TestService_ExportFile(t *testing.T) {
	dir := t.TempDir()
	reportPath := filepath.Join(dir, "props.txt")
	csvPath := filepath.Join(dir, "out.csv")
	require.NoError(t, os.WriteFile(reportPath, []byte("NAME: x\nMW: 10\n"), 0o644))

	svc := NewService(nil)
	rows, err := svc.ExportFile(reportPath, csvPath)
	require.NoError(t, err)
	assert.Equal(t, 1, rows)

	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Equal(t, "MW,NAME\n10,x\n", string(data))
}

func TestService_ExportFile_MissingReport(t *testing.T) {
	svc := NewService(nil)
	_, err := svc.ExportFile(filepath.Join(t.TempDir(), "absent.txt"), filepath.Join(t.TempDir(), "out.csv"))
	assert.Error(t, err)
}
