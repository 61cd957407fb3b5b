package export

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReport_TwoBlocks(t *testing.T) {
	text := `
NAME: ethanol
MW: 46.04
TPSA: 20.23

NAME: benzene
MW: 78.05
Rings: 1
`
	records := ParseReport(text)
	require.Len(t, records, 2)

	want := []ParsedRecord{
		{"NAME": "ethanol", "MW": "46.04", "TPSA": "20.23"},
		{"NAME": "benzene", "MW": "78.05", "Rings": "1"},
	}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestParseReport_EmptyInput(t *testing.T) {
	assert.Empty(t, ParseReport(""))
	assert.Empty(t, ParseReport("\n\n\n"))
	assert.Empty(t, ParseReport("   \n\n  \n"))
}

func TestParseReport_ManyBlankLinesBetweenBlocks(t *testing.T) {
	text := "NAME: a\nMW: 1\n\n\n\nNAME: b\nMW: 2\n"
	records := ParseReport(text)
	require.Len(t, records, 2)
	assert.Equal(t, "a", records[0]["NAME"])
	assert.Equal(t, "b", records[1]["NAME"])
}

func TestParseReport_SplitsOnFirstColonOnly(t *testing.T) {
	records := ParseReport("NAME: 1:2:3\nNote: a: b")
	require.Len(t, records, 1)
	assert.Equal(t, "1:2:3", records[0]["NAME"])
	assert.Equal(t, "a: b", records[0]["Note"])
}

func TestParseReport_IgnoresColonlessLines(t *testing.T) {
	records := ParseReport("header junk\nNAME: x\ntrailing junk")
	require.Len(t, records, 1)
	assert.Equal(t, ParsedRecord{"NAME": "x"}, records[0])
}

func TestParseReport_DuplicateKeyLastWins(t *testing.T) {
	records := ParseReport("NAME: first\nNAME: second\nMW: 10")
	require.Len(t, records, 1)
	assert.Equal(t, "second", records[0]["NAME"])
}

func TestParseReport_TrimsKeysAndValues(t *testing.T) {
	records := ParseReport("  MW  :   46.04  ")
	require.Len(t, records, 1)
	assert.Equal(t, ParsedRecord{"MW": "46.04"}, records[0])
}

func TestParseReport_PreservesSourceOrder(t *testing.T) {
	text := "NAME: z\n\nNAME: a\n\nNAME: m"
	records := ParseReport(text)
	require.Len(t, records, 3)
	assert.Equal(t, "z", records[0]["NAME"])
	assert.Equal(t, "a", records[1]["NAME"])
	assert.Equal(t, "m", records[2]["NAME"])
}
