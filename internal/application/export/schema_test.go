package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnifiedSchema_SortedUnion(t *testing.T) {
	records := []ParsedRecord{
		{"NAME": "a", "MW": "1", "TPSA": "2"},
		{"NAME": "b", "MW": "3", "Rings": "4"},
	}
	assert.Equal(t, []string{"MW", "NAME", "Rings", "TPSA"}, UnifiedSchema(records))
}

func TestUnifiedSchema_Empty(t *testing.T) {
	assert.Empty(t, UnifiedSchema(nil))
	assert.Empty(t, UnifiedSchema([]ParsedRecord{{}}))
}

func TestUnifiedSchema_SingleRecord(t *testing.T) {
	records := []ParsedRecord{{"b": "2", "a": "1", "c": "3"}}
	assert.Equal(t, []string{"a", "b", "c"}, UnifiedSchema(records))
}

func TestUnifiedSchema_Deterministic(t *testing.T) {
	records := []ParsedRecord{
		{"x": "1", "y": "2"},
		{"z": "3", "x": "4"},
	}
	first := UnifiedSchema(records)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, UnifiedSchema(records))
	}
}
