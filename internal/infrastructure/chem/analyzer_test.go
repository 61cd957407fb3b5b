package chem

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/molscreen/molscreen/internal/domain/descriptor"
	"github.com/molscreen/molscreen/pkg/errors"
)

func analyze(t *testing.T, smiles string) *descriptor.Record {
	t.Helper()
	rec, err := NewAnalyzer(nil).Analyze(context.Background(), smiles)
	require.NoError(t, err)
	return rec
}

func fieldString(t *testing.T, rec *descriptor.Record, field string) string {
	t.Helper()
	v, ok := rec.Get(field)
	require.True(t, ok, "field %s missing", field)
	return v.String()
}

func TestAnalyze_Ethanol(t *testing.T) {
	rec := analyze(t, "CCO")

	assert.Equal(t, "C2H6O", fieldString(t, rec, descriptor.FieldFormula))
	assert.Equal(t, "46.04", fieldString(t, rec, descriptor.FieldMW))
	assert.Equal(t, "9", fieldString(t, rec, descriptor.FieldAtoms))
	assert.Equal(t, "3", fieldString(t, rec, descriptor.FieldHeavyAtoms))
	assert.Equal(t, "2", fieldString(t, rec, descriptor.FieldCarbon))
	assert.Equal(t, "1", fieldString(t, rec, descriptor.FieldHeteroatoms))
	assert.Equal(t, "0", fieldString(t, rec, descriptor.FieldFormalCharge))
	assert.Equal(t, "0", fieldString(t, rec, descriptor.FieldRings))
	assert.Equal(t, "0", fieldString(t, rec, descriptor.FieldRotBonds))
	assert.Equal(t, "1", fieldString(t, rec, descriptor.FieldNHOH))
	assert.Equal(t, "1", fieldString(t, rec, descriptor.FieldNO))
	assert.Equal(t, "1", fieldString(t, rec, descriptor.FieldHBD))
	assert.Equal(t, "1", fieldString(t, rec, descriptor.FieldHBA))
	assert.Equal(t, "1", fieldString(t, rec, descriptor.FieldCSP3))
	assert.Equal(t, "20.23", fieldString(t, rec, descriptor.FieldTPSA))
}

func TestAnalyze_Benzene(t *testing.T) {
	rec := analyze(t, "c1ccccc1")

	assert.Equal(t, "C6H6", fieldString(t, rec, descriptor.FieldFormula))
	assert.Equal(t, "78.05", fieldString(t, rec, descriptor.FieldMW))
	assert.Equal(t, "12", fieldString(t, rec, descriptor.FieldAtoms))
	assert.Equal(t, "1", fieldString(t, rec, descriptor.FieldRings))
	assert.Equal(t, "0", fieldString(t, rec, descriptor.FieldTPSA))
	assert.Equal(t, "0", fieldString(t, rec, descriptor.FieldCSP3))
	assert.Equal(t, "0", fieldString(t, rec, descriptor.FieldHeteroatoms))
	assert.Equal(t, "0", fieldString(t, rec, descriptor.FieldNO))
}

func TestAnalyze_Aspirin(t *testing.T) {
	rec := analyze(t, "CC(=O)Oc1ccccc1C(=O)O")

	assert.Equal(t, "C9H8O4", fieldString(t, rec, descriptor.FieldFormula))
	assert.Equal(t, "180.04", fieldString(t, rec, descriptor.FieldMW))
	assert.Equal(t, "21", fieldString(t, rec, descriptor.FieldAtoms))
	assert.Equal(t, "13", fieldString(t, rec, descriptor.FieldHeavyAtoms))
	assert.Equal(t, "9", fieldString(t, rec, descriptor.FieldCarbon))
	assert.Equal(t, "4", fieldString(t, rec, descriptor.FieldHeteroatoms))
	assert.Equal(t, "1", fieldString(t, rec, descriptor.FieldRings))
	assert.Equal(t, "3", fieldString(t, rec, descriptor.FieldRotBonds))
	assert.Equal(t, "1", fieldString(t, rec, descriptor.FieldNHOH))
	assert.Equal(t, "4", fieldString(t, rec, descriptor.FieldNO))
	assert.Equal(t, "1", fieldString(t, rec, descriptor.FieldHBD))
	assert.Equal(t, "4", fieldString(t, rec, descriptor.FieldHBA))
	assert.Equal(t, "63.6", fieldString(t, rec, descriptor.FieldTPSA))
	assert.Equal(t, "0.11", fieldString(t, rec, descriptor.FieldCSP3))
}

func TestAnalyze_Pyridine(t *testing.T) {
	rec := analyze(t, "c1ccncc1")

	assert.Equal(t, "C5H5N", fieldString(t, rec, descriptor.FieldFormula))
	assert.Equal(t, "12.89", fieldString(t, rec, descriptor.FieldTPSA))
	assert.Equal(t, "0", fieldString(t, rec, descriptor.FieldNHOH))
	assert.Equal(t, "1", fieldString(t, rec, descriptor.FieldNO))
	assert.Equal(t, "0", fieldString(t, rec, descriptor.FieldHBD))
	assert.Equal(t, "1", fieldString(t, rec, descriptor.FieldHBA))
}

func TestAnalyze_Ammonium(t *testing.T) {
	rec := analyze(t, "[NH4+]")

	assert.Equal(t, "H4N+", fieldString(t, rec, descriptor.FieldFormula))
	assert.Equal(t, "1", fieldString(t, rec, descriptor.FieldFormalCharge))
	assert.Equal(t, "4", fieldString(t, rec, descriptor.FieldNHOH))
	assert.Equal(t, "27.64", fieldString(t, rec, descriptor.FieldTPSA))
	assert.Equal(t, "0", fieldString(t, rec, descriptor.FieldCarbon))
	assert.Equal(t, "0", fieldString(t, rec, descriptor.FieldCSP3))
}

func TestAnalyze_AceticAcid(t *testing.T) {
	rec := analyze(t, "CC(=O)O")

	assert.Equal(t, "C2H4O2", fieldString(t, rec, descriptor.FieldFormula))
	assert.Equal(t, "60.02", fieldString(t, rec, descriptor.FieldMW))
	assert.Equal(t, "37.3", fieldString(t, rec, descriptor.FieldTPSA))
	assert.Equal(t, "0", fieldString(t, rec, descriptor.FieldRotBonds))
	assert.Equal(t, "1", fieldString(t, rec, descriptor.FieldHBD))
	assert.Equal(t, "0.5", fieldString(t, rec, descriptor.FieldCSP3))
}

func TestAnalyze_Biphenyl(t *testing.T) {
	rec := analyze(t, "c1ccc(-c2ccccc2)cc1")

	assert.Equal(t, "C12H10", fieldString(t, rec, descriptor.FieldFormula))
	assert.Equal(t, "2", fieldString(t, rec, descriptor.FieldRings))
	assert.Equal(t, "1", fieldString(t, rec, descriptor.FieldRotBonds))
}

func TestAnalyze_FieldOrderMatchesEnumeration(t *testing.T) {
	rec := analyze(t, "CCO")
	assert.Equal(t, descriptor.FieldOrder, rec.Fields())
	assert.Empty(t, rec.Name)
}

func TestAnalyze_RecordPassesRuleEngine(t *testing.T) {
	rec := analyze(t, "CCO")
	results, err := descriptor.Evaluate(rec)
	require.NoError(t, err)

	// Ethanol is tiny: Ghose and Muegge fire their lower-bound checks,
	// Lipinski, Veber and Egan are clean.
	assert.Empty(t, results[descriptor.RuleLipinski])
	assert.Empty(t, results[descriptor.RuleVeber])
	assert.Empty(t, results[descriptor.RuleEgan])
	assert.NotEmpty(t, results[descriptor.RuleGhose])
	assert.NotEmpty(t, results[descriptor.RuleMuegge])
}

func TestAnalyze_InvalidToken(t *testing.T) {
	_, err := NewAnalyzer(nil).Analyze(context.Background(), "not_a_structure")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeInvalidSMILES))
}

func TestAnalyze_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewAnalyzer(nil).Analyze(ctx, "CCO")
	assert.ErrorIs(t, err, context.Canceled)
}
