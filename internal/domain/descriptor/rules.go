package descriptor

// RuleSet names one of the five drug-likeness rule sets.
type RuleSet string

const (
	RuleLipinski RuleSet = "Lipinski"
	RuleGhose    RuleSet = "Ghose"
	RuleVeber    RuleSet = "Veber"
	RuleEgan     RuleSet = "Egan"
	RuleMuegge   RuleSet = "Muegge"
)

// RuleSetOrder is the fixed evaluation and display order of the rule sets.
var RuleSetOrder = []RuleSet{RuleLipinski, RuleGhose, RuleVeber, RuleEgan, RuleMuegge}

// Results maps each rule set to its ordered list of violation messages.
// A rule set with no violations maps to an empty (nil) list.
type Results map[RuleSet][]string

// RequiredFields lists the descriptors rule evaluation reads.  Every one of
// them must be present on a record before Evaluate is called; absence is a
// contract violation of the upstream analyzer.
var RequiredFields = []string{
	FieldMW,
	FieldWlogP,
	FieldNHOH,
	FieldNO,
	FieldMR,
	FieldAtoms,
	FieldRotBonds,
	FieldTPSA,
	FieldRings,
	FieldCarbon,
	FieldHeteroatoms,
	FieldHBA,
}

// check is a single threshold test: fails(value of field) appends msg.
type check struct {
	field string
	fails func(v float64) bool
	msg   string
}

// Threshold tables, one per rule set, in the declared top-to-bottom order.
// All boundaries are inclusive exactly as listed; the message texts are
// fixed and must not be reworded.
var ruleChecks = map[RuleSet][]check{
	RuleLipinski: {
		{FieldMW, func(v float64) bool { return v >= 500 }, "Molecular weight violation: MW > 500"},
		{FieldWlogP, func(v float64) bool { return v >= 5 }, "WlogP violation: WlogP > 5"},
		{FieldNHOH, func(v float64) bool { return v >= 5 }, "NH or OH violation: NH or OH > 5"},
		{FieldNO, func(v float64) bool { return v >= 10 }, "N or O violation: N or O > 10"},
	},
	RuleGhose: {
		{FieldMW, func(v float64) bool { return v < 160 }, "Molecular weight violation: MW < 160"},
		{FieldMW, func(v float64) bool { return v > 480 }, "Molecular weight violation: MW > 480"},
		{FieldWlogP, func(v float64) bool { return v < -0.4 }, "WlogP violation: WlogP < -0.4"},
		{FieldWlogP, func(v float64) bool { return v > 5.6 }, "WlogP violation: WlogP > 5.6"},
		{FieldMR, func(v float64) bool { return v < 40 }, "Molar Refractivity violation: MR < 40"},
		{FieldMR, func(v float64) bool { return v > 130 }, "Molar Refractivity violation: MR > 130"},
		{FieldAtoms, func(v float64) bool { return v < 20 }, "Atom No. violation: Atoms < 20"},
		{FieldAtoms, func(v float64) bool { return v > 70 }, "Atom No. violation: Atoms > 70"},
	},
	RuleVeber: {
		{FieldRotBonds, func(v float64) bool { return v >= 10 }, "Rotatable bonds violation: R.Bonds > 10"},
		{FieldTPSA, func(v float64) bool { return v >= 140 }, "TPSA violation: TPSA > 140"},
	},
	RuleEgan: {
		{FieldWlogP, func(v float64) bool { return v >= 5.88 }, "WlogP violation: WlogP > 5.88"},
		{FieldTPSA, func(v float64) bool { return v >= 131.6 }, "TPSA violation: TPSA > 131.6"},
	},
	RuleMuegge: {
		{FieldMW, func(v float64) bool { return v < 200 }, "Molecular weight violation: MW < 200"},
		{FieldMW, func(v float64) bool { return v > 600 }, "Molecular weight violation: MW > 600"},
		{FieldWlogP, func(v float64) bool { return v < -2 }, "WlogP violation: WlogP < -2"},
		{FieldWlogP, func(v float64) bool { return v > 5 }, "WlogP violation: WlogP > 5"},
		{FieldTPSA, func(v float64) bool { return v > 150 }, "TPSA violation: TPSA > 150"},
		{FieldRings, func(v float64) bool { return v >= 7 }, "No. of Rings violation: Rings > 7"},
		{FieldCarbon, func(v float64) bool { return v < 4 }, "No. of Carbon violation: C < 4"},
		{FieldHeteroatoms, func(v float64) bool { return v < 1 }, "No. of Heteroatoms violation: Het. Atoms < 1"},
		{FieldRotBonds, func(v float64) bool { return v >= 15 }, "Rotatable Bonds violation: > 15"},
		{FieldHBA, func(v float64) bool { return v >= 10 }, "HBA violation: > 10"},
	},
}

// Evaluate runs all five rule sets over a record and returns the violation
// lists keyed by rule set.  Evaluation is pure and deterministic: identical
// records yield identical ordered results.  A record missing any of
// RequiredFields yields a CodeMissingDescriptor error and no results.
func Evaluate(r *Record) (Results, error) {
	vals := make(map[string]float64, len(RequiredFields))
	for _, field := range RequiredFields {
		v, err := r.Float(field)
		if err != nil {
			return nil, err
		}
		vals[field] = v
	}

	results := make(Results, len(RuleSetOrder))
	for _, rs := range RuleSetOrder {
		var violations []string
		for _, c := range ruleChecks[rs] {
			if c.fails(vals[c.field]) {
				violations = append(violations, c.msg)
			}
		}
		results[rs] = violations
	}
	return results, nil
}
