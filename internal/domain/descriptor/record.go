// Package descriptor provides the core domain model for molscreen: the
// per-structure descriptor record and the drug-likeness rule evaluation
// engine.  Descriptor values are produced by a structure analyzer (see
// interfaces.go); this package only consumes them.
package descriptor

import (
	"math"
	"strconv"

	"github.com/molscreen/molscreen/pkg/errors"
)

// Canonical descriptor field names.  The order they appear in a report block
// is fixed by FieldOrder below.
const (
	FieldTPSA         = "TPSA"
	FieldWlogP        = "WlogP"
	FieldAtoms        = "Atoms"
	FieldFormalCharge = "FormalCharge"
	FieldHeteroatoms  = "Heteroatoms"
	FieldCarbon       = "Carbon"
	FieldFormula      = "Formula"
	FieldMW           = "MW"
	FieldHeavyAtoms   = "HeavyAtoms"
	FieldCSP3         = "CSP3"
	FieldRings        = "Rings"
	FieldHBD          = "HBD"
	FieldHBA          = "HBA"
	FieldRotBonds     = "RotBonds"
	FieldMR           = "MR"
	FieldNHOH         = "NHOH"
	FieldNO           = "NO"
)

// FieldOrder is the canonical enumeration order of descriptor fields, used
// verbatim as the line order of a rendered report block.
var FieldOrder = []string{
	FieldTPSA,
	FieldWlogP,
	FieldAtoms,
	FieldFormalCharge,
	FieldHeteroatoms,
	FieldCarbon,
	FieldFormula,
	FieldMW,
	FieldHeavyAtoms,
	FieldCSP3,
	FieldRings,
	FieldHBD,
	FieldHBA,
	FieldRotBonds,
	FieldMR,
	FieldNHOH,
	FieldNO,
}

// Kind is the declared semantic type of a descriptor value.
type Kind int

const (
	KindInt Kind = iota
	KindReal
	KindString
)

// Value is one typed descriptor value.  Reals are rounded to two decimal
// places at construction; every field is computed exactly once per structure
// so rounding at the boundary loses nothing.
type Value struct {
	kind Kind
	i    int
	f    float64
	s    string
}

// NewInt constructs an integer Value.
func NewInt(v int) Value { return Value{kind: KindInt, i: v} }

// NewReal constructs a real Value rounded to two decimal places.
func NewReal(v float64) Value {
	return Value{kind: KindReal, f: math.Round(v*100) / 100}
}

// NewString constructs a string Value.
func NewString(s string) Value { return Value{kind: KindString, s: s} }

// Kind returns the declared semantic type of the value.
func (v Value) Kind() Kind { return v.kind }

// Float returns the numeric value, promoting integers.  The second return is
// false for string values.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindReal:
		return v.f, true
	default:
		return 0, false
	}
}

// String renders the value the way it appears in a report block: integers in
// base 10, reals with the shortest representation of their rounded form,
// strings verbatim.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.Itoa(v.i)
	case KindReal:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	default:
		return v.s
	}
}

// Record is one structure's named descriptor mapping.  The display name is
// arbitrary and not required to be unique.  Field iteration order is the
// order fields were set, which for analyzer-produced records is FieldOrder.
type Record struct {
	Name string

	values map[string]Value
	order  []string
}

// NewRecord constructs an empty Record with the given display name.
func NewRecord(name string) *Record {
	return &Record{
		Name:   name,
		values: make(map[string]Value, len(FieldOrder)),
	}
}

// Set assigns a field value.  Setting an existing field overwrites the value
// but keeps its original position.
func (r *Record) Set(field string, v Value) {
	if _, ok := r.values[field]; !ok {
		r.order = append(r.order, field)
	}
	r.values[field] = v
}

// Get returns the value of a field and whether it is present.
func (r *Record) Get(field string) (Value, bool) {
	v, ok := r.values[field]
	return v, ok
}

// Float returns a field as float64, promoting integers.  An absent field or
// a string-typed field is a contract violation of the upstream analyzer and
// yields a CodeMissingDescriptor error.
func (r *Record) Float(field string) (float64, error) {
	v, ok := r.values[field]
	if !ok {
		return 0, errors.MissingDescriptor(field)
	}
	f, ok := v.Float()
	if !ok {
		return 0, errors.MissingDescriptor(field).
			WithDetail("field is present but not numeric")
	}
	return f, nil
}

// Fields returns the field names in iteration order.  The returned slice is
// a copy.
func (r *Record) Fields() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of fields set on the record.
func (r *Record) Len() int { return len(r.order) }
