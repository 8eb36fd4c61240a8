package schema

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the ISO calendar date format produced by date inputs.
const DateLayout = "2006-01-02"

// Input carries one form submission before coercion. Scalar inputs arrive
// as raw text in Values; multi-select inputs in Lists; checkbox inputs in
// Flags. A field missing from all three maps is treated the same as an
// empty string: absent.
type Input struct {
	Values map[string]string
	Lists  map[string][]string
	Flags  map[string]bool
}

// Record is the typed, partially-populated result of a coercion pass.
// Presence of a key means the field carries a value; a field that was
// submitted empty appears in no map at all. This keeps absent, zero, and
// invalid as three distinct states: absent fields are missing keys, zero is
// a stored value like any other, and invalid fields are listed in the
// Report and never stored.
type Record struct {
	Text     map[string]string
	Numbers  map[string]float64
	Integers map[string]int
	Booleans map[string]bool
	Dates    map[string]time.Time
	Lists    map[string][]string
}

// Report aggregates everything wrong with one submission: required fields
// left blank, values that failed to parse, and enumerated values outside
// the active vocabulary. One report per submission replaces per-field
// ad hoc checks.
type Report struct {
	Problems map[string]string
}

// OK reports whether the submission passed coercion cleanly.
func (r *Report) OK() bool {
	return len(r.Problems) == 0
}

// Add records a problem for a field. Later problems for the same field do
// not overwrite earlier ones.
func (r *Report) Add(field, problem string) {
	if r.Problems == nil {
		r.Problems = make(map[string]string)
	}
	if _, exists := r.Problems[field]; !exists {
		r.Problems[field] = problem
	}
}

// Coerce runs the schema-driven coercion pass over one submission. Every
// registry field is visited exactly once: blank text maps to absent (never
// zero), non-blank text is parsed per the field's declared kind, and parse
// failures land in the report without touching the record. No range or
// sign validation is performed on numeric values.
func Coerce(fields []Field, in Input) (Record, Report) {
	rec := Record{
		Text:     make(map[string]string),
		Numbers:  make(map[string]float64),
		Integers: make(map[string]int),
		Booleans: make(map[string]bool),
		Dates:    make(map[string]time.Time),
		Lists:    make(map[string][]string),
	}
	var report Report

	for _, f := range fields {
		switch f.Kind {
		case KindBoolean:
			// Checkboxes are always present; false is a value, not absence.
			rec.Booleans[f.Name] = in.Flags[f.Name]

		case KindTextArray:
			values := trimList(in.Lists[f.Name])
			if len(values) == 0 {
				if f.Required {
					report.Add(f.Name, "this field is required")
				}
				continue
			}
			rec.Lists[f.Name] = values

		default:
			raw := strings.TrimSpace(in.Values[f.Name])
			if raw == "" {
				if f.Required {
					report.Add(f.Name, "this field is required")
				}
				continue
			}
			coerceScalar(f, raw, &rec, &report)
		}
	}

	return rec, report
}

// coerceScalar parses one non-empty scalar value per its declared kind.
func coerceScalar(f Field, raw string, rec *Record, report *Report) {
	switch f.Kind {
	case KindText:
		rec.Text[f.Name] = raw
	case KindNumber:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			report.Add(f.Name, fmt.Sprintf("%q is not a valid number", raw))
			return
		}
		rec.Numbers[f.Name] = v
	case KindInteger:
		v, err := strconv.Atoi(raw)
		if err != nil {
			report.Add(f.Name, fmt.Sprintf("%q is not a valid integer", raw))
			return
		}
		rec.Integers[f.Name] = v
	case KindDate:
		v, err := time.Parse(DateLayout, raw)
		if err != nil {
			report.Add(f.Name, fmt.Sprintf("%q is not a valid date (expected YYYY-MM-DD)", raw))
			return
		}
		rec.Dates[f.Name] = v
	}
}

// ValidateChoices checks every enumerated field of the record against the
// currently active vocabulary, given as category -> set of active values.
// Absent fields pass; a record saved under a value that is later
// deactivated is unaffected because this runs only at submission time.
func ValidateChoices(fields []Field, rec Record, active map[string]map[string]bool, report *Report) {
	for _, f := range fields {
		if !f.Enumerated() {
			continue
		}
		allowed := active[f.Category]
		switch f.Kind {
		case KindText:
			value, ok := rec.Text[f.Name]
			if !ok {
				continue
			}
			if !allowed[value] {
				report.Add(f.Name, fmt.Sprintf("%q is not an active %s value", value, f.Category))
			}
		case KindTextArray:
			for _, value := range rec.Lists[f.Name] {
				if !allowed[value] {
					report.Add(f.Name, fmt.Sprintf("%q is not an active %s value", value, f.Category))
					break
				}
			}
		}
	}
}

// trimList drops blank entries and trims the rest, preserving order.
func trimList(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
