// pkg/rules/rules.go

// Package rules holds the six fixed field rules applied to population-registry
// records. Every rule is a pure, total predicate: it returns a verdict for any
// value, including missing or non-text input, and never errors.
package rules

import (
	"strings"
	"time"
	"unicode"

	"github.com/dwiprasetyo/registry-qc/pkg/model"
)

// birthDateLayout parses DD/MM/YYYY with a four-digit year. The non-padded
// day and month elements also accept zero-padded input.
const birthDateLayout = "2/1/2006"

// Order is the fixed evaluation order. Failure descriptions and invalid
// counts follow this order.
var Order = []model.Rule{
	model.RuleKKNo,
	model.RuleNIK,
	model.RuleCustName,
	model.RuleGender,
	model.RulePlace,
	model.RuleBirthDate,
}

// fields maps each rule to the record field it examines.
var fields = map[model.Rule]string{
	model.RuleKKNo:      model.FieldKKNo,
	model.RuleNIK:       model.FieldNIK,
	model.RuleCustName:  model.FieldCustName,
	model.RuleGender:    model.FieldGender,
	model.RulePlace:     model.FieldBirthPlace,
	model.RuleBirthDate: model.FieldBirthDate,
}

// messages maps each rule to its fixed failure message.
var messages = map[model.Rule]string{
	model.RuleKKNo:      "Invalid KK_NO",
	model.RuleNIK:       "Invalid NIK",
	model.RuleCustName:  "Invalid Name",
	model.RuleGender:    "Invalid Gender",
	model.RulePlace:     "Invalid Place",
	model.RuleBirthDate: "Invalid Birth Date",
}

// acceptedGenders is the canonical accepted spelling set. Hand-enumerated
// rather than pattern-matched so partial punctuation variants cannot slip
// through; widening it is a policy change, not a bug fix.
var acceptedGenders = map[string]struct{}{
	"LAKI-LAKI": {},
	"LAKI LAKI": {},
	"PEREMPUAN": {},
}

// Field returns the record field a rule examines.
func Field(r model.Rule) string {
	return fields[r]
}

// Message returns the fixed failure message for a rule.
func Message(r model.Rule) string {
	return messages[r]
}

// Evaluate applies one rule to a record. Place membership is checked against
// places; the birth-date rule compares against today.
func Evaluate(r model.Rule, rec model.Record, places model.PlaceSet, today time.Time) bool {
	value := rec.Get(fields[r])
	switch r {
	case model.RuleKKNo, model.RuleNIK:
		return ValidIdentityNumber(value)
	case model.RuleCustName:
		return ValidName(value)
	case model.RuleGender:
		return ValidGender(value)
	case model.RulePlace:
		return ValidPlace(value, places)
	case model.RuleBirthDate:
		return ValidBirthDate(value, today)
	default:
		return false
	}
}

// ValidIdentityNumber accepts text of exactly 16 decimal digits not ending in
// "0000". Both KK_NO and NIK use this predicate, applied independently.
func ValidIdentityNumber(v model.Value) bool {
	s, ok := v.AsText()
	if !ok || len(s) != 16 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s[12:] != "0000"
}

// ValidName accepts text containing no digit characters.
func ValidName(v model.Value) bool {
	s, ok := v.AsText()
	if !ok {
		return false
	}
	for _, r := range s {
		if unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ValidGender accepts values whose upper-cased, trimmed form is in the
// accepted spelling set.
func ValidGender(v model.Value) bool {
	s, ok := v.AsText()
	if !ok {
		return false
	}
	_, accepted := acceptedGenders[strings.ToUpper(strings.TrimSpace(s))]
	return accepted
}

// ValidPlace accepts text whose normalized form is a member of the reference
// place set.
func ValidPlace(v model.Value, places model.PlaceSet) bool {
	s, ok := v.AsText()
	if !ok {
		return false
	}
	return places.Contains(s)
}

// ValidBirthDate accepts text parsing as a DD/MM/YYYY calendar date on or
// before today. Only the date parts of today are considered.
func ValidBirthDate(v model.Value, today time.Time) bool {
	s, ok := v.AsText()
	if !ok {
		return false
	}
	parsed, err := time.Parse(birthDateLayout, s)
	if err != nil {
		return false
	}
	cutoff := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return !parsed.After(cutoff)
}
