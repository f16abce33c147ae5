// pkg/rules/rules_test.go
package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dwiprasetyo/registry-qc/pkg/model"
)

func TestValidIdentityNumber(t *testing.T) {
	tests := []struct {
		name  string
		value model.Value
		want  bool
	}{
		{"sixteen digits", model.Text("1234567890123456"), true},
		{"ends in single zero", model.Text("1234567890123450"), true},
		{"ends in four zeros", model.Text("1234567890120000"), false},
		{"fifteen digits", model.Text("123456789012345"), false},
		{"seventeen digits", model.Text("12345678901234567"), false},
		{"letter inside", model.Text("12345678901234A6"), false},
		{"embedded space", model.Text("1234567890 23456"), false},
		{"all zeros", model.Text("0000000000000000"), false},
		{"empty text", model.Text(""), false},
		{"missing", model.Missing(), false},
		{"non-text", model.Other(1234567890123456), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidIdentityNumber(tt.value))
		})
	}
}

func TestValidName(t *testing.T) {
	tests := []struct {
		name  string
		value model.Value
		want  bool
	}{
		{"plain name", model.Text("BUDI SANTOSO"), true},
		{"punctuation allowed", model.Text("O'BRIEN-PUTRA, JR."), true},
		{"empty text", model.Text(""), true},
		{"digit inside", model.Text("BUDI 2 SANTOSO"), false},
		{"trailing digit", model.Text("SITI3"), false},
		{"missing", model.Missing(), false},
		{"non-text", model.Other(42), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidName(tt.value))
		})
	}
}

func TestValidGender(t *testing.T) {
	tests := []struct {
		name  string
		value model.Value
		want  bool
	}{
		{"male hyphenated", model.Text("LAKI-LAKI"), true},
		{"male spaced", model.Text("LAKI LAKI"), true},
		{"female", model.Text("PEREMPUAN"), true},
		{"lowercase with padding", model.Text("  perempuan "), true},
		{"mixed case", model.Text("Laki-Laki"), true},
		{"synonym rejected", model.Text("WANITA"), false},
		{"abbreviation rejected", model.Text("L"), false},
		{"empty text", model.Text(""), false},
		{"missing", model.Missing(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidGender(tt.value))
		})
	}
}

func TestValidPlace(t *testing.T) {
	places := model.NewPlaceSet([]string{"JAKARTA", "Surabaya", " BANDUNG "})

	tests := []struct {
		name  string
		value model.Value
		want  bool
	}{
		{"exact member", model.Text("JAKARTA"), true},
		{"case insensitive", model.Text("jakarta"), true},
		{"padded probe", model.Text("  Surabaya "), true},
		{"padded member", model.Text("BANDUNG"), true},
		{"unknown city", model.Text("MEDAN"), false},
		{"empty text", model.Text(""), false},
		{"missing", model.Missing(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidPlace(tt.value, places))
		})
	}
}

func TestValidBirthDate(t *testing.T) {
	today := time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value model.Value
		want  bool
	}{
		{"past date", model.Text("01/01/2000"), true},
		{"unpadded day and month", model.Text("1/1/2000"), true},
		{"today", model.Text("01/06/2024"), true},
		{"tomorrow", model.Text("02/06/2024"), false},
		{"far future", model.Text("31/12/2999"), false},
		{"iso format rejected", model.Text("2000-01-01"), false},
		{"impossible leap day", model.Text("29/02/2001"), false},
		{"month out of range", model.Text("01/13/2000"), false},
		{"two digit year rejected", model.Text("01/01/99"), false},
		{"empty text", model.Text(""), false},
		{"missing", model.Missing(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidBirthDate(tt.value, today))
		})
	}
}

func TestEvaluateUsesRuleField(t *testing.T) {
	places := model.NewPlaceSet([]string{"JAKARTA"})
	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	rec := model.Record{
		model.FieldKKNo:       model.Text("1234567890123456"),
		model.FieldNIK:        model.Text("1234567890120000"),
		model.FieldCustName:   model.Text("BUDI"),
		model.FieldGender:     model.Text("LAKI-LAKI"),
		model.FieldBirthPlace: model.Text("JAKARTA"),
		model.FieldBirthDate:  model.Text("01/01/2000"),
	}

	assert.True(t, Evaluate(model.RuleKKNo, rec, places, today))
	assert.False(t, Evaluate(model.RuleNIK, rec, places, today))
	assert.True(t, Evaluate(model.RuleCustName, rec, places, today))
	assert.True(t, Evaluate(model.RuleGender, rec, places, today))
	assert.True(t, Evaluate(model.RulePlace, rec, places, today))
	assert.True(t, Evaluate(model.RuleBirthDate, rec, places, today))
}

func TestOrderCoversEveryRule(t *testing.T) {
	assert.Len(t, Order, 6)
	for _, rule := range Order {
		assert.NotEmpty(t, Field(rule))
		assert.NotEmpty(t, Message(rule))
	}
}
