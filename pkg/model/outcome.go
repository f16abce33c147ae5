// pkg/model/outcome.go
package model

import (
	"strings"
	"time"
)

// Rule identifies one of the six fixed field rules. The values double as the
// invalid-count bucket names in batch results.
type Rule string

const (
	RuleKKNo      Rule = "KK_NO"
	RuleNIK       Rule = "NIK"
	RuleCustName  Rule = "Name"
	RuleGender    Rule = "Gender"
	RulePlace     Rule = "Place"
	RuleBirthDate Rule = "Birth Date"
)

// Outcome is the classification result for a single record: one verdict per
// rule, the derived clean flag, and the ordered failure descriptions.
type Outcome struct {
	Results  map[Rule]bool
	Clean    bool
	Failures []string
}

// Description concatenates the failure descriptions with a "; " separator.
// A trailing separator is kept when any failure exists; downstream report
// consumers rely on the exact shape.
func (o Outcome) Description() string {
	if len(o.Failures) == 0 {
		return ""
	}
	return strings.Join(o.Failures, "; ") + "; "
}

// AnnotatedRecord is a messy record together with its failure description.
type AnnotatedRecord struct {
	Record    Record
	CheckDesc string
}

// BatchResult is the output of partitioning one batch: a strict split into
// clean and messy records, per-rule invalid counts, and the input size.
// Computed fresh on every run and never mutated afterwards.
type BatchResult struct {
	RunID         string
	Clean         []Record
	Messy         []AnnotatedRecord
	InvalidCounts map[Rule]int
	Total         int
	Duration      time.Duration
}

// CleanCount returns the number of clean records.
func (r *BatchResult) CleanCount() int {
	return len(r.Clean)
}

// MessyCount returns the number of messy records.
func (r *BatchResult) MessyCount() int {
	return len(r.Messy)
}
