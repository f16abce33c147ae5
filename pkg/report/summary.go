// pkg/report/summary.go

// Package report renders batch results into the summary workbook handed to
// registry operators.
package report

import (
	"fmt"

	"github.com/dwiprasetyo/registry-qc/pkg/model"
)

// Summary holds the headline counts of a classification run.
type Summary struct {
	Total int
	Clean int
	Messy int
}

// NewSummary derives the headline counts from a batch result.
func NewSummary(result *model.BatchResult) Summary {
	return Summary{
		Total: result.Total,
		Clean: result.CleanCount(),
		Messy: result.MessyCount(),
	}
}

// CleanPercent formats the clean share of the batch. Empty batches have no
// meaningful share and render as "N/A".
func (s Summary) CleanPercent() string {
	return percent(s.Clean, s.Total)
}

// MessyPercent formats the messy share of the batch.
func (s Summary) MessyPercent() string {
	return percent(s.Messy, s.Total)
}

func percent(part, total int) string {
	if total == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.1f%%", float64(part)/float64(total)*100)
}
