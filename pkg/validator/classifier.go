// pkg/validator/classifier.go
package validator

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dwiprasetyo/registry-qc/pkg/model"
	"github.com/dwiprasetyo/registry-qc/pkg/rules"
)

// Classifier applies the full rule set to individual records.
type Classifier struct {
	places model.PlaceSet
	today  time.Time
	logger *zap.Logger
}

// NewClassifier creates a new Classifier instance. The place set is the
// reference list for the birthplace rule; today anchors the birth-date rule
// and defaults to the current date when zero.
func NewClassifier(places model.PlaceSet, today time.Time, logger *zap.Logger) (*Classifier, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if today.IsZero() {
		today = time.Now()
	}

	return &Classifier{
		places: places,
		today:  today,
		logger: logger,
	}, nil
}

// Classify evaluates every rule against the record, in the fixed rule order,
// and returns the per-rule verdicts together with the accumulated failure
// descriptions. All rules are always evaluated; classification never stops at
// the first failure.
func (c *Classifier) Classify(rec model.Record) model.Outcome {
	outcome := model.Outcome{
		Results: make(map[model.Rule]bool, len(rules.Order)),
		Clean:   true,
	}

	for _, rule := range rules.Order {
		passed := rules.Evaluate(rule, rec, c.places, c.today)
		outcome.Results[rule] = passed
		if !passed {
			outcome.Clean = false
			value := rec.Get(rules.Field(rule))
			outcome.Failures = append(outcome.Failures,
				fmt.Sprintf("%s (%s)", rules.Message(rule), value.Raw()))
		}
	}

	return outcome
}
