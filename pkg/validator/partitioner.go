// pkg/validator/partitioner.go
package validator

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dwiprasetyo/registry-qc/pkg/model"
	"github.com/dwiprasetyo/registry-qc/pkg/rules"
)

// Partitioner classifies a batch of records concurrently and splits it into
// clean and messy partitions, preserving input order within each partition.
type Partitioner struct {
	classifier *Classifier
	workers    int
	logger     *zap.Logger
}

// NewPartitioner creates a new Partitioner instance. A workers value of zero
// selects one worker per CPU.
func NewPartitioner(classifier *Classifier, workers int, logger *zap.Logger) (*Partitioner, error) {
	if classifier == nil {
		return nil, errors.New("classifier cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if workers < 0 {
		return nil, fmt.Errorf("worker count cannot be negative: %d", workers)
	}
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	return &Partitioner{
		classifier: classifier,
		workers:    workers,
		logger:     logger,
	}, nil
}

// Partition classifies every record and returns the partitioned batch result.
// Records missing any required field make the whole batch fail before any
// classification happens; a structurally broken extract should be fixed, not
// partially processed.
func (p *Partitioner) Partition(ctx context.Context, records []model.Record) (*model.BatchResult, error) {
	for i, rec := range records {
		if missing := rec.MissingFields(); len(missing) > 0 {
			return nil, fmt.Errorf("record %d is missing required fields: %s",
				i, strings.Join(missing, ", "))
		}
	}

	start := time.Now()
	runID := uuid.New().String()

	workers := p.workers
	if workers > len(records) && len(records) > 0 {
		workers = len(records)
	}

	outcomes := make([]model.Outcome, len(records))
	indexes := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				outcomes[i] = p.classifier.Classify(records[i])
			}
		}()
	}

	var feedErr error
feed:
	for i := range records {
		select {
		case indexes <- i:
		case <-ctx.Done():
			feedErr = ctx.Err()
			break feed
		}
	}
	close(indexes)
	wg.Wait()

	if feedErr != nil {
		return nil, fmt.Errorf("partition cancelled: %w", feedErr)
	}

	result := &model.BatchResult{
		RunID:         runID,
		Clean:         make([]model.Record, 0, len(records)),
		Messy:         make([]model.AnnotatedRecord, 0),
		InvalidCounts: make(map[model.Rule]int, len(rules.Order)),
		Total:         len(records),
	}
	for _, rule := range rules.Order {
		result.InvalidCounts[rule] = 0
	}

	for i, outcome := range outcomes {
		if outcome.Clean {
			result.Clean = append(result.Clean, records[i])
			continue
		}
		result.Messy = append(result.Messy, model.AnnotatedRecord{
			Record:    records[i],
			CheckDesc: outcome.Description(),
		})
		for _, rule := range rules.Order {
			if !outcome.Results[rule] {
				result.InvalidCounts[rule]++
			}
		}
	}

	result.Duration = time.Since(start)

	p.logger.Info("Batch partition complete",
		zap.String("runID", runID),
		zap.Int("total", result.Total),
		zap.Int("clean", result.CleanCount()),
		zap.Int("messy", result.MessyCount()),
		zap.Duration("duration", result.Duration))

	return result, nil
}
