// pkg/source/database.go
package source

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/dwiprasetyo/registry-qc/pkg/connector"
	"github.com/dwiprasetyo/registry-qc/pkg/model"
)

const queryTimeout = 60 * time.Second

// LoadPlaces loads the reference place set from a database. The query must
// return a single text column of place names.
func LoadPlaces(ctx context.Context, conn connector.DatabaseConnector, query string, logger *zap.Logger) (model.PlaceSet, error) {
	db := sqlx.NewDb(conn.DB(), conn.DriverName())

	var names []string
	queryCtx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	if err := db.SelectContext(queryCtx, &names, query); err != nil {
		return model.PlaceSet{}, fmt.Errorf("failed to load place list: %w", err)
	}

	places := model.NewPlaceSet(names)
	logger.Info("Loaded place list from database",
		zap.String("driver", conn.DriverName()),
		zap.Int("places", places.Len()))

	return places, nil
}

// LoadRecords loads registry records from a warehouse table. NULL columns
// become missing values.
func LoadRecords(ctx context.Context, conn connector.DatabaseConnector, schema, table string, logger *zap.Logger) ([]model.Record, error) {
	query := fmt.Sprintf("SELECT %s FROM %s.%s",
		strings.Join(model.RequiredFields, ", "), schema, table)

	rows, err := conn.QueryWithTimeout(ctx, query, queryTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s.%s: %w", schema, table, err)
	}
	defer rows.Close()

	var records []model.Record
	for rows.Next() {
		values := make([]sql.NullString, len(model.RequiredFields))
		scanTargets := make([]interface{}, len(values))
		for i := range values {
			scanTargets[i] = &values[i]
		}

		if err := rows.Scan(scanTargets...); err != nil {
			return nil, fmt.Errorf("failed to scan record row: %w", err)
		}

		rec := make(model.Record, len(model.RequiredFields))
		for i, field := range model.RequiredFields {
			if values[i].Valid {
				rec[field] = model.Text(values[i].String)
			} else {
				rec[field] = model.Missing()
			}
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating record rows: %w", err)
	}

	logger.Info("Loaded records from database",
		zap.String("schema", schema),
		zap.String("table", table),
		zap.Int("records", len(records)))

	return records, nil
}
