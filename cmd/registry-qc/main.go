// cmd/registry-qc/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dwiprasetyo/registry-qc/pkg/config"
	"github.com/dwiprasetyo/registry-qc/pkg/connector"
	"github.com/dwiprasetyo/registry-qc/pkg/model"
	"github.com/dwiprasetyo/registry-qc/pkg/report"
	"github.com/dwiprasetyo/registry-qc/pkg/rules"
	"github.com/dwiprasetyo/registry-qc/pkg/source"
	"github.com/dwiprasetyo/registry-qc/pkg/validator"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "registry-qc",
		Short: "Population registry record validation",
		Long:  `Validates population registry extracts against the field rules and splits them into clean and messy partitions`,
	}

	rootCmd.AddCommand(createValidateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// createValidateCmd creates the validate subcommand
func createValidateCmd() *cobra.Command {
	var (
		inputPath   string
		citiesPath  string
		outputPath  string
		placesQuery string
		tableName   string
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Classify a registry extract and write the report workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Missing .env is fine; real environments export directly
			_ = godotenv.Load()

			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			logger, err := newLogger(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer logger.Sync()
			zap.ReplaceGlobals(logger)

			return runValidate(cmd.Context(), cfg, logger,
				inputPath, citiesPath, outputPath, placesQuery, tableName)
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "path to the registry extract workbook (.xlsx)")
	cmd.Flags().StringVar(&citiesPath, "cities", "", "path to the reference city list (.csv)")
	cmd.Flags().StringVar(&outputPath, "out", "report.xlsx", "path of the report workbook to write")
	cmd.Flags().StringVar(&placesQuery, "places-query", "", "SQL query returning city names, run against PostgreSQL instead of --cities")
	cmd.Flags().StringVar(&tableName, "table", "", "warehouse table SCHEMA.TABLE to read records from instead of --input")

	return cmd
}

func runValidate(
	ctx context.Context,
	cfg *config.Config,
	logger *zap.Logger,
	inputPath, citiesPath, outputPath, placesQuery, tableName string,
) error {
	factory := connector.NewConnectorFactory(cfg, logger)

	places, err := loadPlaces(ctx, factory, citiesPath, placesQuery, logger)
	if err != nil {
		return err
	}

	records, err := loadRecords(ctx, factory, inputPath, tableName, logger)
	if err != nil {
		return err
	}

	classifier, err := validator.NewClassifier(places, time.Now(), logger)
	if err != nil {
		return fmt.Errorf("failed to create classifier: %w", err)
	}

	partitioner, err := validator.NewPartitioner(classifier, cfg.WorkerPoolSize, logger)
	if err != nil {
		return fmt.Errorf("failed to create partitioner: %w", err)
	}

	result, err := partitioner.Partition(ctx, records)
	if err != nil {
		return fmt.Errorf("classification failed: %w", err)
	}

	countFields := make([]zap.Field, 0, len(rules.Order))
	for _, rule := range rules.Order {
		countFields = append(countFields, zap.Int(string(rule), result.InvalidCounts[rule]))
	}
	logger.Info("Invalid value counts per rule", countFields...)

	summary := report.NewSummary(result)
	logger.Info("Classification summary",
		zap.Int("total", summary.Total),
		zap.Int("clean", summary.Clean),
		zap.Int("messy", summary.Messy),
		zap.String("cleanPercent", summary.CleanPercent()),
		zap.String("messyPercent", summary.MessyPercent()))

	if err := report.WriteReport(outputPath, result, logger); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

// loadPlaces resolves the reference place set from either a CSV file or a
// PostgreSQL query. Exactly one of the two sources must be given.
func loadPlaces(
	ctx context.Context,
	factory *connector.ConnectorFactory,
	citiesPath, placesQuery string,
	logger *zap.Logger,
) (model.PlaceSet, error) {
	switch {
	case citiesPath != "" && placesQuery != "":
		return model.PlaceSet{}, fmt.Errorf("--cities and --places-query are mutually exclusive")
	case citiesPath != "":
		return source.ReadPlaceList(citiesPath, logger)
	case placesQuery != "":
		conn, err := factory.CreatePostgresConnector(ctx)
		if err != nil {
			return model.PlaceSet{}, err
		}
		defer conn.Close()
		if err := conn.Validate(); err != nil {
			return model.PlaceSet{}, err
		}
		return source.LoadPlaces(ctx, conn, placesQuery, logger)
	default:
		return model.PlaceSet{}, fmt.Errorf("either --cities or --places-query is required")
	}
}

// loadRecords resolves the registry extract from either a workbook or a
// warehouse table. Exactly one of the two sources must be given.
func loadRecords(
	ctx context.Context,
	factory *connector.ConnectorFactory,
	inputPath, tableName string,
	logger *zap.Logger,
) ([]model.Record, error) {
	switch {
	case inputPath != "" && tableName != "":
		return nil, fmt.Errorf("--input and --table are mutually exclusive")
	case inputPath != "":
		return source.ReadWorkbook(inputPath, logger)
	case tableName != "":
		parts := strings.SplitN(tableName, ".", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("--table must be in SCHEMA.TABLE form, got %q", tableName)
		}
		conn, err := factory.CreateSnowflakeConnector(ctx)
		if err != nil {
			return nil, err
		}
		defer conn.Close()
		if err := conn.Validate(); err != nil {
			return nil, err
		}
		return source.LoadRecords(ctx, conn, parts[0], parts[1], logger)
	default:
		return nil, fmt.Errorf("either --input or --table is required")
	}
}

// newLogger builds the process logger from the configured level and format.
// A "console" format selects the development encoder.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	var zapCfg zap.Config
	if cfg.LogFormat == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
