package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/de-tools/campaign-dash/pkg/models/domain"
	"github.com/de-tools/campaign-dash/pkg/services/config"
	"github.com/de-tools/campaign-dash/pkg/services/dashboard"
	"github.com/de-tools/campaign-dash/pkg/services/dataset"
	"github.com/de-tools/campaign-dash/pkg/store/duckdb"
	"github.com/de-tools/campaign-dash/pkg/store/duckdb/records"
	"github.com/rs/zerolog"
)

const (
	SourceFile   = "file"
	SourceDuckDB = "duckdb"
)

// NewLogger builds the process logger. Unknown levels fall back to info.
func NewLogger(w io.Writer, level string) zerolog.Logger {
	if w == nil {
		w = os.Stdout
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// LoadRecords reads the dataset from the configured source.
func LoadRecords(ctx context.Context, cfg *config.Config) ([]domain.Record, error) {
	switch cfg.Dataset.Source {
	case "", SourceFile:
		return dataset.NewFileSource(cfg.Dataset.Path, cfg.Dataset.Sheet).Load(ctx)
	case SourceDuckDB:
		db, err := duckdb.NewDB(duckdb.Settings{DbPath: cfg.Store.DbPath})
		if err != nil {
			return nil, fmt.Errorf("failed to create DuckDB instance: %w", err)
		}
		defer db.Close()

		st, err := records.NewStore(db)
		if err != nil {
			return nil, fmt.Errorf("failed to create records store: %w", err)
		}
		return dataset.NewSnapshotSource(st).Load(ctx)
	default:
		return nil, fmt.Errorf("unsupported dataset source %q", cfg.Dataset.Source)
	}
}

// NewDashboard loads the dataset once and binds it to the configured variant.
func NewDashboard(ctx context.Context, cfg *config.Config, recorder dashboard.Recorder) (dashboard.Service, error) {
	variant, err := dashboard.ParseVariant(cfg.Dashboard.Variant)
	if err != nil {
		return nil, err
	}

	recs, err := LoadRecords(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}

	svc, err := dashboard.NewService(recs, variant, recorder)
	if err != nil {
		return nil, fmt.Errorf("failed to create dashboard service: %w", err)
	}
	return svc, nil
}
