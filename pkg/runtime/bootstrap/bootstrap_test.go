package bootstrap

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/campaign-dash/pkg/services/config"
	"github.com/de-tools/campaign-dash/pkg/services/dashboard"
	"github.com/de-tools/campaign-dash/pkg/services/dataset"
	"github.com/de-tools/campaign-dash/pkg/store/duckdb"
	"github.com/de-tools/campaign-dash/pkg/store/duckdb/records"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `ID,Age,Income,Education,Marital_Status,TotalSpent,NumWebPurchases,NumStorePurchases,NumCatalogPurchases
1,30,1000,Grad,Single,100,1,1,0
2,40,3000,Grad,Married,300,2,2,2
3,30,2000,PhD,Married,200,3,1,0
`

func writeCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "campaign.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))
	return path
}

func TestLoadRecords_File(t *testing.T) {
	cfg := &config.Config{Dataset: config.DatasetConfig{Path: writeCSV(t), Source: SourceFile}}

	recs, err := LoadRecords(context.Background(), cfg)

	require.NoError(t, err)
	assert.Len(t, recs, 3)
}

func TestLoadRecords_DuckDBSnapshot(t *testing.T) {
	// Given
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "dash.db")
	db, err := duckdb.NewDB(duckdb.Settings{DbPath: dbPath})
	require.NoError(t, err)
	st, err := records.NewStore(db)
	require.NoError(t, err)
	_, err = dataset.Import(ctx, db, st, "campaign.csv", dataset.NewFileSource(writeCSV(t), ""), nil)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	cfg := &config.Config{
		Dataset: config.DatasetConfig{Source: SourceDuckDB},
		Store:   config.StoreConfig{DbPath: dbPath},
	}

	// When
	recs, err := LoadRecords(ctx, cfg)

	// Then
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "PhD", recs[2].Education)
}

func TestLoadRecords_UnsupportedSource(t *testing.T) {
	cfg := &config.Config{Dataset: config.DatasetConfig{Source: "s3"}}

	_, err := LoadRecords(context.Background(), cfg)

	assert.ErrorContains(t, err, "unsupported dataset source")
}

func TestNewDashboard(t *testing.T) {
	cfg := &config.Config{
		Dataset:   config.DatasetConfig{Path: writeCSV(t), Source: SourceFile},
		Dashboard: config.DashboardConfig{Variant: "basic"},
	}

	svc, err := NewDashboard(context.Background(), cfg, nil)
	require.NoError(t, err)

	dash, err := svc.Build(context.Background(), svc.DefaultCriteria(), dashboard.DefaultViewOptions())
	require.NoError(t, err)
	assert.Equal(t, 3, dash.RecordCount)
}

func TestNewDashboard_UnknownVariant(t *testing.T) {
	cfg := &config.Config{Dashboard: config.DashboardConfig{Variant: "legacy"}}

	_, err := NewDashboard(context.Background(), cfg, nil)

	assert.ErrorContains(t, err, "unknown dashboard variant")
}

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer

	logger := NewLogger(&buf, "warn")
	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Equal(t, zerolog.InfoLevel, NewLogger(&buf, "loud").GetLevel())
}
