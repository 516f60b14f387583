package dataset

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/de-tools/campaign-dash/pkg/adapters"
	"github.com/de-tools/campaign-dash/pkg/models/domain"
	"github.com/de-tools/campaign-dash/pkg/models/store"
	"github.com/de-tools/campaign-dash/pkg/store/duckdb"
	"github.com/de-tools/campaign-dash/pkg/store/duckdb/records"
	"github.com/rs/zerolog"
)

const importBatchSize = 500

// SnapshotSource reads records previously imported into DuckDB.
type SnapshotSource struct {
	store records.Store
}

func NewSnapshotSource(st records.Store) *SnapshotSource {
	return &SnapshotSource{store: st}
}

func (s *SnapshotSource) Load(ctx context.Context) ([]domain.Record, error) {
	rows, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("snapshot is empty, run the import command first: %w", domain.ErrEmptyInput)
	}

	result := make([]domain.Record, 0, len(rows))
	for _, r := range rows {
		result = append(result, adapters.MapStoreRecordToDomain(r))
	}

	zerolog.Ctx(ctx).Info().Int("records", len(result)).Msg("snapshot loaded")
	return result, nil
}

// Progress receives the number of records written after each batch.
type Progress interface {
	Add(n int) error
}

// Import replaces the snapshot with the records of src in one transaction.
func Import(
	ctx context.Context,
	db *sql.DB,
	st records.Store,
	name string,
	src Source,
	progress Progress,
) (int, error) {
	logger := zerolog.Ctx(ctx)

	loaded, err := src.Load(ctx)
	if err != nil {
		return 0, err
	}

	err = duckdb.RunInTransaction(ctx, db, func(txCtx context.Context) error {
		if err := st.Reset(txCtx); err != nil {
			return err
		}

		for start := 0; start < len(loaded); start += importBatchSize {
			end := min(start+importBatchSize, len(loaded))

			batch := make([]store.CampaignRecord, 0, end-start)
			for _, r := range loaded[start:end] {
				batch = append(batch, adapters.MapDomainRecordToStore(r))
			}
			if err := st.Add(txCtx, batch); err != nil {
				return err
			}
			if progress != nil {
				_ = progress.Add(len(batch))
			}
		}

		return st.RecordImport(txCtx, name, int64(len(loaded)))
	})
	if err != nil {
		return 0, err
	}

	logger.Info().
		Str("source", name).
		Int("records", len(loaded)).
		Msg("dataset snapshot imported")
	return len(loaded), nil
}
