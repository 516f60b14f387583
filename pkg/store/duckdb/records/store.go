package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/de-tools/campaign-dash/pkg/models/store"
	"github.com/de-tools/campaign-dash/pkg/store/duckdb"
)

// Store persists a snapshot of the campaign dataset in DuckDB.
// Write methods join the transaction carried by ctx, if any.
type Store interface {
	Reset(ctx context.Context) error
	Add(ctx context.Context, records []store.CampaignRecord) error
	RecordImport(ctx context.Context, source string, count int64) error
	List(ctx context.Context) ([]store.CampaignRecord, error)
	LastImport(ctx context.Context) (*store.DatasetImport, error)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}

type recordStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &recordStore{
		db: db,
	}, nil
}

func (s *recordStore) conn(ctx context.Context) execer {
	if tx := duckdb.GetTransaction(ctx); tx != nil {
		return tx
	}
	return s.db
}

func (s *recordStore) Reset(ctx context.Context) error {
	if _, err := s.conn(ctx).ExecContext(ctx, `DELETE FROM campaign_records`); err != nil {
		return fmt.Errorf("reset records: %w", err)
	}
	return nil
}

func (s *recordStore) Add(ctx context.Context, records []store.CampaignRecord) error {
	if len(records) == 0 {
		return nil
	}

	query := `
		INSERT INTO campaign_records (
			id, age, income, education, marital_status, total_spent,
			num_web_purchases, num_store_purchases, num_catalog_purchases
		) VALUES (
			?, ?, ?, ?, ?, ?, ?, ?, ?
		)`

	stmt, err := s.conn(ctx).PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		_, err = stmt.ExecContext(ctx,
			r.ID,
			r.Age,
			r.Income,
			r.Education,
			r.MaritalStatus,
			r.TotalSpent,
			r.NumWebPurchases,
			r.NumStorePurchases,
			r.NumCatalogPurchases,
		)
		if err != nil {
			return fmt.Errorf("insert record %d: %w", r.ID, err)
		}
	}

	return nil
}

func (s *recordStore) RecordImport(ctx context.Context, source string, count int64) error {
	_, err := s.conn(ctx).ExecContext(ctx,
		`INSERT INTO dataset_imports (source, record_count) VALUES (?, ?)`,
		source, count,
	)
	if err != nil {
		return fmt.Errorf("record import: %w", err)
	}
	return nil
}

func (s *recordStore) List(ctx context.Context) ([]store.CampaignRecord, error) {
	query := `
		SELECT id, age, income, education, marital_status, total_spent,
		       num_web_purchases, num_store_purchases, num_catalog_purchases
		FROM campaign_records
		ORDER BY id
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	records := make([]store.CampaignRecord, 0)
	for rows.Next() {
		var r store.CampaignRecord
		if err := rows.Scan(
			&r.ID,
			&r.Age,
			&r.Income,
			&r.Education,
			&r.MaritalStatus,
			&r.TotalSpent,
			&r.NumWebPurchases,
			&r.NumStorePurchases,
			&r.NumCatalogPurchases,
		); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}

func (s *recordStore) LastImport(ctx context.Context) (*store.DatasetImport, error) {
	query := `
		SELECT source, record_count, imported_at
		FROM dataset_imports
		ORDER BY imported_at DESC
		LIMIT 1
	`
	var imp store.DatasetImport
	err := s.db.QueryRowContext(ctx, query).Scan(&imp.Source, &imp.RecordCount, &imp.ImportedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get last import: %w", err)
	}
	return &imp, nil
}
