package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const CampaignRecordsSchema = `
	CREATE TABLE IF NOT EXISTS campaign_records (
		id INTEGER NOT NULL,
		age INTEGER NOT NULL,
		income DOUBLE NOT NULL,
		education VARCHAR NOT NULL,
		marital_status VARCHAR NOT NULL,
		total_spent DOUBLE NOT NULL,
		num_web_purchases INTEGER NOT NULL,
		num_store_purchases INTEGER NOT NULL,
		num_catalog_purchases INTEGER NOT NULL,
		PRIMARY KEY (id)
	);
`

const ImportsSchema = `
	CREATE TABLE IF NOT EXISTS dataset_imports (
		source VARCHAR NOT NULL,
		record_count INTEGER NOT NULL,
		imported_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
`

var bootQueries = []string{
	CampaignRecordsSchema,
	ImportsSchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", settings.DbPath), func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}
