package duckdb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDB_BootsSchema(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "duckdb-test-*")
	require.NoError(t, err)

	defer func() {
		err := os.RemoveAll(tmpDir)
		if err != nil {
			t.Errorf("failed to cleanup test directory: %v", err)
		}
	}()

	dbPath := filepath.Join(tmpDir, "test.db")
	db, err := NewDB(Settings{
		DbPath: dbPath,
	})
	require.NoError(t, err)
	require.NotNil(t, db)

	defer func() {
		err := db.Close()
		if err != nil {
			t.Errorf("failed to close database connection: %v", err)
		}
	}()

	_, err = db.Exec(
		`INSERT INTO campaign_records (
			id, age, income, education, marital_status, total_spent,
			num_web_purchases, num_store_purchases, num_catalog_purchases
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		5524, 67, 58138.0, "Graduation", "Single", 1617.0, 8, 4, 10,
	)
	require.NoError(t, err)

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM campaign_records WHERE id = ?", 5524).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
