package duckdb

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunInTransaction_Commits(t *testing.T) {
	// Given
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM campaign_records").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	// When
	err = RunInTransaction(context.Background(), db, func(ctx context.Context) error {
		tx := GetTransaction(ctx)
		require.NotNil(t, tx)
		_, err := tx.ExecContext(ctx, "DELETE FROM campaign_records")
		return err
	})

	// Then
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunInTransaction_RollsBackOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err = RunInTransaction(context.Background(), db, func(context.Context) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunInTransaction_JoinsExistingTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	tx, err := db.Begin()
	require.NoError(t, err)

	ctx := WithTransaction(context.Background(), tx)
	err = RunInTransaction(ctx, db, func(inner context.Context) error {
		assert.Same(t, tx, GetTransaction(inner))
		return nil
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTransaction_Empty(t *testing.T) {
	assert.Nil(t, GetTransaction(context.Background()))
}
