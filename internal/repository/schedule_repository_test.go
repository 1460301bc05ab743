package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestScheduleRepositoryListConflictingTAIDs(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewScheduleRepository(db)
	rows := sqlmock.NewRows([]string{"ta_id"}).AddRow("ta-1")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT ta_id FROM weekly_slots")).
		WithArgs("Wednesday", 2, 3).
		WillReturnRows(rows)

	ids, err := repo.ListConflictingTAIDs(context.Background(), "Wednesday", []int{2, 3})
	require.NoError(t, err)
	require.Equal(t, []string{"ta-1"}, ids)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleRepositoryNoSlotsShortCircuits(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewScheduleRepository(db)
	ids, err := repo.ListConflictingTAIDs(context.Background(), "Wednesday", nil)
	require.NoError(t, err)
	require.Nil(t, ids)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExcuseRepositoryListActiveTAIDs(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewExcuseRepository(db)
	date := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"ta_id"}).AddRow("ta-3")
	mock.ExpectQuery(regexp.QuoteMeta("end_date IS NULL OR end_date >= $1")).
		WithArgs(date).
		WillReturnRows(rows)

	ids, err := repo.ListActiveTAIDs(context.Background(), date)
	require.NoError(t, err)
	require.Equal(t, []string{"ta-3"}, ids)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExchangeRepositoryListApprovedOriginalTAIDs(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewExchangeRepository(db)
	date := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"original_ta_id"}).AddRow("ta-4")
	mock.ExpectQuery(regexp.QuoteMeta("e.status = 'approved' AND q.date = $1")).
		WithArgs(date).
		WillReturnRows(rows)

	ids, err := repo.ListApprovedOriginalTAIDs(context.Background(), date)
	require.NoError(t, err)
	require.Equal(t, []string{"ta-4"}, ids)
	require.NoError(t, mock.ExpectationsWereMet())
}
