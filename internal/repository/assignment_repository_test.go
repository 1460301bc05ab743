package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/omarfh/proctor-api/internal/models"
)

func TestAssignmentRepositoryListTAIDsByDate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewAssignmentRepository(db)
	date := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"ta_id"}).AddRow("ta-1").AddRow("ta-2")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT a.ta_id")).
		WithArgs(date).
		WillReturnRows(rows)

	ids, err := repo.ListTAIDsByDate(context.Background(), date)
	require.NoError(t, err)
	require.Equal(t, []string{"ta-1", "ta-2"}, ids)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentRepositoryListRecent(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewAssignmentRepository(db)
	to := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	from := to.AddDate(0, 0, -7)
	rows := sqlmock.NewRows([]string{"ta_id", "quiz_date", "quiz_weight"}).
		AddRow("ta-1", to.AddDate(0, 0, -1), 1.5).
		AddRow("ta-2", to.AddDate(0, 0, -3), 1.0)
	mock.ExpectQuery(regexp.QuoteMeta("q.date >= $1 AND q.date <= $2")).
		WithArgs(from, to).
		WillReturnRows(rows)

	recent, err := repo.ListRecent(context.Background(), from, to)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	require.Equal(t, 1.5, recent[0].QuizWeight)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentRepositoryBulkCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewAssignmentRepository(db)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO assignments")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO assignments")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	assignments := []models.Assignment{
		{QuizID: "q1", TAID: "ta-1", LocationID: "l1"},
		{QuizID: "q1", TAID: "ta-2", LocationID: "l1"},
	}
	require.NoError(t, repo.BulkCreate(context.Background(), assignments))
	require.NotEmpty(t, assignments[0].ID)
	require.Equal(t, models.AssignmentStatusPending, assignments[0].Status)
	require.False(t, assignments[1].CreatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentRepositoryBulkCreateEmptyIsNoop(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewAssignmentRepository(db)
	require.NoError(t, repo.BulkCreate(context.Background(), nil))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentRepositoryBulkCreateRollsBack(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewAssignmentRepository(db)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO assignments")).
		WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	err := repo.BulkCreate(context.Background(), []models.Assignment{{QuizID: "q1", TAID: "ta-1", LocationID: "l1"}})
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentRepositoryListByQuiz(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewAssignmentRepository(db)
	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "quiz_id", "ta_id", "location_id", "status", "created_at", "ta_name", "ta_email", "location_name"}).
		AddRow("as1", "q1", "ta-1", "l1", "pending", now, "Aya Hassan", "aya@example.edu", "Room 101").
		AddRow("as2", "q1", "ta-2", "l1", "pending", now, "Omar Khaled", "omar@example.edu", "Room 101")
	mock.ExpectQuery(regexp.QuoteMeta("JOIN tas t ON t.id = a.ta_id")).
		WithArgs("q1").
		WillReturnRows(rows)

	details, err := repo.ListByQuiz(context.Background(), "q1")
	require.NoError(t, err)
	require.Len(t, details, 2)
	require.Equal(t, "Aya Hassan", details[0].TAName)
	require.Equal(t, "Room 101", details[1].LocationName)
	require.NoError(t, mock.ExpectationsWereMet())
}
