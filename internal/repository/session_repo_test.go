package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"daily_diet/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestSessionRepository_CreateAndGet(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewSessionRepository(db)

	exp := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta(insertSessionSQL)).
		WithArgs("sid-1", 3, exp.Unix()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(selectSessionSQL)).
		WithArgs("sid-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "expires_at"}).AddRow("sid-1", 3, exp.Unix()))
	mock.ExpectQuery(regexp.QuoteMeta(selectSessionSQL)).
		WithArgs("gone").
		WillReturnError(sql.ErrNoRows)

	if err := repo.Create(context.Background(), models.Session{ID: "sid-1", UserID: 3, ExpiresAt: exp}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	s, err := repo.Get(context.Background(), "sid-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if s.UserID != 3 || !s.ExpiresAt.Equal(exp) {
		t.Fatalf("unexpected session: %+v", s)
	}

	s, err = repo.Get(context.Background(), "gone")
	if err != nil || s != nil {
		t.Fatalf("Get(gone) = %+v, %v; want nil, nil", s, err)
	}
}

func TestSessionRepository_Deletes(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewSessionRepository(db)

	now := time.Unix(1_700_000_000, 0)
	mock.ExpectExec(regexp.QuoteMeta(deleteSessionSQL)).
		WithArgs("sid").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(deleteUserSessionsSQL)).
		WithArgs(8).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(deleteExpiredSessionSQL)).
		WithArgs(now.Unix()).
		WillReturnResult(sqlmock.NewResult(0, 4))

	if err := repo.Delete(context.Background(), "sid"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.DeleteByUser(context.Background(), 8); err != nil {
		t.Fatalf("DeleteByUser: %v", err)
	}
	n, err := repo.DeleteExpired(context.Background(), now)
	if err != nil {
		t.Fatalf("DeleteExpired: %v", err)
	}
	if n != 4 {
		t.Fatalf("DeleteExpired removed %d, want 4", n)
	}
}
