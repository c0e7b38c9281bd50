package repository

import (
	"context"
	"database/sql"
	"time"

	"daily_diet/internal/models"
)

type Users interface {
	Create(ctx context.Context, u models.User) (int, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type Meals interface {
	Create(ctx context.Context, m models.Meal) (int, error)
	GetByID(ctx context.Context, id int) (*models.Meal, error)
	ListByUser(ctx context.Context, userID int) ([]models.Meal, error)
	Update(ctx context.Context, id int, p models.MealPatch) error
	Delete(ctx context.Context, id int) error
}

type Sessions interface {
	Create(ctx context.Context, s models.Session) error
	Get(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID int) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// Stores groups the repositories that share one connection or transaction.
type Stores struct {
	Users    Users
	Meals    Meals
	Sessions Sessions
}

// UnitOfWork runs fn against stores bound to a single transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(Stores) error) error
}

type Repository struct {
	Stores
	Tx UnitOfWork
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Stores: newStores(db),
		Tx:     NewSQLUnitOfWork(db),
	}
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func newStores(q querier) Stores {
	return Stores{
		Users:    NewUserRepository(q),
		Meals:    NewMealRepository(q),
		Sessions: NewSessionRepository(q),
	}
}
