package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"daily_diet/internal/models"

	sq "github.com/Masterminds/squirrel"
)

// Storage layouts; the wire formats live in models.
const (
	storedDateLayout = "2006-01-02"
	storedTimeLayout = "15:04"
)

const mealsTable = "meals"

var mealColumns = []string{"id", "name", "description", "date", "time", "is_in_diet", "user_id"}

type MealRepository struct {
	db querier
}

func NewMealRepository(db querier) *MealRepository {
	return &MealRepository{db: db}
}

var _ Meals = (*MealRepository)(nil)

const (
	insertMealSQL     = `INSERT INTO meals (name, description, date, time, is_in_diet, user_id) VALUES (?, ?, ?, ?, ?, ?)`
	selectMealByIDSQL = `SELECT id, name, description, date, time, is_in_diet, user_id FROM meals WHERE id = ?`
	deleteMealSQL     = `DELETE FROM meals WHERE id = ?`
)

// Create inserts a meal and returns its ID.
func (r *MealRepository) Create(ctx context.Context, m models.Meal) (int, error) {
	res, err := r.db.ExecContext(ctx, insertMealSQL,
		m.Name,
		m.Description,
		m.Date.Format(storedDateLayout),
		m.Time.Format(storedTimeLayout),
		m.IsInDiet,
		m.UserID,
	)
	if err != nil {
		return 0, fmt.Errorf("insert meal %q: %w", m.Name, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for meal %q: %w", m.Name, err)
	}
	return int(lastID), nil
}

// GetByID fetches a meal. Returns (nil, nil) if not found.
func (r *MealRepository) GetByID(ctx context.Context, id int) (*models.Meal, error) {
	m, err := scanMeal(r.db.QueryRowContext(ctx, selectMealByIDSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select meal %d: %w", id, err)
	}
	return &m, nil
}

// ListByUser returns all meals owned by userID ordered by date, time and id.
func (r *MealRepository) ListByUser(ctx context.Context, userID int) ([]models.Meal, error) {
	query, args, err := sq.Select(mealColumns...).
		From(mealsTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("date", "time", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build meals query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select meals of user %d: %w", userID, err)
	}
	defer rows.Close()

	var out []models.Meal
	for rows.Next() {
		m, err := scanMeal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan meal: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate meals: %w", err)
	}
	return out, nil
}

// Update writes only the columns present in p. An empty patch is a no-op.
func (r *MealRepository) Update(ctx context.Context, id int, p models.MealPatch) error {
	set := patchColumns(p)
	if len(set) == 0 {
		return nil
	}
	query, args, err := sq.Update(mealsTable).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build meal update: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update meal %d: %w", id, err)
	}
	return nil
}

// Delete removes a single meal.
func (r *MealRepository) Delete(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, deleteMealSQL, id); err != nil {
		return fmt.Errorf("delete meal %d: %w", id, err)
	}
	return nil
}

func patchColumns(p models.MealPatch) map[string]any {
	set := map[string]any{}
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.Date != nil {
		set["date"] = p.Date.Format(storedDateLayout)
	}
	if p.Time != nil {
		set["time"] = p.Time.Format(storedTimeLayout)
	}
	if p.IsInDiet != nil {
		set["is_in_diet"] = *p.IsInDiet
	}
	return set
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMeal(row rowScanner) (models.Meal, error) {
	var (
		m           models.Meal
		date, clock string
	)
	if err := row.Scan(&m.ID, &m.Name, &m.Description, &date, &clock, &m.IsInDiet, &m.UserID); err != nil {
		return models.Meal{}, err
	}
	var err error
	if m.Date, err = time.Parse(storedDateLayout, date); err != nil {
		return models.Meal{}, fmt.Errorf("parse stored date %q: %w", date, err)
	}
	if m.Time, err = time.Parse(storedTimeLayout, clock); err != nil {
		return models.Meal{}, fmt.Errorf("parse stored time %q: %w", clock, err)
	}
	return m, nil
}
