package service

import (
	"context"
	"sort"
	"time"

	"daily_diet/internal/models"
	"daily_diet/internal/repository"
)

// ---- In-memory test doubles for the repository layer ----

type memUsers struct {
	byID   map[int]models.User
	nextID int

	CreateErr error
	GetErr    error
	creates   []models.User
}

func newMemUsers() *memUsers { return &memUsers{byID: map[int]models.User{}} }

func (m *memUsers) add(u models.User) models.User {
	m.nextID++
	u.ID = m.nextID
	m.byID[u.ID] = u
	return u
}

func (m *memUsers) Create(ctx context.Context, u models.User) (int, error) {
	m.creates = append(m.creates, u)
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	return m.add(u).ID, nil
}

func (m *memUsers) GetByID(ctx context.Context, id int) (*models.User, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	u, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (m *memUsers) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	for _, u := range m.byID {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

type memMeals struct {
	byID    map[int]models.Meal
	nextID  int
	updates int
	deletes int
}

func newMemMeals() *memMeals { return &memMeals{byID: map[int]models.Meal{}} }

func (m *memMeals) Create(ctx context.Context, meal models.Meal) (int, error) {
	m.nextID++
	meal.ID = m.nextID
	m.byID[meal.ID] = meal
	return meal.ID, nil
}

func (m *memMeals) GetByID(ctx context.Context, id int) (*models.Meal, error) {
	meal, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	return &meal, nil
}

func (m *memMeals) ListByUser(ctx context.Context, userID int) ([]models.Meal, error) {
	var out []models.Meal
	for _, meal := range m.byID {
		if meal.UserID == userID {
			out = append(out, meal)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memMeals) Update(ctx context.Context, id int, p models.MealPatch) error {
	m.updates++
	meal := m.byID[id]
	p.Apply(&meal)
	m.byID[id] = meal
	return nil
}

func (m *memMeals) Delete(ctx context.Context, id int) error {
	m.deletes++
	delete(m.byID, id)
	return nil
}

type memSessions struct {
	byID map[string]models.Session

	DeleteExpiredErr error
	lastExpiredAt    time.Time
}

func newMemSessions() *memSessions { return &memSessions{byID: map[string]models.Session{}} }

func (m *memSessions) Create(ctx context.Context, s models.Session) error {
	m.byID[s.ID] = s
	return nil
}

func (m *memSessions) Get(ctx context.Context, id string) (*models.Session, error) {
	s, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (m *memSessions) Delete(ctx context.Context, id string) error {
	delete(m.byID, id)
	return nil
}

func (m *memSessions) DeleteByUser(ctx context.Context, userID int) error {
	for id, s := range m.byID {
		if s.UserID == userID {
			delete(m.byID, id)
		}
	}
	return nil
}

func (m *memSessions) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	m.lastExpiredAt = now
	if m.DeleteExpiredErr != nil {
		return 0, m.DeleteExpiredErr
	}
	var n int64
	for id, s := range m.byID {
		if s.Expired(now) {
			delete(m.byID, id)
			n++
		}
	}
	return n, nil
}

// memUnitOfWork hands the same in-memory stores to fn.
type memUnitOfWork struct {
	stores repository.Stores
	calls  int
}

func (u *memUnitOfWork) WithinTx(ctx context.Context, fn func(repository.Stores) error) error {
	u.calls++
	return fn(u.stores)
}

type memRepo struct {
	users    *memUsers
	meals    *memMeals
	sessions *memSessions
	uow      *memUnitOfWork
}

func newMemRepo() *memRepo {
	r := &memRepo{users: newMemUsers(), meals: newMemMeals(), sessions: newMemSessions()}
	r.uow = &memUnitOfWork{stores: repository.Stores{Users: r.users, Meals: r.meals, Sessions: r.sessions}}
	return r
}
