package service

import (
	"context"

	"daily_diet/internal/models"
	"daily_diet/internal/repository"
)

type MealService struct {
	users repository.Users
	meals repository.Meals
	uow   repository.UnitOfWork
}

func NewMealService(users repository.Users, meals repository.Meals, uow repository.UnitOfWork) *MealService {
	return &MealService{users: users, meals: meals, uow: uow}
}

// Get returns any meal by id; reading needs no ownership.
func (s *MealService) Get(ctx context.Context, id int) (models.Meal, error) {
	m, err := s.meals.GetByID(ctx, id)
	if err != nil {
		return models.Meal{}, err
	}
	if m == nil {
		return models.Meal{}, ErrMealNotFound
	}
	return *m, nil
}

// Create validates in and stores it as a meal owned by userID.
func (s *MealService) Create(ctx context.Context, userID int, in MealInput) (models.Meal, error) {
	m, err := in.toMeal(userID)
	if err != nil {
		return models.Meal{}, err
	}
	id, err := s.meals.Create(ctx, m)
	if err != nil {
		return models.Meal{}, err
	}
	m.ID = id
	return m, nil
}

// Update applies in to the meal if userID owns it. A missing meal and a
// foreign meal both yield ErrNotAllowed. Invalid input aborts the
// transaction before anything is written.
func (s *MealService) Update(ctx context.Context, userID, mealID int, in MealChanges) (models.Meal, error) {
	var updated models.Meal
	err := s.uow.WithinTx(ctx, func(st repository.Stores) error {
		m, err := ownedMeal(ctx, st.Meals, userID, mealID)
		if err != nil {
			return err
		}
		patch, err := in.toPatch()
		if err != nil {
			return err
		}
		if err := st.Meals.Update(ctx, mealID, patch); err != nil {
			return err
		}
		patch.Apply(m)
		updated = *m
		return nil
	})
	if err != nil {
		return models.Meal{}, err
	}
	return updated, nil
}

// Delete removes the meal if userID owns it.
func (s *MealService) Delete(ctx context.Context, userID, mealID int) error {
	return s.uow.WithinTx(ctx, func(st repository.Stores) error {
		if _, err := ownedMeal(ctx, st.Meals, userID, mealID); err != nil {
			return err
		}
		return st.Meals.Delete(ctx, mealID)
	})
}

// ListByUser returns every meal of userID with the adherence dashboard.
// An existing user without meals yields an empty Meals slice.
func (s *MealService) ListByUser(ctx context.Context, userID int) (UserMeals, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return UserMeals{}, err
	}
	if u == nil {
		return UserMeals{}, ErrUserNotFound
	}
	meals, err := s.meals.ListByUser(ctx, userID)
	if err != nil {
		return UserMeals{}, err
	}
	return UserMeals{Meals: meals, Dashboard: models.Summarize(meals)}, nil
}

func ownedMeal(ctx context.Context, meals repository.Meals, userID, mealID int) (*models.Meal, error) {
	m, err := meals.GetByID(ctx, mealID)
	if err != nil {
		return nil, err
	}
	if m == nil || m.UserID != userID {
		return nil, ErrNotAllowed
	}
	return m, nil
}
