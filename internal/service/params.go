package service

import (
	"strings"

	"daily_diet/internal/models"
)

// MealInput is a new meal as received from the client; Date is MM/DD/YY and Time is HH:MM.
type MealInput struct {
	Name        string
	Description string
	Date        string
	Time        string
	IsInDiet    bool
}

// MealChanges is a partial update; nil fields are left untouched.
type MealChanges struct {
	Name        *string
	Description *string
	Date        *string
	Time        *string
	IsInDiet    *bool
}

// UserMeals is a user's meal list together with adherence stats.
type UserMeals struct {
	Meals     []models.Meal
	Dashboard models.Dashboard
}

func (in MealInput) toMeal(userID int) (models.Meal, error) {
	if strings.TrimSpace(in.Name) == "" {
		return models.Meal{}, ErrInvalidData
	}
	date, err := models.ParseDate(in.Date)
	if err != nil {
		return models.Meal{}, ErrInvalidDateTime
	}
	clock, err := models.ParseClock(in.Time)
	if err != nil {
		return models.Meal{}, ErrInvalidDateTime
	}
	return models.Meal{
		Name:        in.Name,
		Description: in.Description,
		Date:        date,
		Time:        clock,
		IsInDiet:    in.IsInDiet,
		UserID:      userID,
	}, nil
}

func (c MealChanges) toPatch() (models.MealPatch, error) {
	p := models.MealPatch{
		Name:        c.Name,
		Description: c.Description,
		IsInDiet:    c.IsInDiet,
	}
	if c.Name != nil && strings.TrimSpace(*c.Name) == "" {
		return models.MealPatch{}, ErrInvalidData
	}
	if c.Date != nil {
		d, err := models.ParseDate(*c.Date)
		if err != nil {
			return models.MealPatch{}, ErrInvalidDateTime
		}
		p.Date = &d
	}
	if c.Time != nil {
		t, err := models.ParseClock(*c.Time)
		if err != nil {
			return models.MealPatch{}, ErrInvalidDateTime
		}
		p.Time = &t
	}
	return p, nil
}
