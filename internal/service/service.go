package service

import (
	"context"
	"time"

	"daily_diet/internal/logger"
	"daily_diet/internal/models"
	"daily_diet/internal/repository"
)

// Authorization covers registration, login/logout and session resolution.
type Authorization interface {
	SignUp(ctx context.Context, username, password string) (int, error)
	SignIn(ctx context.Context, username, password string) (string, error)
	ParseSession(ctx context.Context, token string) (models.Identity, error)
	SignOut(ctx context.Context, sessionID string) error
}

// Meals exposes meal CRUD with ownership rules and the per-user dashboard.
type Meals interface {
	Get(ctx context.Context, id int) (models.Meal, error)
	Create(ctx context.Context, userID int, in MealInput) (models.Meal, error)
	Update(ctx context.Context, userID, mealID int, in MealChanges) (models.Meal, error)
	Delete(ctx context.Context, userID, mealID int) error
	ListByUser(ctx context.Context, userID int) (UserMeals, error)
}

// Janitor periodically removes expired sessions.
// Stop via context cancellation in main() for graceful shutdown.
type Janitor interface {
	Run(ctx context.Context, tick time.Duration)
}

// Config carries the settings services need from the process configuration.
type Config struct {
	SessionSecret string
	SessionTTL    time.Duration
}

type Service struct {
	Authorization
	Meals
	Janitor
}

func NewService(repos *repository.Repository, cfg Config, log *logger.Logger) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, repos.Sessions, repos.Tx, cfg),
		Meals:         NewMealService(repos.Users, repos.Meals, repos.Tx),
		Janitor:       NewSessionJanitor(repos.Sessions, log),
	}
}
