// Package api implements the Zenfit REST API client. It is the single point
// where the bearer credential is attached to outbound requests; it never
// retries, never logs, and never touches session state.
package api

import (
	"context"

	"github.com/zenfit/zenfit/internal/client/models"
)

// Client exposes the typed operations of the Zenfit API. Every operation
// returns the parsed response body on a 2xx outcome; any other outcome is
// surfaced as an error (see errors.go) and left to the caller to handle.
type Client interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)

	ListWorkouts(ctx context.Context) ([]models.Workout, error)
	GetWorkout(ctx context.Context, id int64) (*models.Workout, error)
	CreateWorkout(ctx context.Context, req models.CreateWorkoutRequest) (*models.Workout, error)
	DeleteWorkout(ctx context.Context, id int64) error

	ListMeals(ctx context.Context, date string) ([]models.Meal, error)
	GetMeal(ctx context.Context, id int64) (*models.Meal, error)
	CreateMeal(ctx context.Context, req models.CreateMealRequest) (*models.Meal, error)
	DeleteMeal(ctx context.Context, id int64) error
	DailySummary(ctx context.Context, date string) (*models.DailySummary, error)

	Health(ctx context.Context) (*models.HealthStatus, error)
}

// TokenSource supplies the current bearer credential. It is consulted on
// every request, immediately before dispatch, so a credential change between
// requests takes effect on the very next one. An empty token means
// "not logged in" and results in no Authorization header.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}
