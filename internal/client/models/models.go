// Package models defines the data shapes exchanged with the Zenfit API.
// The client transports these records as-is; it neither validates numeric
// fields nor interprets them beyond display. Timestamps stay strings because
// the server emits ISO timestamps without a zone designator.
package models

// User is the denormalized identity snapshot returned by auth endpoints.
type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	CreatedAt string `json:"created_at"`
}

// DisplayName returns the user's name for greetings, falling back to the
// email when no name was provided at registration.
func (u *User) DisplayName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	default:
		return u.Email
	}
}

type Exercise struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Sets     int     `json:"sets"`
	Reps     int     `json:"reps"`
	Weight   float64 `json:"weight"`
	Duration int     `json:"duration"`
	Notes    string  `json:"notes"`
}

type Workout struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"user_id"`
	Title     string     `json:"title"`
	Notes     string     `json:"notes"`
	Date      string     `json:"date"`
	Duration  int        `json:"duration"`
	Exercises []Exercise `json:"exercises"`
	CreatedAt string     `json:"created_at"`
}

type Food struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// MacroTotals aggregates calories and macronutrients, either per meal
// (Meal.Totals) or per day (DailySummary.Summary).
type MacroTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

type Meal struct {
	ID        int64       `json:"id"`
	UserID    int64       `json:"user_id"`
	MealType  string      `json:"meal_type"`
	Date      string      `json:"date"`
	Notes     string      `json:"notes"`
	Foods     []Food      `json:"foods"`
	Totals    MacroTotals `json:"totals"`
	CreatedAt string      `json:"created_at"`
}

type DailySummary struct {
	Date       string      `json:"date"`
	Summary    MacroTotals `json:"summary"`
	MealsCount int         `json:"meals_count"`
}

type HealthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// RegisterRequest is the payload for POST /auth/register. Names are optional
// on the server side.
type RegisterRequest struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the success body of both auth endpoints.
type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    *User  `json:"user"`
}

type NewExercise struct {
	Name     string  `json:"name"`
	Sets     int     `json:"sets,omitempty"`
	Reps     int     `json:"reps,omitempty"`
	Weight   float64 `json:"weight,omitempty"`
	Duration int     `json:"duration,omitempty"`
	Notes    string  `json:"notes,omitempty"`
}

type CreateWorkoutRequest struct {
	Title     string        `json:"title"`
	Notes     string        `json:"notes,omitempty"`
	Duration  int           `json:"duration,omitempty"`
	Exercises []NewExercise `json:"exercises,omitempty"`
}

type NewFood struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity,omitempty"`
	Unit     string  `json:"unit,omitempty"`
	Calories float64 `json:"calories,omitempty"`
	Protein  float64 `json:"protein,omitempty"`
	Carbs    float64 `json:"carbs,omitempty"`
	Fats     float64 `json:"fats,omitempty"`
}

type CreateMealRequest struct {
	MealType string    `json:"meal_type"`
	Notes    string    `json:"notes,omitempty"`
	Foods    []NewFood `json:"foods,omitempty"`
}
