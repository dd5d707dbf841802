package cli

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/zenfit/zenfit/internal/client/models"
)

// dashboard fetches the workout list and today's nutrition summary
// concurrently and prints a combined overview. If either fetch fails the
// whole view is abandoned; partial dashboards are more confusing than a
// plain error.
func (a *App) dashboard(ctx context.Context) error {
	if !a.requireAuth() {
		return nil
	}

	var (
		workouts []models.Workout
		summary  *models.DailySummary
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		workouts, err = a.api.ListWorkouts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		summary, err = a.api.DailySummary(gctx, "")
		return err
	})
	if err := g.Wait(); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}

	if u := a.session.CurrentUser(); u != nil {
		fmt.Fprintf(a.out, "Dashboard for %s\n", u.DisplayName())
	} else {
		fmt.Fprintln(a.out, "Dashboard")
	}
	fmt.Fprintf(a.out, "Workouts logged: %d\n", len(workouts))
	if n := len(workouts); n > 0 {
		last := workouts[0]
		fmt.Fprintf(a.out, "Most recent: #%d %s (%s)\n", last.ID, last.Title, last.Date)
	}
	fmt.Fprintf(a.out, "Today (%s): %.0f kcal over %d meal(s), %.1fg protein, %.1fg carbs, %.1fg fats\n",
		summary.Date, summary.Summary.Calories, summary.MealsCount,
		summary.Summary.Protein, summary.Summary.Carbs, summary.Summary.Fats)
	return nil
}
