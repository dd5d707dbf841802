package cli

import (
	"context"
	"fmt"
)

// showSummary prints the daily nutrition totals. An empty date means today
// (server-side default).
func (a *App) showSummary(ctx context.Context, date string) error {
	if !a.requireAuth() {
		return nil
	}

	s, err := a.api.DailySummary(ctx, date)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}

	fmt.Fprintf(a.out, "Summary for %s (%d meal(s)):\n", s.Date, s.MealsCount)
	fmt.Fprintf(a.out, "  Calories: %.0f kcal\n", s.Summary.Calories)
	fmt.Fprintf(a.out, "  Protein:  %.1f g\n", s.Summary.Protein)
	fmt.Fprintf(a.out, "  Carbs:    %.1f g\n", s.Summary.Carbs)
	fmt.Fprintf(a.out, "  Fats:     %.1f g\n", s.Summary.Fats)
	return nil
}
