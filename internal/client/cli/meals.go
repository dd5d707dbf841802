package cli

import (
	"context"
	"fmt"

	"github.com/zenfit/zenfit/internal/client/models"
)

// listMeals prints meals, optionally filtered to a single day. The date is
// passed through to the API as-is (YYYY-MM-DD).
func (a *App) listMeals(ctx context.Context, date string) error {
	if !a.requireAuth() {
		return nil
	}

	meals, err := a.api.ListMeals(ctx, date)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}

	if len(meals) == 0 {
		fmt.Fprintln(a.out, "No meals logged.")
		return nil
	}
	for _, m := range meals {
		fmt.Fprintf(a.out, "#%d  %s  %s  %.0f kcal  %d item(s)\n",
			m.ID, m.Date, m.MealType, m.Totals.Calories, len(m.Foods))
	}
	return nil
}

func (a *App) showMeal(ctx context.Context, id int64) error {
	if !a.requireAuth() {
		return nil
	}

	m, err := a.api.GetMeal(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}

	fmt.Fprintf(a.out, "Meal #%d: %s on %s\n", m.ID, m.MealType, m.Date)
	if m.Notes != "" {
		fmt.Fprintf(a.out, "Notes: %s\n", m.Notes)
	}
	for _, f := range m.Foods {
		fmt.Fprintf(a.out, "  - %s (%.0f %s): %.0f kcal, %.1fg protein, %.1fg carbs, %.1fg fats\n",
			f.Name, f.Quantity, f.Unit, f.Calories, f.Protein, f.Carbs, f.Fats)
	}
	fmt.Fprintf(a.out, "Total: %.0f kcal, %.1fg protein, %.1fg carbs, %.1fg fats\n",
		m.Totals.Calories, m.Totals.Protein, m.Totals.Carbs, m.Totals.Fats)
	return nil
}

// addMeal interactively builds a meal with its food items and submits it.
func (a *App) addMeal(ctx context.Context) error {
	if !a.requireAuth() {
		return nil
	}

	mealType, err := GetSimpleText(a.reader, "Meal type (breakfast, lunch, dinner, snack)", a.out)
	if err != nil {
		return err
	}
	if mealType == "" {
		fmt.Fprintln(a.out, "Meal type is required.")
		return nil
	}
	notes, err := GetMultiline(a.reader, "Notes (optional)", a.out)
	if err != nil {
		return err
	}

	var foods []models.NewFood
	for {
		name, err := GetSimpleText(a.reader, "Food name (empty to finish)", a.out)
		if err != nil {
			return err
		}
		if name == "" {
			break
		}
		quantity, err := GetFloat(a.reader, "Quantity", a.out)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return err
		}
		unit, err := GetSimpleText(a.reader, "Unit (g, ml, piece...)", a.out)
		if err != nil {
			return err
		}
		calories, err := GetFloat(a.reader, "Calories (kcal)", a.out)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return err
		}
		protein, err := GetFloat(a.reader, "Protein (g)", a.out)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return err
		}
		carbs, err := GetFloat(a.reader, "Carbs (g)", a.out)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return err
		}
		fats, err := GetFloat(a.reader, "Fats (g)", a.out)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return err
		}
		foods = append(foods, models.NewFood{
			Name:     name,
			Quantity: quantity,
			Unit:     unit,
			Calories: calories,
			Protein:  protein,
			Carbs:    carbs,
			Fats:     fats,
		})
	}

	m, err := a.api.CreateMeal(ctx, models.CreateMealRequest{
		MealType: mealType,
		Notes:    notes,
		Foods:    foods,
	})
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}

	fmt.Fprintf(a.out, "Created meal #%d\n", m.ID)
	return nil
}

func (a *App) deleteMeal(ctx context.Context, id int64) error {
	if !a.requireAuth() {
		return nil
	}

	if err := a.api.DeleteMeal(ctx, id); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	fmt.Fprintf(a.out, "Deleted meal #%d\n", id)
	return nil
}
