package cli

import (
	"context"
	"fmt"

	"github.com/zenfit/zenfit/internal/client/models"
)

func (a *App) listWorkouts(ctx context.Context) error {
	if !a.requireAuth() {
		return nil
	}

	workouts, err := a.api.ListWorkouts(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}

	if len(workouts) == 0 {
		fmt.Fprintln(a.out, "No workouts yet.")
		return nil
	}
	for _, w := range workouts {
		fmt.Fprintf(a.out, "#%d  %s  %s  %d min  %d exercise(s)\n",
			w.ID, w.Date, w.Title, w.Duration, len(w.Exercises))
	}
	return nil
}

func (a *App) showWorkout(ctx context.Context, id int64) error {
	if !a.requireAuth() {
		return nil
	}

	w, err := a.api.GetWorkout(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}

	fmt.Fprintf(a.out, "Workout #%d: %s\n", w.ID, w.Title)
	fmt.Fprintf(a.out, "Date: %s\n", w.Date)
	if w.Duration > 0 {
		fmt.Fprintf(a.out, "Duration: %d min\n", w.Duration)
	}
	if w.Notes != "" {
		fmt.Fprintf(a.out, "Notes: %s\n", w.Notes)
	}
	for _, e := range w.Exercises {
		fmt.Fprintf(a.out, "  - %s: %d x %d @ %.1f kg\n", e.Name, e.Sets, e.Reps, e.Weight)
	}
	return nil
}

// addWorkout interactively builds a workout with an optional exercise list
// and submits it.
func (a *App) addWorkout(ctx context.Context) error {
	if !a.requireAuth() {
		return nil
	}

	title, err := GetSimpleText(a.reader, "Workout title", a.out)
	if err != nil {
		return err
	}
	if title == "" {
		fmt.Fprintln(a.out, "Title is required.")
		return nil
	}

	duration, err := GetInt(a.reader, "Duration in minutes (optional)", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	notes, err := GetMultiline(a.reader, "Notes (optional)", a.out)
	if err != nil {
		return err
	}

	var exercises []models.NewExercise
	for {
		name, err := GetSimpleText(a.reader, "Exercise name (empty to finish)", a.out)
		if err != nil {
			return err
		}
		if name == "" {
			break
		}
		sets, err := GetInt(a.reader, "Sets", a.out)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return err
		}
		reps, err := GetInt(a.reader, "Reps", a.out)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return err
		}
		weight, err := GetFloat(a.reader, "Weight in kg (optional)", a.out)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return err
		}
		exercises = append(exercises, models.NewExercise{
			Name:   name,
			Sets:   sets,
			Reps:   reps,
			Weight: weight,
		})
	}

	w, err := a.api.CreateWorkout(ctx, models.CreateWorkoutRequest{
		Title:     title,
		Notes:     notes,
		Duration:  duration,
		Exercises: exercises,
	})
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}

	fmt.Fprintf(a.out, "Created workout #%d\n", w.ID)
	return nil
}

func (a *App) deleteWorkout(ctx context.Context, id int64) error {
	if !a.requireAuth() {
		return nil
	}

	if err := a.api.DeleteWorkout(ctx, id); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	fmt.Fprintf(a.out, "Deleted workout #%d\n", id)
	return nil
}
