package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

func (a *App) getStatus() string {
	name := "guest"
	if u := a.session.CurrentUser(); u != nil {
		name = u.Email
	} else if a.session.IsAuthenticated() {
		name = "restored session"
	}
	if !a.online.Load() {
		return fmt.Sprintf("(%s, offline)", name)
	}
	return fmt.Sprintf("(%s)", name)
}

// requireAuth evaluates the access decision for a protected command. The web
// client redirects to Decision.RedirectTo here; the CLI equivalent is
// refusing the command and pointing at the auth commands.
func (a *App) requireAuth() bool {
	d := a.session.Guard()
	if d.Allowed {
		return true
	}
	fmt.Fprintf(a.out, "Not logged in (would redirect to %s). Use 'login' or 'register' first.\n", d.RedirectTo)
	return false
}

func (a *App) printHelp() {
	if a.session.IsAuthenticated() {
		fmt.Fprintln(a.out, "Available commands: status, workouts, workout <id>, addworkout, delworkout <id>,")
		fmt.Fprintln(a.out, "  meals [date], meal <id>, addmeal, delmeal <id>, summary [date], dashboard, logout, exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: register, login, status, exit")
	}
}

// Root runs the read-eval-print loop. It exits on EOF, on ctx cancellation
// checked between commands, or when the user types "exit" or "quit".
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to Zenfit CLI (type 'help' for commands)")

	for {
		if ctx.Err() != nil {
			return
		}

		fmt.Fprintf(a.out, "zenfit %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return
			}
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.printHelp()

		case "register":
			_ = a.register(ctx)
		case "login":
			_ = a.login(ctx)
		case "logout":
			_ = a.logout(ctx)
		case "status":
			a.status()

		case "workouts":
			_ = a.listWorkouts(ctx)
		case "workout":
			if id, ok := a.idArg(args, "Usage: workout <id>"); ok {
				_ = a.showWorkout(ctx, id)
			}
		case "addworkout":
			_ = a.addWorkout(ctx)
		case "delworkout":
			if id, ok := a.idArg(args, "Usage: delworkout <id>"); ok {
				_ = a.deleteWorkout(ctx, id)
			}

		case "meals":
			_ = a.listMeals(ctx, firstArg(args))
		case "meal":
			if id, ok := a.idArg(args, "Usage: meal <id>"); ok {
				_ = a.showMeal(ctx, id)
			}
		case "addmeal":
			_ = a.addMeal(ctx)
		case "delmeal":
			if id, ok := a.idArg(args, "Usage: delmeal <id>"); ok {
				_ = a.deleteMeal(ctx, id)
			}

		case "summary":
			_ = a.showSummary(ctx, firstArg(args))
		case "dashboard":
			_ = a.dashboard(ctx)

		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}

		if err != nil {
			// EOF after a final unterminated line.
			return
		}
	}
}

func (a *App) idArg(args []string, usage string) (int64, bool) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, usage)
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, usage)
		return 0, false
	}
	return id, true
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
