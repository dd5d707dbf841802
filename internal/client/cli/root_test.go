package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zenfit/zenfit/internal/client/models"
)

func TestRoot_DispatchAndExit(t *testing.T) {
	client := &fakeAPI{workouts: []models.Workout{{ID: 1, Title: "Run", Date: "2025-06-01"}}}
	sess := &fakeSession{authed: true}
	input := strings.Join([]string{
		"help",
		"workouts",
		"delworkout 1",
		"flarb",
		"exit",
	}, "\n") + "\n"
	a, out := newTestApp(input, sess, client)

	a.Root(context.Background())

	assert.Equal(t, 1, client.listWorkoutsCalls)
	assert.Equal(t, int64(1), client.deletedWorkoutID)
	assert.Contains(t, out.String(), "Unknown command: flarb")
	assert.Contains(t, out.String(), "Bye!")
}

func TestRoot_ExitsOnEOF(t *testing.T) {
	a, _ := newTestApp("status\n", &fakeSession{}, &fakeAPI{})
	a.Root(context.Background()) // returns instead of spinning on EOF
}

func TestRoot_UsageForMissingID(t *testing.T) {
	a, out := newTestApp("workout\nmeal x\nexit\n", &fakeSession{authed: true}, &fakeAPI{})
	a.Root(context.Background())
	assert.Contains(t, out.String(), "Usage: workout <id>")
	assert.Contains(t, out.String(), "Usage: meal <id>")
}

func TestRoot_GuardBlocksProtectedCommands(t *testing.T) {
	client := &fakeAPI{}
	a, out := newTestApp("workouts\nsummary\nexit\n", &fakeSession{}, client)
	a.Root(context.Background())

	assert.Zero(t, client.listWorkoutsCalls)
	assert.Zero(t, client.summaryCalls)
	assert.Contains(t, out.String(), "login")
}

func TestRoot_CancelledContextStopsLoop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := &fakeAPI{}
	a, _ := newTestApp("workouts\nexit\n", &fakeSession{authed: true}, client)
	a.Root(ctx)

	assert.Zero(t, client.listWorkoutsCalls)
}

func TestGetStatus(t *testing.T) {
	a, _ := newTestApp("", &fakeSession{}, &fakeAPI{})
	assert.Equal(t, "(guest)", a.getStatus())

	a, _ = newTestApp("", &fakeSession{authed: true}, &fakeAPI{})
	assert.Equal(t, "(restored session)", a.getStatus())

	sess := &fakeSession{authed: true, user: &models.User{Email: "ada@example.org"}}
	a, _ = newTestApp("", sess, &fakeAPI{})
	assert.Equal(t, "(ada@example.org)", a.getStatus())

	a.online.Store(false)
	assert.Equal(t, "(ada@example.org, offline)", a.getStatus())
}
