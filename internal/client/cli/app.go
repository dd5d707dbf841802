package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/zenfit/zenfit/internal/client/api"
	"github.com/zenfit/zenfit/internal/client/config"
	"github.com/zenfit/zenfit/internal/client/models"
	"github.com/zenfit/zenfit/internal/client/session"
	"github.com/zenfit/zenfit/internal/logging"
)

// sessionController is the slice of the session store the CLI needs.
// *session.Store satisfies it; tests can provide a lightweight stub.
type sessionController interface {
	Register(ctx context.Context, req models.RegisterRequest) error
	Login(ctx context.Context, req models.LoginRequest) error
	Logout(ctx context.Context) error
	IsAuthenticated() bool
	CurrentUser() *models.User
	Token() string
	Guard() session.Decision
}

type App struct {
	config  *config.Config
	session sessionController
	api     api.Client
	log     logging.Logger

	reader *bufio.Reader
	out    io.Writer
	online atomic.Bool
}

func NewApp(cfg *config.Config, sess *session.Store, client api.Client, log logging.Logger) *App {
	a := &App{
		config:  cfg,
		session: sess,
		api:     client,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
	// Assume reachable until the first probe says otherwise.
	a.online.Store(true)
	return a
}

// Run starts the connectivity watcher and blocks in the REPL until the user
// exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go a.StartOnlineStatusWatcher(ctx, a.config.HealthCheckInterval)

	a.Root(ctx)
}

// StartOnlineStatusWatcher periodically probes the server's health endpoint
// and flips the online indicator shown in the prompt. It returns when ctx is
// cancelled.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			probeCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			_, err := a.api.Health(probeCtx)
			cancel()

			online := err == nil
			if online != a.online.Load() {
				a.online.Store(online)
				if online {
					a.log.Info(ctx, "server reachable again")
				} else {
					a.log.Warn(ctx, "server unreachable", "error", err)
				}
			}

		case <-ctx.Done():
			return
		}
	}
}
