// Package directory wires configuration, logging and the users service
// together and runs the create → save → fetch → display workflow.
package directory

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/userdir/internal/directory/config"
	"github.com/dmitrijs2005/userdir/internal/directory/users"
	"github.com/dmitrijs2005/userdir/internal/logging"
	"github.com/dmitrijs2005/userdir/internal/timex"
	"github.com/google/uuid"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	userService *users.Service
	out         io.Writer
}

// NewApp builds an App that reports to out and logs to logOut.
func NewApp(c *config.Config, out, logOut io.Writer) (*App, error) {
	logger, err := logging.New(logOut, c.LogLevel, c.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	return newApp(c, out, logger, timex.SystemClock{}), nil
}

func newApp(c *config.Config, out io.Writer, logger logging.Logger, clock timex.Clock) *App {
	logger = logger.With("run_id", uuid.NewString())

	repo := users.NewStubRepository(clock, logger)
	us := users.NewService(repo, clock)

	return &App{config: c, logger: logger.With("module", "app"), userService: us, out: out}
}

// Run executes the workflow once. Errors are returned unrecovered; the
// caller decides how to report them.
func (app *App) Run(ctx context.Context) error {
	user := app.userService.Create(app.config.UserName, app.config.UserEmail)
	app.logger.Debug(ctx, "user created", "id", user.ID)

	if err := app.userService.Save(ctx, user); err != nil {
		return err
	}

	id := user.ID
	if app.config.HasLookupID {
		id = app.config.LookupID
	}

	retrieved, err := app.userService.FetchByID(ctx, id)
	if err != nil {
		app.logger.Error(ctx, "fetch failed", "id", id, "error", err)
		return err
	}

	if err := WriteUser(app.out, retrieved); err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}

	return nil
}
