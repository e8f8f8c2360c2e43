package directory

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/userdir/internal/common"
	"github.com/dmitrijs2005/userdir/internal/directory/config"
	"github.com/dmitrijs2005/userdir/internal/directory/users"
	"github.com/dmitrijs2005/userdir/internal/logging"
	"github.com/dmitrijs2005/userdir/internal/timex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 123_400_000, time.UTC)

func newTestApp(t *testing.T, cfg *config.Config) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, logs bytes.Buffer
	h := slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := logging.NewSlogLogger(slog.New(h))
	return newApp(cfg, &out, logger, timex.NewFixedClock(fixedNow)), &out, &logs
}

func defaultConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	return c
}

func TestApp_Run_DefaultWorkflow(t *testing.T) {
	app, out, logs := newTestApp(t, defaultConfig())

	require.NoError(t, app.Run(context.Background()))

	want := "User Information:\n" +
		"ID: 123\n" +
		"Name: Example User\n" +
		"Email: user@example.com\n" +
		"Created: 2024-03-01T12:00:00Z\n"
	assert.Equal(t, want, out.String())

	l := logs.String()
	assert.Contains(t, l, `msg="saving user"`)
	assert.Contains(t, l, `name="John Doe"`)
	assert.Contains(t, l, "run_id=")
}

func TestApp_Run_SaveLoggedBeforeFetch(t *testing.T) {
	app, _, logs := newTestApp(t, defaultConfig())

	require.NoError(t, app.Run(context.Background()))

	l := logs.String()
	save := strings.Index(l, `msg="saving user"`)
	fetch := strings.Index(l, `msg="looking up user"`)
	require.NotEqual(t, -1, save)
	require.NotEqual(t, -1, fetch)
	assert.Less(t, save, fetch)
}

func TestApp_Run_LookupOverride(t *testing.T) {
	tests := []struct {
		name   string
		id     int
		wantID string
	}{
		{name: "zero is valid", id: 0, wantID: "ID: 0\n"},
		{name: "explicit id", id: 4711, wantID: "ID: 4711\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			cfg.LookupID = tt.id
			cfg.HasLookupID = true

			app, out, _ := newTestApp(t, cfg)
			require.NoError(t, app.Run(context.Background()))
			assert.Contains(t, out.String(), tt.wantID)
		})
	}
}

func TestApp_Run_NegativeLookupPropagates(t *testing.T) {
	cfg := defaultConfig()
	cfg.LookupID = -1
	cfg.HasLookupID = true

	app, out, logs := newTestApp(t, cfg)
	err := app.Run(context.Background())

	require.Error(t, err)
	assert.Equal(t, "invalid user ID: -1", err.Error())
	assert.True(t, errors.Is(err, common.ErrorValidation))

	var verr *users.ValidationError
	assert.ErrorAs(t, err, &verr)

	assert.Empty(t, out.String(), "nothing is printed on failure")
	assert.Contains(t, logs.String(), `msg="saving user"`, "save still runs before the failing fetch")
}

func TestNewApp_RejectsBadLogSettings(t *testing.T) {
	cfg := defaultConfig()
	cfg.LogFormat = "xml"

	_, err := NewApp(cfg, &bytes.Buffer{}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestNewApp_JSONLogs(t *testing.T) {
	cfg := defaultConfig()
	cfg.LogFormat = "json"

	var out, logs bytes.Buffer
	app, err := NewApp(cfg, &out, &logs)
	require.NoError(t, err)
	require.NoError(t, app.Run(context.Background()))

	assert.True(t, strings.HasPrefix(out.String(), "User Information:\n"))
	assert.Contains(t, logs.String(), `"msg":"saving user"`)
	assert.Contains(t, logs.String(), `"name":"John Doe"`)
}

func TestWriteUser_FormatsUTC(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	u := users.User{
		ID:        9,
		Name:      "",
		Email:     "a@b.c",
		CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 999, loc),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteUser(&buf, u))

	assert.Equal(t,
		"User Information:\nID: 9\nName: \nEmail: a@b.c\nCreated: 2024-01-02T00:04:05Z\n",
		buf.String())
}
