package cli

import (
	"time"

	"go.uber.org/zap"

	"github.com/trailhead/trailhead/internal/auth"
	"github.com/trailhead/trailhead/internal/config"
	"github.com/trailhead/trailhead/internal/gateway"
	"github.com/trailhead/trailhead/internal/hike"
	"github.com/trailhead/trailhead/internal/mockapi"
	"github.com/trailhead/trailhead/internal/review"
	"github.com/trailhead/trailhead/internal/shared/logging"
	"github.com/trailhead/trailhead/internal/social"
)

// offlineSecret signs the offline backend's session cookies. It must be
// the same across invocations: the backend restarts with every command,
// and a cookie persisted by a previous login has to keep validating.
const offlineSecret = "trailhead-offline"

// App wires the configured backend, the session store, and the domain
// services for one command invocation.
type App struct {
	Cfg     config.Config
	Log     *zap.Logger
	GW      *gateway.Client
	Store   *auth.Store
	Hikes   *hike.Service
	Reviews *review.Service
	Social  *social.Service

	mock *mockapi.Server
}

// newApp builds the app from environment config plus command-line
// overrides. In mock mode an in-process backend is started on a loopback
// port and the gateway points at it; everything downstream is unchanged.
func newApp() (*App, error) {
	cfg := config.Load()
	if flagAPIURL != "" {
		cfg.APIBaseURL = flagAPIURL
	}
	if flagMock {
		cfg.MockMode = true
	}
	if flagVerbose {
		cfg.LogLevel = "debug"
		cfg.LogDev = true
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogDev)
	if err != nil {
		return nil, err
	}

	app := &App{Cfg: cfg, Log: log}
	base := cfg.APIBaseURL
	if cfg.MockMode {
		app.mock = mockapi.New(offlineSecret)
		base, err = app.mock.Listen()
		if err != nil {
			return nil, err
		}
		log.Debug("mock backend started", zap.String("base", base))
	}

	app.GW = gateway.New(base, time.Duration(cfg.HTTPTimeout)*time.Second, log)

	sessionPath := cfg.SessionFile
	if sessionPath == "" {
		sessionPath = auth.DefaultSessionPath()
	}
	app.Store = auth.NewStore(sessionPath, &auth.GatewayBackend{GW: app.GW}, log)
	app.Store.Hydrate()
	if id, ok := app.Store.Current(); ok {
		app.GW.SetSessionToken(id.Token)
	}

	app.Hikes = hike.NewService(app.GW, log)
	app.Reviews = review.NewService(app.GW, log)
	app.Social = social.NewService(app.GW, log)
	return app, nil
}

func (a *App) Close() {
	if a.mock != nil {
		_ = a.mock.Shutdown()
	}
	_ = a.Log.Sync()
}

// currentUserID is "" when nobody is logged in.
func (a *App) currentUserID() string {
	id, ok := a.Store.Current()
	if !ok {
		return ""
	}
	return id.ID
}
