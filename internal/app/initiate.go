package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/rs/cors"

	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/pkg/pkgconfig"
	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/pkg/pkgcron"
	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/pkg/pkglog"
	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/pkg/pkgrouter"
	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/pkg/pkgroutine"
	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/pkg/pkguid"
)

func (a *App) initConfig() {
	path := a.configPath
	if path == "" {
		path = "/config/config.yaml"
		if os.Getenv("LOCAL") == "true" {
			path = "./config/config.yaml"
		}
	}

	cfg, err := pkgconfig.NewViper(path,
		pkgconfig.WithEnvBinding("google.credentials_json", "GOOGLE_SERVICE_ACCOUNT_JSON"),
		pkgconfig.WithEnvBinding("google.drive_folder_id", "DRIVE_FOLDER_ID"),
		pkgconfig.WithDefault("tz", "UTC"),
		pkgconfig.WithDefault("log.level", "info"),
		pkgconfig.WithDefault("server.address.http", ":8080"),
	)
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	//nolint:errcheck,gosec // ignore error
	os.Setenv("TZ", cfg.GetString("tz"))
	pkglog.SetLevel(cfg.GetString("log.level"))

	a.config = cfg
}

func (a *App) initLibraries() {
	// one slot: a scheduled tick that lands while a run is active is skipped
	a.goroutine = pkgroutine.NewManager(1)
	a.uuid = pkguid.NewUUID()

	sf, err := pkguid.NewSnowflake()
	if err != nil {
		slog.Error("failed to init snowflake", "error", err)
		os.Exit(1)
	}
	a.runID = sf

	a.scheduler = pkgcron.New(a.ctx, a.goroutine, a.uuid)
}

func (a *App) initHTTPServer() {
	a.router = pkgrouter.NewRouter(a.uuid)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	addr := a.config.GetString("server.address.http")
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	a.httpServer = &http.Server{
		Addr:              addr,
		Handler:           corsHandler.Handler(a.router),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

//nolint:unparam // is always nil
func (a *App) initClosers() {
	if a.closerFn == nil {
		a.closerFn = map[string]func(context.Context) error{}
	}

	a.closerFn["HTTP Server"] = func(ctx context.Context) error {
		return a.httpServer.Shutdown(ctx)
	}
	a.closerFn["Scheduler"] = func(ctx context.Context) error {
		return a.scheduler.Stop(ctx)
	}
	a.closerFn["Config"] = func(context.Context) error {
		return a.config.Close()
	}
}
