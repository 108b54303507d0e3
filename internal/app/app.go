package app

import (
	"context"
	"net/http"

	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/pkg/pkgconfig"
	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/pkg/pkgcron"
	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/pkg/pkglog"
	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/pkg/pkgrouter"
	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/pkg/pkgroutine"
	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/pkg/pkguid"
	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/report"
)

type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	configPath string
	config     pkgconfig.Config

	// libraries
	uuid      pkguid.StringID
	runID     pkguid.NumberID
	goroutine *pkgroutine.Manager
	scheduler *pkgcron.Scheduler

	// modules
	report *report.Module

	// server
	router     *pkgrouter.Router
	httpServer *http.Server

	//
	closerFn map[string]func(context.Context) error
}

// New wires the application. An empty configPath falls back to the default location.
func New(configPath string) *App {
	pkglog.InitLogging()

	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:        ctx,
		cancel:     cancel,
		configPath: configPath,
	}

	app.initConfig()
	app.initLibraries()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
