package app

import (
	"log/slog"
	"os"

	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/report"
)

func (a *App) initModules() {
	mod, err := report.New(report.Dependency{
		Config:    a.config,
		Router:    a.router,
		Scheduler: a.scheduler,
		Context:   a.ctx,
		ID:        a.uuid,
		RunID:     a.runID,
	})
	if err != nil {
		slog.Error("failed to init module report", "error", err)
		os.Exit(1)
	}

	a.report = mod
}
