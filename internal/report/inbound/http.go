package inbound

import (
	"context"

	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/pkg/pkgrouter"
	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/report/entity"
	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/report/usecase"
)

type uc interface {
	Generate(ctx context.Context) (entity.RunResult, error)
	Summary(ctx context.Context) (usecase.SummaryResult, error)
	Preview(ctx context.Context) (usecase.PreviewResult, error)
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/reports", end.Generate)
	r.GET("/reports", end.Generate)

	r.GET("/reports/summary", end.Summary)
	r.GET("/reports/preview", end.Preview)
}
