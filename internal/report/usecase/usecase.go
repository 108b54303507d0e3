package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/pkg/pkgerror"
	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/pkg/pkglog"
	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/pkg/pkguid"
	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/report/entity"
)

// Store is the remote folder the report reads from and writes to.
type Store interface {
	FindFiles(ctx context.Context, folderID, name string) ([]entity.RemoteFile, error)
	Download(ctx context.Context, fileID string) ([]byte, error)
	Create(ctx context.Context, folderID, name, mimeType string, data []byte) (string, error)
	Update(ctx context.Context, fileID, mimeType string, data []byte) error
}

type Renderer interface {
	Render(stats entity.SummaryStats, meta entity.ReportMeta) (entity.Report, error)
}

type Clock interface {
	Now() time.Time
}

type Dependency struct {
	Store    Store
	Renderer Renderer
	Clock    Clock
	RunID    pkguid.NumberID
	Options  Options
}

type Usecase struct {
	store    Store
	renderer Renderer
	clock    Clock
	runID    pkguid.NumberID
	opts     Options

	runs singleflight.Group
}

func New(dep Dependency) *Usecase {
	clock := dep.Clock
	if clock == nil {
		clock = realClock{}
	}

	return &Usecase{
		store:    dep.Store,
		renderer: dep.Renderer,
		clock:    clock,
		runID:    dep.RunID,
		opts:     dep.Options,
	}
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

// Generate runs the whole pipeline: locate and download the log, summarize it,
// render the PDF and publish it. Nothing is written unless every earlier step
// succeeded.
//
// Concurrent calls share the run already in flight.
func (u *Usecase) Generate(ctx context.Context) (entity.RunResult, error) {
	if err := u.ready(); err != nil {
		return entity.RunResult{}, err
	}

	v, err, shared := u.runs.Do("generate", func() (any, error) {
		return u.generate(context.WithoutCancel(ctx))
	})
	if err != nil {
		return entity.RunResult{}, err
	}

	result := v.(entity.RunResult)
	if shared {
		slog.InfoContext(ctx, "joined report run already in flight", "run_id", result.RunID)
	}

	return result, nil
}

// Summary fetches and summarizes the log without rendering or publishing anything.
func (u *Usecase) Summary(ctx context.Context) (SummaryResult, error) {
	if u.store == nil {
		return SummaryResult{}, pkgerror.NewServer(errors.New("missing dependency"))
	}

	file, stats, err := u.summarize(ctx)
	if err != nil {
		return SummaryResult{}, err
	}

	return SummaryResult{InputFile: file, Stats: stats}, nil
}

// Preview renders the report without publishing it.
func (u *Usecase) Preview(ctx context.Context) (PreviewResult, error) {
	if err := u.ready(); err != nil {
		return PreviewResult{}, err
	}

	runID := u.runID.Generate()
	ctx = pkglog.SetRunID(ctx, runID)

	file, stats, err := u.summarize(ctx)
	if err != nil {
		return PreviewResult{}, err
	}

	report, err := u.render(ctx, runID, file, stats)
	if err != nil {
		return PreviewResult{}, err
	}

	return PreviewResult{RunID: runID, FileName: u.opts.OutputName, Report: report}, nil
}

func (u *Usecase) generate(ctx context.Context) (entity.RunResult, error) {
	runID := u.runID.Generate()
	ctx = pkglog.SetRunID(ctx, runID)
	startedAt := u.clock.Now()

	slog.InfoContext(ctx, "report run started", "folder_id", u.opts.FolderID, "input", u.opts.InputName)

	file, stats, err := u.summarize(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "report run failed", "step", "summarize", "error", err)
		return entity.RunResult{}, err
	}

	report, err := u.render(ctx, runID, file, stats)
	if err != nil {
		slog.ErrorContext(ctx, "report run failed", "step", "render", "error", err)
		return entity.RunResult{}, err
	}

	reportID, created, err := u.publish(ctx, report.PDF)
	if err != nil {
		slog.ErrorContext(ctx, "report run failed", "step", "publish", "error", err)
		return entity.RunResult{}, err
	}

	slog.InfoContext(ctx, "report published", "file_id", reportID, "created", created, "bytes", len(report.PDF))

	return entity.RunResult{
		RunID:       runID,
		InputFileID: file.ID,
		ReportID:    reportID,
		Created:     created,
		Stats:       stats,
		StartedAt:   startedAt,
		FinishedAt:  u.clock.Now(),
	}, nil
}

func (u *Usecase) summarize(ctx context.Context) (entity.RemoteFile, entity.SummaryStats, error) {
	file, err := u.locate(ctx, u.opts.InputName)
	if err != nil {
		return entity.RemoteFile{}, entity.SummaryStats{}, err
	}

	slog.InfoContext(ctx, "input file found", "file_id", file.ID, "name", file.Name)

	data, err := u.fetch(ctx, file)
	if err != nil {
		return entity.RemoteFile{}, entity.SummaryStats{}, err
	}

	table, err := parseWorkbook(ctx, data, u.opts.Sheet)
	if err != nil {
		return entity.RemoteFile{}, entity.SummaryStats{}, err
	}

	return file, Summarize(table, u.opts.RecentLimit), nil
}

func (u *Usecase) render(ctx context.Context, runID int64, file entity.RemoteFile, stats entity.SummaryStats) (entity.Report, error) {
	report, err := u.renderer.Render(stats, entity.ReportMeta{
		RunID:       runID,
		SourceName:  file.Name,
		GeneratedAt: u.clock.Now(),
	})
	if err != nil {
		return entity.Report{}, normalizeRenderErr(err)
	}

	slog.InfoContext(ctx, "report rendered", "bytes", len(report.PDF), "lines", len(report.Lines))

	return report, nil
}

func (u *Usecase) ready() error {
	if u.store == nil || u.renderer == nil || u.runID == nil {
		return pkgerror.NewServer(errors.New("missing dependency"))
	}
	return nil
}

func normalizeRenderErr(err error) error {
	if errors.Is(err, pkgerror.ErrRender) {
		return err
	}
	return pkgerror.NewRender(err)
}

func normalizeErr(err error) error {
	var perr *pkgerror.Error
	if errors.As(err, &perr) {
		return perr
	}
	return pkgerror.NewServer(err)
}
