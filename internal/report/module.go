package report

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"google.golang.org/api/option"

	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/pkg/pkgconfig"
	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/pkg/pkgcron"
	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/pkg/pkgerror"
	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/pkg/pkgrouter"
	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/pkg/pkguid"
	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/report/entity"
	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/report/inbound"
	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/report/render"
	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/report/store"
	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/report/usecase"
)

const jobName = "failed-logs-report"

type Dependency struct {
	Config    pkgconfig.Config
	Router    *pkgrouter.Router
	Scheduler *pkgcron.Scheduler
	Context   context.Context
	ID        pkguid.StringID
	RunID     pkguid.NumberID
	// Store overrides the configured driver.
	Store usecase.Store
}

type Module struct {
	uc *usecase.Usecase
}

func New(dep Dependency) (*Module, error) {
	ctx := dep.Context
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := LoadConfig(dep.Config)
	if err != nil {
		return nil, err
	}

	if dep.ID == nil {
		dep.ID = pkguid.NewUUID()
	}
	if dep.RunID == nil {
		sf, err := pkguid.NewSnowflake()
		if err != nil {
			return nil, fmt.Errorf("create run id generator: %w", err)
		}
		dep.RunID = sf
	}

	storage := dep.Store
	if storage == nil {
		storage, err = newStore(ctx, cfg, dep.ID)
		if err != nil {
			return nil, err
		}
	}

	uc := usecase.New(usecase.Dependency{
		Store: storage,
		Renderer: render.New(render.Options{
			DatasetLimit: cfg.DatasetLimit,
			WordBudget:   cfg.WordBudget,
		}),
		RunID: dep.RunID,
		Options: usecase.Options{
			FolderID:    cfg.FolderID,
			InputName:   cfg.InputName,
			OutputName:  cfg.OutputName,
			Sheet:       cfg.Sheet,
			RecentLimit: cfg.RecentLimit,
		},
	})

	if dep.Router != nil {
		inbound.RegisterHTTPEndpoint(dep.Router, uc)
	}

	if cfg.Schedule.Enabled && dep.Scheduler != nil {
		err := dep.Scheduler.Add(jobName, cfg.Schedule.Spec, func(ctx context.Context) error {
			_, err := uc.Generate(ctx)
			return err
		})
		if err != nil {
			return nil, pkgerror.NewConfiguration(fmt.Errorf("schedule %q: %w", cfg.Schedule.Spec, err))
		}
		slog.Info("report schedule registered", "spec", cfg.Schedule.Spec)
	}

	slog.Info("report module ready", "driver", cfg.Driver, "input", cfg.InputName, "output", cfg.OutputName)

	return &Module{uc: uc}, nil
}

// Generate runs the report pipeline once.
func (m *Module) Generate(ctx context.Context) (entity.RunResult, error) {
	return m.uc.Generate(ctx)
}

func newStore(ctx context.Context, cfg Config, id pkguid.StringID) (usecase.Store, error) {
	switch cfg.Driver {
	case DriverS3:
		s, err := store.NewS3Store(cfg.S3)
		if err != nil {
			return nil, pkgerror.NewConfiguration(err)
		}
		return s, nil

	case DriverMemory:
		s := store.NewInMemoryStore(id)
		if cfg.SeedFile != "" {
			data, err := os.ReadFile(cfg.SeedFile)
			if err != nil {
				return nil, pkgerror.NewConfiguration(fmt.Errorf("read seed file: %w", err))
			}
			if _, err := s.Create(ctx, cfg.FolderID, cfg.InputName, entity.MimeTypeXLSX, data); err != nil {
				return nil, err
			}
		}
		return s, nil

	default:
		creds, err := store.LoadCredentials(ctx, cfg.Credentials)
		if err != nil {
			return nil, err
		}
		s, err := store.NewDriveStore(ctx, option.WithCredentials(creds))
		if err != nil {
			return nil, pkgerror.NewConfiguration(err)
		}
		return s, nil
	}
}
