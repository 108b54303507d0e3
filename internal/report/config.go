package report

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/pkg/pkgconfig"
	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/pkg/pkgerror"
	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/report/store"
)

const (
	DriverDrive  = "drive"
	DriverS3     = "s3"
	DriverMemory = "memory"
)

// Defaults applied when a key is absent.
const (
	DefaultInputName    = "failed_logs.xlsx"
	DefaultOutputName   = "failed_logs_report.pdf"
	DefaultRecentLimit  = 5
	DefaultDatasetLimit = 5
	DefaultWordBudget   = 300
	DefaultScheduleSpec = "0 0 6 * * *"
)

type ScheduleConfig struct {
	Enabled bool
	Spec    string
}

// Config is the report settings, read once at startup.
type Config struct {
	Driver       string
	FolderID     string
	Credentials  []byte
	InputName    string
	OutputName   string
	Sheet        string
	RecentLimit  int
	DatasetLimit int
	WordBudget   int
	// SeedFile is a local workbook loaded into the memory store as the input.
	SeedFile string
	S3       store.S3Config
	Schedule ScheduleConfig
}

// LoadConfig reads the report settings from cfg and validates them.
func LoadConfig(cfg pkgconfig.Config) (Config, error) {
	c := Config{
		Driver:       strings.ToLower(strings.TrimSpace(stringOr(cfg, "store.driver", DriverDrive))),
		FolderID:     strings.TrimSpace(cfg.GetString("google.drive_folder_id")),
		InputName:    stringOr(cfg, "report.input_name", DefaultInputName),
		OutputName:   stringOr(cfg, "report.output_name", DefaultOutputName),
		Sheet:        cfg.GetString("report.sheet"),
		RecentLimit:  intOr(cfg, "report.recent_limit", DefaultRecentLimit),
		DatasetLimit: intOr(cfg, "report.dataset_limit", DefaultDatasetLimit),
		WordBudget:   intOr(cfg, "report.word_budget", DefaultWordBudget),
		SeedFile:     cfg.GetString("memory.seed_file"),
		S3: store.S3Config{
			Endpoint:  cfg.GetString("s3.endpoint"),
			Bucket:    cfg.GetString("s3.bucket"),
			AccessKey: cfg.GetString("s3.access_key"),
			SecretKey: cfg.GetString("s3.secret_key"),
			Region:    cfg.GetString("s3.region"),
			UseSSL:    cfg.GetBool("s3.use_ssl"),
		},
		Schedule: ScheduleConfig{
			Enabled: cfg.GetBool("schedule.enabled"),
			Spec:    stringOr(cfg, "schedule.spec", DefaultScheduleSpec),
		},
	}

	creds, err := credentialsJSON(cfg)
	if err != nil {
		return Config{}, err
	}
	c.Credentials = creds

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

func (c Config) Validate() error {
	var errs []error

	switch c.Driver {
	case DriverDrive:
		if c.FolderID == "" {
			errs = append(errs, errors.New("DRIVE_FOLDER_ID is required"))
		}
		if len(c.Credentials) == 0 {
			errs = append(errs, errors.New("GOOGLE_SERVICE_ACCOUNT_JSON is required"))
		}
	case DriverS3:
		if c.S3.Bucket == "" {
			errs = append(errs, errors.New("s3.bucket is required"))
		}
	case DriverMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown store driver %q", c.Driver))
	}

	if c.InputName == "" || c.OutputName == "" {
		errs = append(errs, errors.New("report input and output names are required"))
	}
	if c.InputName == c.OutputName {
		errs = append(errs, errors.New("report input and output names must differ"))
	}
	if c.RecentLimit < 0 || c.DatasetLimit < 0 || c.WordBudget < 0 {
		errs = append(errs, errors.New("report limits must not be negative"))
	}
	if c.Schedule.Enabled && c.Schedule.Spec == "" {
		errs = append(errs, errors.New("schedule.spec is required when the schedule is enabled"))
	}

	if len(errs) > 0 {
		return pkgerror.NewConfiguration(errors.Join(errs...))
	}
	return nil
}

// credentialsJSON accepts the service account key as raw JSON or base64 of it.
func credentialsJSON(cfg pkgconfig.Config) ([]byte, error) {
	raw := bytes.TrimSpace([]byte(cfg.GetString("google.credentials_json")))
	if len(raw) == 0 || raw[0] == '{' {
		return raw, nil
	}

	decoded := cfg.GetBinary("google.credentials_json")
	if decoded == nil {
		return nil, pkgerror.NewConfiguration(errors.New("GOOGLE_SERVICE_ACCOUNT_JSON is neither JSON nor base64"))
	}

	return bytes.TrimSpace(decoded), nil
}

func stringOr(cfg pkgconfig.Config, key, def string) string {
	if v := strings.TrimSpace(cfg.GetString(key)); v != "" {
		return v
	}
	return def
}

func intOr(cfg pkgconfig.Config, key string, def int) int {
	if !cfg.IsSet(key) {
		return def
	}
	return int(cfg.GetInt(key))
}
