package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/pkg/pkgerror"
	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/report/entity"
)

// locate returns the single file named name in the configured folder.
func (u *Usecase) locate(ctx context.Context, name string) (entity.RemoteFile, error) {
	files, err := u.store.FindFiles(ctx, u.opts.FolderID, name)
	if err != nil {
		return entity.RemoteFile{}, normalizeErr(fmt.Errorf("search %s: %w", name, err))
	}

	switch len(files) {
	case 0:
		return entity.RemoteFile{}, pkgerror.NewNotFound(fmt.Sprintf("no %s found in folder", name))
	case 1:
		return files[0], nil
	default:
		return entity.RemoteFile{}, pkgerror.NewAmbiguous(fmt.Sprintf("found %d files named %s in folder", len(files), name))
	}
}

func (u *Usecase) fetch(ctx context.Context, file entity.RemoteFile) ([]byte, error) {
	data, err := u.store.Download(ctx, file.ID)
	if err != nil {
		return nil, normalizeErr(fmt.Errorf("download %s: %w", file.Name, err))
	}

	slog.InfoContext(ctx, "input file downloaded", "file_id", file.ID, "bytes", len(data))

	return data, nil
}

// publish writes data under the output name, replacing the content of an existing
// report in place so its id stays stable.
func (u *Usecase) publish(ctx context.Context, data []byte) (string, bool, error) {
	name := u.opts.OutputName

	existing, err := u.store.FindFiles(ctx, u.opts.FolderID, name)
	if err != nil {
		return "", false, pkgerror.NewUpload(fmt.Errorf("search %s: %w", name, err))
	}

	if len(existing) == 0 {
		id, err := u.store.Create(ctx, u.opts.FolderID, name, entity.MimeTypePDF, data)
		if err != nil {
			return "", false, pkgerror.NewUpload(fmt.Errorf("create %s: %w", name, err))
		}
		return id, true, nil
	}

	target := oldest(existing)
	if len(existing) > 1 {
		slog.WarnContext(ctx, "several reports share the output name, updating the oldest",
			"name", name, "count", len(existing), "file_id", target.ID)
	}

	if err := u.store.Update(ctx, target.ID, entity.MimeTypePDF, data); err != nil {
		return "", false, pkgerror.NewUpload(fmt.Errorf("update %s: %w", target.ID, err))
	}

	return target.ID, false, nil
}

func oldest(files []entity.RemoteFile) entity.RemoteFile {
	sorted := append([]entity.RemoteFile(nil), files...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		}
		return sorted[i].ID < sorted[j].ID
	})
	return sorted[0]
}
