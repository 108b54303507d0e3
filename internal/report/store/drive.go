package store

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/report/entity"
)

const driveFileFields = "nextPageToken, files(id, name, createdTime, size)"

// DriveStore reads and writes files in a Google Drive folder.
type DriveStore struct {
	svc *drive.Service
}

// NewDriveStore builds a Drive client. Callers pass option.WithCredentials in
// production and option.WithEndpoint plus option.WithoutAuthentication in tests.
func NewDriveStore(ctx context.Context, opts ...option.ClientOption) (*DriveStore, error) {
	svc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}

	return &DriveStore{svc: svc}, nil
}

// FindFiles lists the non-trashed files named name directly inside folderID,
// oldest first.
func (s *DriveStore) FindFiles(ctx context.Context, folderID, name string) ([]entity.RemoteFile, error) {
	q := fmt.Sprintf("'%s' in parents and name = '%s' and trashed = false",
		escapeQuery(folderID), escapeQuery(name))

	var out []entity.RemoteFile
	err := s.svc.Files.List().
		Q(q).
		Fields(driveFileFields).
		OrderBy("createdTime").
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Pages(ctx, func(list *drive.FileList) error {
			for _, f := range list.Files {
				out = append(out, toRemoteFile(f))
			}
			return nil
		})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (s *DriveStore) Download(ctx context.Context, fileID string) ([]byte, error) {
	resp, err := s.svc.Files.Get(fileID).SupportsAllDrives(true).Context(ctx).Download()
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	return io.ReadAll(resp.Body)
}

func (s *DriveStore) Create(ctx context.Context, folderID, name, mimeType string, data []byte) (string, error) {
	file, err := s.svc.Files.Create(&drive.File{
		Name:     name,
		Parents:  []string{folderID},
		MimeType: mimeType,
	}).
		Media(bytes.NewReader(data), googleapi.ContentType(mimeType)).
		Fields("id").
		SupportsAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return "", err
	}

	return file.Id, nil
}

// Update replaces the content of fileID, keeping its id and metadata.
func (s *DriveStore) Update(ctx context.Context, fileID, mimeType string, data []byte) error {
	_, err := s.svc.Files.Update(fileID, &drive.File{}).
		Media(bytes.NewReader(data), googleapi.ContentType(mimeType)).
		Fields("id").
		SupportsAllDrives(true).
		Context(ctx).
		Do()
	return err
}

func toRemoteFile(f *drive.File) entity.RemoteFile {
	created, _ := time.Parse(time.RFC3339, f.CreatedTime)
	return entity.RemoteFile{
		ID:        f.Id,
		Name:      f.Name,
		CreatedAt: created,
		Size:      f.Size,
	}
}

// escapeQuery quotes a value for use inside a single-quoted Drive query string.
func escapeQuery(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	return strings.ReplaceAll(v, `'`, `\'`)
}
