package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/pkg/pkgerror"
	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/report/entity"
)

type sequenceID struct {
	ids []string
	i   int
}

func (s *sequenceID) Generate() string {
	id := s.ids[s.i]
	s.i++
	return id
}

func TestInMemoryStoreCreateFindDownload(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	s := NewInMemoryStore(&sequenceID{ids: []string{"f1", "f2", "f3"}})
	s.now = func() time.Time { return now }

	if _, err := s.Create(ctx, "folder", "failed_logs.xlsx", entity.MimeTypeXLSX, []byte("xlsx")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.Create(ctx, "other", "failed_logs.xlsx", entity.MimeTypeXLSX, []byte("other")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.Create(ctx, "folder", "notes.txt", "text/plain", []byte("n")); err != nil {
		t.Fatalf("create: %v", err)
	}

	files, err := s.FindFiles(ctx, "folder", "failed_logs.xlsx")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	want := []entity.RemoteFile{{ID: "f1", Name: "failed_logs.xlsx", CreatedAt: now, Size: 4}}
	if diff := cmp.Diff(want, files); diff != "" {
		t.Fatalf("unexpected files (-want +got):\n%s", diff)
	}

	data, err := s.Download(ctx, "f1")
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	if string(data) != "xlsx" {
		t.Fatalf("unexpected data: %q", data)
	}

	data[0] = 'X'
	again, _ := s.Download(ctx, "f1")
	if string(again) != "xlsx" {
		t.Fatalf("download must return a copy, got %q", again)
	}
}

func TestInMemoryStoreUpdateKeepsID(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore(&sequenceID{ids: []string{"r1"}})

	id, err := s.Create(ctx, "folder", "failed_logs_report.pdf", entity.MimeTypePDF, []byte("v1"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.Update(ctx, id, entity.MimeTypePDF, []byte("version2")); err != nil {
		t.Fatalf("update: %v", err)
	}

	files, _ := s.FindFiles(ctx, "folder", "failed_logs_report.pdf")
	if len(files) != 1 || files[0].ID != "r1" || files[0].Size != 8 {
		t.Fatalf("unexpected files after update: %+v", files)
	}
	if s.Len() != 1 {
		t.Fatalf("expected a single file, got %d", s.Len())
	}
	if mt, _ := s.MimeType(id); mt != entity.MimeTypePDF {
		t.Fatalf("unexpected mime type %q", mt)
	}
}

func TestInMemoryStoreMissingFile(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore(nil)

	if _, err := s.Download(ctx, "nope"); !errors.Is(err, pkgerror.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := s.Update(ctx, "nope", entity.MimeTypePDF, nil); !errors.Is(err, pkgerror.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	files, err := s.FindFiles(ctx, "folder", "failed_logs.xlsx")
	if err != nil || len(files) != 0 {
		t.Fatalf("expected no files, got %v %v", files, err)
	}
}

func TestInMemoryStoreDuplicateID(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore(&sequenceID{ids: []string{"same", "same"}})

	if _, err := s.Create(ctx, "folder", "a", entity.MimeTypePDF, nil); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := s.Create(ctx, "folder", "b", entity.MimeTypePDF, nil)
	var perr *pkgerror.Error
	if !errors.As(err, &perr) || perr.Code() != pkgerror.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}
