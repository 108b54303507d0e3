package store

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"google.golang.org/api/option"

	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/report/entity"
)

type fakeDrive struct {
	mu       sync.Mutex
	queries  []string
	uploads  []string
	bodies   [][]byte
	listResp map[string]any
	media    []byte
	deny     bool
}

func (f *fakeDrive) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	if f.deny {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"insufficient permissions"}}`))
		return
	}

	switch {
	case r.Method == http.MethodGet && r.URL.Query().Get("alt") == "media":
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write(f.media)
	case r.Method == http.MethodGet && strings.HasSuffix(r.URL.Path, "/files"):
		f.queries = append(f.queries, r.URL.Query().Get("q"))
		_ = json.NewEncoder(w).Encode(f.listResp)
	case r.Method == http.MethodPost && strings.Contains(r.URL.Path, "/upload/"):
		body, _ := io.ReadAll(r.Body)
		f.uploads = append(f.uploads, "create")
		f.bodies = append(f.bodies, body)
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "created-id"})
	case r.Method == http.MethodPatch && strings.Contains(r.URL.Path, "/upload/"):
		body, _ := io.ReadAll(r.Body)
		f.uploads = append(f.uploads, "update:"+r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:])
		f.bodies = append(f.bodies, body)
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "existing"})
	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"code":404,"message":"not found"}}`))
	}
}

func newTestDrive(t *testing.T, fake *fakeDrive) *DriveStore {
	t.Helper()

	ts := httptest.NewServer(fake)
	t.Cleanup(ts.Close)

	s, err := NewDriveStore(context.Background(),
		option.WithEndpoint(ts.URL+"/"),
		option.WithoutAuthentication(),
		option.WithHTTPClient(ts.Client()),
	)
	if err != nil {
		t.Fatalf("NewDriveStore: %v", err)
	}
	return s
}

func TestDriveFindFiles(t *testing.T) {
	fake := &fakeDrive{listResp: map[string]any{
		"files": []map[string]any{
			{"id": "a1", "name": "failed_logs.xlsx", "createdTime": "2025-01-02T03:04:05Z", "size": "2048"},
		},
	}}
	s := newTestDrive(t, fake)

	files, err := s.FindFiles(context.Background(), "fold'er", "failed_logs.xlsx")
	if err != nil {
		t.Fatalf("FindFiles: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected one file, got %d", len(files))
	}
	want := entity.RemoteFile{
		ID:        "a1",
		Name:      "failed_logs.xlsx",
		CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		Size:      2048,
	}
	if !files[0].CreatedAt.Equal(want.CreatedAt) || files[0].ID != want.ID || files[0].Size != want.Size {
		t.Fatalf("unexpected file: %+v", files[0])
	}

	wantQ := `'fold\'er' in parents and name = 'failed_logs.xlsx' and trashed = false`
	if len(fake.queries) != 1 || fake.queries[0] != wantQ {
		t.Fatalf("unexpected query: %v", fake.queries)
	}
}

func TestDriveDownload(t *testing.T) {
	fake := &fakeDrive{media: []byte("PK\x03\x04 workbook")}
	s := newTestDrive(t, fake)

	data, err := s.Download(context.Background(), "a1")
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	if !bytes.Equal(data, fake.media) {
		t.Fatalf("unexpected data %q", data)
	}
}

func TestDriveCreateAndUpdate(t *testing.T) {
	fake := &fakeDrive{}
	s := newTestDrive(t, fake)
	ctx := context.Background()
	pdf := []byte("%PDF-1.3 report")

	id, err := s.Create(ctx, "folder", "failed_logs_report.pdf", entity.MimeTypePDF, pdf)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id != "created-id" {
		t.Fatalf("unexpected id %q", id)
	}

	if err := s.Update(ctx, "existing", entity.MimeTypePDF, pdf); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if len(fake.uploads) != 2 || fake.uploads[0] != "create" || fake.uploads[1] != "update:existing" {
		t.Fatalf("unexpected uploads: %v", fake.uploads)
	}
	for i, body := range fake.bodies {
		if !bytes.Contains(body, pdf) {
			t.Fatalf("upload %d does not carry the pdf bytes", i)
		}
	}
	if !bytes.Contains(fake.bodies[0], []byte("failed_logs_report.pdf")) {
		t.Fatalf("create metadata should carry the file name")
	}
}

func TestDriveErrorsSurface(t *testing.T) {
	fake := &fakeDrive{deny: true}
	s := newTestDrive(t, fake)
	ctx := context.Background()

	if _, err := s.FindFiles(ctx, "folder", "failed_logs.xlsx"); err == nil {
		t.Fatalf("expected list error")
	}
	if _, err := s.Download(ctx, "a1"); err == nil {
		t.Fatalf("expected download error")
	}
	if _, err := s.Create(ctx, "folder", "r.pdf", entity.MimeTypePDF, []byte("x")); err == nil {
		t.Fatalf("expected create error")
	}
	if err := s.Update(ctx, "r1", entity.MimeTypePDF, []byte("x")); err == nil {
		t.Fatalf("expected update error")
	}
}

func TestEscapeQuery(t *testing.T) {
	if got := escapeQuery(`a\b'c`); got != `a\\b\'c` {
		t.Fatalf("unexpected escape: %q", got)
	}
}
