package pkgrouter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/pkg/pkgerror"
)

type pdfFile struct{}

func (pdfFile) ContentType() string { return "application/pdf" }
func (pdfFile) FileName() string    { return "report.pdf" }
func (pdfFile) Bytes() []byte       { return []byte("%PDF-1.3 fake") }

type accepted struct {
	ID string `json:"id"`
}

func (accepted) StatusCode() int { return http.StatusAccepted }
func (accepted) Message() string { return "done" }

func serve(t *testing.T, router http.Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func TestRouterErrorMapping(t *testing.T) {
	router := NewRouter(&staticGenerator{value: "cid"})
	router.GET("/missing", func(ctx context.Context, r *http.Request) (any, error) {
		return nil, pkgerror.NewNotFound("failed_logs.xlsx not found")
	})
	router.GET("/upload", func(ctx context.Context, r *http.Request) (any, error) {
		return nil, pkgerror.NewUpload(errors.New("googleapi: Error 403: quota"))
	})
	router.GET("/plain", func(ctx context.Context, r *http.Request) (any, error) {
		return nil, errors.New("plain")
	})

	rec := serve(t, router, http.MethodGet, "/missing")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["message"] != "failed_logs.xlsx not found" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
	if body["code"] != "ERROR_CODE_NOT_FOUND" {
		t.Fatalf("unexpected code: %v", body["code"])
	}

	rec = serve(t, router, http.MethodGet, "/upload")
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["message"] != "failed to upload report" {
		t.Fatalf("server error must hide its cause, got %v", body["message"])
	}

	rec = serve(t, router, http.MethodGet, "/plain")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestRouterSuccessEnvelope(t *testing.T) {
	router := NewRouter(&staticGenerator{value: "cid"})
	router.POST("/reports", func(ctx context.Context, r *http.Request) (any, error) {
		return accepted{ID: "abc"}, nil
	})

	rec := serve(t, router, http.MethodPost, "/reports")
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
	if got := rec.Header().Get(HeaderCorrelationID); got != "cid" {
		t.Fatalf("expected correlation id header, got %q", got)
	}
	body := decodeBody(t, rec)
	if body["message"] != "done" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
	data, ok := body["data"].(map[string]any)
	if !ok || data["id"] != "abc" {
		t.Fatalf("unexpected data: %v", body["data"])
	}
}

func TestRouterFileResponse(t *testing.T) {
	router := NewRouter(&staticGenerator{value: "cid"})
	router.GET("/preview", func(ctx context.Context, r *http.Request) (any, error) {
		return pdfFile{}, nil
	})

	rec := serve(t, router, http.MethodGet, "/preview")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/pdf" {
		t.Fatalf("unexpected content type: %q", got)
	}
	if got := rec.Header().Get("Content-Disposition"); got != `inline; filename="report.pdf"` {
		t.Fatalf("unexpected content disposition: %q", got)
	}
	if got := rec.Body.String(); got != "%PDF-1.3 fake" {
		t.Fatalf("unexpected body: %q", got)
	}
}

func TestRouterDefaults(t *testing.T) {
	router := NewRouter(nil)

	if rec := serve(t, router, http.MethodGet, "/health"); rec.Code != http.StatusOK {
		t.Fatalf("expected health 200, got %d", rec.Code)
	}
	if rec := serve(t, router, http.MethodGet, "/nope"); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if rec := serve(t, router, http.MethodDelete, "/health"); rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestRouterRecoversPanics(t *testing.T) {
	router := NewRouter(nil)
	router.GET("/panic", func(ctx context.Context, r *http.Request) (any, error) {
		panic("boom")
	})

	rec := serve(t, router, http.MethodGet, "/panic")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
