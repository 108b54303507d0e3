package pkglog

import (
	"context"
	"testing"
)

func TestCorrelationID(t *testing.T) {
	ctx := context.Background()
	if got := GetCorrelationID(ctx); got != "[invalid_chain_id]" {
		t.Fatalf("expected invalid chain id, got %q", got)
	}

	ctx = SetCorrelationID(ctx, "cid-123")
	if got := GetCorrelationID(ctx); got != "cid-123" {
		t.Fatalf("expected cid-123, got %q", got)
	}
}

func TestRunID(t *testing.T) {
	ctx := context.Background()
	if got := GetRunID(ctx); got != 0 {
		t.Fatalf("expected zero run id, got %d", got)
	}

	ctx = SetRunID(ctx, 42)
	if got := GetRunID(ctx); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
}
