package persistence

import (
	"context"
	"path/filepath"
	"testing"
)

func TestAuditStoreAppendAndRecent(t *testing.T) {
	store, err := NewAuditStore(filepath.Join(t.TempDir(), "audit.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	records := []Record{
		{File: "shape.ts", Line: 1, Character: 10, Symbol: "Shape", Label: "2 implementations", Targets: 2, Outcome: "resolved"},
		{File: "shape.ts", Line: 7, Character: 11, Symbol: "Base", Label: "Could not determine implementations", Outcome: "query_failed"},
	}
	for _, rec := range records {
		if err := store.Append(ctx, rec); err != nil {
			t.Fatalf("append %s: %v", rec.Symbol, err)
		}
	}

	recent, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recent))
	}
	if recent[0].Symbol != "Base" {
		t.Fatalf("expected newest first, got %+v", recent[0])
	}
	if recent[1].Targets != 2 {
		t.Fatalf("expected target count to round-trip, got %+v", recent[1])
	}
	if recent[0].CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}
}

func TestAuditStoreRequiresPath(t *testing.T) {
	if _, err := NewAuditStore(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
