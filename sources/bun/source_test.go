package sourcebun

import (
	"context"
	"database/sql"
	"testing"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"github.com/agronomiq/soilreport/report"
)

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()
	sqldb, err := sql.Open(sqliteshim.ShimName, "file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

func TestSource_InsertFetch(t *testing.T) {
	ctx := context.Background()
	source := NewSource(newTestDB(t))
	if err := source.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	records := []report.TestRecord{
		{TestID: "ST-001", Values: map[string]float64{"pH": 5.0}},
		{TestID: "ST-002", Values: map[string]float64{"pH": 7.1}},
	}
	for _, record := range records {
		if err := source.Insert(ctx, record); err != nil {
			t.Fatalf("insert %s: %v", record.TestID, err)
		}
	}

	got, err := source.Fetch(ctx)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].TestID != "ST-001" || got[1].TestID != "ST-002" {
		t.Fatalf("unexpected record order %v", got)
	}
	if got[0].Values["pH"] != 5.0 {
		t.Fatalf("expected pH 5.0, got %v", got[0].Values["pH"])
	}
}

func TestSource_Insert_RequiresTestID(t *testing.T) {
	ctx := context.Background()
	source := NewSource(newTestDB(t))
	if err := source.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	err := source.Insert(ctx, report.TestRecord{Values: map[string]float64{"pH": 6.0}})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if kind := report.KindFromError(err); kind != report.KindValidation {
		t.Fatalf("expected validation kind, got %s", kind)
	}
}

func TestSource_NotConfigured(t *testing.T) {
	var source *Source
	if _, err := source.Fetch(context.Background()); err == nil {
		t.Fatalf("expected error for nil source")
	}
	if err := (&Source{}).Init(context.Background()); err == nil {
		t.Fatalf("expected error for missing database")
	}
}
