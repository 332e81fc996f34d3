package report

import (
	"testing"
	"time"
)

func TestSingleFilename(t *testing.T) {
	if got := SingleFilename("ST-2024-001"); got != "stv_direct_report_ST-2024-001.pdf" {
		t.Fatalf("unexpected filename %q", got)
	}
}

func TestSingleFilename_SanitizesSeparators(t *testing.T) {
	got := SingleFilename("../etc/passwd")
	if got != "stv_direct_report___etc_passwd.pdf" {
		t.Fatalf("unexpected filename %q", got)
	}
}

func TestBulkFilename(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	if got := BulkFilename(now); got != "stv_direct_reports_1700000000123.pdf" {
		t.Fatalf("unexpected filename %q", got)
	}
}
