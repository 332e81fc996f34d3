package reporthttp

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/agronomiq/soilreport/report"
	sourcecallback "github.com/agronomiq/soilreport/sources/callback"
)

type stubTemplates struct{}

func (stubTemplates) ExecuteTemplate(w io.Writer, name string, data any) error {
	_, err := io.WriteString(w, "<html>report</html>")
	return err
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	exporter := report.NewExporter(report.ExporterConfig{
		Source: sourcecallback.Static([]report.TestRecord{
			{TestID: "ST-001", Values: map[string]float64{"pH": 5.0}},
			{TestID: "ST-002", Values: map[string]float64{"pH": 7.0}},
		}),
		Templates: stubTemplates{},
		Engine: report.EngineFunc(func(ctx context.Context, html []byte, opts report.PDFOptions) ([]byte, error) {
			return []byte("%PDF"), nil
		}),
		Now: func() time.Time { return time.UnixMilli(42) },
	})

	app := fiber.New()
	NewHandler(Config{Exporter: exporter}).RegisterRoutes(app)
	return app
}

func TestHandler_Single(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/reports/stv-direct/ST-001", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if resp.Header.Get(RequestIDHeader) == "" {
		t.Fatalf("expected export ID header")
	}

	var result report.Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if result.Filename != "stv_direct_report_ST-001.pdf" {
		t.Fatalf("unexpected filename %q", result.Filename)
	}
	if result.PDF == "" {
		t.Fatalf("expected pdf payload")
	}
}

func TestHandler_Single_NotFound(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/reports/stv-direct/ST-999", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}

	var body ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error.Code != "not_found" {
		t.Fatalf("unexpected error code %q", body.Error.Code)
	}
}

func TestHandler_Bulk(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("POST", "/reports/stv-direct/bulk",
		strings.NewReader(`{"test_ids":["ST-001","ST-404","ST-002"]}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var result report.Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if result.Filename != "stv_direct_reports_42.pdf" {
		t.Fatalf("unexpected filename %q", result.Filename)
	}
}

func TestHandler_Bulk_EmptyIDs(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("POST", "/reports/stv-direct/bulk", strings.NewReader(`{"test_ids":[]}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var body ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error.Code != "validation" {
		t.Fatalf("unexpected error code %q", body.Error.Code)
	}
}

func TestHandler_Bulk_MalformedBody(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("POST", "/reports/stv-direct/bulk", strings.NewReader(`{]`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestStatusFromKind(t *testing.T) {
	cases := map[report.ErrorKind]int{
		report.KindValidation: fiber.StatusBadRequest,
		report.KindNotFound:   fiber.StatusNotFound,
		report.KindTimeout:    fiber.StatusGatewayTimeout,
		report.KindNotImpl:    fiber.StatusNotImplemented,
		report.KindInternal:   fiber.StatusInternalServerError,
		report.KindCanceled:   fiber.StatusInternalServerError,
	}
	for kind, want := range cases {
		if got := statusFromKind(kind); got != want {
			t.Fatalf("status for %s = %d, want %d", kind, got, want)
		}
	}
}
