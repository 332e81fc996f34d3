package report

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"time"
)

// DefaultTemplateName is the template executed for each report unless the
// exporter is configured otherwise.
const DefaultTemplateName = "stv_direct_report"

// PageBreak separates per-record fragments in bulk exports. The converter
// honors it as a forced page boundary.
const PageBreak = `<div style="page-break-after: always;"></div>`

// ExporterConfig supplies dependencies for Exporter.
type ExporterConfig struct {
	Source       RecordSource
	Templates    TemplateExecutor
	Engine       Engine
	Parameters   []ParameterSpec
	TemplateName string
	PDF          PDFOptions
	Logger       Logger
	Now          Clock
}

// Exporter renders soil-test records into PDF reports. Each export call is a
// stateless request/response cycle: fetch all records once, render HTML per
// matched record, convert to PDF, return base64 bytes plus a filename.
type Exporter struct {
	source       RecordSource
	templates    TemplateExecutor
	engine       Engine
	parameters   []ParameterSpec
	templateName string
	pdf          PDFOptions
	logger       Logger
	now          Clock
}

// NewExporter creates an Exporter with the provided configuration.
func NewExporter(cfg ExporterConfig) *Exporter {
	params := cfg.Parameters
	if len(params) == 0 {
		params = DefaultParameters
	}
	name := cfg.TemplateName
	if name == "" {
		name = DefaultTemplateName
	}
	logger := cfg.Logger
	if logger == nil {
		logger = NopLogger{}
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Exporter{
		source:       cfg.Source,
		templates:    cfg.Templates,
		engine:       cfg.Engine,
		parameters:   params,
		templateName: name,
		pdf:          cfg.PDF,
		logger:       logger,
		now:          now,
	}
}

// ExportSingle renders the report for one test identifier. Identifiers are
// compared as strings so numerically-typed source IDs still match. A missing
// record is fatal.
func (e *Exporter) ExportSingle(ctx context.Context, testID string) (Result, error) {
	if err := e.ready(); err != nil {
		return Result{}, err
	}

	records, err := e.source.Fetch(ctx)
	if err != nil {
		return Result{}, NewError(KindInternal, "record fetch failed", err)
	}

	record, ok := findRecord(records, testID)
	if !ok {
		return Result{}, NewError(KindNotFound, fmt.Sprintf("test record %q not found", testID), nil)
	}

	html, err := e.renderFragment(record)
	if err != nil {
		return Result{}, err
	}

	pdf, err := e.engine.Render(ctx, html, e.pdf)
	if err != nil {
		return Result{}, err
	}

	e.logger.Debugf("exported report for test %s (%d bytes)", testID, len(pdf))
	return Result{
		PDF:      base64.StdEncoding.EncodeToString(pdf),
		Filename: SingleFilename(testID),
	}, nil
}

// ExportBulk renders one multi-page PDF for an ordered batch of test
// identifiers. Records are fetched once for the whole batch. Identifiers with
// no matching record are dropped silently; fragments keep input order and are
// separated by page breaks, never after the last one.
func (e *Exporter) ExportBulk(ctx context.Context, testIDs []string) (Result, error) {
	if len(testIDs) == 0 {
		return Result{}, NewError(KindValidation, "test IDs are required", nil)
	}
	if err := e.ready(); err != nil {
		return Result{}, err
	}

	records, err := e.source.Fetch(ctx)
	if err != nil {
		return Result{}, NewError(KindInternal, "record fetch failed", err)
	}

	var doc bytes.Buffer
	rendered := 0
	for _, testID := range testIDs {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		record, ok := findRecord(records, testID)
		if !ok {
			e.logger.Debugf("skipping unknown test %s", testID)
			continue
		}

		fragment, err := e.renderFragment(record)
		if err != nil {
			return Result{}, err
		}
		if rendered > 0 {
			doc.WriteString(PageBreak)
		}
		doc.Write(fragment)
		rendered++
	}

	pdf, err := e.engine.Render(ctx, doc.Bytes(), e.pdf)
	if err != nil {
		return Result{}, err
	}

	e.logger.Debugf("exported bulk report: %d of %d tests rendered", rendered, len(testIDs))
	return Result{
		PDF:      base64.StdEncoding.EncodeToString(pdf),
		Filename: BulkFilename(e.now()),
	}, nil
}

func (e *Exporter) ready() error {
	if e == nil {
		return NewError(KindInternal, "exporter is nil", nil)
	}
	if e.source == nil {
		return NewError(KindValidation, "exporter requires a record source", nil)
	}
	if e.templates == nil {
		return NewError(KindValidation, "exporter requires a template executor", nil)
	}
	if e.engine == nil {
		return NewError(KindValidation, "exporter requires a pdf engine", nil)
	}
	return nil
}

func (e *Exporter) renderFragment(record TestRecord) ([]byte, error) {
	data := BuildTemplateData(record, e.parameters)

	var buf bytes.Buffer
	if err := e.templates.ExecuteTemplate(&buf, e.templateName, data); err != nil {
		return nil, NewError(KindInternal, fmt.Sprintf("template %q render failed", e.templateName), err)
	}
	return buf.Bytes(), nil
}

func findRecord(records []TestRecord, testID string) (TestRecord, bool) {
	for _, record := range records {
		if record.TestID == testID {
			return record, true
		}
	}
	return TestRecord{}, false
}
