package report

import (
	"context"
	"io"
	"time"
)

// Rating is the qualitative bucket for a parameter value.
type Rating string

const (
	RatingLow     Rating = "Low"
	RatingOptimum Rating = "Optimum"
	RatingHigh    Rating = "High"
)

// TestRecord is one soil-test row from the record source. The exporter only
// reads it; the source owns the data.
type TestRecord struct {
	TestID string
	Values map[string]float64
}

// ParameterSpec describes the gauge geometry for one soil parameter.
type ParameterSpec struct {
	Name       string
	Min        float64
	Max        float64
	LowCutoff  float64
	HighCutoff float64
}

// DisplayMetric is the per-parameter display model injected into templates.
// Percentages are gauge positions; MarkerPercent is not clamped to [0,100]
// so out-of-range readings render past the gauge edge.
type DisplayMetric struct {
	Value         float64 `json:"value"`
	Rating        Rating  `json:"rating"`
	Cut1Percent   float64 `json:"cut1_percent"`
	Cut2Percent   float64 `json:"cut2_percent"`
	MarkerPercent float64 `json:"marker_percent"`
}

// TemplateData maps parameter names to their display metrics and is the single
// data context bound into the report template.
type TemplateData map[string]DisplayMetric

// Result captures a completed export.
type Result struct {
	PDF      string `json:"pdf"`
	Filename string `json:"fileName"`
}

// RecordSource fetches the full set of soil-test records. Exporter operations
// call Fetch exactly once per export, bulk included.
type RecordSource interface {
	Fetch(ctx context.Context) ([]TestRecord, error)
}

// TemplateExecutor executes a named template with data.
type TemplateExecutor interface {
	ExecuteTemplate(w io.Writer, name string, data any) error
}

// PDFExternalAssetsPolicy controls how external assets are handled in PDF rendering.
type PDFExternalAssetsPolicy string

const (
	PDFExternalAssetsUnspecified PDFExternalAssetsPolicy = ""
	PDFExternalAssetsAllow       PDFExternalAssetsPolicy = "allow"
	PDFExternalAssetsBlock       PDFExternalAssetsPolicy = "block"
)

// PDFOptions configures PDF output for headless engines.
type PDFOptions struct {
	PageSize             string
	Landscape            *bool
	PrintBackground      *bool
	Scale                float64
	MarginTop            string
	MarginBottom         string
	MarginLeft           string
	MarginRight          string
	PreferCSSPageSize    *bool
	BaseURL              string
	ExternalAssetsPolicy PDFExternalAssetsPolicy
}

// Engine converts an HTML document into PDF bytes.
type Engine interface {
	Render(ctx context.Context, html []byte, opts PDFOptions) ([]byte, error)
}

// EngineFunc adapts a function to an Engine.
type EngineFunc func(ctx context.Context, html []byte, opts PDFOptions) ([]byte, error)

func (f EngineFunc) Render(ctx context.Context, html []byte, opts PDFOptions) ([]byte, error) {
	if f == nil {
		return nil, NewError(KindInternal, "pdf engine func is nil", nil)
	}
	return f(ctx, html, opts)
}

// Logger provides logging hooks.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards all log output.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}

// Clock supplies the export timestamp used in bulk filenames.
type Clock func() time.Time
