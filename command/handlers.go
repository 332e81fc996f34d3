package command

import (
	"context"

	gcmd "github.com/goliatone/go-command"
	"github.com/goliatone/go-errors"

	"github.com/agronomiq/soilreport/report"
)

// GenerateReportHandler handles single report exports.
type GenerateReportHandler struct {
	Exporter *report.Exporter
}

func NewGenerateReportHandler(exporter *report.Exporter) *GenerateReportHandler {
	return &GenerateReportHandler{Exporter: exporter}
}

func (h *GenerateReportHandler) Execute(ctx context.Context, msg GenerateReport) error {
	if h == nil || h.Exporter == nil {
		return errors.New("report exporter is required", errors.CategoryInternal).
			WithTextCode("EXPORTER_REQUIRED")
	}
	result, err := h.Exporter.ExportSingle(ctx, msg.TestID)
	if err != nil {
		return report.AsGoError(err)
	}
	if msg.Result != nil {
		*msg.Result = result
	}
	if res := gcmd.ResultFromContext[report.Result](ctx); res != nil {
		res.Store(result)
	}
	return nil
}

// GenerateBulkReportHandler handles batch report exports.
type GenerateBulkReportHandler struct {
	Exporter *report.Exporter
}

func NewGenerateBulkReportHandler(exporter *report.Exporter) *GenerateBulkReportHandler {
	return &GenerateBulkReportHandler{Exporter: exporter}
}

func (h *GenerateBulkReportHandler) Execute(ctx context.Context, msg GenerateBulkReport) error {
	if h == nil || h.Exporter == nil {
		return errors.New("report exporter is required", errors.CategoryInternal).
			WithTextCode("EXPORTER_REQUIRED")
	}
	result, err := h.Exporter.ExportBulk(ctx, msg.TestIDs)
	if err != nil {
		return report.AsGoError(err)
	}
	if msg.Result != nil {
		*msg.Result = result
	}
	if res := gcmd.ResultFromContext[report.Result](ctx); res != nil {
		res.Store(result)
	}
	return nil
}
