package command

import (
	"github.com/goliatone/go-errors"

	"github.com/agronomiq/soilreport/report"
)

// GenerateReport requests a single-record PDF export.
type GenerateReport struct {
	TestID string
	Result *report.Result
}

func (GenerateReport) Type() string { return "report:generate" }

func (msg GenerateReport) Validate() error {
	if msg.TestID == "" {
		return errors.New("test ID is required", errors.CategoryValidation).
			WithTextCode("TEST_ID_REQUIRED")
	}
	return nil
}

// GenerateBulkReport requests a multi-record PDF export.
type GenerateBulkReport struct {
	TestIDs []string
	Result  *report.Result
}

func (GenerateBulkReport) Type() string { return "report:generate-bulk" }

func (msg GenerateBulkReport) Validate() error {
	if len(msg.TestIDs) == 0 {
		return errors.New("test IDs are required", errors.CategoryValidation).
			WithTextCode("TEST_IDS_REQUIRED")
	}
	return nil
}
