package report

import (
	"fmt"
	"strings"
	"time"
)

const (
	singleFilenamePrefix = "stv_direct_report_"
	bulkFilenamePrefix   = "stv_direct_reports_"
)

// SingleFilename names a one-record export after its test identifier.
func SingleFilename(testID string) string {
	return singleFilenamePrefix + sanitizeFilenamePart(testID) + ".pdf"
}

// BulkFilename names a batch export after its export time in unix
// milliseconds. Two exports inside the same millisecond collide; callers that
// care must disambiguate themselves.
func BulkFilename(now time.Time) string {
	return fmt.Sprintf("%s%d.pdf", bulkFilenamePrefix, now.UnixMilli())
}

func sanitizeFilenamePart(part string) string {
	part = strings.TrimSpace(part)
	replacer := strings.NewReplacer("/", "_", "\\", "_", "..", "_")
	return replacer.Replace(part)
}
