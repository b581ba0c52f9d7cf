package cardstock

import (
	"fmt"
	"strings"
)

// Warning records a non-fatal, per-card failure during batch export. The
// batch continues past it; the caller decides whether to retry or skip.
type Warning struct {
	// CardIndex is the global card index that failed.
	CardIndex int
	// Page and Cell locate the failure on the source page.
	Page int
	Cell int
	// Message is a display-ready description.
	Message string
	// Err is the underlying error, for errors.Is/As inspection.
	Err error
}

// FormatWarnings joins warnings into a display string, one per line.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = fmt.Sprintf("card %d (page %d, cell %d): %s", w.CardIndex, w.Page, w.Cell, w.Message)
	}
	return strings.Join(lines, "\n")
}
