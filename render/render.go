// Package render serializes an aggregate result into the supported output
// encodings. Rendering is pure: the same aggregate always produces the same
// bytes and the aggregate is never modified.
package render

import (
	"github.com/sparktsao/WebSearchPup/models"
)

// Format selects an output encoding. The string value doubles as the file
// extension.
type Format string

const (
	// FormatJSON is the lossless, round-trippable structured encoding.
	FormatJSON Format = "json"

	// FormatText is the human-readable section-by-section rendering.
	FormatText Format = "txt"

	// FormatCSV is the tabular encoding with quote-doubling escapes.
	FormatCSV Format = "csv"

	// FormatHTML is the self-contained styled document.
	FormatHTML Format = "html"
)

// Formats lists every supported encoding.
var Formats = []Format{FormatJSON, FormatText, FormatCSV, FormatHTML}

// Valid reports whether f names a supported encoding.
func (f Format) Valid() bool {
	switch f {
	case FormatJSON, FormatText, FormatCSV, FormatHTML:
		return true
	}
	return false
}

// Render encodes the aggregate in the requested format. An unsupported
// format is a fatal, typed error naming the requested value; nothing partial
// is produced.
func Render(agg *models.AggregateResult, f Format) (string, error) {
	switch f {
	case FormatJSON:
		return renderJSON(agg)
	case FormatText:
		return renderText(agg), nil
	case FormatCSV:
		return renderCSV(agg), nil
	case FormatHTML:
		return renderHTML(agg), nil
	default:
		return "", models.NewUnsupportedFormat(string(f))
	}
}
