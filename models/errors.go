package models

import "fmt"

// Error codes used across the pipeline. Only SEARCH_INPUT_NOT_FOUND and
// UNSUPPORTED_FORMAT abort a run; everything else degrades.
const (
	ErrCodeSearchInputNotFound = "SEARCH_INPUT_NOT_FOUND"
	ErrCodeUnsupportedFormat   = "UNSUPPORTED_FORMAT"
	ErrCodeNavigation          = "NAVIGATION_FAILED"
	ErrCodeTimeout             = "SEARCH_TIMEOUT"
	ErrCodeBrowserCrash        = "BROWSER_CRASH"
	ErrCodeExtraction          = "EXTRACTION_FAILED"
	ErrCodeSaveFailed          = "SAVE_FAILED"
)

// SearchError is the internal error type carrying an error code.
// It implements the error interface and supports error wrapping via Unwrap.
type SearchError struct {
	Code    string
	Message string
	Err     error // wrapped original error
}

func (e *SearchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *SearchError) Unwrap() error {
	return e.Err
}

// NewSearchError creates a new SearchError.
func NewSearchError(code, message string, err error) *SearchError {
	return &SearchError{Code: code, Message: message, Err: err}
}

// NewUnsupportedFormat builds the fatal error for an unknown output format.
// The requested format name is embedded so callers can surface it verbatim.
func NewUnsupportedFormat(format string) *SearchError {
	return &SearchError{
		Code:    ErrCodeUnsupportedFormat,
		Message: fmt.Sprintf("unsupported format %q", format),
	}
}
