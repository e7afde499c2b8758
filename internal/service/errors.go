package service

import "fmt"

// ValidationError marks a caller-fixable input problem. The message is shown
// to the caller verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ExtractionError marks a URL whose content could not be fetched or parsed
// into a readable article. Treated as a caller input problem.
type ExtractionError struct {
	URL string
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extracting article from %s: %v", e.URL, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// UpstreamError marks a language-model backend failure during summarization
// or translation. Backend error kinds are not distinguished; the underlying
// message is carried for diagnostics.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
