package review

import "fmt"

// ReviewError reports a rejected review submission or moderation request.
type ReviewError struct {
	Code    string
	Message string
}

func (e *ReviewError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newReviewError(code, format string, args ...interface{}) error {
	return &ReviewError{Code: code, Message: fmt.Sprintf(format, args...)}
}

const (
	CodeInvalidRating      = "invalidRating"
	CodeInvalidContentType = "invalidContentType"
	CodeInvalidStatus      = "invalidStatus"
	CodeMissingField       = "missingField"
)
