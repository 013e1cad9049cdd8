package domain

// AnalyzeRequest is the payload for the single-URL endpoint.
type AnalyzeRequest struct {
	URL string `json:"url"`
}

// BatchAnalyzeRequest is the payload for the batch endpoint.
type BatchAnalyzeRequest struct {
	URLs []string `json:"urls"`
}

// ValidationError marks a request rejected before any analysis ran.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with the given message.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}
