package ai

import "fmt"

// Reason classifies why a generation request failed.
type Reason string

const (
	ReasonTransport Reason = "transport"
	ReasonStatus    Reason = "status"
	ReasonDecode    Reason = "decode"
	ReasonSchema    Reason = "schema"
)

// GenerationError describes a failed generation request.
type GenerationError struct {
	Reason     Reason
	StatusCode int // set for ReasonStatus
	Err        error
}

func (e *GenerationError) Error() string {
	switch e.Reason {
	case ReasonStatus:
		return fmt.Sprintf("generation failed: proxy returned status %d", e.StatusCode)
	default:
		if e.Err == nil {
			return fmt.Sprintf("generation failed (%s)", e.Reason)
		}
		return fmt.Sprintf("generation failed (%s): %v", e.Reason, e.Err)
	}
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Outcome is the result of one generation request: either Content or Err.
type Outcome struct {
	Content string
	Err     *GenerationError
}

// OK reports whether the request produced content.
func (o Outcome) OK() bool { return o.Err == nil }

func success(content string) Outcome { return Outcome{Content: content} }

func failure(reason Reason, status int, err error) Outcome {
	return Outcome{Err: &GenerationError{Reason: reason, StatusCode: status, Err: err}}
}
