package encoder

import "fmt"

// ConfigError represents a fatal model configuration problem: mismatched
// weight shapes, a hidden dimension not divisible by the head count, or a
// corrupt parameter blob. It is raised at load time and never recovered
// locally.
type ConfigError struct {
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("model configuration error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("model configuration error: %s", e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// EncodingError represents input text that normalizes to zero non-padding
// tokens. It is a deterministic function of the input, so callers should not
// retry.
type EncodingError struct {
	Message string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encoding error: %s", e.Message)
}
