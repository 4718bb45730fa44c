package domain

import "fmt"

// Traits are caller-specified timing parameters for an animation: how long it
// runs, how long it waits before starting, and its easing curve. Traits are
// immutable once constructed.
type Traits struct {
	Duration float64 `json:"duration" yaml:"duration" mapstructure:"duration"`
	Delay    float64 `json:"delay,omitempty" yaml:"delay,omitempty" mapstructure:"delay"`
	Curve    Curve   `json:"curve" yaml:"curve" mapstructure:"curve"`
}

// NewTraits validates and builds a Traits value. Negative durations and
// delays are rejected with a *ValidationError.
func NewTraits(duration, delay float64, curve Curve) (Traits, error) {
	if duration < 0 {
		return Traits{}, &ValidationError{Field: "duration", Reason: fmt.Sprintf("must be >= 0, got %v", duration)}
	}
	if delay < 0 {
		return Traits{}, &ValidationError{Field: "delay", Reason: fmt.Sprintf("must be >= 0, got %v", delay)}
	}
	if curve.IsZero() {
		curve = CurveEase
	}
	return Traits{Duration: duration, Delay: delay, Curve: curve}, nil
}
