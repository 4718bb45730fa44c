package domain

// Animation is the resolved artifact for a single property mutation: the
// decision that a change to Key animates from From to To with the given
// timing. It is ephemeral: the owning node keeps it only while it runs, and a
// later mutation to the same key replaces it outright (replace, not merge).
//
// Interpolating the value over time is out of scope; an Animation is the
// policy outcome, not the playback.
type Animation struct {
	Key      string  `json:"key" yaml:"key"`
	From     any     `json:"from,omitempty" yaml:"from,omitempty"`
	To       any     `json:"to,omitempty" yaml:"to,omitempty"`
	Duration float64 `json:"duration" yaml:"duration"`
	Delay    float64 `json:"delay,omitempty" yaml:"delay,omitempty"`
	Curve    Curve   `json:"curve" yaml:"curve"`
}
