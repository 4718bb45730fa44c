package domain

// BaselineDuration is the process-wide default animation length in seconds.
// It applies when no open scope specifies a duration.
const BaselineDuration = 0.25

// DefaultEpsilon is the tolerance used when comparing resolved durations.
const DefaultEpsilon = 1e-4
