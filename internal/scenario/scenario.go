// Package scenario loads and runs declarative animation scenarios: a yaml
// document declaring render nodes and a sequence of scoped mutations. The
// CLI uses it to exercise the resolution policy end to end and print the
// resulting timeline.
package scenario

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/avezina/kinetic/pkg/domain"
)

// Scenario is one runnable document.
type Scenario struct {
	Name  string     `yaml:"name"`
	Nodes []NodeDecl `yaml:"nodes"`
	Steps []Step     `yaml:"steps"`
}

// NodeDecl declares one render node up front.
type NodeDecl struct {
	ID       string `yaml:"id"`
	Attached bool   `yaml:"attached"`
	Provider string `yaml:"provider,omitempty"` // "", "none" or "shared"
}

// Step is one scripted action. Spec is decoded per Type with mapstructure,
// the same way tool arguments travel as loose maps until a typed handler
// claims them.
type Step struct {
	Type string         `yaml:"type" mapstructure:"type"`
	Spec map[string]any `yaml:"spec" mapstructure:"spec"`
}

// Step types.
const (
	StepSet         = "set"
	StepTransaction = "transaction"
	StepBlock       = "block"
	StepAnimate     = "animate"
)

// SetSpec mutates one property.
type SetSpec struct {
	Node  string `mapstructure:"node"`
	Key   string `mapstructure:"key"`
	Value any    `mapstructure:"value"`
}

// ScopeSpec opens a scope (transaction, block or animate) around nested steps.
type ScopeSpec struct {
	Duration       *float64 `mapstructure:"duration"`
	Delay          float64  `mapstructure:"delay"`
	Curve          string   `mapstructure:"curve"`
	DisableActions *bool    `mapstructure:"disable_actions"` // transactions only
	Steps          []Step   `mapstructure:"steps"`
}

// curve resolves the spec's curve string, defaulting to the baseline.
func (s ScopeSpec) curve() (domain.Curve, error) {
	if s.Curve == "" {
		return domain.CurveEase, nil
	}
	return domain.ParseCurve(s.Curve)
}

// Load reads a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a scenario document.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if err := sc.validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (sc *Scenario) validate() error {
	seen := make(map[string]bool, len(sc.Nodes))
	for _, n := range sc.Nodes {
		if n.ID == "" {
			return &domain.ValidationError{Field: "nodes.id", Reason: "must not be empty"}
		}
		if seen[n.ID] {
			return &domain.ValidationError{Field: "nodes.id", Reason: fmt.Sprintf("duplicate node %q", n.ID)}
		}
		seen[n.ID] = true

		switch n.Provider {
		case "", "none", "shared":
		default:
			return &domain.ValidationError{
				Field:  "nodes.provider",
				Reason: fmt.Sprintf("unknown provider %q (want none or shared)", n.Provider),
			}
		}
	}
	return validateSteps(sc.Steps)
}

func validateSteps(steps []Step) error {
	for _, st := range steps {
		switch st.Type {
		case StepSet:
			var spec SetSpec
			if err := decodeSpec(st, &spec); err != nil {
				return err
			}
			if spec.Node == "" || spec.Key == "" {
				return &domain.ValidationError{Field: "set", Reason: "node and key are required"}
			}
		case StepTransaction, StepBlock, StepAnimate:
			var spec ScopeSpec
			if err := decodeSpec(st, &spec); err != nil {
				return err
			}
			if _, err := spec.curve(); err != nil {
				return err
			}
			if st.Type != StepTransaction && spec.DisableActions != nil {
				return &domain.ValidationError{
					Field:  st.Type,
					Reason: "disable_actions is only valid on transactions",
				}
			}
			if err := validateSteps(spec.Steps); err != nil {
				return err
			}
		default:
			return &domain.ValidationError{Field: "steps.type", Reason: fmt.Sprintf("unknown step type %q", st.Type)}
		}
	}
	return nil
}

func decodeSpec(st Step, out any) error {
	if err := mapstructure.Decode(st.Spec, out); err != nil {
		return fmt.Errorf("invalid %s spec: %w", st.Type, err)
	}
	return nil
}
