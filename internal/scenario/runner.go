package scenario

import (
	"fmt"

	"github.com/avezina/kinetic"
	"github.com/avezina/kinetic/pkg/domain"
	"github.com/avezina/kinetic/pkg/layer"
	"github.com/avezina/kinetic/pkg/provider"
)

// Run executes the scenario against the animator: declares the nodes, plays
// the steps in order, and leaves the animator's tree and recorder holding
// the results.
func Run(a *kinetic.Animator, sc *Scenario) error {
	nodes := make(map[string]*layer.Node, len(sc.Nodes))
	for _, decl := range sc.Nodes {
		n := layer.NewNode(decl.ID)
		if decl.Attached {
			a.Tree().Attach(n)
		} else {
			n = registerHeadless(a, n)
		}

		switch decl.Provider {
		case "none":
			n.SetProvider(provider.None())
		case "shared":
			n.SetProvider(a.Shared())
		}
		nodes[decl.ID] = n
	}

	return runSteps(a, nodes, sc.Steps)
}

// registerHeadless makes a detached node known to the tree for inspection
// without granting it membership.
func registerHeadless(a *kinetic.Animator, n *layer.Node) *layer.Node {
	a.Tree().Attach(n)
	a.Tree().Detach(n)
	return n
}

func runSteps(a *kinetic.Animator, nodes map[string]*layer.Node, steps []Step) error {
	for _, st := range steps {
		if err := runStep(a, nodes, st); err != nil {
			return err
		}
	}
	return nil
}

func runStep(a *kinetic.Animator, nodes map[string]*layer.Node, st Step) error {
	switch st.Type {
	case StepSet:
		var spec SetSpec
		if err := decodeSpec(st, &spec); err != nil {
			return err
		}
		n, ok := nodes[spec.Node]
		if !ok {
			return fmt.Errorf("step %s: node %q: %w", st.Type, spec.Node, domain.ErrNodeNotFound)
		}
		a.Set(n, spec.Key, spec.Value)
		return nil

	case StepTransaction:
		var spec ScopeSpec
		if err := decodeSpec(st, &spec); err != nil {
			return err
		}
		curve, err := spec.curve()
		if err != nil {
			return err
		}

		tx := a.Begin()
		if spec.DisableActions != nil {
			if err := tx.SetDisableActions(*spec.DisableActions); err != nil {
				return err
			}
		}
		if spec.Duration != nil {
			if err := tx.SetTiming(*spec.Duration, curve); err != nil {
				return err
			}
		}
		if err := runSteps(a, nodes, spec.Steps); err != nil {
			// Commit anyway: the scope must close on every exit path.
			_ = tx.Commit()
			return err
		}
		return tx.Commit()

	case StepBlock:
		var spec ScopeSpec
		if err := decodeSpec(st, &spec); err != nil {
			return err
		}
		curve, err := spec.curve()
		if err != nil {
			return err
		}
		duration := domain.BaselineDuration
		if spec.Duration != nil {
			duration = *spec.Duration
		}

		var inner error
		if err := a.Run(duration, spec.Delay, curve, func() {
			inner = runSteps(a, nodes, spec.Steps)
		}); err != nil {
			return err
		}
		return inner

	case StepAnimate:
		var spec ScopeSpec
		if err := decodeSpec(st, &spec); err != nil {
			return err
		}
		curve, err := spec.curve()
		if err != nil {
			return err
		}
		duration := domain.BaselineDuration
		if spec.Duration != nil {
			duration = *spec.Duration
		}

		var inner error
		if err := a.Animate(kinetic.Traits{Duration: duration, Delay: spec.Delay, Curve: curve}, func() {
			inner = runSteps(a, nodes, spec.Steps)
		}); err != nil {
			return err
		}
		return inner
	}
	return &domain.ValidationError{Field: "steps.type", Reason: fmt.Sprintf("unknown step type %q", st.Type)}
}
