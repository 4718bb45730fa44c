package scope

// Snapshot is a frozen copy of the stack at a point in time, ordered
// innermost scope first. Later pushes, pops or scope mutations never affect
// an existing snapshot, so timing captured at mutation time survives scope
// closure.
type Snapshot struct {
	scopes []Scope
}

// Len returns the number of captured scopes.
func (sn Snapshot) Len() int { return len(sn.scopes) }

// Scopes returns the captured scopes, innermost first. The slice is a copy;
// callers may iterate it freely.
func (sn Snapshot) Scopes() []Scope {
	out := make([]Scope, len(sn.scopes))
	copy(out, sn.scopes)
	return out
}

// Disabled returns the effective disable-actions flag for the snapshot: the
// innermost scope that explicitly sets the flag is authoritative.
func (sn Snapshot) Disabled() bool {
	for _, sc := range sn.scopes {
		if sc.DisableActions != nil {
			return *sc.DisableActions
		}
	}
	return false
}

// Has reports whether any captured scope has the given kind.
func (sn Snapshot) Has(kind Kind) bool {
	for _, sc := range sn.scopes {
		if sc.Kind == kind {
			return true
		}
	}
	return false
}
