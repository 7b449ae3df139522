package gamma1

import "errors"

// ErrColoringInvariantViolated indicates the two-colouring walk could not
// find an uncoloured node with a remaining child while edges were still
// left to colour — the input Γ₂ graph violates the max-in/out-degree-2
// invariant C3 depends on.
var ErrColoringInvariantViolated = errors.New("gamma1: coloring invariant violated")

// ErrNodeNotFound indicates a node id outside [1, N] was requested.
var ErrNodeNotFound = errors.New("gamma1: node not found")
