package ucemit

import "errors"

// ErrCycleDetected indicates the Γ₂ graph being numbered is not a DAG.
var ErrCycleDetected = errors.New("ucemit: cycle detected")

// ErrUnknownWire indicates Eval was asked to read a wire that numbering
// never assigned — the artifact or the input vector is malformed.
var ErrUnknownWire = errors.New("ucemit: unknown wire")

// ErrWireCountMismatch indicates Eval's input vector did not have one
// entry per circuit input.
var ErrWireCountMismatch = errors.New("ucemit: wire count mismatch")
