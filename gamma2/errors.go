// Package gamma2 — errors.go — sentinel errors for the gamma2 package.
//
// Error policy mirrors lvlath/builder: only sentinel variables are exported;
// callers branch with errors.Is. Sentinels are never wrapped with formatted
// strings at definition site; call sites attach context with fmt.Errorf's %w.
package gamma2

import "errors"

// ErrNilNode indicates an operation referenced a nil *Node.
var ErrNilNode = errors.New("gamma2: nil node")

// ErrNodeNotFound indicates a node id outside [1, N] was requested.
var ErrNodeNotFound = errors.New("gamma2: node not found")

// ErrSlotsFull indicates AddEdge could not find a free child slot on the
// source or a free parent slot on the destination (both left and right of
// one side are already occupied). Well-formed fan-out/fan-in-≤2 input never
// triggers this; it signals a builder bug or malformed gate list upstream.
var ErrSlotsFull = errors.New("gamma2: no free slot for edge")

// ErrBadArity indicates a gate declared an arity other than 1 or 2.
var ErrBadArity = errors.New("gamma2: gate arity must be 1 or 2")
