// Package gate models the textual gate-list form of a boolean circuit: the
// input format the universal-circuit compiler is handed once the (out of
// scope) read stage has tokenised it.
//
// A List is an ordered sequence of Gates: inputs first, then gates in
// topological order, then the declared output wires. Normalize inserts
// identity copy-chains so every wire drives at most two successors (the
// fanout-2 normaliser, C1). Parse/Write implement the line-oriented grammar;
// Eval evaluates a normalized list directly, used by tests to compute
// expected outputs for round-trip properties.
//
// Errors:
//
//	ErrMalformed - the reader rejected a line of the gate-list grammar.
package gate
