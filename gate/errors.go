package gate

import "errors"

// ErrMalformed indicates the reader rejected a line of the gate-list
// grammar. Callers wrap it with the offending line number and text via
// fmt.Errorf's %w.
var ErrMalformed = errors.New("gate: malformed line")

// ErrBadArity indicates a declared gate arity outside {1, 2}.
var ErrBadArity = errors.New("gate: arity must be 1 or 2")

// ErrUnknownInput indicates a gate referenced an input id that has not
// been declared yet (inputs must precede their first use, per the grammar's
// topological ordering requirement).
var ErrUnknownInput = errors.New("gate: reference to undeclared id")
