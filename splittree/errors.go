package splittree

import "errors"

// ErrTooFewNodes indicates Build was asked to split a graph with zero nodes.
var ErrTooFewNodes = errors.New("splittree: graph has no nodes")
