// Package ucvalidate implements the two independent validators (C10):
// a check that each of the embedding's two channel networks actually
// realizes the real edges it was programmed for, and an end-to-end check
// that every emitted switch line's wire references resolve, acyclically,
// back to a circuit input within a bounded walk.
package ucvalidate

import "errors"

// ErrBlockValidationFailed indicates a split-tree level's programmed
// network did not realize its intended permutation.
var ErrBlockValidationFailed = errors.New("ucvalidate: block validation failed")

// ErrEdgeEmbeddingFailed indicates a backward walk from an emitted wire did
// not reach a circuit input within the emitted line count, or looped.
var ErrEdgeEmbeddingFailed = errors.New("ucvalidate: edge embedding failed")
