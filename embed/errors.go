package embed

import "errors"

// ErrEmbeddingImpossible indicates a split-tree level's recursive pairing
// could not be expressed as a consistent permutation over its Γ₂ node
// positions — the split tree was built from something other than a valid
// Γ₂ graph of matching size.
var ErrEmbeddingImpossible = errors.New("embed: embedding impossible")
