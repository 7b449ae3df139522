package hybrid

import "errors"

// ErrSizeOutOfRange indicates NextK was asked for a pole count the Oracle
// was not built for.
var ErrSizeOutOfRange = errors.New("hybrid: size out of range")
