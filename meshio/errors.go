package meshio

import "errors"

// ErrMalformedTokenStream indicates the input ended before the counts
// declared in its header were satisfied.
var ErrMalformedTokenStream = errors.New("meshio: malformed token stream")
