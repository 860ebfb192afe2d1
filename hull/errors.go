package hull

import "errors"

// ErrTooFewPoints indicates fewer than 3 points were supplied, or the
// supplied points are too degenerate (colinear/coplanar) to form any
// face.
var ErrTooFewPoints = errors.New("hull: too few non-degenerate points")
