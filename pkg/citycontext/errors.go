package citycontext

import "errors"

// ErrConfiguration is the sentinel for the configuration-error class of §7.
// Validate returns it for an inverted bounding box or a name listed in both
// the multi-star and value guides, so these fail loudly at process start.
// Scoring weights are constants of the scoring package and are not checked
// here.
var ErrConfiguration = errors.New("city context configuration error")
