package catalogsource

import "errors"

// ErrUnavailable indicates the catalog backend could not be reached.
var ErrUnavailable = errors.New("catalog source unavailable")
