package weather

import "errors"

var (
	// ErrNotFound is returned when the provider reports that no location
	// matches the requested city. It is a client input problem, not an
	// upstream outage.
	ErrNotFound = errors.New("no matching location found")
)

// UpstreamError signals a dependency failure: the provider call could not
// complete, or it completed with a non-success response that is not a
// not-found. The detailed message is meant for server-side logs only; the
// HTTP layer surfaces a generic message to callers.
type UpstreamError struct {
	Message string
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
