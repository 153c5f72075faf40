package chord

import "errors"

// Transport and ownership problems are handled internally where a fallback
// exists (routing fallback, stabilization, relocation of misplaced
// primaries). A put or get forwarded to an owner that cannot be reached
// returns that hop's TransportError to the caller; RoutingError and
// LocalStoreError always surface.

// TransportError wraps a failure to reach a peer: timeout, refused
// connection, or a framing error. Recovered locally where possible by
// trying the next finger or successor list entry.
type TransportError struct {
	Addr string
	Err  error
}

func (e *TransportError) Error() string {
	return "transport error contacting " + e.Addr + ": " + e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// RoutingError is returned when the hop limit is exceeded or no successor
// is reachable at all (the node is fully isolated). Surfaced to the caller.
type RoutingError struct {
	Reason string
}

func (e *RoutingError) Error() string { return "routing error: " + e.Reason }

// LocalStoreError indicates an impossible-by-construction invariant
// violation in the local store (e.g. a denied role transition). Surfaced
// as an internal error; its presence at runtime is a bug.
type LocalStoreError struct {
	Reason string
}

func (e *LocalStoreError) Error() string { return "local store error: " + e.Reason }

// ErrNotFound is the normal, non-error result of a Get miss: a successful
// lookup with no value.
var ErrNotFound = errors.New("key not found")

// ErrBindFailure and ErrBootstrapFailure let cmd/chordnode map startup
// failures to the documented exit codes (2 and 1 respectively) with
// errors.Is instead of string matching.
var (
	ErrBindFailure      = errors.New("bind failure")
	ErrBootstrapFailure = errors.New("bootstrap failure")
)

func newTransportError(addr string, err error) error {
	if err == nil {
		return nil
	}
	return &TransportError{Addr: addr, Err: err}
}
