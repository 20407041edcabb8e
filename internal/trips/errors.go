package trips

import "errors"

// ErrUnauthenticated is returned by mutations attempted without an active
// session.
var ErrUnauthenticated = errors.New("must be authenticated")

// ErrNotFound is returned when no trip has the requested id.
var ErrNotFound = errors.New("trip not found")

// ErrForbidden is returned when the session user does not own the trip it
// is trying to mutate. Not-found is checked before ownership.
var ErrForbidden = errors.New("trips can only be changed by their owner")
