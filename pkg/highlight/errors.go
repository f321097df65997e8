package highlight

import "errors"

// Sentinel errors returned by registry operations. Transactional paths log
// and continue; direct accessors propagate them to the caller.
var (
	// ErrNoSuchSet indicates an operation referenced a query set name that
	// is not in the registry.
	ErrNoSuchSet = errors.New("no such query set")

	// ErrEmptyQueries indicates add or append was given no queries.
	ErrEmptyQueries = errors.New("no queries given")

	// ErrReserveExceeded indicates hits beyond a set's reservation were
	// dropped.
	ErrReserveExceeded = errors.New("highlight reserve exceeded")

	// ErrNotText indicates a selection endpoint was not a text node.
	ErrNotText = errors.New("selection endpoint is not a text node")

	// ErrUnknownNode indicates a node is not part of the current text
	// projection; the projection may need a refresh.
	ErrUnknownNode = errors.New("node not in text projection")

	// ErrBadSubject indicates a finder subject of an unsupported kind.
	ErrBadSubject = errors.New("unsupported query subject")
)
