package services

import "errors"

var (
    // user-correctable request problems, surfaced as 400
    ErrInvalidInput = errors.New("invalid input")

    // referenced record absent or owned by someone else, surfaced as 404
    ErrNotFound = errors.New("not found")

    // an external nutrition source errored or timed out; absorbed at the
    // aggregator boundary, never surfaced to the caller
    ErrUpstreamUnavailable = errors.New("upstream unavailable")

    // persistence failure, surfaced as a generic 500
    ErrStorage = errors.New("storage error")
)
