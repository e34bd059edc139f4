package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound matches any NotFoundError via errors.Is
	ErrNotFound = errors.New("catalog: record not found")
	// ErrUnknownKind is returned for an entity kind the catalog does not hold
	ErrUnknownKind = errors.New("catalog: unknown entity kind")
)

// NotFoundError reports a slug lookup that matched nothing
type NotFoundError struct {
	Kind Kind
	Slug string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("catalog: no %s with slug %q", e.Kind, e.Slug)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
