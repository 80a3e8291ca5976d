package selector

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicatePart is reported when a single-valued part (element,
	// id or pseudo-element) is set a second time on the same selector.
	ErrDuplicatePart = errors.New("selector part already present")

	// ErrOrderViolation is reported when a part is added after a part
	// that must follow it in the canonical order.
	ErrOrderViolation = errors.New("selector part out of order")
)

func duplicatePartError(k Kind) error {
	return fmt.Errorf("%w: %s may occur only once", ErrDuplicatePart, k)
}

func orderViolationError(k, after Kind) error {
	return fmt.Errorf("%w: %s cannot follow %s", ErrOrderViolation, k, after)
}
