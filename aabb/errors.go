package aabb

import "errors"

// ErrInvalidRange and ErrAlreadyAligned are the sentinels underlying New's
// and NextAddress's precondition panics. Neither is ever returned to a
// caller — both are programmer precondition violations, not recoverable
// input validation — but naming them lets a recovered panic be matched
// with errors.Is, the same way the ordinary errors.go sentinels elsewhere
// in this module are matched.
var (
	// ErrInvalidRange indicates New was called with min > max.
	ErrInvalidRange = errors.New("aabb: min must not exceed max")
	// ErrAlreadyAligned indicates NextAddress was called on a box that is
	// already a single Morton-aligned cell, where LITMAX/BIGMIN splitting
	// is meaningless.
	ErrAlreadyAligned = errors.New("aabb: box is already morton-aligned")
)
