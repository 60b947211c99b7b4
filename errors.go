package cg

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument reports an argument an operation cannot accept.
	ErrInvalidArgument = errors.New("cg: invalid argument")

	// ErrDivisionByZero reports division by a zero scalar or by a point or
	// size with a zero component. It wraps ErrInvalidArgument.
	ErrDivisionByZero = fmt.Errorf("%w: division by zero", ErrInvalidArgument)

	// ErrVertexLimit is returned when a path has more polygon vertices than
	// the context's vertex limit and the overflow policy is OverflowReject.
	ErrVertexLimit = errors.New("cg: vertex limit exceeded")

	// ErrUnsupported is returned when the device lacks a capability the
	// operation needs, such as texture upload for DrawImage.
	ErrUnsupported = errors.New("cg: operation not supported by device")
)
