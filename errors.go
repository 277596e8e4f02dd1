package fft

import "errors"

var (
	// ErrInvalidSize is returned when a requested transform length is
	// not a power of two within the supported range (2^2 .. 2^24).
	ErrInvalidSize = errors.New("fft: size must be a power of two in [4, 16777216]")

	// ErrBufferLength is returned when an in/out slice passed to
	// Execute does not have exactly the plan's size.
	ErrBufferLength = errors.New("fft: buffer length does not match plan size")

	// ErrScratchTooSmall is returned when the caller-supplied temp
	// buffer is shorter than Plan.TempSize/PlanRealT.TempSize.
	ErrScratchTooSmall = errors.New("fft: scratch buffer shorter than TempSize")

	// ErrDirectionNotBuilt is returned when Forward or Inverse is
	// called on a Plan that was constructed for the other direction
	// only.
	ErrDirectionNotBuilt = errors.New("fft: plan was not built for this direction")

	// ErrUnknownFormat is returned for an unrecognized Format value
	// passed to a real-plan pack/unpack routine.
	ErrUnknownFormat = errors.New("fft: unknown real-spectrum format")
)
