package animation

import "errors"

var (
	// ErrEmptySequence is returned when a sequence has no keyframes.
	ErrEmptySequence = errors.New("sequence has no keyframes")

	// ErrUnorderedSequence is returned when keyframe offsets decrease.
	ErrUnorderedSequence = errors.New("sequence keyframe offsets must be non-decreasing")
)
