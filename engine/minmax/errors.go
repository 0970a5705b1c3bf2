package minmax

import (
	"errors"
	"fmt"
)

// Kind classifies errors raised by the engine and its input parsing.
type Kind string

const (
	// KindType means the input is not a sequence at all.
	KindType Kind = "type"
	// KindValue means the sequence holds an element that cannot be compared numerically.
	KindValue Kind = "value"
)

// Sentinels for errors.Is checks against an *Error kind.
var (
	ErrType  = errors.New("invalid input type")
	ErrValue = errors.New("invalid input value")
)

// ErrEmpty is returned by Bounds when the sequence has no elements.
var ErrEmpty = &Error{Kind: KindValue, Message: "sequence is empty", Index: -1}

// Error is the error type surfaced by the engine.
type Error struct {
	Kind    Kind
	Message string
	// Index of the offending element, -1 when not tied to one element
	Index int
}

func (e *Error) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s (element %d)", e.Message, e.Index)
	}
	return e.Message
}

func (e *Error) Is(target error) bool {
	switch e.Kind {
	case KindType:
		return target == ErrType
	case KindValue:
		return target == ErrValue
	default:
		return false
	}
}

// KindOf reports the kind of an engine error, or "" for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func newTypeError(msg string) error {
	return &Error{Kind: KindType, Message: msg, Index: -1}
}

func newValueError(msg string, index int) error {
	return &Error{Kind: KindValue, Message: msg, Index: index}
}

// NewValueError returns a KindValue error not tied to a single element.
func NewValueError(msg string) error {
	return newValueError(msg, -1)
}
