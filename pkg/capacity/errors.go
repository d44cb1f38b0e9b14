package capacity

import (
	"errors"
	"strconv"
)

var (
	// ErrOverflow is returned when a byte count does not fit in an int64.
	ErrOverflow = errors.New("capacity: value out of range")
	// ErrUnknownUnit is returned for a Unit outside Byte..Exabyte.
	ErrUnknownUnit = errors.New("capacity: unknown unit")
)

// ParseError records a string that could not be read as a byte count.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	msg := "capacity: cannot parse " + strconv.Quote(e.Input)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }
