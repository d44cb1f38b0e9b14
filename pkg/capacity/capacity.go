// Package capacity converts byte counts between binary (1024-based) units,
// renders them as short human-readable strings such as "1.5K" and parses
// such strings back.
package capacity

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Capacity is implemented by anything that can report a byte count.
//
// The scaling methods read the receiver as a number of the named unit and
// return the equivalent number of bytes, so a value of 4 reports 4096 from
// Kilobytes. Results that do not fit in an int64 saturate at
// math.MaxInt64 or math.MinInt64.
type Capacity interface {
	Bytes() int64
	Kilobytes() int64
	Megabytes() int64
	Gigabytes() int64
	Terabytes() int64
	Petabytes() int64
	Exabytes() int64
	Capacity() string
}

// ByteCount is a number of bytes. Types that embed a ByteCount implement
// Capacity through it.
type ByteCount int64

var _ Capacity = ByteCount(0)

// Of converts any integer to a ByteCount. Unsigned values above
// math.MaxInt64 saturate.
func Of[T constraints.Integer](v T) ByteCount {
	if v > 0 && uint64(v) > math.MaxInt64 {
		return ByteCount(math.MaxInt64)
	}
	return ByteCount(v)
}

func (b ByteCount) Bytes() int64     { return int64(b) }
func (b ByteCount) Kilobytes() int64 { return b.In(Kilobyte) }
func (b ByteCount) Megabytes() int64 { return b.In(Megabyte) }
func (b ByteCount) Gigabytes() int64 { return b.In(Gigabyte) }
func (b ByteCount) Terabytes() int64 { return b.In(Terabyte) }
func (b ByteCount) Petabytes() int64 { return b.In(Petabyte) }
func (b ByteCount) Exabytes() int64  { return b.In(Exabyte) }

// Capacity renders b in the form described by Format.
func (b ByteCount) Capacity() string {
	return Format(int64(b))
}

// In scales b by the multiplier of u, saturating on overflow.
func (b ByteCount) In(u Unit) int64 {
	v, _ := scale(int64(b), u.Multiplier())
	return v
}

// InChecked scales b by the multiplier of u and returns ErrOverflow when
// the result does not fit in an int64.
func (b ByteCount) InChecked(u Unit) (int64, error) {
	if !u.Valid() {
		return 0, ErrUnknownUnit
	}
	v, ok := scale(int64(b), u.Multiplier())
	if !ok {
		return v, ErrOverflow
	}
	return v, nil
}

// scale returns n*m clamped to the int64 range. m must be positive.
func scale(n, m int64) (int64, bool) {
	switch {
	case m <= 1:
		return n * m, true
	case n > math.MaxInt64/m:
		return math.MaxInt64, false
	case n < math.MinInt64/m:
		return math.MinInt64, false
	}
	return n * m, true
}
