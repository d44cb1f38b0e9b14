package capacity

import (
	"math"
	"strconv"
)

// Format renders a byte count with a single-letter unit suffix.
//
// Counts below 1024, negative ones included, are printed as plain decimal
// digits. Larger counts use the largest unit they reach: an exact unit is
// printed as "1K", anything else as the ratio rounded to two decimals and
// shown with one ("1.5K").
func Format(n int64) string {
	if n < Kilobyte.Multiplier() {
		return strconv.FormatInt(n, 10)
	}
	u := Kilobyte
	for c := Exabyte; c > Kilobyte; c-- {
		if n >= c.Multiplier() {
			u = c
			break
		}
	}
	m := u.Multiplier()
	if n == m {
		return "1" + u.Suffix()
	}
	// Use a fixed buffer to avoid allocation
	var buf [24]byte
	ratio := math.Round(float64(n)/float64(m)*100) / 100
	s := strconv.AppendFloat(buf[:0], ratio, 'f', 1, 64)
	return string(s) + u.Suffix()
}

// Exact renders b as an integer followed by the largest suffix that divides
// it evenly. The result always parses back to b.
func (b ByteCount) Exact() string {
	n := int64(b)
	if n == 0 {
		return "0"
	}
	for u := Exabyte; u >= Kilobyte; u-- {
		if m := u.Multiplier(); n%m == 0 {
			return strconv.FormatInt(n/m, 10) + u.Suffix()
		}
	}
	return strconv.FormatInt(n, 10)
}
