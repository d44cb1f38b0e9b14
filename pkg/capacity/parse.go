package capacity

import (
	"errors"
	"math"
	"strconv"
)

// Parse reads a byte count written as an integer, optionally followed by
// one of the suffixes K, M, G, T, P or E ("4K" is 4096). Suffixes are
// case-sensitive and the magnitude must be a whole number, so the
// fractional output of Format ("1.5K") is rejected; use ParseLenient for
// that. Errors are of type *ParseError.
func Parse(s string) (ByteCount, error) {
	if len(s) > 1 {
		if u, ok := UnitForSuffix(s[len(s)-1]); ok {
			n, err := strconv.ParseInt(s[:len(s)-1], 10, 64)
			if err != nil {
				return 0, &ParseError{Input: s, Err: cause(err)}
			}
			v, ok := scale(n, u.Multiplier())
			if !ok {
				return 0, &ParseError{Input: s, Err: ErrOverflow}
			}
			return ByteCount(v), nil
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, &ParseError{Input: s, Err: cause(err)}
	}
	return ByteCount(n), nil
}

// ParseLenient is Parse that also accepts a decimal magnitude in front of a
// suffix, so that the output of Format parses back ("1.5K" is 1536).
// Fractional bytes are truncated toward zero.
func ParseLenient(s string) (ByteCount, error) {
	if len(s) < 2 {
		return Parse(s)
	}
	u, ok := UnitForSuffix(s[len(s)-1])
	if !ok || !isDecimal(s[:len(s)-1]) {
		return Parse(s)
	}
	f, err := strconv.ParseFloat(s[:len(s)-1], 64)
	if err != nil {
		return 0, &ParseError{Input: s, Err: cause(err)}
	}
	v := f * float64(u.Multiplier())
	// float64(math.MaxInt64) rounds up to 2^63.
	if v >= math.MaxInt64 || v < math.MinInt64 {
		return 0, &ParseError{Input: s, Err: ErrOverflow}
	}
	return ByteCount(int64(v)), nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) ByteCount {
	b, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return b
}

// isDecimal reports whether s is an optionally signed number with exactly
// one decimal point and at least one digit.
func isDecimal(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	dots, digits := 0, 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '.':
			dots++
		case c >= '0' && c <= '9':
			digits++
		default:
			return false
		}
	}
	return dots == 1 && digits > 0
}

func cause(err error) error {
	var ne *strconv.NumError
	if !errors.As(err, &ne) {
		return err
	}
	if errors.Is(ne.Err, strconv.ErrRange) {
		return ErrOverflow
	}
	return ne.Err
}
