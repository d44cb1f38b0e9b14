package capacity

import "strconv"

// Unit is a binary capacity unit. Each unit is 1024 times the previous one.
type Unit int

const (
	Byte Unit = iota
	Kilobyte
	Megabyte
	Gigabyte
	Terabyte
	Petabyte
	Exabyte
)

var units = [...]struct {
	name   string
	suffix string
}{
	Byte:     {"byte", ""},
	Kilobyte: {"kilobyte", "K"},
	Megabyte: {"megabyte", "M"},
	Gigabyte: {"gigabyte", "G"},
	Terabyte: {"terabyte", "T"},
	Petabyte: {"petabyte", "P"},
	Exabyte:  {"exabyte", "E"},
}

// Units returns every unit in ascending order.
func Units() []Unit {
	return []Unit{Byte, Kilobyte, Megabyte, Gigabyte, Terabyte, Petabyte, Exabyte}
}

// Valid reports whether u is one of the defined units.
func (u Unit) Valid() bool {
	return u >= Byte && u <= Exabyte
}

// Multiplier returns the number of bytes in one u, 1024^u.
func (u Unit) Multiplier() int64 {
	if !u.Valid() {
		return 0
	}
	return 1 << (10 * uint(u))
}

// Suffix returns the single-letter suffix of u. Byte has none.
func (u Unit) Suffix() string {
	if !u.Valid() {
		return ""
	}
	return units[u].suffix
}

func (u Unit) String() string {
	if !u.Valid() {
		return "unit(" + strconv.Itoa(int(u)) + ")"
	}
	return units[u].name
}

// UnitForSuffix maps a suffix letter to its unit. Only the uppercase
// letters K, M, G, T, P and E are recognized.
func UnitForSuffix(c byte) (Unit, bool) {
	switch c {
	case 'K':
		return Kilobyte, true
	case 'M':
		return Megabyte, true
	case 'G':
		return Gigabyte, true
	case 'T':
		return Terabyte, true
	case 'P':
		return Petabyte, true
	case 'E':
		return Exabyte, true
	}
	return Byte, false
}

// ParseUnit accepts a suffix letter ("K") or a unit name ("kilobyte",
// "kilobytes"). The empty string and "B" mean Byte.
func ParseUnit(s string) (Unit, bool) {
	switch s {
	case "", "B":
		return Byte, true
	}
	if len(s) == 1 {
		return UnitForSuffix(s[0])
	}
	for _, u := range Units() {
		if s == units[u].name || s == units[u].name+"s" {
			return u, true
		}
	}
	return Byte, false
}
