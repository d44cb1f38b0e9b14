package capacity

import "github.com/spf13/pflag"

var _ pflag.Value = (*ByteCount)(nil)

// String returns the exact form of b, see Exact. Use Capacity for the
// rounded human-readable form.
func (b ByteCount) String() string {
	return b.Exact()
}

// MarshalText implements encoding.TextMarshaler.
func (b ByteCount) MarshalText() ([]byte, error) {
	return []byte(b.Exact()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts everything
// ParseLenient does.
func (b *ByteCount) UnmarshalText(text []byte) error {
	v, err := ParseLenient(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// Set implements pflag.Value so a ByteCount can be bound to a flag.
func (b *ByteCount) Set(s string) error {
	return b.UnmarshalText([]byte(s))
}

// Type implements pflag.Value.
func (b *ByteCount) Type() string {
	return "bytes"
}
