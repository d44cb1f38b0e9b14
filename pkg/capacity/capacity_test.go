package capacity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversions(t *testing.T) {
	t.Parallel()

	one := Of(1)
	tests := []struct {
		name string
		got  int64
		want int64
	}{
		{"bytes", one.Bytes(), 1},
		{"kilobytes", one.Kilobytes(), 1024},
		{"megabytes", one.Megabytes(), 1048576},
		{"gigabytes", one.Gigabytes(), 1073741824},
		{"terabytes", one.Terabytes(), 1099511627776},
		{"petabytes", one.Petabytes(), 1125899906842624},
		{"exabytes", one.Exabytes(), 1152921504606846976},
		{"four kilobytes", Of(4).Kilobytes(), 4096},
		{"zero exabytes", Of(0).Exabytes(), 0},
		{"negative megabytes", Of(-2).Megabytes(), -2097152},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestConversionStepsMultiplyBy1024(t *testing.T) {
	t.Parallel()

	for _, n := range []int64{0, 1, 3, 7} {
		want := n
		for _, u := range Units() {
			assert.Equal(t, want, ByteCount(n).In(u), "n=%d unit=%s", n, u)
			want *= 1024
		}
	}
}

func TestConversionSaturates(t *testing.T) {
	t.Parallel()

	t.Run("positive", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, int64(math.MaxInt64), Of(8).Exabytes())
		assert.Equal(t, int64(math.MaxInt64), Of(math.MaxInt64).Kilobytes())
	})

	t.Run("negative_boundary_fits", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, int64(math.MinInt64), Of(-8).Exabytes())
	})

	t.Run("negative", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, int64(math.MinInt64), Of(-9).Exabytes())
	})
}

func TestInChecked(t *testing.T) {
	t.Parallel()

	v, err := Of(7).InChecked(Exabyte)
	require.NoError(t, err)
	assert.Equal(t, int64(7)<<60, v)

	v, err = Of(8).InChecked(Exabyte)
	require.ErrorIs(t, err, ErrOverflow)
	assert.Equal(t, int64(math.MaxInt64), v)

	_, err = Of(1).InChecked(Unit(42))
	require.ErrorIs(t, err, ErrUnknownUnit)
}

func TestOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ByteCount(-3), Of(int8(-3)))
	assert.Equal(t, ByteCount(65535), Of(uint16(math.MaxUint16)))
	assert.Equal(t, ByteCount(math.MaxInt64), Of(uint64(math.MaxUint64)))
	assert.Equal(t, ByteCount(math.MaxInt64), Of(uint64(math.MaxInt64)))
}

type fileSize struct {
	ByteCount
	name string
}

func TestEmbeddedByteCountImplementsCapacity(t *testing.T) {
	t.Parallel()

	var c Capacity = fileSize{ByteCount: 1536, name: "a.bin"}
	assert.Equal(t, int64(1536), c.Bytes())
	assert.Equal(t, int64(1536*1024), c.Kilobytes())
	assert.Equal(t, "1.5K", c.Capacity())
}
