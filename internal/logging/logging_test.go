package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{name: "quiet", verbose: false, wantDebug: false},
		{name: "verbose", verbose: true, wantDebug: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			log := New(&buf, tt.verbose)
			log.Debug("parsed", "input", "4K")
			log.Warn("large value", "bytes", 1<<40)

			out := buf.String()
			assert.Contains(t, out, "level=WARN")
			assert.Contains(t, out, "bytes=1099511627776")
			if tt.wantDebug {
				assert.Contains(t, out, "input=4K")
			} else {
				assert.NotContains(t, out, "input=4K")
			}
		})
	}
}
