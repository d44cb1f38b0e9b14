package capacity

import (
	"encoding/json"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	t.Parallel()

	text, err := ByteCount(4096).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "4K", string(text))

	var b ByteCount
	require.NoError(t, b.UnmarshalText([]byte("1.5K")))
	assert.Equal(t, ByteCount(1536), b)

	err = b.UnmarshalText([]byte("lots"))
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, ByteCount(1536), b, "failed unmarshal must not modify the value")
}

func TestJSON(t *testing.T) {
	t.Parallel()

	type limits struct {
		Soft ByteCount `json:"soft"`
		Hard ByteCount `json:"hard"`
	}

	out, err := json.Marshal(limits{Soft: 512 << 20, Hard: 1536})
	require.NoError(t, err)
	assert.JSONEq(t, `{"soft":"512M","hard":"1536"}`, string(out))

	var in limits
	require.NoError(t, json.Unmarshal([]byte(`{"soft":"2G","hard":"0.5K"}`), &in))
	assert.Equal(t, ByteCount(2<<30), in.Soft)
	assert.Equal(t, ByteCount(512), in.Hard)
}

func TestFlag(t *testing.T) {
	t.Parallel()

	var limit ByteCount
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Var(&limit, "limit", "size limit")

	require.NoError(t, fs.Parse([]string{"--limit", "2M"}))
	assert.Equal(t, ByteCount(2<<20), limit)
	assert.Equal(t, "2M", fs.Lookup("limit").Value.String())
	assert.Equal(t, "bytes", fs.Lookup("limit").Value.Type())

	require.Error(t, fs.Parse([]string{"--limit", "2Q"}))
}
