package dataset

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressionRoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte(`"SKU-0004711",`), 1000)

	for _, c := range []Compression{CompressionNone, CompressionZstd, CompressionGzip, CompressionLZ4} {
		t.Run(string(c)+"_", func(t *testing.T) {
			packed, err := compress(c, data)
			require.NoError(t, err)
			if c != CompressionNone {
				assert.Less(t, len(packed), len(data))
			}

			unpacked, err := decompress(c, packed)
			require.NoError(t, err)
			assert.Equal(t, data, unpacked)
			assert.Equal(t, c, compressionOf("fixture.json"+c.Suffix()))
		})
	}
}

func TestParseCompression(t *testing.T) {
	for in, want := range map[string]Compression{
		"":     CompressionNone,
		"none": CompressionNone,
		"zst":  CompressionZstd,
		"gz":   CompressionGzip,
		"lz4":  CompressionLZ4,
	} {
		got, err := ParseCompression(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseCompression("bz2")
	assert.Error(t, err)
}
