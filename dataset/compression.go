package dataset

import (
	"bytes"
	"fmt"
	"io"
	"path"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects how generated fixtures are stored.
type Compression string

const (
	CompressionNone Compression = ""
	CompressionZstd Compression = "zst"
	CompressionGzip Compression = "gz"
	CompressionLZ4  Compression = "lz4"
)

// ParseCompression validates a compression name. "none" and "" both mean none.
func ParseCompression(s string) (Compression, error) {
	switch c := Compression(s); c {
	case CompressionNone, CompressionZstd, CompressionGzip, CompressionLZ4:
		return c, nil
	case "none":
		return CompressionNone, nil
	default:
		return "", fmt.Errorf("unsupported compression %q", s)
	}
}

// Suffix returns the file suffix for c, including the dot.
func (c Compression) Suffix() string {
	if c == CompressionNone {
		return ""
	}
	return "." + string(c)
}

func compressionOf(name string) Compression {
	switch path.Ext(name) {
	case ".zst":
		return CompressionZstd
	case ".gz":
		return CompressionGzip
	case ".lz4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

func decompress(c Compression, data []byte) ([]byte, error) {
	switch c {
	case CompressionZstd:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return dec.DecodeAll(data, nil)
	case CompressionGzip:
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return io.ReadAll(r)
	case CompressionLZ4:
		return io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
	default:
		return data, nil
	}
}

func compress(c Compression, data []byte) ([]byte, error) {
	switch c {
	case CompressionZstd:
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, err
		}
		defer enc.Close()
		return enc.EncodeAll(data, nil), nil
	case CompressionGzip:
		var buf bytes.Buffer
		w := gzip.NewWriter(&buf)
		if _, err := w.Write(data); err != nil {
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case CompressionLZ4:
		var buf bytes.Buffer
		w := lz4.NewWriter(&buf)
		if _, err := w.Write(data); err != nil {
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return data, nil
	}
}
