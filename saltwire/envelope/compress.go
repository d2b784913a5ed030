package envelope

import (
	"bytes"
	"io"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// CompressionLevel controls the speed/ratio tradeoff for WithCompression.
type CompressionLevel int

const (
	CompressionFast    CompressionLevel = iota // Fastest, lower ratio
	CompressionDefault                         // Balanced
	CompressionBest                            // Best ratio, slower
)

func (l CompressionLevel) lz4Option() lz4.Option {
	switch l {
	case CompressionFast:
		return lz4.CompressionLevelOption(lz4.Fast)
	case CompressionBest:
		return lz4.CompressionLevelOption(lz4.Level9)
	default:
		return lz4.CompressionLevelOption(lz4.Level4)
	}
}

// Writer and reader state is pooled; both are safe to reuse after Reset.
var (
	lz4Writers = sync.Pool{
		New: func() interface{} { return lz4.NewWriter(nil) },
	}
	lz4Readers = sync.Pool{
		New: func() interface{} { return lz4.NewReader(nil) },
	}
)

// compress shrinks a payload before encryption. Compression happens strictly
// inside the AEAD boundary: the wire carries only the encrypted form.
func compress(data []byte, level CompressionLevel) ([]byte, error) {
	w := lz4Writers.Get().(*lz4.Writer)
	defer lz4Writers.Put(w)

	var buf bytes.Buffer
	w.Reset(&buf)
	_ = w.Apply(level.lz4Option())

	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decompress restores a VersionLZ4 payload after authentication.
func decompress(data []byte) ([]byte, error) {
	r := lz4Readers.Get().(*lz4.Reader)
	defer lz4Readers.Put(r)

	r.Reset(bytes.NewReader(data))

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return nil, ErrDecompress
	}
	return buf.Bytes(), nil
}
