package statistic

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/DamienOReilly/reddit-stats/internal/statistic/interfaces"
)

// ZlibCompression compresses with the DEFLATE family at best-compression
// level. Snapshots travel inside a URL, so ratio matters more than speed.
type ZlibCompression struct{}

func (z *ZlibCompression) Compress(val []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("failed to create zlib writer: %w", err)
	}
	if _, err := w.Write(val); err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (z *ZlibCompression) Decompress(val []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(val))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

func NewZlibCompressor() interfaces.CompressorInterface {
	return &ZlibCompression{}
}
