package ws

import (
	"bytes"
	"compress/zlib"
	"io"
)

// Compress returns data as a single zlib stream, the format of the binary
// frames sent to clients that joined with compress=true.
func Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := compressTo(&buf, data); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// compressTo fails when the final flush fails, so a truncated stream is never
// reported as written.
func compressTo(dst io.Writer, data []byte) error {
	w := zlib.NewWriter(dst)
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return err
	}

	return w.Close()
}

func Decompress(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return io.ReadAll(r)
}
