//go:build !js

package output

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/klauspost/pgzip"
)

// compressionCodec defines how to wrap a file in a compressing writer.
type compressionCodec struct {
	name   string
	opener func(io.Writer) (io.WriteCloser, error)
}

var (
	gzipCodec = compressionCodec{
		name: "gzip",
		opener: func(w io.Writer) (io.WriteCloser, error) {
			return newParallelGzipWriter(w)
		},
	}
	zstdCodec = compressionCodec{
		name: "zstd",
		opener: func(w io.Writer) (io.WriteCloser, error) {
			return zstd.NewWriter(w)
		},
	}
)

// codecFor picks a codec from the file extension; nil means uncompressed.
func codecFor(path string) *compressionCodec {
	lowerName := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lowerName, ".gz"):
		return &gzipCodec
	case strings.HasSuffix(lowerName, ".zst"), strings.HasSuffix(lowerName, ".zstd"):
		return &zstdCodec
	default:
		return nil
	}
}

// fileWriter closes the compressor before the file it writes to.
type fileWriter struct {
	io.Writer
	enc  io.WriteCloser
	file *os.File
}

func (f *fileWriter) Close() error {
	if f.enc != nil {
		if err := f.enc.Close(); err != nil {
			f.file.Close()
			return err
		}
	}
	return f.file.Close()
}

// Create opens path for writing a report. Files ending in .gz are gzip compressed,
// files ending in .zst or .zstd are zstd compressed, anything else is plain.
func Create(path string) (io.WriteCloser, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	codec := codecFor(path)
	if codec == nil {
		return &fileWriter{Writer: file, file: file}, nil
	}

	enc, err := codec.opener(file)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to open %s writer for %s: %w", codec.name, path, err)
	}
	return &fileWriter{Writer: enc, enc: enc, file: file}, nil
}

// newParallelGzipWriter returns a pgzip writer compressing blocks in parallel.
func newParallelGzipWriter(w io.Writer) (*pgzip.Writer, error) {
	threads := runtime.GOMAXPROCS(0)
	if threads > 8 {
		threads = 8
	}

	gz := pgzip.NewWriter(w)
	const blockSize = 1 << 20
	if err := gz.SetConcurrency(blockSize, threads); err != nil {
		return nil, err
	}
	return gz, nil
}
