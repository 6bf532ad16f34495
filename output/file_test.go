//go:build !js

package output

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/klauspost/pgzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const payload = "[2, 3, 5, 7]\n"

func writeReport(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	w, err := Create(path)
	require.NoError(t, err)
	_, err = io.WriteString(w, payload)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return path
}

func TestCreatePlain(t *testing.T) {
	data, err := os.ReadFile(writeReport(t, "primes.txt"))
	require.NoError(t, err)
	assert.Equal(t, payload, string(data))
}

func TestCreateGzip(t *testing.T) {
	f, err := os.Open(writeReport(t, "primes.txt.gz"))
	require.NoError(t, err)
	defer f.Close()

	r, err := pgzip.NewReader(f)
	require.NoError(t, err)
	defer r.Close()

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, payload, string(data))
}

func TestCreateZstd(t *testing.T) {
	for _, name := range []string{"primes.json.zst", "primes.json.ZSTD"} {
		f, err := os.Open(writeReport(t, name))
		require.NoError(t, err)

		dec, err := zstd.NewReader(f)
		require.NoError(t, err)
		data, err := io.ReadAll(dec)
		dec.Close()
		f.Close()

		require.NoError(t, err)
		assert.Equal(t, payload, string(data), name)
	}
}

func TestCreateMissingDirectory(t *testing.T) {
	_, err := Create(filepath.Join(t.TempDir(), "missing", "primes.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCodecFor(t *testing.T) {
	assert.Nil(t, codecFor("primes.json"))
	assert.Equal(t, "gzip", codecFor("primes.json.GZ").name)
	assert.Equal(t, "zstd", codecFor("primes.zst").name)
	assert.Equal(t, "zstd", codecFor("primes.zstd").name)
}
