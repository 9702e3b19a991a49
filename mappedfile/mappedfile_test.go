package mappedfile

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// buildFixture writes the 730-byte scenario from the original test suite:
// doffset=376, dlength=136, nrows=12, with a column layout of
// ctbytes=[4,8] once configured.
func buildFixture(t *testing.T) string {
	t.Helper()
	const (
		size    = 730
		doffset = 376
		dlength = 136
		nrows   = 12
	)
	buf := make([]byte, size)
	binary.LittleEndian.PutUint32(buf[doffset-8:doffset-4], nrows)
	binary.BigEndian.PutUint64(buf[size-16:size-8], doffset)
	binary.BigEndian.PutUint64(buf[size-8:], dlength)

	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.bin")
	require.NoError(t, os.WriteFile(path, buf, 0o644))
	return path
}

func TestOpen_ParsesFooter(t *testing.T) {
	path := buildFixture(t)
	mf, err := Open(path)
	require.NoError(t, err)
	defer mf.Close()

	require.Equal(t, uint64(376), mf.DOffset)
	require.Equal(t, uint64(136), mf.DLength)
	require.Equal(t, uint32(12), mf.NRows)
	require.Equal(t, int64(730), mf.Size())
	require.Len(t, mf.Bytes(), 730)
}

func TestOpen_RejectsTooSmallFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tiny.bin")
	require.NoError(t, os.WriteFile(path, make([]byte, 4), 0o644))

	_, err := Open(path)
	require.Error(t, err)
}

func TestOpen_RejectsMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.bin"))
	require.Error(t, err)
	require.ErrorIs(t, err, ErrOpenFailed)
}

func TestClose_Succeeds(t *testing.T) {
	path := buildFixture(t)
	mf, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, mf.Close())
}

func TestOpenAndConfigureColumns_EndToEnd(t *testing.T) {
	path := buildFixture(t)
	mf, err := Open(path)
	require.NoError(t, err)
	defer mf.Close()

	require.NoError(t, mf.ConfigureColumns([]uint8{4, 8}))
	require.Equal(t, uint64(11), mf.NItems)
	require.Equal(t, uint64(376), mf.ColIndex[0])
	require.Equal(t, uint64(424), mf.ColIndex[1])
}
