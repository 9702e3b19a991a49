// Package mappedfile maps a sorted binary data file read-only and parses
// the Apache-Arrow-style footer (doffset, dlength, nrows) that tells
// package binsearch where the searchable columns live.
package mappedfile

import (
	"encoding/binary"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// MappedFile is an immutable, read-only view over a memory-mapped file.
// Zero value is not usable; construct with Open.
type MappedFile struct {
	data []byte
	fd   int
	size int64

	LayoutDescriptor
}

// footerSize is the number of trailing bytes the two 8-byte big-endian
// footer fields occupy.
const footerSize = 16

// headerTrailerSize is the width of the little-endian nrows field that
// starts 8 bytes before the data region, followed by a 4-byte gap.
const headerTrailerSize = 4

// Open maps path read-only for the lifetime of the returned MappedFile and
// parses its doffset/dlength/nrows footer. The caller must call Close when
// done; until (*MappedFile).ConfigureColumns is called, ColWidth, ColIndex
// and NItems are zero-valued — only DOffset, DLength and NRows are
// populated from the footer.
func Open(path string) (*MappedFile, error) {
	// f's descriptor is handed to MappedFile and closed by (*MappedFile).Close,
	// not here: closing it early would race with the mmap/Fadvise calls below
	// and, if reused by another goroutine's Open, could hand mf.Close a
	// descriptor number that no longer refers to this file.
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mappedfile: open %s: %w", path, wrap(ErrOpenFailed, err))
	}

	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mappedfile: open %s: %w", path, wrap(ErrStatFailed, err))
	}
	size := st.Size()
	if size < footerSize+headerTrailerSize {
		f.Close()
		return nil, fmt.Errorf("mappedfile: open %s: file too small to carry a footer (%d bytes)", path, size)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mappedfile: open %s: %w", path, wrap(ErrMmapFailed, err))
	}
	if err := unix.Fadvise(int(f.Fd()), 0, 0, unix.FADV_RANDOM); err != nil {
		// Advisory only: a failed Fadvise degrades performance, not
		// correctness, so it is not fatal to Open.
		_ = err
	}

	doffset := binary.BigEndian.Uint64(data[size-16 : size-8])
	dlength := binary.BigEndian.Uint64(data[size-8:])
	if doffset < footerSize/2 || int64(doffset) > size {
		unix.Munmap(data)
		f.Close()
		return nil, fmt.Errorf("mappedfile: open %s: doffset %d out of range for file of size %d", path, doffset, size)
	}
	// nrows lives at [doffset-8, doffset-5], a 4-byte little-endian field
	// separated from the data region by a 4-byte gap ([doffset-4, doffset)).
	nrows := binary.LittleEndian.Uint32(data[doffset-footerSize/2 : doffset-footerSize/2+headerTrailerSize])

	mf := &MappedFile{
		data: data,
		fd:   int(f.Fd()),
		size: size,
		LayoutDescriptor: LayoutDescriptor{
			DOffset: doffset,
			DLength: dlength,
			NRows:   nrows,
		},
	}
	return mf, nil
}

// Bytes returns the full mapped region, for use by package binsearch's
// Find*/HasNext*/HasPrev* functions. The returned slice must not be
// retained past Close.
func (mf *MappedFile) Bytes() []byte {
	return mf.data
}

// Size returns the mapped file's size in bytes.
func (mf *MappedFile) Size() int64 {
	return mf.size
}

// Close unmaps the file and closes its descriptor, attempting both even if
// the first fails, and joining whichever errors occurred.
func (mf *MappedFile) Close() error {
	var unmapErr, closeErr error
	if mf.data != nil {
		if err := unix.Munmap(mf.data); err != nil {
			unmapErr = fmt.Errorf("%w: %w", ErrUnmapFailed, err)
		}
		mf.data = nil
	}
	if err := unix.Close(mf.fd); err != nil {
		closeErr = err
	}
	if unmapErr != nil || closeErr != nil {
		return joinErrors(unmapErr, closeErr)
	}
	return nil
}

func wrap(sentinel, cause error) error {
	return fmt.Errorf("%w: %w", sentinel, cause)
}
