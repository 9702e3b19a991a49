package mappedfile

import "errors"

var (
	// ErrOpenFailed wraps a failure to open the underlying file.
	ErrOpenFailed = errors.New("mappedfile: open failed")
	// ErrStatFailed wraps a failure to stat the underlying file.
	ErrStatFailed = errors.New("mappedfile: stat failed")
	// ErrMmapFailed wraps a failure of the unix.Mmap syscall.
	ErrMmapFailed = errors.New("mappedfile: mmap failed")
	// ErrUnmapFailed is returned from Close when unix.Munmap fails. Close
	// still attempts to close the file descriptor regardless.
	ErrUnmapFailed = errors.New("mappedfile: munmap failed")
	// ErrColumnsAlreadyConfigured is returned by ConfigureColumns when
	// called a second time on the same MappedFile. Calling it concurrently
	// with in-flight queries is a caller error this package does not
	// defend against; see ConfigureColumns's doc comment.
	ErrColumnsAlreadyConfigured = errors.New("mappedfile: columns already configured")
	// ErrColumnsNotAligned is returned by ConfigureColumns when some
	// column's computed ColIndex is not a multiple of its own ColWidth,
	// which the column-oriented little-endian fast path in package
	// binsearch requires for a single aligned load.
	ErrColumnsNotAligned = errors.New("mappedfile: column offset is not aligned to its width")
)

func joinErrors(errs ...error) error {
	return errors.Join(errs...)
}
