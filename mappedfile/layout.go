package mappedfile

// LayoutDescriptor records the footer-declared data region and, once
// ConfigureColumns has run, the per-column addressing scheme inside it.
//
// Invariants (mirroring the original library's configure_columns):
// ColIndex[0] == DOffset; ColIndex[c+1] == ColIndex[c] + uint64(NRows)*uint64(ColWidth[c]).
// sum(ColWidth)*uint64(NRows) is not checked against DLength and may exceed
// it. NItems is deliberately not NRows: see its doc comment.
type LayoutDescriptor struct {
	DOffset uint64
	DLength uint64
	NRows   uint32
	NCols   uint8

	ColWidth []uint8
	ColIndex []uint64

	// NItems is the number of complete stride-sized rows that fit in the
	// declared data region: DLength / sum(ColWidth), integer division. It
	// is the bound a caller should use for Range{0, NItems-1}, and can be
	// one less than NRows when the footer was written conservatively —
	// the two are independent numbers, not a typo of one another.
	NItems uint64
}

// ConfigureColumns sets the column layout once. Every computed ColIndex[c]
// must be a multiple of its ColWidth[c] — the precondition the
// column-oriented little-endian fast path in package binsearch relies on
// for a direct aligned load — or ConfigureColumns returns
// ErrColumnsNotAligned before mutating anything. ConfigureColumns(nil) is
// valid and leaves NItems at zero and ColIndex nil.
//
// Calling ConfigureColumns a second time on the same MappedFile returns
// ErrColumnsAlreadyConfigured. Calling it concurrently with in-flight
// queries against the same MappedFile is undefined: there is no lock, and
// this package does not attempt to detect the race.
func (mf *MappedFile) ConfigureColumns(widths []uint8) error {
	if mf.ColWidth != nil || mf.ColIndex != nil {
		return ErrColumnsAlreadyConfigured
	}
	if len(widths) == 0 {
		return nil
	}

	index := make([]uint64, len(widths))
	index[0] = mf.DOffset
	var stride uint64
	for c, w := range widths {
		if c > 0 {
			index[c] = index[c-1] + uint64(mf.NRows)*uint64(widths[c-1])
		}
		if w > 0 && index[c]%uint64(w) != 0 {
			return ErrColumnsNotAligned
		}
		stride += uint64(w)
	}
	// NRows*stride is permitted to exceed DLength: the file-header row
	// count and the footer-declared data length are independent numbers,
	// and NItems (below) is what bounds an actual search range, not NRows.

	mf.ColWidth = append([]uint8(nil), widths...)
	mf.NCols = uint8(len(widths))
	mf.ColIndex = index
	if stride > 0 {
		mf.NItems = mf.DLength / stride
	}
	return nil
}
