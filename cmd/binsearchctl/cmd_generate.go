package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math/rand"

	"github.com/cespare/xxhash/v2"
	natefinchatomic "github.com/natefinch/atomic"
	"github.com/urfave/cli/v2"
	"github.com/valyala/bytebufferpool"
)

func newCmd_Generate() *cli.Command {
	return &cli.Command{
		Name:        "generate",
		Usage:       "Generate a sorted fixture file with a footer binsearchctl can map.",
		Description: "Writes the nrows field, then nrows big-endian uint64 records sorted ascending, then the doffset/dlength footer.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Required: true},
			&cli.Uint64Flag{Name: "rows", Value: 1000},
			&cli.IntFlag{Name: "seed", Value: 1},
		},
		Action: func(c *cli.Context) error {
			return runGenerate(c.String("out"), c.Uint64("rows"), c.Int("seed"))
		},
	}
}

// runGenerate builds a single big-endian uint64 column, sorted ascending
// by cumulative random gaps, places the little-endian nrows field 8 bytes
// before it and appends the doffset/dlength footer spec.md §4.7 defines. Rows are assembled through a pooled byte buffer
// (matching the teacher's bucketteer use of bytebufferpool for bulk reads)
// and the data region's checksum is logged via xxhash, though not stored —
// the file format has no checksum field of its own.
func runGenerate(out string, rows uint64, seed int) error {
	const blklen = 8
	rng := rand.New(rand.NewSource(int64(seed)))

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	buf.Reset()

	var key uint64
	var rowbuf [blklen]byte
	for i := uint64(0); i < rows; i++ {
		key += uint64(rng.Intn(5))
		binary.BigEndian.PutUint64(rowbuf[:], key)
		buf.Write(rowbuf[:])
	}

	dlength := uint64(buf.Len())
	const doffset = 8 // nrows occupies [doffset-8, doffset-4); [doffset-4, doffset) is unused padding
	footer := buf.Bytes()

	full := make([]byte, doffset+dlength+16)
	binary.LittleEndian.PutUint32(full[doffset-8:doffset-4], uint32(rows))
	copy(full[doffset:], footer)
	binary.BigEndian.PutUint64(full[len(full)-16:len(full)-8], doffset)
	binary.BigEndian.PutUint64(full[len(full)-8:], dlength)

	checksum := xxhash.Sum64(full[doffset : doffset+dlength])
	fmt.Printf("generated %d rows, %d bytes, data checksum=%x\n", rows, len(full), checksum)

	return natefinchatomic.WriteFile(out, bytes.NewReader(full))
}
