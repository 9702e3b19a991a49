package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"

	binsearch "github.com/tecnickcom/binsearch-go"
	"github.com/tecnickcom/binsearch-go/mappedfile"
	"github.com/tecnickcom/binsearch-go/obsmetrics"
)

func newCmd_Query() *cli.Command {
	return &cli.Command{
		Name:        "query",
		Usage:       "Run a single find-first/find-last query against a mapped file.",
		Description: "Loads a layout config, maps the target file, and prints the matching range for one uint64 search value.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Required: true},
			&cli.Uint64Flag{Name: "search", Required: true},
		},
		Action: func(c *cli.Context) error {
			return runQuery(c.String("config"), c.Uint64("search"))
		},
	}
}

func runQuery(configPath string, search uint64) error {
	cfg, err := LoadLayoutConfig(configPath)
	if err != nil {
		return err
	}

	mf, err := mappedfile.Open(cfg.Path)
	if err != nil {
		return err
	}
	defer mf.Close()

	if err := mf.ConfigureColumns(cfg.ColumnWidths); err != nil {
		return fmt.Errorf("binsearchctl: configure columns: %w", err)
	}
	rng := binsearch.Range{First: 0, Last: mf.NItems - 1}
	data := mf.Bytes()[mf.DOffset:]

	start := time.Now()
	var first, last uint64
	op := "find"
	if cfg.Endianness == "le" {
		first, _ = binsearch.FindFirstLE[uint64](data, 8, 0, rng, search)
		last, _ = binsearch.FindLastLE[uint64](data, 8, 0, rng, search)
	} else {
		first, _ = binsearch.FindFirstBE[uint64](data, 8, 0, rng, search)
		last, _ = binsearch.FindLastBE[uint64](data, 8, 0, rng, search)
	}
	elapsed := time.Since(start)
	obsmetrics.Queries.WithLabelValues(op, "64").Inc()
	obsmetrics.QueryDuration.WithLabelValues(op, "64").Observe(elapsed.Seconds())

	if first > mf.NItems-1 {
		fmt.Printf("not found (searched %s rows in %s)\n", humanize.Comma(int64(mf.NItems)), elapsed)
		return nil
	}
	fmt.Printf("matched rows [%d, %d] (%s rows total, search took %s)\n", first, last, humanize.Comma(int64(mf.NItems)), elapsed)
	return nil
}
