package main

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/urfave/cli/v2"
	ordered "github.com/tejzpr/ordered-concurrently/v3"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	binsearch "github.com/tecnickcom/binsearch-go"
	"github.com/tecnickcom/binsearch-go/mappedfile"
)

func newCmd_Bench() *cli.Command {
	return &cli.Command{
		Name:        "bench",
		Usage:       "Run a batch of randomized queries against a mapped file, tracing and timing each.",
		Description: "Fans queries out across goroutines with ordered-concurrently, preserving input order in the report; wraps each batch in an OpenTelemetry span.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Required: true},
			&cli.IntFlag{Name: "queries", Value: 10000},
		},
		Action: func(c *cli.Context) error {
			return runBench(c.Context, c.String("config"), c.Int("queries"))
		},
	}
}

type benchJob struct {
	search uint64
	mf     *mappedfile.MappedFile
	le     bool
}

func (j benchJob) Run() interface{} {
	rng := binsearch.Range{First: 0, Last: j.mf.NItems - 1}
	start := time.Now()
	if j.le {
		binsearch.FindFirstLE[uint64](j.mf.Bytes(), 8, 0, rng, j.search)
	} else {
		binsearch.FindFirstBE[uint64](j.mf.Bytes(), 8, 0, rng, j.search)
	}
	return time.Since(start)
}

func runBench(ctx context.Context, configPath string, n int) error {
	runID := uuid.New()

	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return fmt.Errorf("binsearchctl: trace exporter: %w", err)
	}
	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
	defer tp.Shutdown(ctx)
	otel.SetTracerProvider(tp)
	tracer := otel.Tracer("binsearchctl/bench")

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

	ctx, span := tracer.Start(ctx, "bench.run")
	defer span.End()

	progress := mpb.New(mpb.WithWidth(60))
	bar := progress.AddBar(int64(n),
		mpb.PrependDecorators(decor.Name("bench")),
		mpb.AppendDecorators(decor.Percentage()),
	)

	inputChan := make(chan ordered.WorkFunction)
	outputChan := ordered.Process(ctx, inputChan, &ordered.Options{PoolSize: runtime.NumCPU(), OutChannelBuffer: n})

	go func() {
		rng := rand.New(rand.NewSource(1))
		for i := 0; i < n; i++ {
			inputChan <- benchJob{search: uint64(rng.Intn(int(mf.NItems) * 5)), mf: mf, le: cfg.Endianness == "le"}
		}
		close(inputChan)
	}()

	var total time.Duration
	for out := range outputChan {
		total += out.Value.(time.Duration)
		bar.Increment()
	}
	progress.Wait()

	avg := total / time.Duration(n)
	fmt.Printf("run=%s queries=%d avg_latency=%s\n", runID, n, avg)

	if parts, err := disk.Partitions(false); err == nil {
		for _, p := range parts {
			if usage, err := disk.Usage(p.Mountpoint); err == nil && usage.Path == "/" {
				fmt.Printf("root device: %s (%.1f%% used)\n", p.Device, usage.UsedPercent)
			}
		}
	}
	return nil
}
