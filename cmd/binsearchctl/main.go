package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
)

var gitCommitSHA = ""

var flagVerbose = &cli.BoolFlag{
	Name:  "verbose",
	Usage: "enable debug logging",
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, syscall.SIGTERM, syscall.SIGINT)
		select {
		case <-interrupt:
			fmt.Println()
			slog.Info("received interrupt signal")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(interrupt)
	}()

	app := &cli.App{
		Name:        "binsearchctl",
		Version:     gitCommitSHA,
		Description: "Generate, query and benchmark memory-mapped sorted binary data files.",
		Flags:       []cli.Flag{flagVerbose},
		Before: func(c *cli.Context) error {
			if c.Bool("verbose") {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}
			return nil
		},
		Commands: []*cli.Command{
			newCmd_Version(),
			newCmd_Generate(),
			newCmd_Query(),
			newCmd_Bench(),
			newCmd_Serve(),
			newCmd_Compare(),
		},
	}

	if err := app.RunContext(ctx, os.Args); err != nil {
		slog.Error("binsearchctl failed", "error", err)
		os.Exit(1)
	}
}
