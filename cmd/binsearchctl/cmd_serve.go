package main

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/jellydator/ttlcache/v3"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	binsearch "github.com/tecnickcom/binsearch-go"
	"github.com/tecnickcom/binsearch-go/mappedfile"
	"github.com/tecnickcom/binsearch-go/obsmetrics"
)

func newCmd_Serve() *cli.Command {
	return &cli.Command{
		Name:        "serve",
		Usage:       "Watch a config file and keep a hot-reloadable MappedFile open for repeated queries.",
		Description: "On config change, opens and configures a new MappedFile and swaps it in atomically, draining in-flight queries against the old one before closing it.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Required: true},
		},
		Action: func(c *cli.Context) error {
			return runServe(c.Context, c.String("config"))
		},
	}
}

// generation ties a MappedFile to a WaitGroup tracking its in-flight
// queries: a new config load swaps the pointer, then waits for the
// previous generation's WaitGroup to drain before closing its MappedFile.
// There is no mutex protecting the MappedFile itself — only this
// swap-then-drain handshake, matching the rule that ConfigureColumns must
// never race with an in-flight query.
type generation struct {
	mf *mappedfile.MappedFile
	wg sync.WaitGroup
}

type server struct {
	current atomic.Pointer[generation]
	cache   *ttlcache.Cache[uint64, binsearch.Range]
}

func (s *server) load(path string) error {
	cfg, err := LoadLayoutConfig(path)
	if err != nil {
		return err
	}
	mf, err := mappedfile.Open(cfg.Path)
	if err != nil {
		return err
	}
	if err := mf.ConfigureColumns(cfg.ColumnWidths); err != nil {
		mf.Close()
		return fmt.Errorf("binsearchctl: configure columns: %w", err)
	}

	next := &generation{mf: mf}
	prev := s.current.Swap(next)
	obsmetrics.ConfigReloads.Inc()
	s.cache.DeleteAll()

	if prev != nil {
		go func() {
			prev.wg.Wait()
			prev.mf.Close()
		}()
	}
	return nil
}

func (s *server) query(search uint64) (binsearch.Range, bool) {
	if item := s.cache.Get(search); item != nil {
		return item.Value(), true
	}
	gen := s.current.Load()
	if gen == nil {
		return binsearch.Range{}, false
	}
	gen.wg.Add(1)
	defer gen.wg.Done()

	rng := binsearch.Range{First: 0, Last: gen.mf.NItems - 1}
	first, _ := binsearch.FindFirstBE[uint64](gen.mf.Bytes(), 8, 0, rng, search)
	last, _ := binsearch.FindLastBE[uint64](gen.mf.Bytes(), 8, 0, rng, search)
	if first > gen.mf.NItems-1 {
		return binsearch.Range{}, false
	}
	result := binsearch.Range{First: first, Last: last}
	s.cache.Set(search, result, ttlcache.DefaultTTL)
	return result, true
}

func runServe(ctx context.Context, configPath string) error {
	s := &server{cache: ttlcache.New[uint64, binsearch.Range](ttlcache.WithTTL[uint64, binsearch.Range](30 * time.Second))}
	go s.cache.Start()
	defer s.cache.Stop()

	if err := s.load(configPath); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("binsearchctl: fsnotify: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(configPath); err != nil {
		return fmt.Errorf("binsearchctl: watch %s: %w", configPath, err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case ev, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					slog.Info("config changed, reloading", "path", ev.Name)
					if err := s.load(configPath); err != nil {
						slog.Error("reload failed", "error", err)
					}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				slog.Error("watcher error", "error", err)
			}
		}
	})

	slog.Info("serve started", "config", configPath)
	return g.Wait()
}
