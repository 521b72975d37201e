package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Miro-n1/archipelago-manuals/internal/games"
	"github.com/Miro-n1/archipelago-manuals/internal/ledger"
	"github.com/Miro-n1/archipelago-manuals/internal/metrics"
	"github.com/Miro-n1/archipelago-manuals/internal/multiworld"
	"github.com/Miro-n1/archipelago-manuals/internal/options"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code so deferred cleanup always happens.
func run(args []string) (code int) {
	var seed int64
	var workers int
	var ledgerPath string
	var replay string
	var history int
	var metricsPath string
	var listGames bool
	var dumpJSON bool
	var verbose bool

	fs := flag.NewFlagSet("curate", flag.ContinueOnError)
	fs.Int64Var(&seed, "seed", 0, "generation seed (0 picks one from the clock)")
	fs.IntVar(&workers, "workers", 0, "players curated at once (0 uses GOMAXPROCS)")
	fs.StringVar(&ledgerPath, "ledger", "", "SQLite ledger to record runs in")
	fs.StringVar(&replay, "replay", "", "replay a recorded run id from -ledger and verify its digests")
	fs.IntVar(&history, "history", 0, "list the N most recent runs in -ledger")
	fs.StringVar(&metricsPath, "metrics", "", "write curation metrics to this file in Prometheus text format")
	fs.BoolVar(&listGames, "list-games", false, "list supported games and their options")
	fs.BoolVar(&dumpJSON, "json", false, "print curated snapshots as JSON")
	fs.BoolVar(&verbose, "v", false, "debug logging")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: curate [flags] player.yaml...\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	reg, err := games.Builtin()
	if err != nil {
		return fail(err)
	}
	if listGames {
		printGames(reg)
		return 0
	}

	var book *ledger.Ledger
	if ledgerPath != "" {
		book, err = ledger.Open(ledgerPath)
		if err != nil {
			return fail(err)
		}
		defer book.Close()
	}
	if history > 0 {
		if book == nil {
			return fail(errors.New("-history requires -ledger"))
		}
		runs, err := book.Recent(history)
		if err != nil {
			return fail(err)
		}
		printHistory(runs)
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	registry := prometheus.NewRegistry()
	if metricsPath != "" {
		defer func() {
			if err := prometheus.WriteToTextfile(metricsPath, registry); err != nil {
				logger.Error("write metrics", "path", metricsPath, "error", err)
				code = max(code, 1)
			}
		}()
	}
	gen := multiworld.New(reg,
		multiworld.WithLogger(logger),
		multiworld.WithMetrics(metrics.New(registry)),
		multiworld.WithWorkers(workers),
	)

	if replay != "" {
		if book == nil {
			return fail(errors.New("-replay requires -ledger"))
		}
		return replayRun(ctx, gen, book, replay)
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}
	files, err := options.LoadPlayerFiles(fs.Args()...)
	if err != nil {
		return fail(err)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	report, err := gen.Generate(ctx, seed, multiworld.PlayersFromFiles(files))
	if err != nil {
		return fail(err)
	}
	if book != nil {
		if err := book.Record(report); err != nil {
			return fail(fmt.Errorf("record run: %w", err))
		}
	}
	if dumpJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		for _, o := range report.Outcomes {
			if o.Result != nil {
				if err := enc.Encode(o.Result.Snapshot); err != nil {
					return fail(err)
				}
			}
		}
	} else {
		printReport(report)
	}
	if len(report.Failed()) > 0 {
		return 1
	}
	return 0
}

func replayRun(ctx context.Context, gen *multiworld.Generator, book *ledger.Ledger, raw string) int {
	id, err := uuid.Parse(raw)
	if err != nil {
		return fail(fmt.Errorf("run id %q: %w", raw, err))
	}
	run, entries, err := book.Run(id)
	if err != nil {
		return fail(err)
	}
	players, err := ledger.Players(entries)
	if err != nil {
		return fail(err)
	}
	report, err := gen.Generate(ctx, run.Seed, players)
	if err != nil {
		return fail(err)
	}
	mismatches := ledger.Verify(entries, report)
	printVerify(run, len(entries), mismatches)
	if len(mismatches) > 0 {
		return 1
	}
	return 0
}

func fail(err error) int {
	fmt.Fprintln(os.Stderr, err)
	return 1
}
