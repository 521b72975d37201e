// Package multiworld curates every player of a seeded run, possibly across
// several games, in parallel.
package multiworld

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Miro-n1/archipelago-manuals/internal/curate"
	"github.com/Miro-n1/archipelago-manuals/internal/metrics"
	"github.com/Miro-n1/archipelago-manuals/internal/options"
	"github.com/Miro-n1/archipelago-manuals/internal/rng"
)

var ErrNoPlayers = errors.New("no players")

// Profiles resolves a game name to its curation profile.
type Profiles interface {
	Lookup(game string) (curate.Profile, error)
}

type Player struct {
	Slot     int
	Name     string
	Game     string
	Settings map[string]any
}

// PlayersFromFiles numbers player files into slots starting at 1.
func PlayersFromFiles(files []options.PlayerFile) []Player {
	out := make([]Player, len(files))
	for i, f := range files {
		out[i] = Player{Slot: i + 1, Name: f.Name, Game: f.Game, Settings: f.Settings}
	}
	return out
}

// Outcome is one player's result. Exactly one of Result and Err is set.
// Values holds every resolved option and is nil when the game is unknown.
type Outcome struct {
	Player      Player
	Adjustments []options.Adjustment
	Values      map[string]int
	Result      *curate.Result
	Err         error
}

type Report struct {
	RunID    uuid.UUID
	Seed     int64
	Started  time.Time
	Elapsed  time.Duration
	Outcomes []Outcome
}

// Failed lists the outcomes that carry an error.
func (r *Report) Failed() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.Err != nil {
			out = append(out, o)
		}
	}
	return out
}

type Generator struct {
	profiles Profiles
	logger   *slog.Logger
	metrics  *metrics.Metrics
	workers  int
	extra    []curate.Option
}

type Option func(*Generator)

func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) { g.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(g *Generator) { g.metrics = m }
}

// WithWorkers bounds how many players are curated at once.
func WithWorkers(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.workers = n
		}
	}
}

// WithPipelineOptions passes extra options, such as hooks or a placer, to
// every player's pipeline.
func WithPipelineOptions(opts ...curate.Option) Option {
	return func(g *Generator) { g.extra = append(g.extra, opts...) }
}

func New(profiles Profiles, opts ...Option) *Generator {
	g := &Generator{
		profiles: profiles,
		logger:   slog.Default(),
		workers:  runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate curates each player from its own stream of seed. A player that
// fails does not stop the others; its error is kept on its outcome. The
// returned error is only set for invalid input or a cancelled context.
func (g *Generator) Generate(ctx context.Context, seed int64, players []Player) (*Report, error) {
	if len(players) == 0 {
		return nil, ErrNoPlayers
	}
	slots := make(map[int]bool, len(players))
	for _, p := range players {
		if p.Slot < 1 {
			return nil, fmt.Errorf("player %q: slot must be positive, got %d", p.Name, p.Slot)
		}
		if slots[p.Slot] {
			return nil, fmt.Errorf("slot %d assigned twice", p.Slot)
		}
		slots[p.Slot] = true
	}

	report := &Report{
		RunID:    uuid.New(),
		Seed:     seed,
		Started:  time.Now(),
		Outcomes: make([]Outcome, len(players)),
	}
	logger := g.logger.With("run", report.RunID.String(), "seed", seed)
	logger.Info("generation started", "players", len(players), "workers", g.workers)
	g.metrics.ObservePlayers(len(players))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.workers)
	for i, p := range players {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			report.Outcomes[i] = g.curate(ctx, logger, seed, p)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("generate seed %d: %w", seed, err)
	}

	report.Elapsed = time.Since(report.Started)
	logger.Info("generation finished",
		"failed", len(report.Failed()),
		"elapsed", report.Elapsed)
	return report, nil
}

func (g *Generator) curate(ctx context.Context, logger *slog.Logger, seed int64, p Player) Outcome {
	out := Outcome{Player: p}
	logger = logger.With("slot", p.Slot, "name", p.Name)

	profile, err := g.profiles.Lookup(p.Game)
	if err != nil {
		out.Err = fmt.Errorf("slot %d (%s): %w", p.Slot, p.Name, err)
		logger.Error("player skipped", "error", err)
		return out
	}
	values, adj := profile.Options().Resolve(p.Settings)
	for _, a := range adj {
		logger.Warn("option adjusted", "option", a.Key, "raw", a.Raw, "value", a.Value, "reason", a.Reason)
	}
	out.Adjustments = adj
	out.Values = values.Map()

	opts := append([]curate.Option{
		curate.WithLogger(logger),
		curate.WithMetrics(g.metrics),
	}, g.extra...)
	res, err := curate.New(profile, opts...).Curate(ctx, p.Slot, values, rng.ForPlayer(seed, p.Slot))
	if err != nil {
		out.Err = err
		return out
	}
	out.Result = res
	return out
}
