package curate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Miro-n1/archipelago-manuals/internal/metrics"
	"github.com/Miro-n1/archipelago-manuals/internal/options"
	"github.com/Miro-n1/archipelago-manuals/internal/rng"
	"github.com/Miro-n1/archipelago-manuals/internal/world"
)

type Phase string

const (
	PhaseRegions       Phase = "regions"
	PhaseStartingItems Phase = "starting_items"
	PhaseFillerItems   Phase = "filler_items"
	PhaseRules         Phase = "rules"
	PhaseFinalize      Phase = "finalize"
)

// Phases lists the curation phases in execution order.
var Phases = []Phase{PhaseRegions, PhaseStartingItems, PhaseFillerItems, PhaseRules, PhaseFinalize}

// Hooks lets a host run its own work at phase boundaries. The world is
// consistent whenever a hook is called; After(PhaseFinalize) sees it frozen.
type Hooks interface {
	Before(ctx context.Context, phase Phase, w *world.World) error
	After(ctx context.Context, phase Phase, w *world.World) error
}

// Placer receives the curated world once curation succeeds.
type Placer interface {
	Place(ctx context.Context, snap *world.Snapshot) error
}

type Pipeline struct {
	profile Profile
	logger  *slog.Logger
	metrics *metrics.Metrics
	hooks   Hooks
	placer  Placer
	tracer  trace.Tracer
}

type Option func(*Pipeline)

func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) { p.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(p *Pipeline) { p.metrics = m }
}

func WithHooks(h Hooks) Option {
	return func(p *Pipeline) { p.hooks = h }
}

func WithPlacer(pl Placer) Option {
	return func(p *Pipeline) { p.placer = pl }
}

func WithTracer(t trace.Tracer) Option {
	return func(p *Pipeline) { p.tracer = t }
}

func New(profile Profile, opts ...Option) *Pipeline {
	p := &Pipeline{
		profile: profile,
		logger:  slog.Default(),
		tracer:  otel.Tracer("github.com/Miro-n1/archipelago-manuals/internal/curate"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Pipeline) Profile() Profile { return p.profile }

type Result struct {
	Game     string
	Player   int
	Snapshot *world.Snapshot
	Resolved map[string]int
	Draws    int
}

// Curate runs every phase for one player. The stream must belong to this
// player alone. Failures are returned as *PhaseError and leave the world
// as it was when the failing rule stopped.
func (p *Pipeline) Curate(ctx context.Context, player int, values options.Values, stream *rng.Stream) (*Result, error) {
	game := p.profile.Game()
	w := world.New(player, p.profile.Catalog())
	run := newRun(game, w, stream, values, p.logger.With("game", game, "player", player), p.metrics)
	plan := p.profile.Plan()
	if err := checkOptions(plan, values); err != nil {
		p.metrics.IncCuration(game, "failed")
		run.logger.Error("curation failed", "phase", PhaseRegions, "error", err)
		return nil, &PhaseError{Game: game, Player: player, Phase: PhaseRegions, Err: err}
	}

	phases := []struct {
		phase Phase
		fn    func() error
	}{
		{PhaseRegions, func() error { return applyRules(run, plan.Regions) }},
		{PhaseStartingItems, func() error {
			for _, s := range plan.Starting {
				if err := s.Apply(run); err != nil {
					return err
				}
			}
			return applyRules(run, plan.Items)
		}},
		{PhaseFillerItems, func() error {
			if err := applyRules(run, plan.Filler); err != nil {
				return err
			}
			return plan.Reconcile.Apply(run)
		}},
		{PhaseRules, func() error {
			for _, g := range plan.Goals {
				if err := g.Apply(run); err != nil {
					return err
				}
			}
			return nil
		}},
		{PhaseFinalize, func() error { return finalize(run) }},
	}

	for _, ph := range phases {
		if err := p.runPhase(ctx, run, ph.phase, ph.fn); err != nil {
			p.metrics.IncCuration(game, "failed")
			run.logger.Error("curation failed", "phase", ph.phase, "error", err)
			return nil, &PhaseError{Game: game, Player: player, Phase: ph.phase, Err: err}
		}
	}

	snap := w.Snapshot()
	if p.placer != nil {
		if err := p.placer.Place(ctx, snap); err != nil {
			p.metrics.IncCuration(game, "placement_failed")
			return nil, fmt.Errorf("%s player %d: placement: %w", game, player, err)
		}
	}
	p.metrics.IncCuration(game, "ok")
	run.logger.Info("curation complete",
		"locations", snap.Fillable,
		"pool", snap.PoolSize(),
		"precollected", len(snap.Precollected),
		"draws", stream.Draws())

	return &Result{
		Game:     game,
		Player:   player,
		Snapshot: snap,
		Resolved: run.Resolved(),
		Draws:    stream.Draws(),
	}, nil
}

func (p *Pipeline) runPhase(ctx context.Context, run *Run, phase Phase, fn func() error) error {
	ctx, span := p.tracer.Start(ctx, "curate."+string(phase), trace.WithAttributes(
		attribute.String("game", run.game),
		attribute.Int("player", run.World.Player()),
	))
	defer span.End()
	defer p.metrics.ObservePhase(run.game, string(phase), time.Now())

	err := p.phase(ctx, run, phase, fn)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetAttributes(
		attribute.Int("pool", run.World.Pool().Len()),
		attribute.Int("fillable", run.World.FillableCount()),
	)
	run.logger.Debug("phase complete", "phase", phase,
		"pool", run.World.Pool().Len(), "fillable", run.World.FillableCount())
	return nil
}

func (p *Pipeline) phase(ctx context.Context, run *Run, phase Phase, fn func() error) error {
	if p.hooks != nil {
		if err := p.hooks.Before(ctx, phase, run.World); err != nil {
			return fmt.Errorf("before hook: %w", err)
		}
	}
	if err := fn(); err != nil {
		return err
	}
	if p.hooks != nil {
		if err := p.hooks.After(ctx, phase, run.World); err != nil {
			return fmt.Errorf("after hook: %w", err)
		}
	}
	return nil
}

func finalize(run *Run) error {
	if pool, fillable := run.World.Pool().Len(), run.World.FillableCount(); pool != fillable {
		return fmt.Errorf("%w: %d items for %d fillable locations", ErrPoolInvariant, pool, fillable)
	}
	for _, g := range run.goals {
		if err := g.goal.verify(run, g.selected); err != nil {
			return err
		}
	}
	run.World.Freeze()
	return nil
}

func applyRules(run *Run, rules []Rule) error {
	for _, rule := range rules {
		if err := rule.Apply(run); err != nil {
			return err
		}
	}
	return nil
}
