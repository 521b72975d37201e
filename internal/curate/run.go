package curate

import (
	"fmt"
	"log/slog"
	"maps"

	"github.com/Miro-n1/archipelago-manuals/internal/metrics"
	"github.com/Miro-n1/archipelago-manuals/internal/options"
	"github.com/Miro-n1/archipelago-manuals/internal/rng"
	"github.com/Miro-n1/archipelago-manuals/internal/world"
)

// Run is the state of one player's curation as seen by rules.
type Run struct {
	World   *world.World
	Stream  *rng.Stream
	Options options.Values

	game     string
	resolved map[string]int
	goals    []selectedGoal
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

type selectedGoal struct {
	goal     Goal
	selected string
}

func newRun(game string, w *world.World, stream *rng.Stream, values options.Values, logger *slog.Logger, m *metrics.Metrics) *Run {
	return &Run{
		World:    w,
		Stream:   stream,
		Options:  values,
		game:     game,
		resolved: make(map[string]int),
		logger:   logger,
		metrics:  m,
	}
}

// Value returns the value published for key earlier in the run, falling
// back to the player's option.
func (r *Run) Value(key string) int {
	if v, ok := r.resolved[key]; ok {
		return v
	}
	return r.Options.Int(key)
}

// Publish records the effective value of key after clamping so later phases
// read it instead of the raw option.
func (r *Run) Publish(key string, v int) {
	r.resolved[key] = v
}

// Resolved lists every value published during the run.
func (r *Run) Resolved() map[string]int {
	return maps.Clone(r.resolved)
}

func (r *Run) Logger() *slog.Logger { return r.logger }

// Discard removes one copy of item from the pool. A strict discard of an item
// that is not in the pool fails with ErrMissingItem.
func (r *Run) Discard(item string, strict bool) (bool, error) {
	ok, err := r.World.Discard(item)
	if err != nil {
		return false, catalogErr(err)
	}
	if !ok {
		return false, r.missing("discard", item, strict)
	}
	r.metrics.AddPoolMutations(r.game, "discard", 1)
	return true, nil
}

// Precollect moves one copy of item from the pool to the starting inventory.
func (r *Run) Precollect(item string, strict bool) (bool, error) {
	ok, err := r.World.Precollect(item)
	if err != nil {
		return false, catalogErr(err)
	}
	if !ok {
		return false, r.missing("precollect", item, strict)
	}
	r.metrics.AddPoolMutations(r.game, "precollect", 1)
	return true, nil
}

func (r *Run) RemoveLocation(name string) (bool, error) {
	ok, err := r.World.RemoveLocation(name)
	return ok, catalogErr(err)
}

func (r *Run) ExcludeRegion(name string) (int, error) {
	n, err := r.World.ExcludeRegion(name)
	return n, catalogErr(err)
}

func (r *Run) Lock(location, item string) error {
	if err := r.World.Lock(location, item); err != nil {
		return catalogErr(err)
	}
	r.metrics.AddPoolMutations(r.game, "lock", 1)
	return nil
}

func (r *Run) missing(action, item string, strict bool) error {
	if strict {
		return fmt.Errorf("%w: %s %q", ErrMissingItem, action, item)
	}
	r.logger.Debug("item already gone from pool", "action", action, "item", item)
	return nil
}
