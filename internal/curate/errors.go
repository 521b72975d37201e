package curate

import (
	"errors"
	"fmt"

	"github.com/Miro-n1/archipelago-manuals/internal/catalog"
	"github.com/Miro-n1/archipelago-manuals/internal/world"
)

var (
	// ErrCatalog marks a rule that names something the catalog does not have.
	ErrCatalog = errors.New("catalog mismatch")
	// ErrMissingItem marks a strict step whose item is no longer in the pool.
	ErrMissingItem = errors.New("item not in pool")
	// ErrPoolInvariant marks a pool that cannot be made to match the number
	// of fillable locations.
	ErrPoolInvariant = errors.New("pool does not fit fillable locations")
	// ErrGoalFamily marks a goal family that does not end with exactly one
	// active member.
	ErrGoalFamily = errors.New("goal family is not unique")
)

// PhaseError reports which player and phase a curation failure happened in.
type PhaseError struct {
	Game   string
	Player int
	Phase  Phase
	Err    error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("%s player %d: %s: %v", e.Game, e.Player, e.Phase, e.Err)
}

func (e *PhaseError) Unwrap() error { return e.Err }

func catalogErr(err error) error {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrCatalog, err)
	case errors.Is(err, world.ErrNotInPool):
		return fmt.Errorf("%w: %w", ErrMissingItem, err)
	}
	return err
}
