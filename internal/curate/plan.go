package curate

import (
	"github.com/Miro-n1/archipelago-manuals/internal/catalog"
	"github.com/Miro-n1/archipelago-manuals/internal/options"
)

// Plan is the ordered curation of one game. Rules run in list order within
// their phase.
type Plan struct {
	// Regions trims regions and locations before any item is touched.
	Regions []Rule
	// Starting draws starting inventory. Every selection draws in order
	// whatever the options are.
	Starting []Selection
	// Items discards and grants items after all starting draws.
	Items []Rule
	// Filler runs before reconciliation, typically locking event items.
	Filler    []Rule
	Reconcile Reconcile
	Goals     []Goal
}

// Profile is everything needed to curate one game.
type Profile interface {
	Game() string
	Catalog() *catalog.Catalog
	Options() *options.Set
	Plan() Plan
}
