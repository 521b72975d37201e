// Package pla curates Pokémon Legends: Arceus worlds, a wisp hunt whose
// location set can be narrowed to fishing content.
package pla

import (
	"fmt"

	"github.com/Miro-n1/archipelago-manuals/internal/catalog"
	"github.com/Miro-n1/archipelago-manuals/internal/curate"
	"github.com/Miro-n1/archipelago-manuals/internal/options"
)

const Game = "Pokemon Legends Arceus"

type Profile struct {
	cat  *catalog.Catalog
	opts *options.Set
}

func New() (*Profile, error) {
	cat, err := newCatalog()
	if err != nil {
		return nil, fmt.Errorf("pla catalog: %w", err)
	}
	opts, err := newOptions()
	if err != nil {
		return nil, fmt.Errorf("pla options: %w", err)
	}
	return &Profile{cat: cat, opts: opts}, nil
}

func (p *Profile) Game() string              { return Game }
func (p *Profile) Catalog() *catalog.Catalog { return p.cat }
func (p *Profile) Options() *options.Set     { return p.opts }
func (p *Profile) Plan() curate.Plan         { return plan() }
