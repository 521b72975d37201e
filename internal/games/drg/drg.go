// Package drg curates Deep Rock Galactic worlds. Short mode plays a handful
// of assignments; long mode plays a shuffled subset of mission and class
// pairings towards a completion goal.
package drg

import (
	"fmt"

	"github.com/Miro-n1/archipelago-manuals/internal/catalog"
	"github.com/Miro-n1/archipelago-manuals/internal/curate"
	"github.com/Miro-n1/archipelago-manuals/internal/options"
)

const Game = "Deep Rock Galactic"

type Profile struct {
	cat  *catalog.Catalog
	opts *options.Set
}

func New() (*Profile, error) {
	cat, err := newCatalog()
	if err != nil {
		return nil, fmt.Errorf("drg catalog: %w", err)
	}
	opts, err := newOptions()
	if err != nil {
		return nil, fmt.Errorf("drg options: %w", err)
	}
	return &Profile{cat: cat, opts: opts}, nil
}

func (p *Profile) Game() string              { return Game }
func (p *Profile) Catalog() *catalog.Catalog { return p.cat }
func (p *Profile) Options() *options.Set     { return p.opts }
func (p *Profile) Plan() curate.Plan         { return plan() }
