// Package games registers the built-in curation profiles by game name.
package games

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Miro-n1/archipelago-manuals/internal/curate"
	"github.com/Miro-n1/archipelago-manuals/internal/games/drg"
	"github.com/Miro-n1/archipelago-manuals/internal/games/pla"
	"github.com/Miro-n1/archipelago-manuals/internal/suggest"
)

var ErrUnknownGame = errors.New("unknown game")

type Registry struct {
	profiles map[string]curate.Profile
}

func NewRegistry(profiles ...curate.Profile) (*Registry, error) {
	r := &Registry{profiles: make(map[string]curate.Profile, len(profiles))}
	for _, p := range profiles {
		if _, dup := r.profiles[p.Game()]; dup {
			return nil, fmt.Errorf("game %q registered twice", p.Game())
		}
		r.profiles[p.Game()] = p
	}
	return r, nil
}

// Builtin returns a registry holding every shipped profile.
func Builtin() (*Registry, error) {
	d, err := drg.New()
	if err != nil {
		return nil, err
	}
	p, err := pla.New()
	if err != nil {
		return nil, err
	}
	return NewRegistry(d, p)
}

func (r *Registry) Lookup(game string) (curate.Profile, error) {
	if p, ok := r.profiles[game]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w %q%s", ErrUnknownGame, game, suggest.Hint(game, r.Games()))
}

// Games lists registered game names in sorted order.
func (r *Registry) Games() []string {
	out := make([]string, 0, len(r.profiles))
	for g := range r.profiles {
		out = append(out, g)
	}
	sort.Strings(out)
	return out
}
