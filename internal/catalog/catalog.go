// Package catalog holds the immutable region, location and item tables of
// one game together with their named groups.
package catalog

import (
	"errors"
	"fmt"

	"github.com/Miro-n1/archipelago-manuals/internal/suggest"
)

var ErrNotFound = errors.New("not in catalog")

type Class string

const (
	Progression Class = "progression"
	Useful      Class = "useful"
	Filler      Class = "filler"
)

type Item struct {
	Name   string
	Count  int
	Class  Class
	Groups []string
}

type Location struct {
	Name   string
	Groups []string
	// Locked names an event placed at the location before generation,
	// such as "Victory". Locked locations are never fillable.
	Locked string
}

type Region struct {
	Name      string
	Locations []Location
}

type Catalog struct {
	game       string
	regions    []Region
	items      []Item
	regionIdx  map[string]int
	itemIdx    map[string]int
	locations  map[string]Location
	locRegion  map[string]string
	locOrder   []string
	locGroups  map[string][]string
	itemGroups map[string][]string
}

// New indexes regions and items and checks that every location belongs to
// exactly one region.
func New(game string, regions []Region, items []Item) (*Catalog, error) {
	if game == "" {
		return nil, errors.New("game name is required")
	}
	c := &Catalog{
		game:       game,
		regions:    regions,
		items:      items,
		regionIdx:  make(map[string]int, len(regions)),
		itemIdx:    make(map[string]int, len(items)),
		locations:  make(map[string]Location),
		locRegion:  make(map[string]string),
		locGroups:  make(map[string][]string),
		itemGroups: make(map[string][]string),
	}
	for i, r := range regions {
		if r.Name == "" {
			return nil, fmt.Errorf("%s: region %d has no name", game, i)
		}
		if _, dup := c.regionIdx[r.Name]; dup {
			return nil, fmt.Errorf("%s: duplicate region %q", game, r.Name)
		}
		c.regionIdx[r.Name] = i
		for _, loc := range r.Locations {
			if loc.Name == "" {
				return nil, fmt.Errorf("%s: unnamed location in region %q", game, r.Name)
			}
			if owner, dup := c.locRegion[loc.Name]; dup {
				return nil, fmt.Errorf("%s: location %q is in regions %q and %q", game, loc.Name, owner, r.Name)
			}
			c.locations[loc.Name] = loc
			c.locRegion[loc.Name] = r.Name
			c.locOrder = append(c.locOrder, loc.Name)
			for _, g := range loc.Groups {
				c.locGroups[g] = append(c.locGroups[g], loc.Name)
			}
		}
	}
	for i, it := range items {
		if it.Name == "" {
			return nil, fmt.Errorf("%s: item %d has no name", game, i)
		}
		if _, dup := c.itemIdx[it.Name]; dup {
			return nil, fmt.Errorf("%s: duplicate item %q", game, it.Name)
		}
		if it.Count < 1 {
			return nil, fmt.Errorf("%s: item %q must have a positive count, got %d", game, it.Name, it.Count)
		}
		switch it.Class {
		case Progression, Useful, Filler:
		default:
			return nil, fmt.Errorf("%s: item %q has unknown class %q", game, it.Name, it.Class)
		}
		c.itemIdx[it.Name] = i
		for _, g := range it.Groups {
			c.itemGroups[g] = append(c.itemGroups[g], it.Name)
		}
	}
	return c, nil
}

func (c *Catalog) Game() string { return c.game }

func (c *Catalog) Regions() []Region { return c.regions }

func (c *Catalog) Items() []Item { return c.items }

// LocationNames lists every location in region order.
func (c *Catalog) LocationNames() []string { return c.locOrder }

func (c *Catalog) Region(name string) (Region, error) {
	i, ok := c.regionIdx[name]
	if !ok {
		return Region{}, c.missing("region", name, mapKeys(c.regionIdx))
	}
	return c.regions[i], nil
}

func (c *Catalog) Location(name string) (Location, error) {
	loc, ok := c.locations[name]
	if !ok {
		return Location{}, c.missing("location", name, c.locOrder)
	}
	return loc, nil
}

// RegionOf returns the region owning a location.
func (c *Catalog) RegionOf(location string) (string, error) {
	r, ok := c.locRegion[location]
	if !ok {
		return "", c.missing("location", location, c.locOrder)
	}
	return r, nil
}

func (c *Catalog) Item(name string) (Item, error) {
	i, ok := c.itemIdx[name]
	if !ok {
		return Item{}, c.missing("item", name, mapKeys(c.itemIdx))
	}
	return c.items[i], nil
}

// LocationGroup lists the members of a named location group in catalog order.
func (c *Catalog) LocationGroup(name string) ([]string, error) {
	members, ok := c.locGroups[name]
	if !ok {
		return nil, c.missing("location group", name, mapKeys(c.locGroups))
	}
	return members, nil
}

// ItemGroup lists the members of a named item group in catalog order.
func (c *Catalog) ItemGroup(name string) ([]string, error) {
	members, ok := c.itemGroups[name]
	if !ok {
		return nil, c.missing("item group", name, mapKeys(c.itemGroups))
	}
	return members, nil
}

func (c *Catalog) missing(kind, name string, known []string) error {
	return fmt.Errorf("%w: %s %s %q%s", ErrNotFound, c.game, kind, name, suggest.Hint(name, known))
}

func mapKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
