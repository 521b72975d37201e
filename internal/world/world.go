// Package world holds the mutable per-player view of a catalog while it is
// curated: surviving locations, the item pool and the precollected items.
package world

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/Miro-n1/archipelago-manuals/internal/catalog"
)

var (
	ErrFrozen      = errors.New("world is frozen")
	ErrNotFillable = errors.New("location is not fillable")
	ErrNotInPool   = errors.New("item not in pool")
)

type World struct {
	player  int
	catalog *catalog.Catalog

	active      mapset.Set[string]
	locked      map[string]string
	pool        *Pool
	precollect  []string
	discarded   []string
	removedLocs int

	fillable      int
	fillableValid bool
	frozen        bool
}

// New instantiates a world from the catalog with every location active and
// every item copy in the pool.
func New(player int, cat *catalog.Catalog) *World {
	w := &World{
		player:  player,
		catalog: cat,
		active:  mapset.New[string](),
		locked:  make(map[string]string),
		pool:    NewPool(),
	}
	for _, r := range cat.Regions() {
		for _, loc := range r.Locations {
			w.active.Put(loc.Name)
			if loc.Locked != "" {
				w.locked[loc.Name] = loc.Locked
			}
		}
	}
	for _, it := range cat.Items() {
		w.pool.Add(it.Name, it.Count)
	}
	return w
}

func (w *World) Player() int { return w.player }

func (w *World) Catalog() *catalog.Catalog { return w.catalog }

func (w *World) Pool() *Pool { return w.pool }

func (w *World) Frozen() bool { return w.frozen }

func (w *World) Precollected() []string {
	return append([]string(nil), w.precollect...)
}

func (w *World) Discarded() []string {
	return append([]string(nil), w.discarded...)
}

// Active reports whether a location survives curation so far.
func (w *World) Active(location string) bool {
	return w.active.Has(location)
}

func (w *World) ActiveCount() int { return w.active.Size() }

// ActiveIn lists the surviving locations of a region in catalog order.
func (w *World) ActiveIn(region string) ([]string, error) {
	r, err := w.catalog.Region(region)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, loc := range r.Locations {
		if w.active.Has(loc.Name) {
			out = append(out, loc.Name)
		}
	}
	return out, nil
}

// ActiveInGroup lists the surviving members of a location group.
func (w *World) ActiveInGroup(group string) ([]string, error) {
	members, err := w.catalog.LocationGroup(group)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, name := range members {
		if w.active.Has(name) {
			out = append(out, name)
		}
	}
	return out, nil
}

// RemoveLocation drops a location from the active set. Removing one that is
// already gone is a no-op reporting false.
func (w *World) RemoveLocation(name string) (bool, error) {
	if w.frozen {
		return false, ErrFrozen
	}
	if _, err := w.catalog.Location(name); err != nil {
		return false, err
	}
	if !w.active.Has(name) {
		return false, nil
	}
	w.active.Remove(name)
	delete(w.locked, name)
	w.removedLocs++
	w.fillableValid = false
	return true, nil
}

// ExcludeRegion removes every location of a region and returns how many were
// still active.
func (w *World) ExcludeRegion(name string) (int, error) {
	if w.frozen {
		return 0, ErrFrozen
	}
	r, err := w.catalog.Region(name)
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, loc := range r.Locations {
		ok, err := w.RemoveLocation(loc.Name)
		if err != nil {
			return removed, err
		}
		if ok {
			removed++
		}
	}
	return removed, nil
}

// Discard removes one pool copy of an item without granting it.
func (w *World) Discard(item string) (bool, error) {
	if err := w.checkItem(item); err != nil {
		return false, err
	}
	if !w.pool.Remove(item) {
		return false, nil
	}
	w.discarded = append(w.discarded, item)
	return true, nil
}

// Precollect moves one pool copy of an item into the starting inventory.
func (w *World) Precollect(item string) (bool, error) {
	if err := w.checkItem(item); err != nil {
		return false, err
	}
	if !w.pool.Remove(item) {
		return false, nil
	}
	w.precollect = append(w.precollect, item)
	return true, nil
}

// Lock places one pool copy of item at a fillable location, making it
// non-fillable.
func (w *World) Lock(location, item string) error {
	if w.frozen {
		return ErrFrozen
	}
	if _, err := w.catalog.Location(location); err != nil {
		return err
	}
	if err := w.checkItem(item); err != nil {
		return err
	}
	if !w.active.Has(location) {
		return fmt.Errorf("%w: %q was removed", ErrNotFillable, location)
	}
	if held, ok := w.locked[location]; ok {
		return fmt.Errorf("%w: %q already holds %q", ErrNotFillable, location, held)
	}
	if !w.pool.Remove(item) {
		return fmt.Errorf("%w: %q", ErrNotInPool, item)
	}
	w.locked[location] = item
	w.fillableValid = false
	return nil
}

// LockedAt returns the item pre-placed at a location.
func (w *World) LockedAt(location string) (string, bool) {
	item, ok := w.locked[location]
	return item, ok
}

// Fillable reports whether a location is active and holds no locked item.
func (w *World) Fillable(location string) bool {
	if !w.active.Has(location) {
		return false
	}
	_, locked := w.locked[location]
	return !locked
}

// FillableCount counts active, unlocked locations. The result is cached until
// the next removal or lock.
func (w *World) FillableCount() int {
	if !w.fillableValid {
		w.fillable = w.active.Size() - len(w.locked)
		w.fillableValid = true
	}
	return w.fillable
}

// Freeze ends the mutation window.
func (w *World) Freeze() {
	w.frozen = true
}

func (w *World) checkItem(item string) error {
	if w.frozen {
		return ErrFrozen
	}
	_, err := w.catalog.Item(item)
	return err
}
