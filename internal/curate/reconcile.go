package curate

import (
	"fmt"

	"github.com/Miro-n1/archipelago-manuals/internal/catalog"
)

// Rung is one step of the fallback ladder. It applies while spare capacity
// is below Below and precollects Items plus every member of ItemGroups. A
// name listed twice is precollected twice.
type Rung struct {
	Name       string
	Below      int
	Items      []string
	ItemGroups []string
	Lenient    bool
}

// Bounded is an item whose copy count follows an option but may not exceed
// the spare capacity. Included copies count towards the required minimum.
type Bounded struct {
	Item     string
	Option   string
	Included int
}

// Reconcile fits the pool to the fillable locations: it climbs the ladder
// while capacity is short, clamps bounded items to what is left and trims
// filler copies to close the remaining gap.
type Reconcile struct {
	Ladder  []Rung
	Bounded []Bounded
}

func (rc Reconcile) Apply(r *Run) error {
	spare, err := rc.spare(r)
	if err != nil {
		return err
	}
	for _, rung := range rc.Ladder {
		if spare >= rung.Below {
			continue
		}
		items, err := expandItems(r, rung.Items, rung.ItemGroups)
		if err != nil {
			return err
		}
		moved := 0
		for _, name := range items {
			ok, err := r.Precollect(name, !rung.Lenient)
			if err != nil {
				return fmt.Errorf("rung %s: %w", rung.Name, err)
			}
			if ok {
				moved++
			}
		}
		before := spare
		if spare, err = rc.spare(r); err != nil {
			return err
		}
		r.logger.Info("fallback rung applied", "rung", rung.Name, "precollected", moved,
			"spare_before", before, "spare_after", spare)
		r.metrics.IncRung(r.game, rung.Name)
	}
	if spare < 0 {
		return fmt.Errorf("%w: %d more required items than fillable locations after fallback", ErrPoolInvariant, -spare)
	}

	for _, b := range rc.Bounded {
		copies := r.World.Pool().Count(b.Item)
		requested := r.Value(b.Option)
		q := min(requested, spare+b.Included, copies)
		q = max(q, min(b.Included, copies))
		if q < requested {
			r.logger.Warn("bounded quantity clamped", "item", b.Item, "option", b.Option,
				"requested", requested, "clamped", q, "spare", spare)
			r.metrics.IncClamp(r.game, b.Option)
		}
		for i := q; i < copies; i++ {
			if _, err := r.Discard(b.Item, true); err != nil {
				return err
			}
		}
		spare -= max(q-b.Included, 0)
		r.Publish(b.Option, q)
	}

	return rc.trimFiller(r)
}

// spare is fillable capacity minus the items that must be placed: the pool
// without filler copies and without optional bounded copies.
func (rc Reconcile) spare(r *Run) (int, error) {
	pool := r.World.Pool()
	required := pool.Len()
	for _, it := range r.World.Catalog().Items() {
		if it.Class == catalog.Filler {
			required -= pool.Count(it.Name)
		}
	}
	for _, b := range rc.Bounded {
		if _, err := r.World.Catalog().Item(b.Item); err != nil {
			return 0, catalogErr(err)
		}
		required -= max(pool.Count(b.Item)-b.Included, 0)
	}
	return r.World.FillableCount() - required, nil
}

func (rc Reconcile) trimFiller(r *Run) error {
	pool := r.World.Pool()
	excess := pool.Len() - r.World.FillableCount()
	if excess < 0 {
		return fmt.Errorf("%w: pool is %d items short of %d fillable locations", ErrPoolInvariant, -excess, r.World.FillableCount())
	}
	for _, it := range r.World.Catalog().Items() {
		if it.Class != catalog.Filler {
			continue
		}
		for excess > 0 && pool.Has(it.Name) {
			if _, err := r.Discard(it.Name, true); err != nil {
				return err
			}
			excess--
		}
	}
	if excess > 0 {
		return fmt.Errorf("%w: %d items over after trimming filler", ErrPoolInvariant, excess)
	}
	return nil
}
