package curate

import (
	"fmt"
)

// Rule is one curation step over a player's world.
type Rule interface {
	Apply(r *Run) error
}

type RuleFunc func(r *Run) error

func (f RuleFunc) Apply(r *Run) error { return f(r) }

// Numbered returns a namer that formats n into format.
func Numbered(format string) func(int) string {
	return func(n int) string { return fmt.Sprintf(format, n) }
}

// Exclude removes named regions, locations and items. Group names resolve
// through the catalog. Item discards are strict unless Lenient is set;
// AllCopies discards every remaining copy instead of one per name.
type Exclude struct {
	When           Condition
	Regions        []string
	Locations      []string
	LocationGroups []string
	Items          []string
	ItemGroups     []string
	AllCopies      bool
	Lenient        bool
}

func (e Exclude) Apply(r *Run) error {
	if !e.When.holds(r.Options) {
		return nil
	}
	for _, name := range e.Regions {
		if _, err := r.ExcludeRegion(name); err != nil {
			return err
		}
	}
	locations := append([]string(nil), e.Locations...)
	for _, g := range e.LocationGroups {
		members, err := r.World.Catalog().LocationGroup(g)
		if err != nil {
			return catalogErr(err)
		}
		locations = append(locations, members...)
	}
	for _, name := range locations {
		if _, err := r.RemoveLocation(name); err != nil {
			return err
		}
	}
	items, err := expandItems(r, e.Items, e.ItemGroups)
	if err != nil {
		return err
	}
	for _, name := range items {
		if e.AllCopies {
			if _, err := r.World.Catalog().Item(name); err != nil {
				return catalogErr(err)
			}
			for r.World.Pool().Has(name) {
				if _, err := r.Discard(name, true); err != nil {
					return err
				}
			}
			continue
		}
		if _, err := r.Discard(name, !e.Lenient); err != nil {
			return err
		}
	}
	return nil
}

// Counted trims numbered content above an option value: regions and
// locations named by format for value+1..Max, and Max-value copies of each
// listed item.
type Counted struct {
	When      Condition
	Option    string
	Max       int
	Regions   []string
	Locations []string
	Items     []string
}

func (c Counted) Apply(r *Run) error {
	if !c.When.holds(r.Options) {
		return nil
	}
	v := min(max(r.Value(c.Option), 0), c.Max)
	for n := v + 1; n <= c.Max; n++ {
		for _, f := range c.Regions {
			if _, err := r.ExcludeRegion(fmt.Sprintf(f, n)); err != nil {
				return err
			}
		}
		for _, f := range c.Locations {
			if _, err := r.RemoveLocation(fmt.Sprintf(f, n)); err != nil {
				return err
			}
		}
	}
	for _, item := range c.Items {
		for i := v; i < c.Max; i++ {
			if _, err := r.Discard(item, true); err != nil {
				return fmt.Errorf("%s: %w", c.Option, err)
			}
		}
	}
	return nil
}

// Choose applies the rule registered for the current value of an enumerated
// option. Values without a case do nothing.
type Choose struct {
	Option string
	Cases  map[int]Rule
}

func (c Choose) Apply(r *Run) error {
	rule, ok := c.Cases[r.Value(c.Option)]
	if !ok {
		return nil
	}
	return rule.Apply(r)
}

// ItemFamily keeps one member of a family of items named by count: the member
// for the clamped option value is precollected and every other member is
// discarded.
type ItemFamily struct {
	When   Condition
	Option string
	Name   func(int) string
	Min    int
	Max    int
}

func (f ItemFamily) Apply(r *Run) error {
	if !f.When.holds(r.Options) {
		return nil
	}
	v := min(max(r.Value(f.Option), f.Min), f.Max)
	for n := f.Min; n <= f.Max; n++ {
		name := f.Name(n)
		var err error
		if n == v {
			_, err = r.Precollect(name, true)
		} else {
			_, err = r.Discard(name, true)
		}
		if err != nil {
			return err
		}
	}
	r.Publish(f.Option, v)
	return nil
}

// Lock pre-places Item at Location. When Option is set Location is a format
// taking the option value.
type Lock struct {
	When     Condition
	Location string
	Option   string
	Item     string
}

func (l Lock) Apply(r *Run) error {
	if !l.When.holds(r.Options) {
		return nil
	}
	loc := l.Location
	if l.Option != "" {
		loc = fmt.Sprintf(l.Location, r.Value(l.Option))
	}
	if err := r.Lock(loc, l.Item); err != nil {
		return fmt.Errorf("lock %q at %q: %w", l.Item, loc, err)
	}
	r.logger.Debug("item locked", "location", loc, "item", l.Item)
	return nil
}

func expandItems(r *Run, items, groups []string) ([]string, error) {
	out := append([]string(nil), items...)
	for _, g := range groups {
		members, err := r.World.Catalog().ItemGroup(g)
		if err != nil {
			return nil, catalogErr(err)
		}
		out = append(out, members...)
	}
	return out, nil
}
