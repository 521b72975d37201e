package curate

import (
	"fmt"
)

// Goal selects one member of a family of victory locations named by count.
// The selected count is the option value, lowered to the Ceiling value when
// one is set, clamped into Min..Max. Every other member is removed.
//
// Members must be locked locations so that removing them never changes the
// fillable count after reconciliation.
type Goal struct {
	When    Condition
	Option  string
	Ceiling string
	Name    func(int) string
	Min     int
	Max     int
}

func (g Goal) Apply(r *Run) error {
	if !g.When.holds(r.Options) {
		return nil
	}
	requested := r.Value(g.Option)
	v := requested
	if g.Ceiling != "" {
		v = min(v, r.Value(g.Ceiling))
	}
	v = min(max(v, g.Min), g.Max)
	if v != requested {
		r.logger.Warn("goal threshold clamped", "option", g.Option, "requested", requested, "clamped", v)
		r.metrics.IncClamp(r.game, g.Option)
	}

	selected := g.Name(v)
	for n := g.Min; n <= g.Max; n++ {
		name := g.Name(n)
		loc, err := r.World.Catalog().Location(name)
		if err != nil {
			return catalogErr(err)
		}
		if loc.Locked == "" {
			return fmt.Errorf("%w: goal member %q is fillable", ErrCatalog, name)
		}
		if name == selected {
			continue
		}
		if _, err := r.RemoveLocation(name); err != nil {
			return err
		}
	}
	if !r.World.Active(selected) {
		return fmt.Errorf("%w: selected goal %q was already removed", ErrGoalFamily, selected)
	}
	r.Publish(g.Option, v)
	r.goals = append(r.goals, selectedGoal{goal: g, selected: selected})
	r.logger.Info("goal selected", "option", g.Option, "goal", selected)
	return nil
}

func (g Goal) verify(r *Run, selected string) error {
	var active []string
	for n := g.Min; n <= g.Max; n++ {
		if name := g.Name(n); r.World.Active(name) {
			active = append(active, name)
		}
	}
	if len(active) != 1 || active[0] != selected {
		return fmt.Errorf("%w: %s expected only %q active, found %v", ErrGoalFamily, g.Option, selected, active)
	}
	return nil
}
