package curate

import (
	"fmt"
	"maps"
	"slices"

	"github.com/Miro-n1/archipelago-manuals/internal/options"
)

// OptionKeys lists every option the plan reads, in plan order with
// duplicates removed. RuleFunc steps are opaque and contribute nothing.
func (p Plan) OptionKeys() []string {
	var keys []string
	seen := map[string]bool{}
	add := func(ks ...string) {
		for _, k := range ks {
			if k != "" && !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	rules := func(rs []Rule) {
		for _, r := range rs {
			add(ruleKeys(r)...)
		}
	}

	rules(p.Regions)
	for _, s := range p.Starting {
		add(s.When.Keys()...)
		add(s.Keep.Option, s.Precollect.Option)
	}
	rules(p.Items)
	rules(p.Filler)
	for _, b := range p.Reconcile.Bounded {
		add(b.Option)
	}
	for _, g := range p.Goals {
		add(g.When.Keys()...)
		add(g.Option, g.Ceiling)
	}
	return keys
}

func ruleKeys(r Rule) []string {
	switch r := r.(type) {
	case Exclude:
		return r.When.Keys()
	case Counted:
		return append(r.When.Keys(), r.Option)
	case ItemFamily:
		return append(r.When.Keys(), r.Option)
	case Lock:
		return append(r.When.Keys(), r.Option)
	case Choose:
		keys := []string{r.Option}
		for _, v := range slices.Sorted(maps.Keys(r.Cases)) {
			keys = append(keys, ruleKeys(r.Cases[v])...)
		}
		return keys
	}
	return nil
}

// checkOptions fails when the plan reads an option the player's values do
// not declare.
func checkOptions(p Plan, values options.Values) error {
	for _, k := range p.OptionKeys() {
		if _, err := values.Get(k); err != nil {
			return fmt.Errorf("%w: plan reads %w", ErrCatalog, err)
		}
	}
	return nil
}
