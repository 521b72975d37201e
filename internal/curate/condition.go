package curate

import (
	"slices"

	"github.com/Miro-n1/archipelago-manuals/internal/options"
)

// Condition gates a rule on resolved option values. The zero Condition
// always holds.
type Condition struct {
	keys []string
	test func(options.Values) bool
}

func (c Condition) holds(v options.Values) bool {
	return c.test == nil || c.test(v)
}

// Keys lists the options c reads.
func (c Condition) Keys() []string { return slices.Clone(c.keys) }

func Enabled(key string) Condition {
	return Condition{keys: []string{key}, test: func(v options.Values) bool { return v.Enabled(key) }}
}

func Disabled(key string) Condition {
	return Condition{keys: []string{key}, test: func(v options.Values) bool { return !v.Enabled(key) }}
}

func Equals(key string, want int) Condition {
	return Condition{keys: []string{key}, test: func(v options.Values) bool { return v.Int(key) == want }}
}

func In(key string, want ...int) Condition {
	return Condition{keys: []string{key}, test: func(v options.Values) bool { return slices.Contains(want, v.Int(key)) }}
}

func All(cs ...Condition) Condition {
	var keys []string
	for _, c := range cs {
		keys = append(keys, c.keys...)
	}
	return Condition{keys: keys, test: func(v options.Values) bool {
		for _, c := range cs {
			if !c.holds(v) {
				return false
			}
		}
		return true
	}}
}

func Not(c Condition) Condition {
	return Condition{keys: c.keys, test: func(v options.Values) bool { return !c.holds(v) }}
}
