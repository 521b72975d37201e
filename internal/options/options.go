// Package options declares per-game configuration and resolves raw player
// settings into clamped integer values.
package options

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/Miro-n1/archipelago-manuals/internal/suggest"
)

var ErrUnknownOption = errors.New("unknown option")

type Kind string

const (
	KindRange  Kind = "range"
	KindToggle Kind = "toggle"
	KindChoice Kind = "choice"
)

type Named struct {
	Name  string
	Value int
}

type Option struct {
	Key     string
	Display string
	Kind    Kind
	Min     int
	Max     int
	Default int
	Choices []Named
}

func Range(key, display string, min, max, def int) Option {
	return Option{Key: key, Display: display, Kind: KindRange, Min: min, Max: max, Default: def}
}

func Toggle(key, display string, def bool) Option {
	o := Option{Key: key, Display: display, Kind: KindToggle, Min: 0, Max: 1}
	if def {
		o.Default = 1
	}
	return o
}

func Choice(key, display string, def int, choices ...Named) Option {
	o := Option{Key: key, Display: display, Kind: KindChoice, Default: def, Choices: choices}
	for i, c := range choices {
		if i == 0 || c.Value < o.Min {
			o.Min = c.Value
		}
		if i == 0 || c.Value > o.Max {
			o.Max = c.Value
		}
	}
	return o
}

func (o Option) choice(v int) (Named, bool) {
	for _, c := range o.Choices {
		if c.Value == v {
			return c, true
		}
	}
	return Named{}, false
}

func (o Option) validate() error {
	if o.Key == "" {
		return errors.New("option key is required")
	}
	switch o.Kind {
	case KindRange, KindToggle:
		if o.Min > o.Max {
			return fmt.Errorf("option %s: min %d exceeds max %d", o.Key, o.Min, o.Max)
		}
		if o.Default < o.Min || o.Default > o.Max {
			return fmt.Errorf("option %s: default %d outside %d..%d", o.Key, o.Default, o.Min, o.Max)
		}
	case KindChoice:
		if len(o.Choices) == 0 {
			return fmt.Errorf("option %s: choice needs at least one value", o.Key)
		}
		seen := make(map[int]bool, len(o.Choices))
		for _, c := range o.Choices {
			if seen[c.Value] {
				return fmt.Errorf("option %s: duplicate choice value %d", o.Key, c.Value)
			}
			seen[c.Value] = true
		}
		if _, ok := o.choice(o.Default); !ok {
			return fmt.Errorf("option %s: default %d is not a declared choice", o.Key, o.Default)
		}
	default:
		return fmt.Errorf("option %s: unknown kind %q", o.Key, o.Kind)
	}
	return nil
}

// Set is the ordered option declaration of one game.
type Set struct {
	defs  []Option
	index map[string]int
}

func NewSet(defs ...Option) (*Set, error) {
	s := &Set{defs: defs, index: make(map[string]int, len(defs))}
	for i, o := range defs {
		if err := o.validate(); err != nil {
			return nil, err
		}
		if _, dup := s.index[o.Key]; dup {
			return nil, fmt.Errorf("duplicate option %s", o.Key)
		}
		s.index[o.Key] = i
	}
	return s, nil
}

func (s *Set) Options() []Option { return s.defs }

func (s *Set) Lookup(key string) (Option, bool) {
	i, ok := s.index[key]
	if !ok {
		return Option{}, false
	}
	return s.defs[i], true
}

func (s *Set) keys() []string {
	out := make([]string, 0, len(s.defs))
	for _, o := range s.defs {
		out = append(out, o.Key)
	}
	return out
}

// Adjustment records a raw value that did not fit its declared domain.
type Adjustment struct {
	Key    string
	Raw    any
	Value  int
	Reason string
}

func (a Adjustment) String() string {
	return fmt.Sprintf("%s: %v -> %d (%s)", a.Key, a.Raw, a.Value, a.Reason)
}

// Defaults resolves every option to its declared default.
func (s *Set) Defaults() Values {
	v, _ := s.Resolve(nil)
	return v
}

// Resolve maps raw player settings onto the declared domains. Values outside
// a range are clamped to the nearest bound, unparseable values fall back to
// the default and unknown keys are ignored. Every such case is reported.
func (s *Set) Resolve(raw map[string]any) (Values, []Adjustment) {
	vals := make(map[string]int, len(s.defs))
	var adj []Adjustment
	for _, o := range s.defs {
		vals[o.Key] = o.Default
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		rv := raw[k]
		o, ok := s.Lookup(k)
		if !ok {
			adj = append(adj, Adjustment{Key: k, Raw: rv, Reason: "unknown option" + suggest.Hint(k, s.keys())})
			continue
		}
		v, err := o.parse(rv)
		if err != nil {
			vals[k] = o.Default
			adj = append(adj, Adjustment{Key: k, Raw: rv, Value: o.Default, Reason: err.Error() + ", using default"})
			continue
		}
		switch o.Kind {
		case KindChoice:
			if _, ok := o.choice(v); !ok {
				vals[k] = o.Default
				adj = append(adj, Adjustment{Key: k, Raw: rv, Value: o.Default, Reason: "not a declared choice, using default"})
				continue
			}
		default:
			if c := min(max(v, o.Min), o.Max); c != v {
				adj = append(adj, Adjustment{Key: k, Raw: rv, Value: c, Reason: fmt.Sprintf("clamped to %d..%d", o.Min, o.Max)})
				v = c
			}
		}
		vals[k] = v
	}
	return Values{vals: vals}, adj
}

func (o Option) parse(raw any) (int, error) {
	switch v := raw.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case uint64:
		if v > math.MaxInt32 {
			return math.MaxInt32, nil
		}
		return int(v), nil
	case float64:
		switch {
		case math.IsNaN(v):
			return 0, errors.New("value is not a number")
		case v >= math.MaxInt32:
			return math.MaxInt32, nil
		case v <= math.MinInt32:
			return math.MinInt32, nil
		case v != math.Trunc(v):
			return 0, fmt.Errorf("value %v is not a whole number", v)
		}
		return int(v), nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case string:
		return o.parseString(v)
	case nil:
		return o.Default, nil
	default:
		return 0, fmt.Errorf("unsupported value type %T", raw)
	}
}

func (o Option) parseString(raw string) (int, error) {
	s := strings.TrimSpace(strings.ToLower(raw))
	for _, c := range o.Choices {
		if strings.ToLower(c.Name) == s {
			return c.Value, nil
		}
	}
	switch s {
	case "true", "on", "yes":
		return 1, nil
	case "false", "off", "no":
		return 0, nil
	case "default":
		return o.Default, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("cannot parse %q", raw)
	}
	return n, nil
}

// Values are the resolved settings of one player.
type Values struct {
	vals map[string]int
}

// Get returns the resolved value of key.
func (v Values) Get(key string) (int, error) {
	n, ok := v.vals[key]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUnknownOption, key)
	}
	return n, nil
}

// Int returns the resolved value of key, or 0 when it is undeclared.
func (v Values) Int(key string) int {
	return v.vals[key]
}

func (v Values) Enabled(key string) bool {
	return v.vals[key] != 0
}

// With returns a copy of v with key overridden.
func (v Values) With(key string, n int) Values {
	out := make(map[string]int, len(v.vals)+1)
	for k, x := range v.vals {
		out[k] = x
	}
	out[key] = n
	return Values{vals: out}
}

func (v Values) Map() map[string]int {
	out := make(map[string]int, len(v.vals))
	for k, x := range v.vals {
		out[k] = x
	}
	return out
}
