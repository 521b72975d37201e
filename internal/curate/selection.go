package curate

import "fmt"

// Count is a literal quantity or one read from an option. Build it with
// Fixed or FromOption; the zero Count means no limit for Keep and none for
// Precollect.
type Count struct {
	N      int
	Option string
	ok     bool
}

func Fixed(n int) Count { return Count{N: n, ok: true} }

func FromOption(key string) Count { return Count{Option: key, ok: true} }

func (c Count) set() bool { return c.ok }

func (c Count) resolve(r *Run) int {
	if c.Option != "" {
		return r.Value(c.Option)
	}
	return c.N
}

// Selection draws one permutation of its candidates and acts on prefixes of
// it. Candidates past Keep are discarded along with their Linked locations,
// and the first Precollect of the kept prefix go to the starting inventory.
//
// The permutation is drawn even when When does not hold, in which case the
// step takes a zero-size prefix. Fixed selections use candidate order and
// never draw.
type Selection struct {
	Category   string
	Candidates []string
	Fixed      bool
	When       Condition
	Keep       Count
	Precollect Count
	Lenient    bool
	Linked     func(candidate string) []string
}

func (s Selection) Apply(r *Run) error {
	order := s.Candidates
	if !s.Fixed {
		order = r.Stream.Shuffle(s.Candidates)
	}
	if !s.When.holds(r.Options) {
		r.logger.Debug("selection skipped", "step", s.Category)
		return nil
	}

	keep := len(order)
	if s.Keep.set() {
		keep = min(max(s.Keep.resolve(r), 0), len(order))
	}
	for _, name := range order[keep:] {
		if _, err := r.Discard(name, !s.Lenient); err != nil {
			return fmt.Errorf("%s: %w", s.Category, err)
		}
		if s.Linked == nil {
			continue
		}
		for _, loc := range s.Linked(name) {
			if _, err := r.RemoveLocation(loc); err != nil {
				return fmt.Errorf("%s: %w", s.Category, err)
			}
		}
	}

	requested := s.Precollect.resolve(r)
	pre := min(max(requested, 0), keep)
	if pre != requested && s.Precollect.Option != "" {
		r.logger.Warn("starting count clamped", "step", s.Category, "option", s.Precollect.Option,
			"requested", requested, "clamped", pre)
		r.metrics.IncClamp(r.game, s.Precollect.Option)
	}
	if s.Keep.Option != "" {
		r.Publish(s.Keep.Option, keep)
	}
	if s.Precollect.Option != "" {
		r.Publish(s.Precollect.Option, pre)
	}
	for _, name := range order[:pre] {
		if _, err := r.Precollect(name, !s.Lenient); err != nil {
			return fmt.Errorf("%s: %w", s.Category, err)
		}
	}
	r.logger.Debug("selection applied", "step", s.Category, "kept", keep, "precollected", pre)
	return nil
}
