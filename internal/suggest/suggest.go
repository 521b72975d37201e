// Package suggest finds the closest known name to a misspelled one.
package suggest

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type candidate struct {
	name  string
	dist  int
	exact bool
}

// Closest returns the known name nearest to in, or false when nothing is
// within the edit limit for its length.
func Closest(in string, known []string) (string, bool) {
	needle := normalise(in)
	if needle == "" {
		return "", false
	}
	var cands []candidate
	for _, name := range known {
		norm := normalise(name)
		if norm == needle {
			cands = append(cands, candidate{name: name, exact: true})
			continue
		}
		dist := levenshtein.ComputeDistance(needle, norm)
		if dist > limit(len(norm)) {
			continue
		}
		cands = append(cands, candidate{name: name, dist: dist})
	}
	if len(cands) == 0 {
		return "", false
	}
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].exact != cands[j].exact {
			return cands[i].exact
		}
		if cands[i].dist == cands[j].dist {
			return cands[i].name < cands[j].name
		}
		return cands[i].dist < cands[j].dist
	})
	return cands[0].name, true
}

// Hint formats a " (did you mean %q?)" suffix, or "" without a match.
func Hint(in string, known []string) string {
	best, ok := Closest(in, known)
	if !ok || best == in {
		return ""
	}
	return ` (did you mean "` + best + `"?)`
}

func limit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func normalise(raw string) string {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return ""
	}
	var b strings.Builder
	lastSpace := false
	for _, r := range raw {
		if r == ' ' || r == '\t' || r == '-' || r == '_' || r == '/' || r == '\'' {
			if !lastSpace {
				b.WriteByte(' ')
			}
			lastSpace = true
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}
	return strings.TrimSpace(b.String())
}
