package options

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testSet(t *testing.T) *Set {
	t.Helper()
	s, err := NewSet(
		Toggle("game_mode_short", "Short game mode", false),
		Range("short_assignment_count", "Assignments", 4, 8, 4),
		Choice("fish_locations", "Fishing", 1,
			Named{Name: "all", Value: 1},
			Named{Name: "only_not_fish", Value: 2},
			Named{Name: "only_fish_and_related", Value: 3},
			Named{Name: "only_fish", Value: 4},
		),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s
}

func TestNewSetRejectsBadDeclarations(t *testing.T) {
	cases := []struct {
		name string
		opt  Option
	}{
		{name: "empty key", opt: Range("", "x", 0, 1, 0)},
		{name: "inverted range", opt: Range("r", "r", 5, 1, 3)},
		{name: "default outside", opt: Range("r", "r", 1, 5, 9)},
		{name: "no choices", opt: Choice("c", "c", 1)},
		{name: "default not a choice", opt: Choice("c", "c", 3, Named{Name: "a", Value: 1})},
	}
	for _, tc := range cases {
		if _, err := NewSet(tc.opt); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
	if _, err := NewSet(Toggle("t", "t", true), Toggle("t", "t", false)); err == nil {
		t.Fatalf("expected duplicate key error")
	}
}

func TestDefaults(t *testing.T) {
	v := testSet(t).Defaults()
	if v.Enabled("game_mode_short") {
		t.Fatalf("expected short mode off by default")
	}
	if v.Int("short_assignment_count") != 4 || v.Int("fish_locations") != 1 {
		t.Fatalf("unexpected defaults %v", v.Map())
	}
}

func TestResolveClampsAndReports(t *testing.T) {
	v, adj := testSet(t).Resolve(map[string]any{
		"game_mode_short":        true,
		"short_assignment_count": 12,
		"fish_locations":         "only_fish",
	})
	if !v.Enabled("game_mode_short") {
		t.Fatalf("expected short mode on")
	}
	if v.Int("short_assignment_count") != 8 {
		t.Fatalf("expected clamp to 8, got %d", v.Int("short_assignment_count"))
	}
	if v.Int("fish_locations") != 4 {
		t.Fatalf("expected choice by name, got %d", v.Int("fish_locations"))
	}
	if len(adj) != 1 || adj[0].Key != "short_assignment_count" || adj[0].Value != 8 {
		t.Fatalf("expected a single clamp adjustment, got %v", adj)
	}
}

func TestResolveHugeFloatsClampToNearestBound(t *testing.T) {
	set, err := NewSet(Range("wisps_total", "Wisps", 1, 108, 50))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cases := []struct {
		name string
		raw  any
		want int
	}{
		{name: "whole", raw: 6.0, want: 6},
		{name: "1e20", raw: 1e20, want: 108},
		{name: "positive infinity", raw: math.Inf(1), want: 108},
		{name: "max int32", raw: float64(math.MaxInt32), want: 108},
		{name: "-1e20", raw: -1e20, want: 1},
		{name: "negative infinity", raw: math.Inf(-1), want: 1},
		{name: "nan falls back", raw: math.NaN(), want: 50},
		{name: "fraction falls back", raw: 6.5, want: 50},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, adj := set.Resolve(map[string]any{"wisps_total": tc.raw})
			if got := v.Int("wisps_total"); got != tc.want {
				t.Fatalf("expected %d, got %d (%v)", tc.want, got, adj)
			}
		})
	}
}

func TestResolveYAMLOverflow(t *testing.T) {
	set, err := NewSet(Range("wisps_total", "Wisps", 1, 108, 50))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	files, err := ParsePlayerFiles([]byte("name: Akari\ngame: Arceus\nArceus:\n  wisps_total: 99999999999999999999\n"), "big.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, adj := set.Resolve(files[0].Settings)
	if v.Int("wisps_total") != 108 {
		t.Fatalf("expected clamp to 108, got %d (%v)", v.Int("wisps_total"), adj)
	}
}

func TestResolveFallsBackAndIgnoresUnknown(t *testing.T) {
	v, adj := testSet(t).Resolve(map[string]any{
		"fish_locations":         7,
		"short_asignment_count":  5,
		"short_assignment_count": "lots",
	})
	if v.Int("fish_locations") != 1 || v.Int("short_assignment_count") != 4 {
		t.Fatalf("expected defaults, got %v", v.Map())
	}
	if len(adj) != 3 {
		t.Fatalf("expected 3 adjustments, got %v", adj)
	}
	var unknown Adjustment
	for _, a := range adj {
		if a.Key == "short_asignment_count" {
			unknown = a
		}
	}
	if !strings.Contains(unknown.Reason, `did you mean "short_assignment_count"`) {
		t.Fatalf("expected suggestion, got %q", unknown.Reason)
	}
}

func TestGetUnknownOption(t *testing.T) {
	v := testSet(t).Defaults()
	if _, err := v.Get("missing"); !errors.Is(err, ErrUnknownOption) {
		t.Fatalf("expected ErrUnknownOption, got %v", err)
	}
	w := v.With("short_assignment_count", 6)
	if w.Int("short_assignment_count") != 6 || v.Int("short_assignment_count") != 4 {
		t.Fatalf("expected With to copy")
	}
}

func TestParsePlayerFiles(t *testing.T) {
	data := []byte(`name: Karl
game: Deep Rock Galactic
Deep Rock Galactic:
  game_mode_short: true
  short_assignment_count: 6
---
name: Rei
game: Pokemon Legends Arceus
Pokemon Legends Arceus:
  fish_locations: only_fish
  wisps_total: 40
`)
	files, err := ParsePlayerFiles(data, "players.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 players, got %d", len(files))
	}
	if files[0].Name != "Karl" || files[0].Settings["short_assignment_count"] != 6 {
		t.Fatalf("unexpected first player %+v", files[0])
	}
	if files[1].Game != "Pokemon Legends Arceus" || files[1].Settings["fish_locations"] != "only_fish" {
		t.Fatalf("unexpected second player %+v", files[1])
	}
}

func TestParsePlayerFilesErrors(t *testing.T) {
	if _, err := ParsePlayerFiles([]byte("game: X\n"), "a.yaml"); err == nil {
		t.Fatalf("expected missing name error")
	}
	if _, err := ParsePlayerFiles([]byte("name: A\ngame: X\nX: [1, 2]\n"), "a.yaml"); err == nil {
		t.Fatalf("expected mapping error")
	}
	if _, err := ParsePlayerFiles([]byte(""), "a.yaml"); err == nil {
		t.Fatalf("expected empty file error")
	}
}

func TestLoadPlayerFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "karl.yaml")
	if err := os.WriteFile(path, []byte("name: Karl\ngame: Deep Rock Galactic\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	files, err := LoadPlayerFiles(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 1 || files[0].Source != path || len(files[0].Settings) != 0 {
		t.Fatalf("unexpected files %+v", files)
	}
	if _, err := LoadPlayerFiles(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected read error")
	}
}
