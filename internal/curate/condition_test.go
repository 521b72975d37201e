package curate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Miro-n1/archipelago-manuals/internal/options"
)

func TestConditions(t *testing.T) {
	vals := mustValues(t, map[string]any{"game_mode_short": true, "goal": 2},
		options.Toggle("game_mode_short", "Short", false),
		options.Toggle("long_warnings", "Warnings", false),
		options.Range("goal", "Goal", 0, 2, 0),
	)

	tests := []struct {
		name string
		cond Condition
		want bool
	}{
		{"zero", Condition{}, true},
		{"enabled", Enabled("game_mode_short"), true},
		{"enabled off", Enabled("long_warnings"), false},
		{"disabled", Disabled("long_warnings"), true},
		{"equals", Equals("goal", 2), true},
		{"equals other", Equals("goal", 1), false},
		{"in", In("goal", 0, 2), true},
		{"in miss", In("goal", 0, 1), false},
		{"not", Not(Equals("goal", 1)), true},
		{"not enabled", Not(Enabled("game_mode_short")), false},
		{"all", All(Enabled("game_mode_short"), Equals("goal", 2)), true},
		{"all one fails", All(Enabled("game_mode_short"), Enabled("long_warnings")), false},
		{"all empty", All(), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cond.holds(vals))
		})
	}
}

func TestConditionKeys(t *testing.T) {
	assert.Empty(t, Condition{}.Keys())
	assert.Equal(t, []string{"goal"}, Not(Equals("goal", 1)).Keys())

	all := All(Enabled("game_mode_short"), Not(In("goal", 0, 1)))
	keys := all.Keys()
	require.Equal(t, []string{"game_mode_short", "goal"}, keys)
	keys[0] = "changed"
	assert.Equal(t, []string{"game_mode_short", "goal"}, all.Keys())
}

func TestPlanOptionKeys(t *testing.T) {
	plan := Plan{
		Regions: []Rule{
			Counted{When: Enabled("game_mode_short"), Option: "short_assignment_count", Max: 8},
			Choose{Option: "goal", Cases: map[int]Rule{
				2: ItemFamily{Option: "dex_required", Name: Numbered("%d entries")},
				0: Exclude{When: Disabled("long_warnings")},
			}},
			RuleFunc(func(*Run) error { return nil }),
		},
		Starting: []Selection{
			{Category: "missions", Keep: FromOption("short_assignment_count"), Precollect: Fixed(1)},
			{Category: "long", When: Not(Enabled("game_mode_short")), Precollect: FromOption("long_starting_mission_count")},
		},
		Filler: []Rule{Lock{Location: "Victory", Option: "goal"}},
		Reconcile: Reconcile{Bounded: []Bounded{{Item: "Wisp", Option: "wisps_total"}}},
		Goals: []Goal{{Option: "wisps_required", Ceiling: "wisps_total"}},
	}

	assert.Equal(t, []string{
		"game_mode_short", "short_assignment_count", "goal", "long_warnings", "dex_required",
		"long_starting_mission_count", "wisps_total", "wisps_required",
	}, plan.OptionKeys())
}

func TestCheckOptionsRejectsUndeclaredKey(t *testing.T) {
	vals := mustValues(t, nil, countOption())

	ok := Plan{Starting: []Selection{{Category: "missions", Keep: FromOption("short_assignment_count")}}}
	assert.NoError(t, checkOptions(ok, vals))

	typo := Plan{Starting: []Selection{{Category: "missions", Keep: FromOption("short_asignment_count")}}}
	err := checkOptions(typo, vals)
	assert.ErrorIs(t, err, ErrCatalog)
	assert.ErrorIs(t, err, options.ErrUnknownOption)
	assert.ErrorContains(t, err, "short_asignment_count")
}
