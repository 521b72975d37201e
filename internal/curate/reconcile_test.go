package curate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Miro-n1/archipelago-manuals/internal/catalog"
	"github.com/Miro-n1/archipelago-manuals/internal/options"
)

func wispCatalog(t *testing.T, locations int) *catalog.Catalog {
	return mustCatalog(t,
		[]catalog.Region{{Name: "Hisui", Locations: numbered("Research", locations)}},
		[]catalog.Item{
			{Name: "Key Item", Count: 10, Class: catalog.Progression},
			{Name: "Wisp", Count: 108, Class: catalog.Progression},
			{Name: "Nothing", Count: 60, Class: catalog.Filler},
		},
	)
}

func wispsOption() options.Option {
	return options.Range("wisps_total", "Wisps", 1, 108, 108)
}

func wispReconcile() Reconcile {
	return Reconcile{Bounded: []Bounded{{Item: "Wisp", Option: "wisps_total", Included: 1}}}
}

func TestBoundedQuantityClampedToSpare(t *testing.T) {
	// 50 locations, 11 required items: spare 39, so at most 40 wisps fit.
	run := newTestRun(wispCatalog(t, 50), mustValues(t, map[string]any{"wisps_total": 108}, wispsOption()))

	require.NoError(t, wispReconcile().Apply(run))

	assert.Equal(t, 40, run.World.Pool().Count("Wisp"))
	assert.Equal(t, 40, run.Value("wisps_total"))
	discardedWisps := 0
	for _, name := range run.World.Discarded() {
		if name == "Wisp" {
			discardedWisps++
		}
	}
	assert.Equal(t, 68, discardedWisps)
	assert.Empty(t, run.World.Precollected())
	assert.Equal(t, run.World.FillableCount(), run.World.Pool().Len())
	assert.Zero(t, run.World.Pool().Count("Nothing"))
}

func TestBoundedQuantityBelowSpareIsKept(t *testing.T) {
	run := newTestRun(wispCatalog(t, 50), mustValues(t, map[string]any{"wisps_total": 10}, wispsOption()))

	require.NoError(t, wispReconcile().Apply(run))

	assert.Equal(t, 10, run.World.Pool().Count("Wisp"))
	assert.Equal(t, 30, run.World.Pool().Count("Nothing"))
	assert.Equal(t, 50, run.World.Pool().Len())
}

func TestClampLawAcrossRequests(t *testing.T) {
	for requested := 1; requested <= 108; requested++ {
		run := newTestRun(wispCatalog(t, 50), mustValues(t, map[string]any{"wisps_total": requested}, wispsOption()))
		require.NoError(t, wispReconcile().Apply(run))
		assert.Equal(t, min(requested, 40), run.World.Pool().Count("Wisp"), "requested %d", requested)
		assert.Equal(t, run.World.FillableCount(), run.World.Pool().Len(), "requested %d", requested)
	}
}

func ladderCatalog(t *testing.T) *catalog.Catalog {
	return mustCatalog(t,
		[]catalog.Region{{Name: "Hisui", Locations: numbered("Research", 10)}},
		[]catalog.Item{
			{Name: "Key Item", Count: 8, Class: catalog.Progression},
			{Name: "Warp A", Count: 1, Class: catalog.Progression, Groups: []string{"warp"}},
			{Name: "Warp B", Count: 1, Class: catalog.Progression, Groups: []string{"warp"}},
			{Name: "Wisp", Count: 5, Class: catalog.Progression},
			{Name: "Nothing", Count: 20, Class: catalog.Filler},
		},
	)
}

func ladder() []Rung {
	return []Rung{
		{Name: "warps", Below: 3, ItemGroups: []string{"warp"}, Lenient: true},
		{Name: "keys", Below: 3, Items: []string{"Key Item", "Key Item", "Key Item"}},
	}
}

func TestLadderMeasuresActualGain(t *testing.T) {
	run := newTestRun(ladderCatalog(t), mustValues(t, map[string]any{"wisps_total": 5}, wispsOption()))
	_, err := run.Precollect("Warp A", true)
	require.NoError(t, err)

	rc := Reconcile{Ladder: ladder(), Bounded: []Bounded{{Item: "Wisp", Option: "wisps_total", Included: 1}}}
	require.NoError(t, rc.Apply(run))

	// Warp A was already granted, so the first rung only frees one slot and
	// the second rung has to run as well.
	assert.Equal(t, []string{"Warp A", "Warp B", "Key Item", "Key Item", "Key Item"}, run.World.Precollected())
	assert.Equal(t, 5, run.World.Pool().Count("Wisp"))
	assert.Equal(t, 10, run.World.Pool().Len())
	assert.Zero(t, run.World.Pool().Count("Nothing"))
}

func TestLadderSkippedWithEnoughSpare(t *testing.T) {
	cat := mustCatalog(t,
		[]catalog.Region{{Name: "Hisui", Locations: numbered("Research", 30)}},
		[]catalog.Item{
			{Name: "Key Item", Count: 8, Class: catalog.Progression},
			{Name: "Warp A", Count: 1, Class: catalog.Progression, Groups: []string{"warp"}},
			{Name: "Warp B", Count: 1, Class: catalog.Progression, Groups: []string{"warp"}},
			{Name: "Nothing", Count: 30, Class: catalog.Filler},
		},
	)
	run := newTestRun(cat, options.Values{})
	require.NoError(t, Reconcile{Ladder: ladder()}.Apply(run))
	assert.Empty(t, run.World.Precollected())
	assert.Equal(t, 30, run.World.Pool().Len())
}

func TestReconcileFailures(t *testing.T) {
	cases := []struct {
		name  string
		items []catalog.Item
		rc    Reconcile
		want  error
	}{
		{
			name:  "ladder exhausted",
			items: []catalog.Item{{Name: "Key Item", Count: 12, Class: catalog.Progression}},
			want:  ErrPoolInvariant,
		},
		{
			name:  "not enough filler",
			items: []catalog.Item{{Name: "Key Item", Count: 2, Class: catalog.Progression}, {Name: "Nothing", Count: 3, Class: catalog.Filler}},
			want:  ErrPoolInvariant,
		},
		{
			name:  "unknown rung item",
			items: []catalog.Item{{Name: "Key Item", Count: 12, Class: catalog.Progression}},
			rc:    Reconcile{Ladder: []Rung{{Name: "typo", Below: 0, Items: []string{"Kye Item"}}}},
			want:  ErrCatalog,
		},
		{
			name:  "strict rung item gone",
			items: []catalog.Item{{Name: "Key Item", Count: 12, Class: catalog.Progression}, {Name: "Water Stone", Count: 1, Class: catalog.Useful}},
			rc:    Reconcile{Ladder: []Rung{{Name: "stones", Below: 0, Items: []string{"Water Stone", "Water Stone"}}}},
			want:  ErrMissingItem,
		},
		{
			name:  "unknown bounded item",
			items: []catalog.Item{{Name: "Nothing", Count: 10, Class: catalog.Filler}},
			rc:    Reconcile{Bounded: []Bounded{{Item: "Wisps", Option: "wisps_total", Included: 1}}},
			want:  ErrCatalog,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cat := mustCatalog(t, []catalog.Region{{Name: "Hisui", Locations: numbered("Research", 10)}}, tc.items)
			run := newTestRun(cat, options.Values{})
			assert.ErrorIs(t, tc.rc.Apply(run), tc.want)
		})
	}
}
