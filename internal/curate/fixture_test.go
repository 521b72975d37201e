package curate

import (
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Miro-n1/archipelago-manuals/internal/catalog"
	"github.com/Miro-n1/archipelago-manuals/internal/options"
	"github.com/Miro-n1/archipelago-manuals/internal/rng"
	"github.com/Miro-n1/archipelago-manuals/internal/world"
)

const testSeed = 42

var assignmentTypes = []string{
	"Mining Expedition", "Egg Hunt", "On-site Refining", "Salvage Operation", "Point Extraction",
	"Escort Duty", "Elimination", "Industrial Sabotage", "Deep Scan",
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustCatalog(t *testing.T, regions []catalog.Region, items []catalog.Item) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New("Test", regions, items)
	require.NoError(t, err)
	return cat
}

func mustValues(t *testing.T, raw map[string]any, defs ...options.Option) options.Values {
	t.Helper()
	set, err := options.NewSet(defs...)
	require.NoError(t, err)
	v, _ := set.Resolve(raw)
	return v
}

func newTestRun(cat *catalog.Catalog, values options.Values) *Run {
	return newRun(cat.Game(), world.New(1, cat), rng.New(testSeed), values, discardLogger(), nil)
}

func numbered(prefix string, n int, groups ...string) []catalog.Location {
	out := make([]catalog.Location, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, catalog.Location{Name: fmt.Sprintf("%s %02d", prefix, i), Groups: groups})
	}
	return out
}

// assignmentCatalog has the nine assignment categories, the logic-only
// count family and a little filler.
func assignmentCatalog(t *testing.T) *catalog.Catalog {
	items := []catalog.Item{}
	for _, a := range assignmentTypes {
		items = append(items, catalog.Item{Name: a, Count: 1, Class: catalog.Progression, Groups: []string{"Missions"}})
	}
	for n := 4; n <= 8; n++ {
		items = append(items, catalog.Item{Name: fmt.Sprintf("Logic-only item for %d assignments", n), Count: 1, Class: catalog.Progression})
	}
	items = append(items, catalog.Item{Name: "Nitra", Count: 20, Class: catalog.Filler})

	regions := []catalog.Region{}
	for _, a := range assignmentTypes {
		regions = append(regions, catalog.Region{Name: a, Locations: []catalog.Location{
			{Name: a + " - Reward 1", Groups: []string{"Rewards"}},
			{Name: a + " - Reward 2", Groups: []string{"Rewards"}},
		}})
	}
	return mustCatalog(t, regions, items)
}

func countOption() options.Option {
	return options.Range("short_assignment_count", "Assignments", 4, 8, 4)
}
