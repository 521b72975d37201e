package pla

import (
	"fmt"

	"github.com/Miro-n1/archipelago-manuals/internal/catalog"
)

const (
	groupNotFish      = "notfish"
	groupFish         = "fish"
	groupFishAdjacent = "fishadjacent"
	groupAlpha        = "Alpha Locations"
	groupWarp         = "warp"
	groupOutbreak     = "outbreak"
	groupRide         = "Ride Pokémon"

	wisp      = "Wisp"
	maxWisps  = 108
	maxShiny  = 10
	shinyItem = "Shiny Charm Fragment"
)

type area struct {
	code  string
	name  string
	camps []string
}

var areas = []area{
	{code: "OF", name: "Obsidian Fieldlands", camps: []string{"Fieldland Camp", "Heights Camp"}},
	{code: "CM", name: "Crimson Mirelands", camps: []string{"Mirelands Camp", "Bogbound Camp"}},
	{code: "CC", name: "Cobalt Coastlands", camps: []string{"Beachside Camp", "Coastland Camp"}},
	{code: "CH", name: "Coronet Highlands", camps: []string{"Highlands Camp", "Mountain Camp", "Summit Camp"}},
	{code: "AI", name: "Alabaster Icelands", camps: []string{"Snowfield Camp", "Icepeak Camp"}},
}

func (a area) item() string { return fmt.Sprintf("%s (%s)", a.name, a.code) }

func (a area) campItems() []string {
	out := make([]string, len(a.camps))
	for i, c := range a.camps {
		out[i] = fmt.Sprintf("%s (%s)", c, a.code)
	}
	return out
}

var (
	balls         = []string{"Progressive Poké Ball", "Progressive Heavy Ball", "Progressive Feather Ball"}
	extraWarps    = []string{"Ancient Retreat (OF)", "Firespit Island (CH)"}
	rides         = []string{"Wyrdeer", "Ursaluna", "Basculegion", "Sneasler", "Braviary"}
	evolutionGear = []string{
		"Linking Cord", "Oval Stone", "Fire Stone", "Thunder Stone", "Leaf Stone", "Ice Stone",
		"Moon Stone", "Sun Stone", "Dusk Stone", "Dawn Stone", "Shiny Stone", "Razor Claw",
		"Razor Fang", "Reaper Cloth", "Electirizer", "Magmarizer", "Protector", "Dubious Disc",
		"Upgrade", "Black Augurite", "Peat Block", "Metal Coat",
	}
	keyItems = []string{"Celestica Flute", "Forest Balm", "Mushroom Cake", "Volo's Notes", "Ginkgo Guild Pass"}
)

func areaItems() []string {
	out := make([]string, len(areas))
	for i, a := range areas {
		out[i] = a.item()
	}
	return out
}

func outbreaks() []string {
	out := make([]string, len(areas))
	for i, a := range areas {
		out[i] = fmt.Sprintf("Mass Outbreak (%s)", a.code)
	}
	return out
}

func goalName(n int) string {
	if n == 1 {
		return "Repair Odd Keystone with 1 wisp"
	}
	return fmt.Sprintf("Repair Odd Keystone with %d wisps", n)
}

// spread splits total across the areas, front-loading the remainder.
func spread(total int) []int {
	out := make([]int, len(areas))
	for i := range out {
		out[i] = total / len(areas)
		if i < total%len(areas) {
			out[i]++
		}
	}
	return out
}

func newCatalog() (*catalog.Catalog, error) {
	return catalog.New(Game, regions(), items())
}

func regions() []catalog.Region {
	kinds := []struct {
		format string
		total  int
		groups []string
	}{
		{format: "%s Research Task %d", total: 177, groups: []string{groupNotFish}},
		{format: "%s Fishing Spot %d", total: 36, groups: []string{groupFish}},
		{format: "%s Shoreline Task %d", total: 18, groups: []string{groupFishAdjacent}},
		{format: "%s Alpha %d", total: 65, groups: []string{groupAlpha, groupNotFish}},
		{format: "%s Alpha Fish %d", total: 6, groups: []string{groupAlpha, groupFish}},
		{format: "%s Alpha Shoreline %d", total: 14, groups: []string{groupAlpha, groupFishAdjacent}},
	}

	out := make([]catalog.Region, len(areas))
	for i, a := range areas {
		out[i].Name = a.name
	}
	for _, k := range kinds {
		for i, n := range spread(k.total) {
			for j := 1; j <= n; j++ {
				out[i].Locations = append(out[i].Locations, catalog.Location{
					Name:   fmt.Sprintf(k.format, areas[i].code, j),
					Groups: k.groups,
				})
			}
		}
	}

	village := catalog.Region{Name: "Jubilife Village"}
	for n := 1; n <= maxShiny; n++ {
		village.Locations = append(village.Locations, catalog.Location{
			Name:   fmt.Sprintf("Shiny %d", n),
			Groups: []string{"Shiny"},
		})
	}
	temple := catalog.Region{Name: "Temple of Sinnoh"}
	for n := 1; n <= maxWisps; n++ {
		temple.Locations = append(temple.Locations, catalog.Location{Name: goalName(n), Locked: "Victory"})
	}
	return append(out, village, temple)
}

func items() []catalog.Item {
	var out []catalog.Item
	add := func(names []string, count int, class catalog.Class, groups ...string) {
		for _, n := range names {
			out = append(out, catalog.Item{Name: n, Count: count, Class: class, Groups: groups})
		}
	}

	add(areaItems(), 1, catalog.Progression, "Areas")
	for _, a := range areas {
		add(a.campItems(), 1, catalog.Progression, groupWarp, "Camps")
	}
	add(extraWarps, 1, catalog.Progression, groupWarp)
	add(balls, 2, catalog.Progression, "Poké Balls")
	add([]string{"Water Stone"}, 1, catalog.Progression, "Evolution items")
	add(outbreaks(), 2, catalog.Progression, groupOutbreak)
	add(rides, 1, catalog.Progression, groupRide)
	add(evolutionGear, 1, catalog.Progression, groupNotFish, "Evolution items")
	add([]string{"Pokédex Rank"}, 10, catalog.Progression)
	add([]string{"Satchel Upgrade"}, 10, catalog.Useful)
	add(keyItems, 1, catalog.Progression, "Key items")

	add([]string{wisp}, maxWisps, catalog.Progression)
	add([]string{shinyItem}, maxShiny, catalog.Progression)

	add([]string{"Merit Points"}, 150, catalog.Filler)
	add([]string{"Poké Dollars"}, 150, catalog.Filler)
	return out
}
