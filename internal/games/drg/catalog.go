package drg

import (
	"fmt"

	"github.com/Miro-n1/archipelago-manuals/internal/catalog"
)

const (
	groupShort = "(S) Short mode"
	groupLong  = "(L) Long mode"
)

var (
	missionTypes = []string{
		"Mining Expedition", "Egg Hunt", "On-site Refining", "Salvage Operation", "Point Extraction",
		"Escort Duty", "Elimination", "Industrial Sabotage", "Deep Scan",
	}
	classes          = []string{"Driller", "Engineer", "Gunner", "Scout"}
	primaryWeapons   = []string{"Primary Weapon 1", "Primary Weapon 2", "Primary Weapon 3"}
	secondaryWeapons = []string{"Secondary Weapon 1", "Secondary Weapon 2", "Secondary Weapon 3"}

	secondaryObjectives = []string{
		"Apoca Blooms", "Boolo Caps", "Dystrum", "Ebonuts", "Fester Fleas", "Fossils", "Gunk Seeds", "Hollomite",
	}
	warnings = []string{
		"Cave Leech Cluster", "Duck and Cover", "Ebonite Outbreak", "Elite Threat", "Exploder Infestation",
		"Haunted Cave", "Lethal Enemies", "Lithophage Outbreak", "Low Oxygen", "Mactera Plague",
		"Parasites", "Regenerative Bugs", "Rival Presence", "Shield Disruption", "Swarmageddon",
	}
	anomalies = []string{
		"Critical Weakness", "Double XP", "Gold Rush", "Golden Bugs", "Low Gravity",
		"Mineral Mania", "Rich Atmosphere", "Volatile Guts",
	}
)

// longMissions pairs every mission type with every class.
func longMissions() []string {
	out := make([]string, 0, len(missionTypes)*len(classes))
	for _, m := range missionTypes {
		for _, c := range classes {
			out = append(out, m+" with "+c)
		}
	}
	return out
}

func missionRewards(mission string) []string {
	return []string{mission + " - Reward 1", mission + " - Reward 2"}
}

func newCatalog() (*catalog.Catalog, error) {
	return catalog.New(Game, regions(), items())
}

func regions() []catalog.Region {
	rig := catalog.Region{Name: "Space Rig"}
	for _, c := range classes {
		for lvl := 5; lvl <= 25; lvl += 5 {
			rig.Locations = append(rig.Locations, catalog.Location{
				Name:   fmt.Sprintf("%s Level %d", c, lvl),
				Groups: []string{"Class levels"},
			})
		}
	}
	out := []catalog.Region{rig}

	for n := 1; n <= 8; n++ {
		r := catalog.Region{Name: fmt.Sprintf("Assignment %d", n)}
		for i := 1; i <= 3; i++ {
			r.Locations = append(r.Locations, catalog.Location{
				Name:   fmt.Sprintf("Assignment %d-%d", n, i),
				Groups: []string{groupShort, "Assignments"},
			})
		}
		out = append(out, r)
	}
	out = append(out, catalog.Region{Name: "Assignment Board", Locations: []catalog.Location{
		{Name: "Finish the assignments", Locked: "Victory", Groups: []string{groupShort}},
	}})

	missions := catalog.Region{Name: "Mission Terminal"}
	for _, m := range longMissions() {
		for _, reward := range missionRewards(m) {
			missions.Locations = append(missions.Locations, catalog.Location{
				Name:   reward,
				Groups: []string{groupLong, "Mission rewards"},
			})
		}
	}
	out = append(out, missions)

	objectives := catalog.Region{Name: "Secondary Objectives"}
	for _, o := range secondaryObjectives {
		objectives.Locations = append(objectives.Locations, catalog.Location{
			Name:   "Secondary objective: " + o,
			Groups: []string{groupLong, "Secondary objectives"},
		})
	}
	mutators := catalog.Region{Name: "Mutators"}
	for _, w := range warnings {
		mutators.Locations = append(mutators.Locations, catalog.Location{
			Name:   "Warning: " + w,
			Groups: []string{groupLong, "Warning mutators"},
		})
	}
	for _, a := range anomalies {
		mutators.Locations = append(mutators.Locations, catalog.Location{
			Name:   "Anomaly: " + a,
			Groups: []string{groupLong, "Anomaly mutators"},
		})
	}
	out = append(out, objectives, mutators)

	for _, dive := range []struct {
		prefix string
		stages []string
	}{
		{prefix: "DD", stages: []string{"Stage 1", "Stage 2", "Stage 3"}},
		{prefix: "EDD", stages: []string{"Stage 1", "Stage 2", "Stage 3"}},
		{prefix: "WPA", stages: []string{"Objective", "Extraction"}},
		{prefix: "WCH", stages: []string{"Objective", "Extraction"}},
	} {
		for n := 1; n <= 6; n++ {
			r := catalog.Region{Name: fmt.Sprintf("%s%d", dive.prefix, n)}
			for _, stage := range dive.stages {
				r.Locations = append(r.Locations, catalog.Location{
					Name:   fmt.Sprintf("%s%d - %s", dive.prefix, n, stage),
					Groups: []string{groupLong},
				})
			}
			out = append(out, r)
		}
	}

	season := catalog.Region{Name: "Season Pass"}
	for n := 1; n <= 30; n++ {
		season.Locations = append(season.Locations, catalog.Location{
			Name:   fmt.Sprintf("Season Challenge %02d", n),
			Groups: []string{groupLong, "Season challenges"},
		})
	}
	goal := catalog.Region{Name: "Mission Control"}
	for n := 4; n <= 36; n++ {
		goal.Locations = append(goal.Locations, catalog.Location{
			Name:   completeMissions(n),
			Locked: "Victory",
			Groups: []string{groupLong},
		})
	}
	return append(out, season, goal)
}

func items() []catalog.Item {
	var out []catalog.Item
	add := func(names []string, count int, class catalog.Class, groups ...string) {
		for _, n := range names {
			out = append(out, catalog.Item{Name: n, Count: count, Class: class, Groups: groups})
		}
	}

	add(missionTypes, 1, catalog.Progression, groupShort, "(S) Missions")
	for n := 4; n <= 8; n++ {
		add([]string{logicItem(n)}, 1, catalog.Progression, groupShort)
	}
	add([]string{"Assignments Complete!"}, 1, catalog.Progression, groupShort)
	for i := 1; i <= 4; i++ {
		add([]string{fmt.Sprintf("Traversal Tool %d/4", i), fmt.Sprintf("Special Equipment %d/4", i)}, 1, catalog.Useful, groupShort, "(S) Equipment")
	}

	add(classes, 1, catalog.Progression, "Classes")
	add(primaryWeapons, 1, catalog.Progression, "Primary weapons")
	add(secondaryWeapons, 1, catalog.Useful, "Secondary weapons")

	add(longMissions(), 1, catalog.Progression, groupLong, "(L) Missions")
	add(secondaryObjectives, 1, catalog.Progression, groupLong, "(L) Secondary objectives")
	add(warnings, 1, catalog.Progression, groupLong, "(L) Warning mutators")
	add(anomalies, 1, catalog.Progression, groupLong, "(L) Anomaly mutators")
	add([]string{"Deep Dive", "Elite Deep Dive", "Weekly Priority Assignment", "Weekly Core Hunt"}, 6, catalog.Progression, groupLong)
	add([]string{"Season challenge"}, 30, catalog.Progression, groupLong)

	add([]string{"Nitra"}, 120, catalog.Filler)
	add([]string{"Gold"}, 80, catalog.Filler)
	return out
}

func logicItem(n int) string {
	return fmt.Sprintf("Logic-only item for %d assignments", n)
}

func completeMissions(n int) string {
	return fmt.Sprintf("Complete %d missions", n)
}
