package drg

import "github.com/Miro-n1/archipelago-manuals/internal/curate"

var (
	short = curate.Enabled(optShort)
	long  = curate.Disabled(optShort)
)

func plan() curate.Plan {
	return curate.Plan{
		Regions: []curate.Rule{
			curate.Exclude{When: short, LocationGroups: []string{groupLong}},
			curate.Exclude{When: long, LocationGroups: []string{groupShort}},
			curate.Counted{When: short, Option: optAssignments, Max: 8, Regions: []string{"Assignment %d"}},

			curate.Exclude{When: curate.All(long, curate.Disabled(optSecondary)), LocationGroups: []string{"Secondary objectives"}},
			curate.Exclude{When: curate.All(long, curate.Disabled(optWarnings)), LocationGroups: []string{"Warning mutators"}},
			curate.Exclude{When: curate.All(long, curate.Disabled(optAnomalies)), LocationGroups: []string{"Anomaly mutators"}},
			curate.Counted{When: long, Option: optDeepDives, Max: 6, Regions: []string{"DD%d"}},
			curate.Counted{When: long, Option: optEliteDeepDives, Max: 6, Regions: []string{"EDD%d"}},
			curate.Counted{When: long, Option: optWeeklyAssignments, Max: 6, Regions: []string{"WPA%d", "WCH%d"}},
			curate.Counted{When: long, Option: optSeasonChallenges, Max: 30, Locations: []string{"Season Challenge %02d"}},
		},

		Starting: []curate.Selection{
			{
				Category:   "assignments",
				Candidates: missionTypes,
				When:       short,
				Keep:       curate.FromOption(optAssignments),
				Precollect: curate.Fixed(1),
			},
			{Category: "class", Candidates: classes, When: short, Precollect: curate.Fixed(1)},
			{Category: "primary weapon", Candidates: primaryWeapons, When: short, Precollect: curate.Fixed(1)},
			{
				Category:   "easy start kit",
				Candidates: []string{"Traversal Tool 1/4", "Special Equipment 1/4"},
				Fixed:      true,
				When:       curate.All(short, curate.Enabled(optEasyStart)),
				Precollect: curate.Fixed(2),
			},
			{
				Category:   "secondary weapon",
				Candidates: secondaryWeapons,
				When:       curate.All(short, curate.Enabled(optEasyStart)),
				Precollect: curate.Fixed(1),
			},
			{
				Category:   "missions",
				Candidates: longMissions(),
				When:       long,
				Keep:       curate.FromOption(optMissions),
				Precollect: curate.FromOption(optStartingMissions),
				Linked:     missionRewards,
			},
		},

		Items: []curate.Rule{
			curate.ItemFamily{When: short, Option: optAssignments, Name: logicItem, Min: 4, Max: 8},
			curate.Exclude{When: short, ItemGroups: []string{groupLong}, AllCopies: true},
			curate.Exclude{When: long, ItemGroups: []string{groupShort}, AllCopies: true},

			curate.Exclude{When: curate.All(long, curate.Disabled(optSecondary)), ItemGroups: []string{"(L) Secondary objectives"}},
			curate.Exclude{When: curate.All(long, curate.Disabled(optWarnings)), ItemGroups: []string{"(L) Warning mutators"}},
			curate.Exclude{When: curate.All(long, curate.Disabled(optAnomalies)), ItemGroups: []string{"(L) Anomaly mutators"}},
			curate.Counted{When: long, Option: optDeepDives, Max: 6, Items: []string{"Deep Dive"}},
			curate.Counted{When: long, Option: optEliteDeepDives, Max: 6, Items: []string{"Elite Deep Dive"}},
			curate.Counted{When: long, Option: optWeeklyAssignments, Max: 6, Items: []string{"Weekly Priority Assignment", "Weekly Core Hunt"}},
			curate.Counted{When: long, Option: optSeasonChallenges, Max: 30, Items: []string{"Season challenge"}},
		},

		Filler: []curate.Rule{
			curate.Lock{When: short, Location: "Assignment %d-3", Option: optAssignments, Item: "Assignments Complete!"},
		},

		Goals: []curate.Goal{{
			When:    long,
			Option:  optCompletions,
			Ceiling: optMissions,
			Name:    completeMissions,
			Min:     4,
			Max:     36,
		}},
	}
}
