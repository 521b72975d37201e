package pla

import "github.com/Miro-n1/archipelago-manuals/internal/curate"

func plan() curate.Plan {
	starting := []curate.Selection{{Category: "area", Candidates: areaItems(), Precollect: curate.Fixed(1)}}
	for _, a := range areas {
		starting = append(starting, curate.Selection{
			Category:   "camp " + a.code,
			Candidates: a.campItems(),
			Precollect: curate.Fixed(1),
		})
	}
	starting = append(starting, curate.Selection{Category: "ball", Candidates: balls, Precollect: curate.Fixed(1)})

	return curate.Plan{
		Regions: []curate.Rule{
			curate.Choose{Option: optFish, Cases: map[int]curate.Rule{
				fishOnlyNotFish:        curate.Exclude{LocationGroups: []string{groupFish, groupFishAdjacent}},
				fishOnlyFishAndRelated: curate.Exclude{LocationGroups: []string{groupNotFish}},
				fishOnlyFish:           curate.Exclude{LocationGroups: []string{groupNotFish, groupFishAdjacent}},
			}},
			curate.Exclude{When: curate.Disabled(optAlpha), LocationGroups: []string{groupAlpha}},
			curate.Counted{Option: optShiny, Max: maxShiny, Locations: []string{"Shiny %d"}},
		},

		Starting: starting,

		Items: []curate.Rule{
			curate.Exclude{
				When:       curate.In(optFish, fishOnlyFishAndRelated, fishOnlyFish),
				ItemGroups: []string{groupNotFish},
			},
			curate.Counted{Option: optShiny, Max: maxShiny, Items: []string{shinyItem}},
		},

		Reconcile: curate.Reconcile{
			Ladder: []curate.Rung{
				{Name: "warps", Below: 9, Items: []string{"Water Stone"}, ItemGroups: []string{groupWarp}, Lenient: true},
				{Name: "outbreaks", Below: 9, ItemGroups: []string{groupOutbreak, groupOutbreak, groupRide}},
			},
			Bounded: []curate.Bounded{{Item: wisp, Option: optWispsTotal, Included: 1}},
		},

		Goals: []curate.Goal{{
			Option:  optWispsRequired,
			Ceiling: optWispsTotal,
			Name:    goalName,
			Min:     1,
			Max:     maxWisps,
		}},
	}
}
