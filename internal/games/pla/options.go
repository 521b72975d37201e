package pla

import "github.com/Miro-n1/archipelago-manuals/internal/options"

const (
	optWispsTotal    = "wisps_total"
	optWispsRequired = "wisps_required"
	optFish          = "fish_locations"
	optAlpha         = "alpha_locations"
	optShiny         = "shiny_locations"
)

const (
	fishAll = iota + 1
	fishOnlyNotFish
	fishOnlyFishAndRelated
	fishOnlyFish
)

func newOptions() (*options.Set, error) {
	return options.NewSet(
		options.Range(optWispsTotal, "Number of wisps in the pool", 1, maxWisps, maxWisps),
		options.Range(optWispsRequired, "Number of wisps required to win", 1, maxWisps, 100),
		options.Choice(optFish, "Fish locations", fishAll,
			options.Named{Name: "all", Value: fishAll},
			options.Named{Name: "only_not_fish", Value: fishOnlyNotFish},
			options.Named{Name: "only_fish_and_related", Value: fishOnlyFishAndRelated},
			options.Named{Name: "only_fish", Value: fishOnlyFish},
		),
		options.Toggle(optAlpha, "Alpha locations", true),
		options.Range(optShiny, "Number of shiny locations", 0, maxShiny, 0),
	)
}
