package drg

import "github.com/Miro-n1/archipelago-manuals/internal/options"

const (
	optShort             = "game_mode_short"
	optAssignments       = "short_assignment_count"
	optEasyStart         = "short_easy_start"
	optMissions          = "long_mission_count"
	optStartingMissions  = "long_starting_mission_count"
	optCompletions       = "long_mission_completions_to_win"
	optSecondary         = "long_secondary_objectives"
	optWarnings          = "long_warnings"
	optAnomalies         = "long_anomalies"
	optDeepDives         = "long_deep_dive_count"
	optEliteDeepDives    = "long_elite_deep_dive_count"
	optWeeklyAssignments = "long_weekly_assignment_count"
	optSeasonChallenges  = "long_season_challenge_count"
	optNitraRemaining    = "nitra_remaining"
)

func newOptions() (*options.Set, error) {
	return options.NewSet(
		options.Toggle(optShort, "Short game mode", false),
		options.Range(optAssignments, "Number of AP assignments", 4, 8, 4),
		options.Toggle(optEasyStart, "Easy Start", false),
		options.Range(optMissions, "Number of missions", 4, 36, 20),
		options.Range(optStartingMissions, "Starting missions", 1, 36, 3),
		options.Range(optCompletions, "Mission completions to win", 4, 36, 16),
		options.Toggle(optSecondary, "Secondary objectives", true),
		options.Toggle(optWarnings, "Warning mutators", false),
		options.Toggle(optAnomalies, "Anomaly mutators", false),
		options.Range(optDeepDives, "Deep dives", 0, 6, 3),
		options.Range(optEliteDeepDives, "Elite deep dives", 0, 6, 3),
		options.Range(optWeeklyAssignments, "Weekly assignments", 0, 6, 3),
		options.Range(optSeasonChallenges, "Season challenges", 0, 30, 10),
		// Only gates access logic; curation never reads it.
		options.Toggle(optNitraRemaining, "Remaining Nitra Checks", false),
	)
}
