package game

// ranks maps lifetime correct answers to the title shown on the scoreboard.
// Thresholds are cumulative; the highest reached one wins.
var ranks = []struct {
	min   int
	title string
}{
	{0, "Hatchling"},
	{3, "Nest Raider"},
	{7, "Raptor Apprentice"},
	{12, "Pack Hunter"},
	{20, "Alpha Predator"},
	{30, "Tyrant King"},
}

func RankFor(correct int) string {
	title := ranks[0].title
	for _, r := range ranks {
		if correct >= r.min {
			title = r.title
		}
	}
	return title
}
