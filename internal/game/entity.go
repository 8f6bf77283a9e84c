package game

// Round is one installed guessing round. Options is filled at install time,
// so a prefetched round is shuffled only when it is actually shown.
type Round struct {
	CorrectName       string
	Distractors       []string
	FunFact           string
	VisualDescription string
	ImageURI          string
	Options           []string
}

// Answer records the single answer accepted for the current round.
type Answer struct {
	Choice  string
	Correct bool
}

// Stats is the per-session scoreboard. It lives only in memory and resets
// with the process.
type Stats struct {
	Correct    int
	Incorrect  int
	Streak     int
	BestStreak int
}

func (st *Stats) record(correct bool) {
	if correct {
		st.Correct++
		st.Streak++
		if st.Streak > st.BestStreak {
			st.BestStreak = st.Streak
		}
		return
	}
	st.Incorrect++
	st.Streak = 0
}
