package game

type AnswerRequest struct {
	Choice string `json:"choice"`
}

// SnapshotResponse is what every game endpoint returns. While a round is
// open it carries only the options and the image; the correct name and the
// fun fact appear in Result after the answer, so the client never holds the
// solution early.
type SnapshotResponse struct {
	SessionID string      `json:"session_id"`
	Phase     Phase       `json:"phase"`
	Round     *RoundView  `json:"round,omitempty"`
	Result    *ResultView `json:"result,omitempty"`
	Stats     StatsView   `json:"stats"`
	Message   string      `json:"message,omitempty"`
	Celebrate bool        `json:"celebrate,omitempty"`
}

type RoundView struct {
	ImageURI string   `json:"image_uri"`
	Options  []string `json:"options"`
}

type ResultView struct {
	Choice      string `json:"choice"`
	Correct     bool   `json:"correct"`
	CorrectName string `json:"correct_name"`
	FunFact     string `json:"fun_fact"`
}

type StatsView struct {
	Correct    int    `json:"correct"`
	Incorrect  int    `json:"incorrect"`
	Streak     int    `json:"streak"`
	BestStreak int    `json:"best_streak"`
	Rank       string `json:"rank"`
}
