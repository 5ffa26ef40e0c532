package vo

import "time"

// ScoreResult is what the scorer produces for one tag record, a value in
// [0, 100] and the issues in rule evaluation order.
type ScoreResult struct {
	Score  int      `json:"score"`
	Issues []string `json:"issues"`
}

type Analysis struct {
	TargetURL   string        `json:"targetUrl"`
	FinalURL    string        `json:"finalUrl,omitempty"`
	Code        int           `json:"code,omitempty"`
	ContentType string        `json:"contentType,omitempty"`
	Strategy    string        `json:"strategy,omitempty"`
	Duration    time.Duration `json:"duration,omitempty"`
	Tags        ParsedTags    `json:"tags"`
	Result      ScoreResult   `json:"result"`
	Suggestions []string      `json:"suggestions"`
	Previews    Previews      `json:"previews"`
}
