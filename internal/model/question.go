package model

// Question is one catalog entry. Scores maps a product name to per-option
// score contributions: Scores[product][optionIndex]. Products or options
// missing from the table simply contribute nothing.
type Question struct {
	ID       string           `json:"id" bson:"_id,omitempty"`
	Position int              `json:"position" bson:"position"`
	Prompt   string           `json:"prompt" bson:"prompt"`
	Options  []string         `json:"options" bson:"options"`
	Scores   map[string][]int `json:"scores,omitempty" bson:"scores"`
}

// PublicQuestion is the respondent-facing view of a question. Score
// tables stay server-side.
type PublicQuestion struct {
	Position int      `json:"position"`
	Prompt   string   `json:"prompt"`
	Options  []string `json:"options"`
}

// Public strips the score table.
func (q *Question) Public() PublicQuestion {
	return PublicQuestion{
		Position: q.Position,
		Prompt:   q.Prompt,
		Options:  q.Options,
	}
}
