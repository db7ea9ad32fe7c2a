package model

import "time"

// Respondent is the canonical intake shape. Patronymic and DealerID stay
// raw strings here; trimming and integer parsing happen only when the
// submission payload is built.
type Respondent struct {
	Surname    string `json:"surname"`
	Name       string `json:"name"`
	Patronymic string `json:"patronymic"`
	Phone      string `json:"phone"`
	DealerID   string `json:"dealerId"`
}

// Session is one respondent's survey state: identity plus one answer slot
// per catalog question. A nil slot means the question is unanswered.
type Session struct {
	ID         string     `json:"id"`
	Respondent Respondent `json:"respondent"`
	Answers    []*int     `json:"answers"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// NewAnswerSet returns an all-unanswered answer set sized to the catalog.
func NewAnswerSet(catalogLen int) []*int {
	return make([]*int, catalogLen)
}
