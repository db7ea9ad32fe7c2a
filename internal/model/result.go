package model

// RankedResult pairs a product with its total score after ranking.
// Score is internal-only; the wire payload carries just priority,
// product name and percentage.
type RankedResult struct {
	ProductName  string `json:"productName"`
	Score        int    `json:"score"`
	Priority     int    `json:"priority"`
	ScorePercent int    `json:"scorePercent"`
}

// PayloadClient is the respondent block of the submission payload.
// Patronymic marshals to null when absent, never to "".
type PayloadClient struct {
	Surname    string  `json:"surname"`
	Name       string  `json:"name"`
	Patronymic *string `json:"patronymic"`
	Phone      string  `json:"phone"`
}

// PayloadResult is one ranked product on the wire.
type PayloadResult struct {
	Priority     int    `json:"priority"`
	ProductName  string `json:"productName"`
	ScorePercent int    `json:"scorePercent"`
}

// SubmissionPayload is the exact body POSTed to the collector endpoint.
// Downstream (1C) depends on these field names.
type SubmissionPayload struct {
	SurveyDate string          `json:"surveyDate"`
	DealerID   int             `json:"dealer_id"`
	Client     PayloadClient   `json:"client"`
	Results    []PayloadResult `json:"results"`
}
