package model

// IntakeRequest is the request body of the respondent intake form. The
// form speaks lastName/firstName/middleName; Respondent is the canonical
// shape, so the mapping lives here.
type IntakeRequest struct {
	LastName   string `json:"lastName"`
	FirstName  string `json:"firstName"`
	MiddleName string `json:"middleName"`
	Phone      string `json:"phone"`
	DealerID   string `json:"dealer_id"`
}

// Respondent maps the intake fields onto the canonical shape. An empty
// dealer_id falls back to the id the survey link was opened with.
func (r IntakeRequest) Respondent(linkDealerID string) Respondent {
	dealerID := r.DealerID
	if dealerID == "" {
		dealerID = linkDealerID
	}
	return Respondent{
		Surname:    r.LastName,
		Name:       r.FirstName,
		Patronymic: r.MiddleName,
		Phone:      r.Phone,
		DealerID:   dealerID,
	}
}
