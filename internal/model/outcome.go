package model

// Outcome codes for a submission attempt.
const (
	CodeOK           = "OK"
	CodeServerError  = "SERVER_ERROR"
	CodeTimeout      = "TIMEOUT"
	CodeUnknownError = "UNKNOWN_ERROR"
)

// User-facing messages are fixed strings, never derived from transport
// errors, so internals don't leak into the UI.
const (
	MsgServiceUnavailable = "Сервис временно недоступен. Извините, наш сервис в данный момент недоступен. Попробуйте повторить попытку позже"
	MsgUnknownError       = "Произошла неизвестная ошибка"
)

// OutcomeMessage wraps the user-facing text of an outcome.
type OutcomeMessage struct {
	Text string `json:"text"`
}

// Outcome classifies one submission attempt. Every attempt resolves to an
// Outcome value; the submission layer never surfaces errors any other way.
type Outcome struct {
	Success bool           `json:"success"`
	Code    string         `json:"code"`
	Message OutcomeMessage `json:"message"`
}

// OkOutcome builds a success outcome, defaulting code to OK.
func OkOutcome(code, text string) Outcome {
	if code == "" {
		code = CodeOK
	}
	return Outcome{Success: true, Code: code, Message: OutcomeMessage{Text: text}}
}

// FailOutcome builds a failure outcome.
func FailOutcome(code, text string) Outcome {
	return Outcome{Success: false, Code: code, Message: OutcomeMessage{Text: text}}
}
