package service

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"dealersurvey/config"
	"dealersurvey/internal/model"
)

const mockCollectorDelay = 500 * time.Millisecond

// CollectorClient submits finished survey payloads to the collection
// endpoint. Every attempt resolves to an Outcome; transport and server
// failures are classified, never returned as errors.
type CollectorClient struct {
	endpoint   string
	mock       bool
	mockDelay  time.Duration
	timeout    time.Duration
	httpClient *http.Client
}

// NewCollectorClient creates a new collector client. Mock mode is fixed
// at construction: an explicit flag, an empty endpoint, or the example
// placeholder endpoint all route every call to the mock path.
func NewCollectorClient(endpoint string, useMock bool, timeout time.Duration) *CollectorClient {
	mock := useMock || endpoint == "" || endpoint == config.PlaceholderEndpoint
	if mock {
		log.Println("[Collector] no real endpoint configured, using mock responses")
	}
	return &CollectorClient{
		endpoint:   endpoint,
		mock:       mock,
		mockDelay:  mockCollectorDelay,
		timeout:    timeout,
		httpClient: &http.Client{},
	}
}

// collectorResponse is the expected response body shape
type collectorResponse struct {
	Code    string                `json:"code"`
	Message *model.OutcomeMessage `json:"message"`
}

// Submit POSTs the payload and classifies the result. Exactly one timeout
// timer is armed per call; cancel releases whichever of timer or response
// lost the race.
func (c *CollectorClient) Submit(ctx context.Context, payload *model.SubmissionPayload) model.Outcome {
	c.logRequest(payload)

	if c.mock {
		time.Sleep(c.mockDelay)
		outcome := model.OkOutcome(model.CodeOK, "")
		c.logOutcome("MOCK", outcome)
		return outcome
	}

	body, err := json.Marshal(payload)
	if err != nil {
		outcome := model.FailOutcome(model.CodeServerError, model.MsgServiceUnavailable)
		c.logOutcome("ERROR", outcome)
		return outcome
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		outcome := model.FailOutcome(model.CodeServerError, model.MsgServiceUnavailable)
		c.logOutcome("ERROR", outcome)
		return outcome
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if reqCtx.Err() == context.DeadlineExceeded {
			outcome := model.FailOutcome(model.CodeTimeout, model.MsgServiceUnavailable)
			c.logOutcome("TIMEOUT", outcome)
			return outcome
		}
		outcome := model.FailOutcome(model.CodeServerError, model.MsgServiceUnavailable)
		c.logOutcome("ERROR", outcome)
		return outcome
	}
	defer resp.Body.Close()

	var respBody collectorResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&respBody)

	var outcome model.Outcome
	switch resp.StatusCode {
	case http.StatusOK:
		if decodeErr != nil {
			outcome = model.FailOutcome(model.CodeServerError, model.MsgServiceUnavailable)
			break
		}
		text := ""
		if respBody.Message != nil {
			text = respBody.Message.Text
		}
		outcome = model.OkOutcome(respBody.Code, text)
	case http.StatusInternalServerError:
		code := model.CodeServerError
		text := model.MsgServiceUnavailable
		if decodeErr == nil {
			if respBody.Code != "" {
				code = respBody.Code
			}
			if respBody.Message != nil {
				text = respBody.Message.Text
			}
		}
		outcome = model.FailOutcome(code, text)
	default:
		outcome = model.FailOutcome(model.CodeUnknownError, model.MsgUnknownError)
	}

	c.logOutcome(resp.Status, outcome)
	return outcome
}

func (c *CollectorClient) logRequest(payload *model.SubmissionPayload) {
	data, _ := json.Marshal(payload)
	log.Printf("[Collector] request: %s", data)
}

func (c *CollectorClient) logOutcome(status string, outcome model.Outcome) {
	log.Printf("[Collector] response [%s]: code=%s success=%t", status, outcome.Code, outcome.Success)
}
