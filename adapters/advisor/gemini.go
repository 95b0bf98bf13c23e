package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"oneway-quote/core/output"
	"oneway-quote/internal/errors"
	"oneway-quote/internal/logging"
)

// Config configures the Gemini client
type Config struct {
	// Endpoint is the API base URL, without a trailing slash
	Endpoint string

	// Model is the model name
	Model string

	// APIKey authenticates the request
	APIKey string

	// Timeout bounds one request
	Timeout time.Duration

	// RetryCount for failed requests
	RetryCount int

	// RetryDelay between retries
	RetryDelay time.Duration
}

// GeminiClient calls the generateContent REST endpoint
type GeminiClient struct {
	config     Config
	money      *output.Money
	httpClient *http.Client
}

// NewGeminiClient creates a client; money formats the total in the prompt
func NewGeminiClient(config Config, money *output.Money) *GeminiClient {
	return &GeminiClient{
		config: config,
		money:  money,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Pitch sends the prompt and returns the text of the first candidate
func (c *GeminiClient) Pitch(ctx context.Context, s Summary) (string, error) {
	if c.config.APIKey == "" {
		return "", errors.New(errors.TypeConfig, "advisor API key is not set")
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: Prompt(s, c.money)}}}},
	})
	if err != nil {
		return "", errors.Internal("encode advisor request", err)
	}

	var lastErr error
	for attempt := 0; attempt <= c.config.RetryCount; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", errors.Wrap(errors.TypeNetwork, "advisor request cancelled", ctx.Err())
			case <-time.After(c.config.RetryDelay):
			}
		}

		text, err := c.sendOnce(ctx, body)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if !retryable(err) {
			break
		}
		logging.Named("advisor").Debug("request failed, retrying", zap.Int("attempt", attempt+1), zap.Error(err))
	}
	return "", lastErr
}

func (c *GeminiClient) url() string {
	return fmt.Sprintf("%s/models/%s:generateContent", strings.TrimRight(c.config.Endpoint, "/"), c.config.Model)
}

func (c *GeminiClient) sendOnce(ctx context.Context, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(), bytes.NewReader(body))
	if err != nil {
		return "", errors.Internal("create advisor request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.config.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(errors.TypeNetwork, "advisor request failed", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", errors.Wrap(errors.TypeNetwork, "read advisor response", err)
	}

	var decoded generateResponse
	decodeErr := json.Unmarshal(raw, &decoded)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := http.StatusText(resp.StatusCode)
		if decodeErr == nil && decoded.Error != nil && decoded.Error.Message != "" {
			msg = decoded.Error.Message
		}
		return "", errors.Advisor(msg, nil).WithContext("status", resp.StatusCode)
	}
	if decodeErr != nil {
		return "", errors.Advisor("malformed advisor response", decodeErr)
	}

	var out strings.Builder
	if len(decoded.Candidates) > 0 {
		for _, p := range decoded.Candidates[0].Content.Parts {
			out.WriteString(p.Text)
		}
	}
	text := strings.TrimSpace(out.String())
	if text == "" {
		return "", errors.Advisor("advisor returned no text", nil)
	}
	return text, nil
}

// retryable reports whether another attempt could succeed: transport
// failures and 5xx or 429 responses.
func retryable(err error) bool {
	if errors.IsType(err, errors.TypeNetwork) {
		return true
	}
	var e *errors.Error
	if !stderrors.As(err, &e) || e.Type != errors.TypeAdvisor {
		return false
	}
	status, _ := e.Context["status"].(int)
	return status == http.StatusTooManyRequests || status >= 500
}
