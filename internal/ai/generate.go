package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.uber.org/zap"
)

type request struct {
	Prompt string `json:"prompt"`
}

type response struct {
	Content string `json:"content"`
}

// pingPrompt is sent by Ping to check the proxy answers.
const pingPrompt = "Test"

// Generate sends prompt to the proxy and returns the generated text verbatim.
// Any transport failure, non-2xx status, undecodable body, or body without a
// non-empty "content" string yields a failed Outcome.
func (c *Client) Generate(ctx context.Context, prompt string) Outcome {
	c.logger.Info("Attempting to generate code with AI",
		zap.String("endpoint", c.endpoint),
		zap.Int("prompt_bytes", len(prompt)))

	out := c.complete(ctx, prompt)
	if !out.OK() {
		c.logger.Warn("AI generation failed",
			zap.String("reason", string(out.Err.Reason)),
			zap.Int("status", out.Err.StatusCode),
			zap.Error(out.Err))
		return out
	}

	c.logger.Debug("AI generation successful", zap.Int("content_bytes", len(out.Content)))
	return out
}

// Ping checks that the proxy answers a trivial prompt with usable content.
func (c *Client) Ping(ctx context.Context) error {
	out := c.complete(ctx, pingPrompt)
	if !out.OK() {
		c.logger.Debug("API test failed", zap.Error(out.Err))
		return out.Err
	}
	return nil
}

func (c *Client) complete(ctx context.Context, prompt string) Outcome {
	payload, err := json.Marshal(request{Prompt: prompt})
	if err != nil {
		return failure(ReasonTransport, 0, fmt.Errorf("encoding request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return failure(ReasonTransport, 0, fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return failure(ReasonTransport, 0, fmt.Errorf("sending request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return failure(ReasonStatus, resp.StatusCode, fmt.Errorf("%s", resp.Status))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return failure(ReasonTransport, resp.StatusCode, fmt.Errorf("reading response body: %w", err))
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(body))
	if err != nil {
		return failure(ReasonDecode, resp.StatusCode, fmt.Errorf("parsing response JSON: %w", err))
	}
	if err := validateResponse(inst); err != nil {
		return failure(ReasonSchema, resp.StatusCode, fmt.Errorf("no content in response: %w", err))
	}

	var r response
	if err := json.Unmarshal(body, &r); err != nil {
		return failure(ReasonDecode, resp.StatusCode, fmt.Errorf("parsing response JSON: %w", err))
	}
	return success(r.Content)
}
