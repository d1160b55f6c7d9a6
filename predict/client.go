// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/danielhkuo/diarisk/models"
)

// Result is the prediction endpoint's response. The endpoint is opaque:
// only the positive-class probability is interpreted here.
type Result struct {
	Probability float64 `json:"probability"`
}

// Client defines the interface to the external model-serving endpoint
type Client interface {
	Predict(ctx context.Context, features models.FeatureVector) (Result, error)
}

type clientImpl struct {
	url string
	hc  *http.Client
}

// NewClient creates a client for the model endpoint at the given URL
func NewClient(url string) Client {
	return &clientImpl{
		url: url,
		hc:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *clientImpl) Predict(ctx context.Context, features models.FeatureVector) (Result, error) {
	payload, err := json.Marshal(features)
	if err != nil {
		return Result{}, fmt.Errorf("error encoding features: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return Result{}, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("error calling model endpoint: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("error reading model response: %w", err)
	}

	// Any 2xx with a JSON body is success; everything else is a uniform failure
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Result{}, fmt.Errorf("model endpoint returned %d: %s", resp.StatusCode, body)
	}

	var result Result
	if err := json.Unmarshal(body, &result); err != nil {
		return Result{}, fmt.Errorf("error parsing model response: %w", err)
	}

	if result.Probability < 0 || result.Probability > 1 {
		return Result{}, fmt.Errorf("model returned probability %g outside [0, 1]", result.Probability)
	}

	return result, nil
}
