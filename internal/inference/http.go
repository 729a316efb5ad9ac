package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// Client talks to a fill-mask HTTP endpoint (HuggingFace-style: a JSON array
// of {token_str, score} objects for the masked position).
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient creates a Client for the given endpoint.
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
	}
}

type fillMaskRequest struct {
	Inputs     string         `json:"inputs"`
	Parameters fillMaskParams `json:"parameters"`
}

type fillMaskParams struct {
	TopK int `json:"top_k"`
}

// Predict submits the masked text and returns the model's predictions for the
// mask position, truncated to topN.
func (c *Client) Predict(ctx context.Context, text string, topN int) ([]Prediction, error) {
	payload, err := json.Marshal(fillMaskRequest{
		Inputs:     text,
		Parameters: fillMaskParams{TopK: topN},
	})
	if err != nil {
		return nil, fmt.Errorf("inference: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("inference: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("inference: request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("inference: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("inference: unexpected status %s", resp.Status)
	}
	return parsePredictions(body, topN)
}

func parsePredictions(body []byte, topN int) ([]Prediction, error) {
	root := gjson.ParseBytes(body)
	if !root.IsArray() {
		return nil, fmt.Errorf("%w: expected array", ErrMalformedResponse)
	}

	items := root.Array()
	preds := make([]Prediction, 0, topN)
	for _, item := range items {
		if len(preds) == topN {
			break
		}
		if item.IsArray() {
			// nested arrays mean the service saw more than one mask
			return nil, fmt.Errorf("%w: multiple mask positions", ErrMalformedResponse)
		}
		tok := item.Get("token_str")
		score := item.Get("score")
		if !tok.Exists() || !score.Exists() {
			return nil, fmt.Errorf("%w: missing token_str or score", ErrMalformedResponse)
		}
		s := score.Float()
		if math.IsNaN(s) || math.IsInf(s, 0) || s < 0 || s > 1 {
			return nil, fmt.Errorf("%w: probability %v outside [0,1]", ErrMalformedResponse, s)
		}
		preds = append(preds, Prediction{Token: strings.TrimSpace(tok.String()), Score: s})
	}
	return preds, nil
}
