// Package inference defines the contract with the external masked-language
// model service and an HTTP client for it. A request carries text with a
// single mask placeholder; the response is the model's top probability slice
// for that position.
package inference

import (
	"context"
	"errors"
)

// Prediction is one vocabulary entry proposed for a masked position.
type Prediction struct {
	Token string
	Score float64
}

// Predictor resolves the single mask placeholder in text to at most topN
// predictions, sorted by descending score as delivered by the model.
type Predictor interface {
	Predict(ctx context.Context, text string, topN int) ([]Prediction, error)
}

// ErrMalformedResponse marks a response that violates the fill-mask contract:
// wrong shape, missing fields, or probabilities outside [0,1].
var ErrMalformedResponse = errors.New("inference: malformed response")
