package engine

import (
	"context"
	"errors"
	"time"
)

// ErrNoPrediction is returned by predictors that have nothing to offer for
// a plant. Callers treat it as "absent", not as a failure.
var ErrNoPrediction = errors.New("no prediction available")

// Prediction is the output of the optional statistical collaborator. The
// rule-based engine stays fully functional when no predictor is wired in.
type Prediction struct {
	Probability     float64    `json:"probability"`
	RecommendedTime *time.Time `json:"recommended_time,omitempty"`
	Confidence      float64    `json:"confidence"`
}

type Predictor interface {
	Predict(ctx context.Context, plantID string) (Prediction, error)
}

// NullPredictor is the null object used when no statistical model is
// deployed. Selected at construction time, never via fallback control flow.
type NullPredictor struct{}

func (NullPredictor) Predict(ctx context.Context, plantID string) (Prediction, error) {
	return Prediction{}, ErrNoPrediction
}
