package engine

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"ecobox.dev/plantcare-engine/pkg/common"
	"ecobox.dev/plantcare-engine/pkg/metrics"
	"ecobox.dev/plantcare-engine/pkg/species"
)

type Action string

const (
	ActionWater    Action = "WATER"
	ActionWait     Action = "WAIT"
	ActionNoAction Action = "NO_ACTION"
)

// Factor weights. They must sum to 1.0; humidity dominates because it is
// the most direct signal of need.
const (
	weightHumidity  = 0.50
	weightElapsed   = 0.25
	weightTimeOfDay = 0.15
	weightWeather   = 0.10
)

const (
	scoreThreshold      = 0.6
	confidenceThreshold = 0.6
)

// FactorBreakdown holds the raw (unweighted) value of each scoring factor.
type FactorBreakdown struct {
	Humidity  float64 `json:"humidity"`
	Elapsed   float64 `json:"elapsed"`
	TimeOfDay float64 `json:"time_of_day"`
	Weather   float64 `json:"weather"`
}

// Decision is the engine's output: what to do, how sure we are, for how
// long, and why. Confidence is the mean of the raw factors (agreement
// across signals); Score is the weighted sum (urgency). Produced fresh on
// every evaluation and never mutated.
type Decision struct {
	PlantID          string          `json:"plant_id"`
	Action           Action          `json:"action"`
	Score            float64         `json:"score"`
	Confidence       float64         `json:"confidence"`
	DurationSec      int             `json:"duration_seconds"`
	Reasons          []string        `json:"reasons"`
	Factors          FactorBreakdown `json:"factors"`
	SyntheticWeather bool            `json:"synthetic_weather"`
	EvaluatedAt      time.Time       `json:"evaluated_at"`

	// Prediction is attached only when an external predictor is configured;
	// the rule-based decision above never depends on it.
	Prediction *Prediction `json:"prediction,omitempty"`
}

// Decide is the pure scoring function. No I/O, deterministic for a given
// context and clock.
func Decide(dc *DecisionContext, now time.Time) Decision {
	if dc == nil {
		return Decision{
			Action:      ActionNoAction,
			Confidence:  0,
			Reasons:     []string{"no decision context available"},
			EvaluatedAt: now,
		}
	}

	profile := dc.Profile

	factors := FactorBreakdown{
		Humidity:  humidityFactor(dc.Humidity, profile),
		Elapsed:   elapsedFactor(dc.HoursSinceIrrigation, profile),
		TimeOfDay: timeOfDayFactor(now.Hour(), profile),
		Weather:   weatherFactor(dc.Weather.Condition, dc.Weather.Temperature),
	}

	score := factors.Humidity*weightHumidity +
		factors.Elapsed*weightElapsed +
		factors.TimeOfDay*weightTimeOfDay +
		factors.Weather*weightWeather

	confidence := (factors.Humidity + factors.Elapsed + factors.TimeOfDay + factors.Weather) / 4

	reasons := buildReasons(dc, factors)

	d := Decision{
		PlantID:          dc.PlantID,
		Action:           ActionWait,
		Score:            score,
		Confidence:       confidence,
		Reasons:          reasons,
		Factors:          factors,
		SyntheticWeather: dc.Weather.Synthetic,
		EvaluatedAt:      now,
	}

	if score > scoreThreshold && confidence > confidenceThreshold {
		d.Action = ActionWater
		d.DurationSec = wateringDuration(profile, dc.Humidity, dc.Weather.Temperature)
	}

	return d
}

// humidityFactor is 1.0 below the species minimum, 0.0 at or above the
// ideal, and interpolates linearly in between.
func humidityFactor(humidity float64, p species.Profile) float64 {
	switch {
	case humidity < p.MinHumidity:
		return 1.0
	case humidity < p.IdealHumidity:
		return (p.IdealHumidity - humidity) / (p.IdealHumidity - p.MinHumidity)
	default:
		return 0.0
	}
}

// elapsedFactor stays 0 until the species threshold (24h for thirsty
// species, 48h otherwise), then scales linearly to 1.0 over the next 24h.
func elapsedFactor(hoursAgo float64, p species.Profile) float64 {
	threshold := 48.0
	if p.Thirsty {
		threshold = 24.0
	}
	if hoursAgo > threshold {
		return math.Min(1.0, (hoursAgo-threshold)/24)
	}
	return 0.0
}

func timeOfDayFactor(hour int, p species.Profile) float64 {
	if p.PrefersMorning {
		switch {
		case hour >= 6 && hour <= 10:
			return 1.0
		case hour > 10 && hour <= 16:
			return 0.5 // midday heat
		default:
			return 0.7
		}
	}
	if hour >= 16 && hour <= 20 {
		return 1.0
	}
	return 0.5
}

func weatherFactor(condition string, temperature float64) float64 {
	c := strings.ToLower(condition)
	switch {
	case strings.Contains(c, "rain") || strings.Contains(c, "storm"):
		return 0.0
	case temperature < 10:
		return 0.2
	case temperature > 30:
		return 0.3
	default:
		return 0.8
	}
}

// wateringDuration scales the species base duration by how far below the
// minimum the soil is, adjusted for temperature. Rounded to whole seconds.
func wateringDuration(p species.Profile, humidity, temperature float64) int {
	deficitRatio := math.Max(0, (p.MinHumidity-humidity)/p.MinHumidity)
	adjustment := 1.0 + deficitRatio*0.5

	switch {
	case temperature > 28:
		adjustment *= 1.2
	case temperature < 15:
		adjustment *= 0.8
	}

	return int(math.Round(float64(p.BaseDurationSec) * adjustment))
}

// buildReasons renders the human-facing explanation. Order is a stable
// contract: humidity status first, then elapsed time if triggering, then
// weather if decisive.
func buildReasons(dc *DecisionContext, f FactorBreakdown) []string {
	var reasons []string

	if f.Humidity > 0.7 {
		reasons = append(reasons, fmt.Sprintf("Low humidity (%.0f%% < %.0f%%)", dc.Humidity, dc.Profile.MinHumidity))
	} else if f.Humidity < 0.3 {
		reasons = append(reasons, fmt.Sprintf("Humidity adequate (%.0f%%)", dc.Humidity))
	}

	if f.Elapsed > 0.6 {
		reasons = append(reasons, fmt.Sprintf("%.0fh since last irrigation", dc.HoursSinceIrrigation))
	}

	if f.Weather > 0.7 {
		reasons = append(reasons, "Favorable weather (sunny/mild)")
	} else if f.Weather < 0.3 {
		reasons = append(reasons, "Unfavorable weather (rain/cold)")
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "No decisive signal")
	}
	return reasons
}

func (e *Engine) decideForPlant(ctx context.Context, plantID string) (*Decision, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameEngineCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryScoring),
	)

	dc, err := e.Context.Gather(ctx, plantID)
	if err != nil {
		if errors.Is(err, ErrPlantNotFound) {
			// configuration errors surface as NO_ACTION, not as failures
			metrics.DecisionsTotal.WithLabelValues(string(ActionNoAction)).Inc()
			return &Decision{
				PlantID:     plantID,
				Action:      ActionNoAction,
				Confidence:  0,
				Reasons:     []string{fmt.Sprintf("plant %s not found", plantID)},
				EvaluatedAt: time.Now(),
			}, nil
		}
		return nil, err
	}

	d := Decide(dc, time.Now())

	if e.Predictor != nil {
		if pred, err := e.Predictor.Predict(ctx, plantID); err == nil {
			d.Prediction = &pred
		}
	}

	metrics.DecisionsTotal.WithLabelValues(string(d.Action)).Inc()

	logger.Info("Decision evaluated",
		zap.String("plant_id", plantID),
		zap.String("action", string(d.Action)),
		zap.Float64("score", d.Score),
		zap.Float64("confidence", d.Confidence),
	)

	return &d, nil
}

type IDecisionImpl struct {
	engine *Engine
}

func (id *IDecisionImpl) DecideForPlant(ctx context.Context, plantID string) (*Decision, error) {
	return id.engine.decideForPlant(ctx, plantID)
}

func (e *Engine) GetIDecision() IDecision {
	return &IDecisionImpl{engine: e}
}
