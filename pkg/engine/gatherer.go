package engine

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"ecobox.dev/plantcare-engine/pkg/models"
	"ecobox.dev/plantcare-engine/pkg/species"
	"ecobox.dev/plantcare-engine/pkg/weather"
)

// hoursWithoutIrrigationDefault is assumed when a plant has no recorded
// irrigation at all.
const hoursWithoutIrrigationDefault = 48.0

// DecisionContext is everything the scoring function needs, gathered in one
// place so Decide itself stays pure.
type DecisionContext struct {
	PlantID string
	Plant   models.Plant
	Profile species.Profile

	Humidity          float64
	HumidityDefaulted bool
	ReadingAt         *time.Time

	Weather weather.Snapshot

	HoursSinceIrrigation float64
	LastIrrigation       *models.IrrigationEvent
}

func (e *Engine) gatherContext(ctx context.Context, plantID string) (*DecisionContext, error) {
	var plant models.Plant
	if err := e.Db.Conn.First(&plant, "id = ?", plantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlantNotFound
		}
		return nil, err
	}

	profile := species.LookupOrDefault(plant.Species)

	dc := &DecisionContext{
		PlantID: plantID,
		Plant:   plant,
		Profile: profile,
	}

	reading, err := e.Reading.LatestValid(plantID)
	switch {
	case err == nil:
		dc.Humidity = reading.Humidity
		ts := reading.Timestamp
		dc.ReadingAt = &ts
	case errors.Is(err, gorm.ErrRecordNotFound):
		// no usable reading: assume slightly below ideal rather than failing
		dc.Humidity = profile.IdealHumidity - 10
		dc.HumidityDefaulted = true
	default:
		return nil, err
	}

	dc.HoursSinceIrrigation = hoursWithoutIrrigationDefault
	var last models.IrrigationEvent
	err = e.Db.Conn.
		Where("plant_id = ? AND status = ? AND success = ?", plantID, models.IrrigationCompleted, true).
		Order("finished_at desc").
		First(&last).Error
	if err == nil && last.FinishedAt != nil {
		dc.LastIrrigation = &last
		dc.HoursSinceIrrigation = time.Since(*last.FinishedAt).Hours()
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// FallbackProvider already degrades to synthetic data; a hard error here
	// still must not block the pipeline.
	snap, err := e.Weather.Current(ctx, e.Location)
	if err != nil {
		snap = weather.NewSyntheticGenerator().At(time.Now())
	}
	dc.Weather = snap

	return dc, nil
}

type IContextImpl struct {
	engine *Engine
}

func (ic *IContextImpl) Gather(ctx context.Context, plantID string) (*DecisionContext, error) {
	return ic.engine.gatherContext(ctx, plantID)
}

func (e *Engine) GetIContext() IContext {
	return &IContextImpl{engine: e}
}
