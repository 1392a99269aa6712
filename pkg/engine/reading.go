package engine

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"ecobox.dev/plantcare-engine/pkg/common"
	"ecobox.dev/plantcare-engine/pkg/models"
)

func (e *Engine) recordReading(plantID string, input *models.SensorReading) (*models.SensorReading, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameEngineCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryReading),
	)

	reading := models.SensorReading{
		PlantID:     plantID,
		SensorID:    input.SensorID,
		Timestamp:   input.Timestamp,
		Humidity:    input.Humidity,
		Temperature: input.Temperature,
		Light:       input.Light,
	}
	if reading.Timestamp.IsZero() {
		reading.Timestamp = time.Now()
	}

	if !reading.InRange() {
		return nil, fmt.Errorf("reading out of physical range: humidity=%.1f temperature=%.1f",
			reading.Humidity, reading.Temperature)
	}

	if err := e.Db.Conn.Create(&reading).Error; err != nil {
		return nil, err
	}

	logger.Info("Reading recorded", zap.Reflect("reading", reading))
	return &reading, nil
}

// latestValidReading returns the newest in-range reading for the plant.
// The range filter lives in the query so a bad row never reaches a decision.
func (e *Engine) latestValidReading(plantID string) (*models.SensorReading, error) {
	var reading models.SensorReading
	err := e.Db.Conn.
		Where("plant_id = ? AND humidity BETWEEN ? AND ? AND temperature BETWEEN ? AND ?",
			plantID,
			models.HumidityMin, models.HumidityMax,
			models.TemperatureMin, models.TemperatureMax).
		Order("timestamp desc").
		First(&reading).Error
	if err != nil {
		return nil, err
	}
	return &reading, nil
}

type IReadingImpl struct {
	engine *Engine
}

func (ir *IReadingImpl) Record(plantID string, input *models.SensorReading) (*models.SensorReading, error) {
	return ir.engine.recordReading(plantID, input)
}

func (ir *IReadingImpl) LatestValid(plantID string) (*models.SensorReading, error) {
	return ir.engine.latestValidReading(plantID)
}

func (e *Engine) GetIReading() IReading {
	return &IReadingImpl{engine: e}
}
