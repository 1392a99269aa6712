package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ecobox.dev/plantcare-engine/pkg/common"
	"ecobox.dev/plantcare-engine/pkg/metrics"
	"ecobox.dev/plantcare-engine/pkg/models"
)

// waterMlPerSecond converts valve-open time into recorded volume.
const waterMlPerSecond = 10

// Actuator is the valve/relay driver boundary. Software-only deployments
// use SimulatedActuator.
type Actuator interface {
	Activate(ctx context.Context, plantID string, durationSec int) error
}

// SimulatedActuator acks immediately and reports completion after
// duration + Delay, like a relay board with a fixed command latency.
type SimulatedActuator struct {
	Delay      time.Duration
	OnComplete func(plantID string, durationSec int)
}

func (a *SimulatedActuator) Activate(ctx context.Context, plantID string, durationSec int) error {
	d := time.Duration(durationSec)*time.Second + a.Delay
	time.AfterFunc(d, func() {
		if a.OnComplete != nil {
			a.OnComplete(plantID, durationSec)
		}
	})
	return nil
}

func (e *Engine) startIrrigation(ctx context.Context, plantID string, durationSec int, trigger models.IrrigationTrigger) (*models.IrrigationEvent, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameEngineCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryIrrigation),
	)

	if durationSec <= 0 {
		return nil, fmt.Errorf("irrigation duration must be positive, got %d", durationSec)
	}

	event := models.IrrigationEvent{
		ID:          uuid.NewString(),
		PlantID:     plantID,
		Trigger:     trigger,
		Status:      models.IrrigationProgrammed,
		CreatedAt:   time.Now(),
		DurationSec: durationSec,
		WaterMl:     durationSec * waterMlPerSecond,
	}

	// best-effort; a missing reading must never block the start
	if reading, err := e.Reading.LatestValid(plantID); err == nil {
		h := reading.Humidity
		event.HumidityBefore = &h
	}

	if err := e.Db.Conn.Create(&event).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	event.Status = models.IrrigationRunning
	event.StartedAt = &now
	if err := e.Db.Conn.Model(&event).Updates(map[string]any{
		"status":     models.IrrigationRunning,
		"started_at": &now,
	}).Error; err != nil {
		return nil, err
	}

	metrics.IrrigationsStartedTotal.WithLabelValues(string(trigger)).Inc()
	logger.Info("Irrigation started", zap.Reflect("event", event))

	if err := e.Actuator.Activate(ctx, plantID, durationSec); err != nil {
		// hardware failure is reported, never fatal to the caller
		finished := time.Now()
		event.Status = models.IrrigationError
		event.ErrorMessage = err.Error()
		event.FinishedAt = &finished
		event.Success = false
		if dbErr := e.Db.Conn.Model(&event).Updates(map[string]any{
			"status":        models.IrrigationError,
			"error_message": err.Error(),
			"finished_at":   &finished,
			"success":       false,
		}).Error; dbErr != nil {
			logger.Error("Failed to record actuation error", zap.Error(dbErr))
		}

		logger.Warn("Actuation failed", zap.String("plant_id", plantID), zap.Error(err))
		if _, aErr := e.Alert.Raise(plantID, models.AlertSeverityWarning,
			fmt.Sprintf("Irrigation hardware failure: %s", err.Error())); aErr != nil {
			logger.Error("Failed to raise actuation alert", zap.Error(aErr))
		}
	}

	return &event, nil
}

func (e *Engine) completeIrrigation(eventID string, success bool, humidityAfter *float64) (*models.IrrigationEvent, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameEngineCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryIrrigation),
	)

	var event models.IrrigationEvent
	if err := e.Db.Conn.First(&event, "id = ?", eventID).Error; err != nil {
		return nil, err
	}
	if event.Terminal() {
		return nil, ErrEventTerminal
	}

	now := time.Now()
	status := models.IrrigationCompleted
	if !success {
		status = models.IrrigationError
	}

	event.Status = status
	event.FinishedAt = &now
	event.Success = success
	event.HumidityAfter = humidityAfter
	if err := e.Db.Conn.Model(&event).Updates(map[string]any{
		"status":         status,
		"finished_at":    &now,
		"success":        success,
		"humidity_after": humidityAfter,
	}).Error; err != nil {
		return nil, err
	}

	logger.Info("Irrigation finished", zap.Reflect("event", event))

	if success {
		if _, err := e.Alert.ResolveOpenForPlant(event.PlantID,
			models.AlertSeverityCritical, models.AlertSeverityWarning); err != nil {
			logger.Error("Failed to resolve alerts after watering", zap.Error(err))
		}
	}

	return &event, nil
}

func (e *Engine) cancelIrrigation(eventID string) (*models.IrrigationEvent, error) {
	var event models.IrrigationEvent
	if err := e.Db.Conn.First(&event, "id = ?", eventID).Error; err != nil {
		return nil, err
	}

	// CANCELLED is reachable only from PROGRAMMED or RUNNING
	if event.Status != models.IrrigationProgrammed && event.Status != models.IrrigationRunning {
		return nil, ErrEventTerminal
	}

	now := time.Now()
	event.Status = models.IrrigationCancelled
	event.FinishedAt = &now
	if err := e.Db.Conn.Model(&event).Updates(map[string]any{
		"status":      models.IrrigationCancelled,
		"finished_at": &now,
	}).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// IsEventNotFound reports whether err means the irrigation event id is
// unknown rather than a transition violation.
func IsEventNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

type IIrrigationImpl struct {
	engine *Engine
}

func (ii *IIrrigationImpl) Start(ctx context.Context, plantID string, durationSec int, trigger models.IrrigationTrigger) (*models.IrrigationEvent, error) {
	return ii.engine.startIrrigation(ctx, plantID, durationSec, trigger)
}

func (ii *IIrrigationImpl) Complete(eventID string, success bool, humidityAfter *float64) (*models.IrrigationEvent, error) {
	return ii.engine.completeIrrigation(eventID, success, humidityAfter)
}

func (ii *IIrrigationImpl) Cancel(eventID string) (*models.IrrigationEvent, error) {
	return ii.engine.cancelIrrigation(eventID)
}

func (e *Engine) GetIIrrigation() IIrrigation {
	return &IIrrigationImpl{engine: e}
}
