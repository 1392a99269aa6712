package engine

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"ecobox.dev/plantcare-engine/pkg/common"
	"ecobox.dev/plantcare-engine/pkg/metrics"
	"ecobox.dev/plantcare-engine/pkg/models"
)

// dedupPrefixLen is how much of the message participates in the dedup key.
// An unresolved alert for the same plant containing this prefix suppresses
// the new one. Severity is deliberately not part of the key; see DESIGN.md.
const dedupPrefixLen = 100

type AlertFilter struct {
	PlantID    string
	Severity   models.AlertSeverity
	Unresolved bool
	Limit      int
}

func (e *Engine) raiseAlert(plantID string, severity models.AlertSeverity, message string) (*models.Alert, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameEngineCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAlert),
	)

	prefix := message
	if len(prefix) > dedupPrefixLen {
		prefix = prefix[:dedupPrefixLen]
	}

	var result models.Alert

	// check-then-create is one transactional unit so two near-simultaneous
	// raises cannot both pass the dedup check
	err := e.Db.Conn.Transaction(func(tx *gorm.DB) error {
		var existing models.Alert
		err := tx.
			Where("plant_id = ? AND resolved = ? AND instr(message, ?) > 0", plantID, false, prefix).
			First(&existing).Error
		if err == nil {
			result = existing
			metrics.AlertsSuppressedTotal.Inc()
			logger.Info("Alert suppressed by dedup",
				zap.String("plant_id", plantID),
				zap.Uint("existing_id", existing.ID))
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		alert := models.Alert{
			PlantID:   plantID,
			Severity:  severity,
			Message:   message,
			CreatedAt: time.Now(),
		}
		if err := tx.Create(&alert).Error; err != nil {
			return err
		}
		result = alert
		metrics.AlertsRaisedTotal.WithLabelValues(string(severity)).Inc()
		logger.Info("Alert raised", zap.Reflect("alert", alert))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// markAlertRead is idempotent; marking a read alert again changes nothing.
func (e *Engine) markAlertRead(alertID uint) error {
	return e.Db.Conn.Model(&models.Alert{}).
		Where("id = ?", alertID).
		Update("read", true).Error
}

// resolveAlert is terminal and idempotent: resolving an already-resolved
// alert is a no-op, not an error. A resolved alert is never reopened.
func (e *Engine) resolveAlert(alertID uint) error {
	now := time.Now()
	return e.Db.Conn.Model(&models.Alert{}).
		Where("id = ? AND resolved = ?", alertID, false).
		Updates(map[string]any{"resolved": true, "resolved_at": &now}).Error
}

func (e *Engine) resolveOpenForPlant(plantID string, severities ...models.AlertSeverity) (int64, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameEngineCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAlert),
	)

	now := time.Now()
	q := e.Db.Conn.Model(&models.Alert{}).
		Where("plant_id = ? AND resolved = ?", plantID, false)
	if len(severities) > 0 {
		q = q.Where("severity IN ?", severities)
	}

	res := q.Updates(map[string]any{"resolved": true, "resolved_at": &now})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected > 0 {
		logger.Info("Open alerts resolved",
			zap.String("plant_id", plantID),
			zap.Int64("count", res.RowsAffected))
	}
	return res.RowsAffected, nil
}

func (e *Engine) queryAlerts(filter AlertFilter) ([]models.Alert, error) {
	q := e.Db.Conn.Model(&models.Alert{}).Order("created_at desc")
	if filter.PlantID != "" {
		q = q.Where("plant_id = ?", filter.PlantID)
	}
	if filter.Severity != "" {
		q = q.Where("severity = ?", filter.Severity)
	}
	if filter.Unresolved {
		q = q.Where("resolved = ?", false)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var alerts []models.Alert
	err := q.Find(&alerts).Error
	return alerts, err
}

type IAlertImpl struct {
	engine *Engine
}

func (ia *IAlertImpl) Raise(plantID string, severity models.AlertSeverity, message string) (*models.Alert, error) {
	return ia.engine.raiseAlert(plantID, severity, message)
}

func (ia *IAlertImpl) MarkRead(alertID uint) error {
	return ia.engine.markAlertRead(alertID)
}

func (ia *IAlertImpl) Resolve(alertID uint) error {
	return ia.engine.resolveAlert(alertID)
}

func (ia *IAlertImpl) ResolveOpenForPlant(plantID string, severities ...models.AlertSeverity) (int64, error) {
	return ia.engine.resolveOpenForPlant(plantID, severities...)
}

func (ia *IAlertImpl) Query(filter AlertFilter) ([]models.Alert, error) {
	return ia.engine.queryAlerts(filter)
}

func (e *Engine) GetIAlert() IAlert {
	return &IAlertImpl{engine: e}
}
