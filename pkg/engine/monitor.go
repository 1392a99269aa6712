package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ecobox.dev/plantcare-engine/pkg/common"
	"ecobox.dev/plantcare-engine/pkg/metrics"
	"ecobox.dev/plantcare-engine/pkg/models"
)

const (
	DefaultCheckInterval = 300 * time.Second
	defaultErrorBackoff  = 60 * time.Second

	// staleReadingAge is how old the newest reading may be before the loop
	// flags the plant's data as stale.
	staleReadingAge = 2 * time.Hour

	criticalHumidity = 20.0
	warningHumidity  = 30.0
)

// Monitor is the single background worker: it runs the threshold checks for
// every active plant on a fixed cadence and feeds due schedule windows into
// the scored decision path. Plants are checked sequentially; there is no
// fan-out, which keeps alert dedup free of same-tick races.
type Monitor struct {
	engine   *Engine
	interval time.Duration
	schedule *ScheduleTrigger
	backoff  time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

func NewMonitor(e *Engine, interval time.Duration, schedule *ScheduleTrigger) *Monitor {
	if interval <= 0 {
		interval = DefaultCheckInterval
	}
	if schedule == nil {
		schedule = NewScheduleTrigger(DefaultWindows())
	}
	return &Monitor{
		engine:   e,
		interval: interval,
		schedule: schedule,
		backoff:  defaultErrorBackoff,
	}
}

// Start launches the loop. It returns immediately; the loop runs until the
// given context is cancelled or Stop is called.
func (m *Monitor) Start(ctx context.Context) {
	loopCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.done = make(chan struct{})

	go m.run(loopCtx)

	common.GetLoggerWith(
		common.LoggerNameEngineCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryMonitor),
	).Info("Monitoring loop started",
		zap.Duration("interval", m.interval),
		zap.Reflect("windows", m.schedule.Windows()))
}

// Stop cancels the loop and waits for the bounded join. A stop issued
// mid-tick lets the current plant check finish but prevents the next one.
func (m *Monitor) Stop(timeout time.Duration) error {
	if m.cancel == nil {
		return nil
	}
	m.cancel()
	select {
	case <-m.done:
		return nil
	case <-time.After(timeout):
		return ErrStopTimeout
	}
}

func (m *Monitor) run(ctx context.Context) {
	defer close(m.done)

	logger := common.GetLoggerWith(
		common.LoggerNameEngineCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryMonitor),
	)

	bo := backoff.NewConstantBackOff(m.backoff)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		if err := m.RunTick(ctx); err != nil {
			// iteration-level failure: back off, then resume; the loop never
			// terminates itself
			metrics.MonitorTickErrorsTotal.Inc()
			logger.Error("Monitoring tick failed", zap.Error(err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(bo.NextBackOff()):
			}
			continue
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// RunTick performs one monitoring pass over all active plants and then the
// schedule check. Exported so tests and the manual API can drive it; it is
// idempotent thanks to alert dedup and per-minute schedule firing.
func (m *Monitor) RunTick(ctx context.Context) error {
	logger := common.GetLoggerWith(
		common.LoggerNameEngineCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryMonitor),
	)

	var plants []models.Plant
	if err := m.engine.Db.Conn.Where("active = ?", true).Order("id").Find(&plants).Error; err != nil {
		return fmt.Errorf("list active plants: %w", err)
	}

	for i := range plants {
		if ctx.Err() != nil {
			return nil
		}
		if err := m.checkPlant(ctx, &plants[i]); err != nil {
			// one plant's failure must not abort the pass
			metrics.PlantCheckErrorsTotal.Inc()
			logger.Error("Plant check failed",
				zap.String("plant_id", plants[i].ID),
				zap.Error(err))
		}
	}

	m.runSchedule(ctx, time.Now(), plants)

	metrics.MonitorTicksTotal.Inc()
	return nil
}

func (m *Monitor) checkPlant(ctx context.Context, plant *models.Plant) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during plant check: %v", r)
		}
	}()

	reading, rErr := m.engine.Reading.LatestValid(plant.ID)
	if rErr != nil {
		if !errors.Is(rErr, gorm.ErrRecordNotFound) {
			return rErr
		}
		if _, aErr := m.engine.Alert.Raise(plant.ID, models.AlertSeverityInfo,
			"No humidity sensor data available"); aErr != nil {
			return aErr
		}
		return m.setPlantStatus(plant, models.PlantStatusUnknown)
	}

	humidity := reading.Humidity
	age := time.Since(reading.Timestamp)

	switch {
	case humidity < criticalHumidity:
		if _, aErr := m.engine.Alert.Raise(plant.ID, models.AlertSeverityCritical,
			fmt.Sprintf("Critical humidity: %.1f%%. Immediate irrigation required.", humidity)); aErr != nil {
			return aErr
		}
		if sErr := m.setPlantStatus(plant, models.PlantStatusCritical); sErr != nil {
			return sErr
		}
		_, iErr := m.engine.Irrigation.Start(ctx, plant.ID, EmergencyDuration(humidity), models.TriggerEmergency)
		return iErr

	case humidity < warningHumidity:
		if _, aErr := m.engine.Alert.Raise(plant.ID, models.AlertSeverityWarning,
			fmt.Sprintf("Low humidity: %.1f%%. Consider watering soon.", humidity)); aErr != nil {
			return aErr
		}
		return m.setPlantStatus(plant, models.PlantStatusNeedsWater)

	case age > staleReadingAge:
		if _, aErr := m.engine.Alert.Raise(plant.ID, models.AlertSeverityInfo,
			fmt.Sprintf("No recent data. Last reading %dh ago.", int(age.Hours()))); aErr != nil {
			return aErr
		}
		return m.setPlantStatus(plant, models.PlantStatusUnknown)

	default:
		return m.setPlantStatus(plant, models.PlantStatusHealthy)
	}
}

// setPlantStatus is the classification step; the monitoring loop is the
// only writer of Plant.Status.
func (m *Monitor) setPlantStatus(plant *models.Plant, status models.PlantStatus) error {
	if plant.Status == status {
		return nil
	}
	plant.Status = status
	return m.engine.Db.Conn.Model(&models.Plant{}).
		Where("id = ?", plant.ID).
		Update("status", status).Error
}

// runSchedule feeds due windows into the same scored decision path used by
// the on-demand API, starting SCHEDULED irrigation where the score says so.
func (m *Monitor) runSchedule(ctx context.Context, now time.Time, plants []models.Plant) {
	logger := common.GetLoggerWith(
		common.LoggerNameEngineCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategorySchedule),
	)

	for _, w := range m.schedule.Due(now) {
		logger.Info("Schedule window due", zap.String("window", w.String()))

		for i := range plants {
			if ctx.Err() != nil {
				return
			}
			plant := &plants[i]

			decision, err := m.engine.Decision.DecideForPlant(ctx, plant.ID)
			if err != nil {
				logger.Error("Scheduled decision failed",
					zap.String("plant_id", plant.ID), zap.Error(err))
				continue
			}
			if decision.Action != ActionWater {
				continue
			}
			if _, err := m.engine.Irrigation.Start(ctx, plant.ID, decision.DurationSec, models.TriggerScheduled); err != nil {
				logger.Error("Scheduled irrigation failed to start",
					zap.String("plant_id", plant.ID), zap.Error(err))
			}
		}
	}
}

// EmergencyDuration maps current humidity to the fixed emergency watering
// time. Boundaries are exclusive on the upper edge of each step.
func EmergencyDuration(humidity float64) int {
	switch {
	case humidity < 10:
		return 90
	case humidity < 15:
		return 75
	case humidity < 20:
		return 60
	case humidity < 25:
		return 45
	default:
		return 30
	}
}
