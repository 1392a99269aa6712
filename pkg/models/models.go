package models

import "time"

type PlantStatus string

const (
	PlantStatusHealthy    PlantStatus = "healthy"
	PlantStatusNeedsWater PlantStatus = "needs-water"
	PlantStatusCritical   PlantStatus = "critical"
	PlantStatusUnknown    PlantStatus = "unknown"
)

type AlertSeverity string

const (
	AlertSeverityCritical AlertSeverity = "CRITICAL"
	AlertSeverityWarning  AlertSeverity = "WARNING"
	AlertSeverityInfo     AlertSeverity = "INFO"
	AlertSeveritySuccess  AlertSeverity = "SUCCESS"
)

type IrrigationTrigger string

const (
	TriggerManual    IrrigationTrigger = "MANUAL"
	TriggerScheduled IrrigationTrigger = "SCHEDULED"
	TriggerEmergency IrrigationTrigger = "EMERGENCY"
	TriggerAI        IrrigationTrigger = "AI"
)

type IrrigationStatus string

const (
	IrrigationProgrammed IrrigationStatus = "PROGRAMMED"
	IrrigationRunning    IrrigationStatus = "RUNNING"
	IrrigationCompleted  IrrigationStatus = "COMPLETED"
	IrrigationCancelled  IrrigationStatus = "CANCELLED"
	IrrigationError      IrrigationStatus = "ERROR"
)

// Plant is the monitored unit. Status is owned by the monitoring loop's
// classification step and must not be written anywhere else.
type Plant struct {
	ID      string `gorm:"primaryKey"`
	Species string `gorm:"index"`
	Name    string
	GroupID string      `gorm:"index"`
	Status  PlantStatus `gorm:"type:varchar(20);default:'unknown'"`
	Active  bool        `gorm:"default:true"`

	Readings    []SensorReading   `gorm:"foreignKey:PlantID;references:ID"`
	Alerts      []Alert           `gorm:"foreignKey:PlantID;references:ID"`
	Irrigations []IrrigationEvent `gorm:"foreignKey:PlantID;references:ID"`
}

// SensorReading is immutable once recorded; the latest in-range row per
// plant is the one decisions consult.
type SensorReading struct {
	ID          uint   `gorm:"primaryKey"`
	PlantID     string `gorm:"index:idx_reading_plant_ts"`
	SensorID    string
	Timestamp   time.Time `gorm:"index:idx_reading_plant_ts"`
	Humidity    float64
	Temperature float64
	Light       *float64
}

const (
	HumidityMin    = 0.0
	HumidityMax    = 100.0
	TemperatureMin = -20.0
	TemperatureMax = 60.0
)

// InRange reports whether the reading is physically plausible. Out-of-range
// rows are excluded from decisions, never clamped into them.
func (r *SensorReading) InRange() bool {
	return r.Humidity >= HumidityMin && r.Humidity <= HumidityMax &&
		r.Temperature >= TemperatureMin && r.Temperature <= TemperatureMax
}

type Alert struct {
	ID         uint          `gorm:"primaryKey"`
	PlantID    string        `gorm:"index:idx_alert_plant_open"`
	Severity   AlertSeverity `gorm:"type:varchar(20);check:severity IN ('CRITICAL','WARNING','INFO','SUCCESS')"`
	Message    string
	SensorID   string
	CreatedAt  time.Time
	Read       bool `gorm:"default:false"`
	Resolved   bool `gorm:"index:idx_alert_plant_open;default:false"`
	ResolvedAt *time.Time
}

type IrrigationEvent struct {
	ID             string            `gorm:"primaryKey"`
	PlantID        string            `gorm:"index"`
	Trigger        IrrigationTrigger `gorm:"type:varchar(20)"`
	Status         IrrigationStatus  `gorm:"type:varchar(20);default:'PROGRAMMED'"`
	CreatedAt      time.Time
	StartedAt      *time.Time
	FinishedAt     *time.Time
	DurationSec    int
	WaterMl        int
	HumidityBefore *float64
	HumidityAfter  *float64
	Success        bool
	ErrorMessage   string
}

// Terminal reports whether the event reached a state that must not change.
func (e *IrrigationEvent) Terminal() bool {
	switch e.Status {
	case IrrigationCompleted, IrrigationCancelled, IrrigationError:
		return true
	}
	return false
}
