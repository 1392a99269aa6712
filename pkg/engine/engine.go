// Package engine is the irrigation decision and monitoring core: context
// gathering, multi-factor scoring, alert lifecycle, irrigation execution and
// the background monitoring loop.
package engine

import (
	"context"
	"errors"

	"ecobox.dev/plantcare-engine/pkg/db"
	"ecobox.dev/plantcare-engine/pkg/models"
	"ecobox.dev/plantcare-engine/pkg/weather"
)

var (
	ErrPlantNotFound = errors.New("plant not found")
	ErrEventTerminal = errors.New("irrigation event is in a terminal state")
	ErrStopTimeout   = errors.New("monitor did not stop within timeout")
)

type IReading interface {
	Record(plantID string, input *models.SensorReading) (*models.SensorReading, error)
	LatestValid(plantID string) (*models.SensorReading, error)
}

type IAlert interface {
	Raise(plantID string, severity models.AlertSeverity, message string) (*models.Alert, error)
	MarkRead(alertID uint) error
	Resolve(alertID uint) error
	ResolveOpenForPlant(plantID string, severities ...models.AlertSeverity) (int64, error)
	Query(filter AlertFilter) ([]models.Alert, error)
}

type IIrrigation interface {
	Start(ctx context.Context, plantID string, durationSec int, trigger models.IrrigationTrigger) (*models.IrrigationEvent, error)
	Complete(eventID string, success bool, humidityAfter *float64) (*models.IrrigationEvent, error)
	Cancel(eventID string) (*models.IrrigationEvent, error)
}

type IContext interface {
	Gather(ctx context.Context, plantID string) (*DecisionContext, error)
}

type IDecision interface {
	DecideForPlant(ctx context.Context, plantID string) (*Decision, error)
}

// Engine wires the decision core together. Construct one explicitly and
// attach services with WithServices; there are no package-level instances.
type Engine struct {
	Db        db.DB
	Weather   weather.Provider
	Actuator  Actuator
	Predictor Predictor
	Location  string

	Reading    IReading
	Alert      IAlert
	Irrigation IIrrigation
	Context    IContext
	Decision   IDecision
}

type ServiceOpts struct {
	Reading    IReading
	Alert      IAlert
	Irrigation IIrrigation
	Context    IContext
	Decision   IDecision
}

func (e *Engine) WithServices(opts ServiceOpts) *Engine {
	if opts.Reading != nil {
		e.Reading = opts.Reading
	}
	if opts.Alert != nil {
		e.Alert = opts.Alert
	}
	if opts.Irrigation != nil {
		e.Irrigation = opts.Irrigation
	}
	if opts.Context != nil {
		e.Context = opts.Context
	}
	if opts.Decision != nil {
		e.Decision = opts.Decision
	}
	return e
}

// DefaultServices attaches the real implementations for every service that
// has not been overridden yet.
func (e *Engine) DefaultServices() *Engine {
	return e.WithServices(ServiceOpts{
		Reading:    e.GetIReading(),
		Alert:      e.GetIAlert(),
		Irrigation: e.GetIIrrigation(),
		Context:    e.GetIContext(),
		Decision:   e.GetIDecision(),
	})
}
