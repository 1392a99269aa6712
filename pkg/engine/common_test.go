package engine

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"ecobox.dev/plantcare-engine/pkg/db"
	"ecobox.dev/plantcare-engine/pkg/models"
	"ecobox.dev/plantcare-engine/pkg/weather"
)

func GetMockEngineWithMemorySqliteDialector(t *testing.T, useMockReading, useMockAlert, useMockIrrigation, useMockDecision bool) (
	*gomock.Controller,
	*Engine,
	*MockIReading,
	*MockIAlert,
	*MockIIrrigation,
	*MockIDecision,
) {
	ctrl := gomock.NewController(t)

	mockReading := NewMockIReading(ctrl)
	mockAlert := NewMockIAlert(ctrl)
	mockIrrigation := NewMockIIrrigation(ctrl)
	mockDecision := NewMockIDecision(ctrl)

	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations

	e := &Engine{
		Db:        *dbInstance,
		Weather:   weather.NewFallbackProvider(nil), // always synthetic in tests
		Actuator:  &SimulatedActuator{},
		Predictor: NullPredictor{},
		Location:  "Madrid",
	}
	e.DefaultServices()

	if useMockReading {
		e.Reading = mockReading
	}
	if useMockAlert {
		e.Alert = mockAlert
	}
	if useMockIrrigation {
		e.Irrigation = mockIrrigation
	}
	if useMockDecision {
		e.Decision = mockDecision
	}

	return ctrl, e, mockReading, mockAlert, mockIrrigation, mockDecision
}

func createTestPlant(t *testing.T, e *Engine, speciesName string) *models.Plant {
	t.Helper()
	plant := models.Plant{
		ID:      uuid.NewString(),
		Species: speciesName,
		Name:    "test plant",
		Status:  models.PlantStatusUnknown,
		Active:  true,
	}
	if err := e.Db.Conn.Create(&plant).Error; err != nil {
		t.Fatalf("seed plant: %v", err)
	}
	return &plant
}

// deactivateAllPlants clears the shared in-memory table so a test with
// strict mock expectations only sees its own plants.
func deactivateAllPlants(t *testing.T, e *Engine) {
	t.Helper()
	if err := e.Db.Conn.Model(&models.Plant{}).Where("active = ?", true).Update("active", false).Error; err != nil {
		t.Fatalf("deactivate plants: %v", err)
	}
}

func testReading(humidity float64) *models.SensorReading {
	return &models.SensorReading{
		SensorID:    "sensor-1",
		Timestamp:   time.Now(),
		Humidity:    humidity,
		Temperature: 21,
	}
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
