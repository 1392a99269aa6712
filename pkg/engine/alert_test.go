package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"ecobox.dev/plantcare-engine/pkg/common"
	"ecobox.dev/plantcare-engine/pkg/models"
	"ecobox.dev/plantcare-engine/pkg/species"
	_ "ecobox.dev/plantcare-engine/pkg/testing"
)

func TestRaiseAlertAndDedup(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, e, _, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	plant := createTestPlant(t, e, species.Rose)

	first, err := e.Alert.Raise(plant.ID, models.AlertSeverityWarning, "Low humidity: 25.0%. Consider watering soon.")
	assert.NoError(t, err)
	assert.NotZero(t, first.ID)

	// identical message while unresolved: suppressed, existing returned
	second, err := e.Alert.Raise(plant.ID, models.AlertSeverityWarning, "Low humidity: 25.0%. Consider watering soon.")
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	alerts, err := e.Alert.Query(AlertFilter{PlantID: plant.ID, Unresolved: true})
	assert.NoError(t, err)
	assert.Len(t, alerts, 1)
}

func TestRaiseAlertDedupIgnoresSeverity(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, e, _, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	plant := createTestPlant(t, e, species.Rose)

	warning, err := e.Alert.Raise(plant.ID, models.AlertSeverityWarning, "Humidity trending down")
	assert.NoError(t, err)

	// a CRITICAL with the same message prefix is still suppressed; severity
	// is not part of the dedup key
	critical, err := e.Alert.Raise(plant.ID, models.AlertSeverityCritical, "Humidity trending down")
	assert.NoError(t, err)
	assert.Equal(t, warning.ID, critical.ID)
	assert.Equal(t, models.AlertSeverityWarning, critical.Severity)
}

func TestRaiseAlertDedupUsesMessagePrefix(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, e, _, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	plant := createTestPlant(t, e, species.Rose)

	long := strings.Repeat("x", 100) + " tail one"
	first, err := e.Alert.Raise(plant.ID, models.AlertSeverityInfo, long)
	assert.NoError(t, err)

	// same first 100 chars, different tail: suppressed
	second, err := e.Alert.Raise(plant.ID, models.AlertSeverityInfo, strings.Repeat("x", 100)+" tail two")
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestRaiseAlertAfterResolveCreatesNew(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, e, _, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	plant := createTestPlant(t, e, species.Rose)

	first, err := e.Alert.Raise(plant.ID, models.AlertSeverityCritical, "Critical humidity: 12.0%. Immediate irrigation required.")
	assert.NoError(t, err)
	assert.NoError(t, e.Alert.Resolve(first.ID))

	// resolution is terminal; the same condition gets a fresh alert
	second, err := e.Alert.Raise(plant.ID, models.AlertSeverityCritical, "Critical humidity: 12.0%. Immediate irrigation required.")
	assert.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestResolveIsIdempotent(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, e, _, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	plant := createTestPlant(t, e, species.Rose)

	alert, err := e.Alert.Raise(plant.ID, models.AlertSeverityWarning, "Low humidity")
	assert.NoError(t, err)

	assert.NoError(t, e.Alert.Resolve(alert.ID))

	var after models.Alert
	assert.NoError(t, e.Db.Conn.First(&after, alert.ID).Error)
	assert.True(t, after.Resolved)
	firstResolvedAt := *after.ResolvedAt

	// second resolve: no state change, no error
	assert.NoError(t, e.Alert.Resolve(alert.ID))
	assert.NoError(t, e.Db.Conn.First(&after, alert.ID).Error)
	assert.Equal(t, firstResolvedAt, *after.ResolvedAt)
}

func TestMarkReadIsIdempotent(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, e, _, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	plant := createTestPlant(t, e, species.Rose)

	alert, err := e.Alert.Raise(plant.ID, models.AlertSeverityInfo, "No humidity sensor data available")
	assert.NoError(t, err)

	assert.NoError(t, e.Alert.MarkRead(alert.ID))
	assert.NoError(t, e.Alert.MarkRead(alert.ID))

	var after models.Alert
	assert.NoError(t, e.Db.Conn.First(&after, alert.ID).Error)
	assert.True(t, after.Read)
	assert.False(t, after.Resolved)
}

func TestResolveOpenForPlantFiltersSeverity(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, e, _, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	plant := createTestPlant(t, e, species.Rose)

	_, err := e.Alert.Raise(plant.ID, models.AlertSeverityCritical, "Critical humidity: 10.0%")
	assert.NoError(t, err)
	_, err = e.Alert.Raise(plant.ID, models.AlertSeverityInfo, "No recent data")
	assert.NoError(t, err)

	n, err := e.Alert.ResolveOpenForPlant(plant.ID, models.AlertSeverityCritical, models.AlertSeverityWarning)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)

	open, err := e.Alert.Query(AlertFilter{PlantID: plant.ID, Unresolved: true})
	assert.NoError(t, err)
	assert.Len(t, open, 1)
	assert.Equal(t, models.AlertSeverityInfo, open[0].Severity)
}

func TestQueryAlertsFilters(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, e, _, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	plant := createTestPlant(t, e, species.Rose)
	other := createTestPlant(t, e, species.Cactus)

	_, err := e.Alert.Raise(plant.ID, models.AlertSeverityCritical, "Critical humidity: 9.0%")
	assert.NoError(t, err)
	_, err = e.Alert.Raise(other.ID, models.AlertSeverityWarning, "Low humidity: 22.0%")
	assert.NoError(t, err)

	bySeverity, err := e.Alert.Query(AlertFilter{PlantID: plant.ID, Severity: models.AlertSeverityCritical})
	assert.NoError(t, err)
	assert.Len(t, bySeverity, 1)

	byPlant, err := e.Alert.Query(AlertFilter{PlantID: other.ID})
	assert.NoError(t, err)
	assert.Len(t, byPlant, 1)
	assert.Equal(t, other.ID, byPlant[0].PlantID)

	limited, err := e.Alert.Query(AlertFilter{Limit: 1})
	assert.NoError(t, err)
	assert.Len(t, limited, 1)
}
