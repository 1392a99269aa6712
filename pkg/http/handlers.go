package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"ecobox.dev/plantcare-engine/pkg/engine"
	"ecobox.dev/plantcare-engine/pkg/models"
)

type PlantRequest struct {
	ID      string `json:"id"`
	Species string `json:"species"`
	Name    string `json:"name"`
	GroupID string `json:"group_id"`
}

var plantRequestSchema = z.Struct(z.Shape{
	"ID":      z.String(),
	"Species": z.String().Required(),
	"Name":    z.String(),
	"GroupID": z.String(),
})

func (rs *RestfulServer) CreatePlant(c *gin.Context) {
	var req PlantRequest
	if err := plantRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	plant := models.Plant{
		ID:      req.ID,
		Species: req.Species,
		Name:    req.Name,
		GroupID: req.GroupID,
		Status:  models.PlantStatusUnknown,
		Active:  true,
	}
	if plant.ID == "" {
		plant.ID = uuid.NewString()
	}

	if err := rs.Engine.Db.Conn.Create(&plant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusCreated, plant)
}

type ReadingRequest struct {
	SensorID    string    `json:"sensor_id"`
	Timestamp   time.Time `json:"timestamp"`
	Humidity    float64   `json:"humidity"`
	Temperature float64   `json:"temperature"`
}

var readingRequestSchema = z.Struct(z.Shape{
	"SensorID":    z.String(),
	"Timestamp":   z.Time(),
	"Humidity":    z.Float64().Required(),
	"Temperature": z.Float64().Required(),
})

func (rs *RestfulServer) PostReading(c *gin.Context) {
	plantID := c.Param("plant_id")

	if !rs.CheckPlantLimiter(plantID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req ReadingRequest
	if err := readingRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	reading := models.SensorReading{
		SensorID:    req.SensorID,
		Timestamp:   req.Timestamp,
		Humidity:    req.Humidity,
		Temperature: req.Temperature,
	}
	if !reading.InRange() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reading out of physical range"})
		return
	}

	recorded, err := rs.Engine.Reading.Record(plantID, &reading)
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, recorded)
}

func (rs *RestfulServer) GetDecision(c *gin.Context) {
	plantID := c.Param("plant_id")

	if !rs.CheckPlantLimiter(plantID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	decision, err := rs.Engine.Decision.DecideForPlant(c.Request.Context(), plantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, decision)
}

func (rs *RestfulServer) GetAlerts(c *gin.Context) {
	plantID := c.Param("plant_id")

	if !rs.CheckPlantLimiter(plantID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	filter := engine.AlertFilter{
		PlantID:    plantID,
		Severity:   models.AlertSeverity(c.Query("severity")),
		Unresolved: c.Query("unresolved") == "true",
	}
	if limit := c.Query("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
			return
		}
		filter.Limit = n
	}

	alerts, err := rs.Engine.Alert.Query(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, alerts)
}

func (rs *RestfulServer) MarkAlertRead(c *gin.Context) {
	alertID, err := strconv.ParseUint(c.Param("alert_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "alert_id must be an integer"})
		return
	}

	if err := rs.Engine.Alert.MarkRead(uint(alertID)); err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) ResolveAlert(c *gin.Context) {
	alertID, err := strconv.ParseUint(c.Param("alert_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "alert_id must be an integer"})
		return
	}

	if err := rs.Engine.Alert.Resolve(uint(alertID)); err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.Status(http.StatusOK)
}

type IrrigationRequest struct {
	DurationSec int    `json:"duration_seconds"`
	Trigger     string `json:"trigger"`
}

var irrigationRequestSchema = z.Struct(z.Shape{
	"DurationSec": z.Int().Required(),
	"Trigger":     z.String(),
})

func (rs *RestfulServer) StartIrrigation(c *gin.Context) {
	plantID := c.Param("plant_id")

	if !rs.CheckPlantLimiter(plantID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req IrrigationRequest
	if err := irrigationRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if req.DurationSec <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "duration_seconds must be positive"})
		return
	}

	trigger := models.IrrigationTrigger(req.Trigger)
	switch trigger {
	case "":
		trigger = models.TriggerManual
	case models.TriggerManual, models.TriggerScheduled, models.TriggerEmergency, models.TriggerAI:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown trigger: " + req.Trigger})
		return
	}

	event, err := rs.Engine.Irrigation.Start(c.Request.Context(), plantID, req.DurationSec, trigger)
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

type CompleteRequest struct {
	Success       bool     `json:"success"`
	HumidityAfter *float64 `json:"humidity_after"`
}

func (rs *RestfulServer) CompleteIrrigation(c *gin.Context) {
	eventID := c.Param("event_id")

	// bound with gin directly: zog struct schemas do not cover the
	// optional pointer field
	var req CompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := rs.Engine.Irrigation.Complete(eventID, req.Success, req.HumidityAfter)
	if err != nil {
		rs.renderIrrigationError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

func (rs *RestfulServer) CancelIrrigation(c *gin.Context) {
	eventID := c.Param("event_id")

	event, err := rs.Engine.Irrigation.Cancel(eventID)
	if err != nil {
		rs.renderIrrigationError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

func (rs *RestfulServer) renderIrrigationError(c *gin.Context, err error) {
	switch {
	case engine.IsEventNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": "irrigation event not found"})
	case errors.Is(err, engine.ErrEventTerminal):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, err)
	}
}

func (rs *RestfulServer) RunMonitorTick(c *gin.Context) {
	if rs.Monitor == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "monitor not configured"})
		return
	}

	if err := rs.Monitor.RunTick(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	plantID := c.Param("plant_id")

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(plantID, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
