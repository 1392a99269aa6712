package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"ecobox.dev/plantcare-engine/pkg/engine"
)

type RestfulServer struct {
	Server           *gin.Engine
	Engine           *engine.Engine
	Monitor          *engine.Monitor
	RateLimiterStore *engine.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(plantID string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(plantID)
	}
}

func (rs *RestfulServer) CheckPlantLimiter(plantID string) bool {
	limiter := rs.GetLimiter(plantID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(plantID string, plantRate float64, plantBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(plantID, rate.Limit(plantRate), plantBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.GET("/metrics", gin.WrapH(promhttp.Handler()))

	rs.Server.POST("/plants", rs.CreatePlant)

	plants := rs.Server.Group("/plants/:plant_id")
	{
		plants.POST("/readings", rs.PostReading)
		plants.GET("/decision", rs.GetDecision)
		plants.GET("/alerts", rs.GetAlerts)
		plants.POST("/irrigations", rs.StartIrrigation)
		plants.POST("/limiter", rs.PostLimiter)
	}

	alerts := rs.Server.Group("/alerts/:alert_id")
	{
		alerts.POST("/read", rs.MarkAlertRead)
		alerts.POST("/resolve", rs.ResolveAlert)
	}

	irrigations := rs.Server.Group("/irrigations/:event_id")
	{
		irrigations.POST("/complete", rs.CompleteIrrigation)
		irrigations.POST("/cancel", rs.CancelIrrigation)
	}

	rs.Server.POST("/monitor/tick", rs.RunMonitorTick)
}
