package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"ecobox.dev/plantcare-engine/pkg/common"
	"ecobox.dev/plantcare-engine/pkg/db"
	"ecobox.dev/plantcare-engine/pkg/engine"
	engineHttp "ecobox.dev/plantcare-engine/pkg/http"
	"ecobox.dev/plantcare-engine/pkg/ingest"
	"ecobox.dev/plantcare-engine/pkg/weather"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	engineDbType := os.Getenv(common.EnvKeyEngineDBType)
	switch engineDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown ENGINE_DB_TYPE: " + engineDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyEngineHttpHostPort))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyEngineDefaultRate), 64); err != nil {
		log.Fatal("Invalid ENGINE_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyEngineDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid ENGINE_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	logger := common.GetLogger()

	var provider weather.Provider
	if apiKey := strings.TrimSpace(os.Getenv(common.EnvKeyWeatherAPIKey)); apiKey != "" {
		provider = weather.NewFallbackProvider(weather.NewOpenWeatherClient(apiKey))
	} else {
		logger.Info("No weather API key configured, using synthetic weather only")
		provider = weather.NewFallbackProvider(nil)
	}

	engineCore := engine.Engine{
		Db:        *dbInstance,
		Weather:   provider,
		Actuator:  &engine.SimulatedActuator{},
		Predictor: engine.NullPredictor{},
		Location:  strings.TrimSpace(os.Getenv(common.EnvKeyWeatherLocation)),
	}
	engineCore.DefaultServices()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	checkInterval := time.Duration(common.GetenvInt(common.EnvKeyEngineCheckIntervalSec, 300)) * time.Second
	windows := engine.ParseWindows(os.Getenv(common.EnvKeyEngineScheduleWindows))
	if len(windows) == 0 {
		windows = engine.DefaultWindows()
	}

	monitor := engine.NewMonitor(&engineCore, checkInterval, engine.NewScheduleTrigger(windows))
	monitor.Start(ctx)
	logger.Info("Monitoring loop started",
		zap.Duration("check_interval", checkInterval),
		zap.Int("schedule_windows", len(windows)))

	if brokerURL := strings.TrimSpace(os.Getenv(common.EnvKeyMqttBrokerURL)); brokerURL != "" {
		topic := strings.TrimSpace(os.Getenv(common.EnvKeyMqttSensorTopic))
		clientID := os.Getenv(common.EnvKeyMqttClientPrefix) + uuid.NewString()

		client, err := ingest.Connect(ctx, brokerURL, clientID)
		if err != nil {
			log.Fatalf("mqtt connect failed: %v", err)
		}

		subscriber := ingest.NewSubscriber(client, topic, engineCore.Reading)
		go func() {
			if err := subscriber.Run(ctx); err != nil {
				logger.Error("Sensor ingest stopped", zap.Error(err))
			}
		}()
		logger.Info("Sensor ingest started", zap.String("topic", topic))
	}

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	rs := &engineHttp.RestfulServer{
		Server:           gin.Default(),
		Engine:           &engineCore,
		Monitor:          monitor,
		RateLimiterStore: engine.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.Float64("default_rate", defaultRate),
		zap.Int64("default_burst", defaultBurst))

	go func() {
		<-ctx.Done()
		if err := monitor.Stop(30 * time.Second); err != nil {
			logger.Warn("Monitor shutdown", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
