// Package ingest subscribes to an MQTT sensor topic and records readings
// through the same path as the HTTP endpoint. The subscriber is optional:
// deployments without a broker simply never construct one.
package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"

	"ecobox.dev/plantcare-engine/pkg/common"
	"ecobox.dev/plantcare-engine/pkg/engine"
	"ecobox.dev/plantcare-engine/pkg/models"
)

const (
	connectTimeout  = 10 * time.Second
	maxConnectTries = 5
	subscribeQos    = 1
)

// SensorMessage is the wire payload published by field sensors.
type SensorMessage struct {
	PlantID     string    `json:"plant_id"`
	SensorID    string    `json:"sensor_id"`
	Timestamp   time.Time `json:"timestamp"`
	Humidity    float64   `json:"humidity"`
	Temperature float64   `json:"temperature"`
}

// Connect dials the broker with exponential backoff and disconnects when
// the context is cancelled.
func Connect(ctx context.Context, brokerURL, clientID string) (mqtt.Client, error) {
	logger := common.GetLoggerWith(common.LoggerNameIngest)

	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientID)
	opts.SetCleanSession(true)

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = connectTimeout

	var client mqtt.Client
	err := backoff.Retry(func() error {
		client = mqtt.NewClient(opts)
		if token := client.Connect(); token.Wait() && token.Error() != nil {
			logger.Warn("MQTT connect attempt failed", zap.Error(token.Error()))
			return token.Error()
		}
		return nil
	}, backoff.WithMaxRetries(bo, maxConnectTries-1))
	if err != nil {
		return nil, fmt.Errorf("could not establish MQTT connection after retries: %w", err)
	}

	logger.Info("Connected to MQTT broker", zap.String("broker", brokerURL))

	go func() {
		<-ctx.Done()
		client.Disconnect(250)
		logger.Info("MQTT connection closed")
	}()

	return client, nil
}

// Subscriber consumes SensorMessage payloads from a topic and records them.
type Subscriber struct {
	Client  mqtt.Client
	Topic   string
	Reading engine.IReading
}

func NewSubscriber(client mqtt.Client, topic string, reading engine.IReading) *Subscriber {
	return &Subscriber{
		Client:  client,
		Topic:   topic,
		Reading: reading,
	}
}

// Run subscribes and blocks until the context is cancelled.
func (s *Subscriber) Run(ctx context.Context) error {
	logger := common.GetLoggerWith(common.LoggerNameIngest)

	token := s.Client.Subscribe(s.Topic, subscribeQos, func(client mqtt.Client, message mqtt.Message) {
		s.HandleMessage(message)
	})
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("subscribe to %s: %w", s.Topic, token.Error())
	}

	logger.Info("Subscribed to sensor topic", zap.String("topic", s.Topic))

	<-ctx.Done()

	unsubToken := s.Client.Unsubscribe(s.Topic)
	unsubToken.Wait()
	return nil
}

// HandleMessage records one payload. Malformed or rejected payloads are
// logged and dropped; the stream must keep flowing.
func (s *Subscriber) HandleMessage(message mqtt.Message) {
	logger := common.GetLoggerWith(common.LoggerNameIngest)

	var m SensorMessage
	if err := json.Unmarshal(message.Payload(), &m); err != nil {
		logger.Warn("Dropping malformed sensor payload",
			zap.String("topic", message.Topic()),
			zap.Error(err))
		return
	}
	if m.PlantID == "" {
		logger.Warn("Dropping sensor payload without plant_id",
			zap.String("topic", message.Topic()))
		return
	}

	_, err := s.Reading.Record(m.PlantID, &models.SensorReading{
		SensorID:    m.SensorID,
		Timestamp:   m.Timestamp,
		Humidity:    m.Humidity,
		Temperature: m.Temperature,
	})
	if err != nil {
		logger.Warn("Dropping rejected sensor payload",
			zap.String("plant_id", m.PlantID),
			zap.Error(err))
	}
}
