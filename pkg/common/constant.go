package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyEngineDBType string = "ENGINE_DB_TYPE"
	EnvKeyEngineDbPath string = "ENGINE_DB_PATH"

	EnvKeyEngineHttpHostPort string = "ENGINE_HTTP_HOST_PORT"

	EnvKeyEngineDefaultRate  string = "ENGINE_DEFAULT_RATE"
	EnvKeyEngineDefaultBurst string = "ENGINE_DEFAULT_BURST"

	EnvKeyEngineCheckIntervalSec string = "ENGINE_CHECK_INTERVAL_SEC"
	EnvKeyEngineScheduleWindows  string = "ENGINE_SCHEDULE_WINDOWS"

	EnvKeyWeatherAPIKey   string = "WEATHER_API_KEY"
	EnvKeyWeatherLocation string = "WEATHER_LOCATION"

	EnvKeyMqttBrokerURL    string = "MQTT_BROKER_URL"
	EnvKeyMqttSensorTopic  string = "MQTT_SENSOR_TOPIC"
	EnvKeyMqttClientPrefix string = "MQTT_CLIENT_PREFIX"

	LoggerNameEngineCore    string = "engine_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameWeather       string = "weather"
	LoggerNameIngest        string = "ingest"

	LoggerFieldCategory string = "category"

	LoggerCategoryScoring    string = "scoring"
	LoggerCategoryAlert      string = "alert"
	LoggerCategoryMonitor    string = "monitor"
	LoggerCategorySchedule   string = "schedule"
	LoggerCategoryIrrigation string = "irrigation"
	LoggerCategoryReading    string = "reading"
)
