package tele_config

type Config struct { //nolint:maligned
	Enabled        bool   `hcl:"enable"`
	DeviceId       int    `hcl:"device_id"`
	LogDebug       bool   `hcl:"log_debug"`
	MqttBroker     string `hcl:"mqtt_broker"`
	MqttPassword   string `hcl:"mqtt_password"` // secret
	KeepaliveSec   int    `hcl:"keepalive_sec"`
	PingTimeoutSec int    `hcl:"ping_timeout_sec"`
	// publish full report every N seconds, 0 = only on text change and command
	ReportSec int `hcl:"report_sec"`
	// MQTT in-flight message store, empty = memory
	StorePath string `hcl:"store_path"`

	BuildVersion string `hcl:"-"`
}
