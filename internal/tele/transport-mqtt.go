package tele

import (
	"context"
	"fmt"
	"net/url"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/juju/errors"
	"github.com/temoto/quadseg/helpers"
	"github.com/temoto/quadseg/log2"
	tele_config "github.com/temoto/quadseg/tele/config"
)

const (
	defaultKeepalive   = 60 * time.Second
	defaultPingTimeout = 30 * time.Second
	closeTimeout       = 3 * time.Second
)

func TopicConnect(deviceId int) string                  { return fmt.Sprintf("dev%d/c", deviceId) }
func TopicTelemetry(deviceId int) string                { return fmt.Sprintf("dev%d/w/1t", deviceId) }
func TopicCommand(deviceId int) string                  { return fmt.Sprintf("dev%d/r/c", deviceId) }
func TopicResponse(deviceId int, suffix string) string { return fmt.Sprintf("dev%d/%s", deviceId, suffix) }

type transportMqtt struct {
	log       *log2.Log
	onCommand func([]byte) bool
	m         mqtt.Client
	mopt      *mqtt.ClientOptions
	deviceId  int

	topicConnect   string
	topicTelemetry string
	topicCommand   string
}

func (self *transportMqtt) Init(ctx context.Context, log *log2.Log, teleConfig tele_config.Config, onCommand CommandCallback) error {
	self.log = log
	mqttLog := log.Clone(log2.LInfo)
	mqtt.ERROR = mqttLog
	mqtt.CRITICAL = mqttLog
	mqtt.WARN = mqttLog
	if teleConfig.LogDebug {
		mqtt.DEBUG = log.Clone(log2.LDebug)
	}

	if _, err := url.ParseRequestURI(teleConfig.MqttBroker); err != nil {
		return errors.Annotatef(err, "tele config: mqtt_broker=%s", teleConfig.MqttBroker)
	}

	self.deviceId = teleConfig.DeviceId
	mqttClientId := fmt.Sprintf("dev%d", teleConfig.DeviceId)
	credFun := func() (string, string) {
		return mqttClientId, teleConfig.MqttPassword
	}

	self.onCommand = func(payload []byte) bool {
		return onCommand(ctx, payload)
	}
	self.topicConnect = TopicConnect(self.deviceId)
	self.topicTelemetry = TopicTelemetry(self.deviceId)
	self.topicCommand = TopicCommand(self.deviceId)
	keepAlive := helpers.IntSecondDefault(teleConfig.KeepaliveSec, defaultKeepalive)
	pingTimeout := helpers.IntSecondDefault(teleConfig.PingTimeoutSec, defaultPingTimeout)
	retryInterval := keepAlive / 2

	var store mqtt.Store
	if teleConfig.StorePath != "" {
		store = mqtt.NewFileStore(teleConfig.StorePath)
	} else {
		store = mqtt.NewMemoryStore()
	}
	self.mopt = mqtt.NewClientOptions().
		AddBroker(teleConfig.MqttBroker).
		SetBinaryWill(self.topicConnect, []byte{0x00}, 1, true).
		SetClientID(mqttClientId).
		SetCredentialsProvider(credFun).
		SetDefaultPublishHandler(self.messageHandler).
		SetKeepAlive(keepAlive).
		SetPingTimeout(pingTimeout).
		SetOrderMatters(false).
		SetResumeSubs(true).SetCleanSession(false).
		SetStore(store).
		SetConnectRetryInterval(retryInterval).
		SetOnConnectHandler(self.onConnectHandler).
		SetConnectionLostHandler(self.connectLostHandler).
		SetConnectRetry(true)
	self.m = mqtt.NewClient(self.mopt)
	// with ConnectRetry token completes only after first successful connect, don't wait
	if token := self.m.Connect(); token.Error() != nil {
		self.log.Error(errors.Annotate(token.Error(), "mqtt connect"))
	}
	return nil
}

func (self *transportMqtt) Close() {
	self.log.Infof("mqtt disconnect")
	if self.m.IsConnected() {
		self.m.Publish(self.topicConnect, 1, true, []byte{0x00}).WaitTimeout(closeTimeout)
		self.m.Unsubscribe(self.topicCommand).WaitTimeout(closeTimeout)
	}
	self.m.Disconnect(uint(closeTimeout / time.Millisecond))
}

func (self *transportMqtt) SendTelemetry(payload []byte) bool {
	self.m.Publish(self.topicTelemetry, 1, false, payload)
	return true
}

func (self *transportMqtt) SendCommandResponse(topicSuffix string, payload []byte) bool {
	topic := TopicResponse(self.deviceId, topicSuffix)
	self.log.Debugf("mqtt publish command response to topic=%s", topic)
	self.m.Publish(topic, 1, false, payload)
	return true
}

func (self *transportMqtt) messageHandler(c mqtt.Client, msg mqtt.Message) {
	payload := msg.Payload()
	self.log.Debugf("mqtt income message topic=%s (%x)", msg.Topic(), payload)
	if msg.Topic() != self.topicCommand {
		return
	}
	self.onCommand(payload)
}

func (self *transportMqtt) connectLostHandler(c mqtt.Client, err error) {
	self.log.Infof("mqtt disconnect err=%v", err)
}

func (self *transportMqtt) onConnectHandler(c mqtt.Client) {
	self.log.Infof("mqtt connect")
	if token := c.Subscribe(self.topicCommand, 1, nil); token.Wait() && token.Error() != nil {
		self.log.Error(errors.Annotatef(token.Error(), "mqtt subscribe topic=%s", self.topicCommand))
	} else {
		c.Publish(self.topicConnect, 1, true, []byte{0x01})
	}
}
