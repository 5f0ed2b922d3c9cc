// Copyright 2026 Aether Control AS
//
//    Licensed under the Apache License, Version 2.0 (the "License");
//    you may not use this file except in compliance with the License.
//    You may obtain a copy of the License at
//
//        http://www.apache.org/licenses/LICENSE-2.0
//
//    Unless required by applicable law or agreed to in writing, software
//    distributed under the License is distributed on an "AS IS" BASIS,
//    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//    See the License for the specific language governing permissions and
//    limitations under the License.

package ingest

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/mendersoftware/go-lib-micro/log"

	"github.com/aethercontrol/devicehub/app"
	"github.com/aethercontrol/devicehub/model"
)

const (
	keepAlive            = 30 * time.Second
	pingTimeout          = 10 * time.Second
	connectRetryInterval = 5 * time.Second
	disconnectQuiesceMs  = 500
)

// Config holds the MQTT listener settings
type Config struct {
	Broker      string
	TopicPrefix string
	ClientID    string
}

// Listener subscribes to the telemetry topic and runs received samples
// through the same ingest path as the HTTP endpoint: identical validation,
// authentication and atomic bounded-history update. A rejected sample is
// logged and dropped; MQTT has no response channel to return errors on.
type Listener struct {
	cfg    Config
	app    app.App
	client mqtt.Client
}

// NewListener returns a new MQTT telemetry listener
func NewListener(cfg Config, app app.App) *Listener {
	return &Listener{
		cfg: cfg,
		app: app,
	}
}

func (l *Listener) topic() string {
	return strings.Join([]string{l.cfg.TopicPrefix, "telemetry"}, "/")
}

// Start connects to the broker and subscribes to the telemetry topic
func (l *Listener) Start() error {
	logger := log.FromContext(context.Background())

	opts := mqtt.NewClientOptions().
		AddBroker(l.cfg.Broker).
		SetClientID(l.cfg.ClientID).
		SetOrderMatters(false).
		SetKeepAlive(keepAlive).
		SetPingTimeout(pingTimeout).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(connectRetryInterval)

	opts.OnConnectionLost = func(_ mqtt.Client, err error) {
		logger.Warnf("mqtt connection lost: %v", err)
	}
	opts.OnConnect = func(c mqtt.Client) {
		topic := l.topic()
		logger.Infof("mqtt connected, subscribing to %s", topic)
		if token := c.Subscribe(topic, 1, l.onMessage); token.Wait() && token.Error() != nil {
			logger.Errorf("failed to subscribe to %s: %v", topic, token.Error())
		}
	}

	l.client = mqtt.NewClient(opts)
	if token := l.client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	return nil
}

// Stop disconnects from the broker
func (l *Listener) Stop() {
	if l.client != nil && l.client.IsConnected() {
		l.client.Disconnect(disconnectQuiesceMs)
	}
}

func (l *Listener) onMessage(_ mqtt.Client, m mqtt.Message) {
	ctx := context.Background()
	logger := log.FromContext(ctx)

	params := &model.TelemetryParams{}
	if err := json.Unmarshal(m.Payload(), params); err != nil {
		logger.Warnf("dropping malformed telemetry message on %s: %v",
			m.Topic(), err)
		return
	}
	if err := params.Validate(); err != nil {
		logger.Warnf("dropping invalid telemetry message on %s: %v",
			m.Topic(), err)
		return
	}

	if err := l.app.IngestTelemetry(ctx, params); err != nil {
		logger.Warnf("failed to ingest telemetry for device %s: %v",
			params.DeviceID, err)
	}
}
