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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	app_mocks "github.com/aethercontrol/devicehub/app/mocks"
	"github.com/aethercontrol/devicehub/model"
)

// message is a canned mqtt.Message for feeding the handler directly
type message struct {
	topic   string
	payload []byte
}

func (m *message) Duplicate() bool   { return false }
func (m *message) Qos() byte         { return 1 }
func (m *message) Retained() bool    { return false }
func (m *message) Topic() string     { return m.topic }
func (m *message) MessageID() uint16 { return 1 }
func (m *message) Payload() []byte   { return m.payload }
func (m *message) Ack()              {}

func TestTopic(t *testing.T) {
	l := NewListener(Config{TopicPrefix: "devicehub"}, nil)
	assert.Equal(t, "devicehub/telemetry", l.topic())
}

func TestOnMessage(t *testing.T) {
	testCases := []struct {
		Name string

		Payload string

		IngestParams *model.TelemetryParams
		IngestErr    error
	}{
		{
			Name: "ok",

			Payload: `{"deviceId":"dev-1","apiKey":"ak-secret",` +
				`"temperature":21.5}`,

			IngestParams: &model.TelemetryParams{
				DeviceID:    "dev-1",
				APIKey:      "ak-secret",
				Temperature: float(21.5),
			},
		},
		{
			Name: "ok, ingest failure is logged and dropped",

			Payload: `{"deviceId":"dev-1","apiKey":"ak-wrong"}`,

			IngestParams: &model.TelemetryParams{
				DeviceID: "dev-1",
				APIKey:   "ak-wrong",
			},
			IngestErr: errors.New("invalid device key"),
		},
		{
			Name: "malformed payload is dropped",

			Payload: `{"deviceId":`,
		},
		{
			Name: "payload without credentials is dropped",

			Payload: `{"temperature":21.5}`,
		},
	}
	for i := range testCases {
		tc := testCases[i]
		t.Run(tc.Name, func(t *testing.T) {
			app := &app_mocks.App{}
			defer app.AssertExpectations(t)

			if tc.IngestParams != nil {
				app.On("IngestTelemetry",
					mock.MatchedBy(func(_ context.Context) bool {
						return true
					}),
					tc.IngestParams,
				).Return(tc.IngestErr)
			}

			l := NewListener(Config{TopicPrefix: "devicehub"}, app)
			l.onMessage(nil, &message{
				topic:   l.topic(),
				payload: []byte(tc.Payload),
			})
		})
	}
}

func float(f float64) *float64 {
	return &f
}
