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

package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Values for the device widgetType attribute. The widget type is fixed at
// registration and determines which telemetry fields are meaningful.
const (
	WidgetTypeTempHumidity = "temp-humidity"
	WidgetTypeLightSensor  = "light-sensor"
	WidgetTypeSwitch       = "switch"
)

// MaxHistoryLength is the upper bound on the telemetry history kept per
// device. The ingest path evicts the oldest entries so the stored history
// never exceeds this length.
const MaxHistoryLength = 50

// Telemetry is the latest known sample reported by a device. All scalar
// fields are optional and device-type dependent; Timestamp is set on every
// accepted ingest (milliseconds since epoch).
type Telemetry struct {
	Temperature *float64 `json:"temperature,omitempty" bson:"temperature,omitempty"`
	Humidity    *float64 `json:"humidity,omitempty" bson:"humidity,omitempty"`
	Pressure    *float64 `json:"pressure,omitempty" bson:"pressure,omitempty"`
	Timestamp   int64    `json:"timestamp" bson:"timestamp"`
	LightLevel  *float64 `json:"light_level,omitempty" bson:"light_level,omitempty"`
	IsOn        *bool    `json:"isOn,omitempty" bson:"isOn,omitempty"`
}

// HistoryEntry is one derived scalar retained for charting.
type HistoryEntry struct {
	Time  string  `json:"time" bson:"time"`
	Value float64 `json:"value" bson:"value"`
}

// Device represents a registered device and its attributes
type Device struct {
	ID               string         `json:"id" bson:"_id"`
	Name             string         `json:"name" bson:"name"`
	Key              string         `json:"key" bson:"key"`
	Group            string         `json:"group" bson:"group"`
	IsOnline         bool           `json:"isOnline" bson:"isOnline"`
	IsOn             bool           `json:"isOn" bson:"isOn"`
	WidgetType       string         `json:"widgetType" bson:"widgetType"`
	Telemetry        Telemetry      `json:"telemetry" bson:"telemetry"`
	TelemetryHistory []HistoryEntry `json:"telemetryHistory" bson:"telemetryHistory"`
}

func (d Device) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.ID, validation.Required),
		validation.Field(&d.Name, validation.Required),
		validation.Field(&d.Key, validation.Required),
		validation.Field(&d.WidgetType, validation.Required, validation.In(
			WidgetTypeTempHumidity,
			WidgetTypeLightSensor,
			WidgetTypeSwitch,
		)),
	)
}

// DeviceUpdate holds the user-editable device attributes.
type DeviceUpdate struct {
	Name  string `json:"name"`
	Group string `json:"group"`
}

func (u DeviceUpdate) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Name, validation.Required),
	)
}

// DevicePower is the commanded power state for switch-type devices.
type DevicePower struct {
	IsOn bool `json:"isOn"`
}
