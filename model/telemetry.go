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

// TelemetryParams is the payload of a telemetry ingest request. Scalar
// fields are pointers so that an absent field can be told apart from a
// zero reading.
type TelemetryParams struct {
	DeviceID    string   `json:"deviceId"`
	APIKey      string   `json:"apiKey"`
	Temperature *float64 `json:"temperature,omitempty"`
	Humidity    *float64 `json:"humidity,omitempty"`
	Pressure    *float64 `json:"pressure,omitempty"`
	LightLevel  *float64 `json:"light_level,omitempty"`
	IsOn        *bool    `json:"isOn,omitempty"`
}

func (p TelemetryParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.DeviceID, validation.Required),
		validation.Field(&p.APIKey, validation.Required),
	)
}

// HistoryValue derives the scalar recorded in the history ring for this
// sample. The first field present wins, in the fixed priority order
// temperature, humidity, light_level; a boolean isOn maps to 1/0. When
// none of the four is present there is nothing to chart and the second
// return value is false.
func (p TelemetryParams) HistoryValue() (float64, bool) {
	switch {
	case p.Temperature != nil:
		return *p.Temperature, true
	case p.Humidity != nil:
		return *p.Humidity, true
	case p.LightLevel != nil:
		return *p.LightLevel, true
	case p.IsOn != nil:
		if *p.IsOn {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

// TelemetryUpdate is the set of field writes plus the optional bounded
// history append which the store applies to one device record as a single
// atomic operation.
type TelemetryUpdate struct {
	Timestamp   int64
	Temperature *float64
	Humidity    *float64
	Pressure    *float64
	LightLevel  *float64
	IsOn        *bool
	History     *HistoryEntry
}
