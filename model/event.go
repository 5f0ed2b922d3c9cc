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

import "strings"

// Values for the device event type attribute
const (
	EventTypeRegistered = "registered"
	EventTypeTelemetry  = "telemetry"
	EventTypeUpdated    = "updated"
	EventTypePower      = "power"
	EventTypeDeleted    = "deleted"
)

// EventsSubject is the NATS subject carrying change events for all devices.
const EventsSubject = "devicehub.devices"

// GetDeviceEventsSubject returns the NATS subject carrying change events
// for a single device.
func GetDeviceEventsSubject(deviceID string) string {
	return strings.Join([]string{
		EventsSubject,
		deviceID,
	}, ".")
}

// DeviceEvent is published on the event bus after every successful registry
// mutation; live dashboard subscriptions are fed from these. The Device
// snapshot is the post-mutation record (nil for deletions).
type DeviceEvent struct {
	Type      string  `json:"type" msgpack:"type"`
	DeviceID  string  `json:"deviceId" msgpack:"device_id"`
	Timestamp int64   `json:"timestamp" msgpack:"timestamp"`
	Device    *Device `json:"device,omitempty" msgpack:"device,omitempty"`
}
