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

package app

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/mendersoftware/go-lib-micro/log"

	"github.com/aethercontrol/devicehub/client/analysis"
	"github.com/aethercontrol/devicehub/client/nats"
	"github.com/aethercontrol/devicehub/model"
	"github.com/aethercontrol/devicehub/store"
	"github.com/aethercontrol/devicehub/utils"
)

// App errors
var (
	ErrDeviceNotFound      = errors.New("device not found")
	ErrInvalidDeviceKey    = errors.New("invalid API key")
	ErrDeviceAlreadyExists = errors.New("device already exists")
)

// number of trailing history entries included in an analysis bundle
const analysisHistoryEntries = 10

// time layout for history ring entries
const historyTimeLayout = "15:04:05"

var clock utils.Clock = utils.RealClock{}

// App interface describes app objects
//
//nolint:lll
//go:generate ../utils/mockgen.sh
type App interface {
	HealthCheck(ctx context.Context) error
	RegisterDevice(ctx context.Context, device *model.Device) (*model.Device, error)
	GetDevice(ctx context.Context, deviceID string) (*model.Device, error)
	GetDevices(ctx context.Context) ([]model.Device, error)
	UpdateDevice(ctx context.Context, deviceID string, update *model.DeviceUpdate) error
	SetDevicePower(ctx context.Context, deviceID string, isOn bool) error
	DeleteDevice(ctx context.Context, deviceID string) error
	IngestTelemetry(ctx context.Context, params *model.TelemetryParams) error
	AnalyzeTelemetry(ctx context.Context, deviceID string) (string, error)
}

// app is an app object
type app struct {
	store    store.DataStore
	nats     nats.Client
	analysis analysis.Client
}

// New initializes a new devicehub App
func New(ds store.DataStore, nc nats.Client, ac analysis.Client) App {
	return &app{
		store:    ds,
		nats:     nc,
		analysis: ac,
	}
}

// HealthCheck performs a health check and returns an error if it fails
func (a *app) HealthCheck(ctx context.Context) error {
	return a.store.Ping(ctx)
}

// RegisterDevice creates a new device record with an empty history ring.
// The device ID and the API key are generated when the caller does not
// supply them.
func (a *app) RegisterDevice(
	ctx context.Context,
	device *model.Device,
) (*model.Device, error) {
	if device == nil {
		return nil, errors.New("nil Device")
	}
	if device.ID == "" {
		device.ID = "dev-" + uuid.NewString()[:8]
	}
	if device.Key == "" {
		device.Key = "ak-" + uuid.NewString()
	}
	if device.WidgetType == "" {
		device.WidgetType = model.WidgetTypeTempHumidity
	}
	device.IsOnline = false
	device.IsOn = false
	device.Telemetry = model.Telemetry{}
	device.TelemetryHistory = []model.HistoryEntry{}

	if err := device.Validate(); err != nil {
		return nil, errors.Wrap(err, "app: cannot register invalid Device")
	}

	err := a.store.ProvisionDevice(ctx, device)
	if err == store.ErrDeviceAlreadyExists {
		return nil, ErrDeviceAlreadyExists
	} else if err != nil {
		return nil, err
	}

	a.publishEvent(ctx, model.EventTypeRegistered, device.ID, device)
	return device, nil
}

// GetDevice returns a device
func (a *app) GetDevice(ctx context.Context, deviceID string) (*model.Device, error) {
	device, err := a.store.GetDevice(ctx, deviceID)
	if err != nil {
		return nil, err
	} else if device == nil {
		return nil, ErrDeviceNotFound
	}
	return device, nil
}

// GetDevices returns all registered devices
func (a *app) GetDevices(ctx context.Context) ([]model.Device, error) {
	return a.store.GetDevices(ctx)
}

// UpdateDevice updates the user-editable device attributes
func (a *app) UpdateDevice(
	ctx context.Context,
	deviceID string,
	update *model.DeviceUpdate,
) error {
	err := a.store.UpdateDevice(ctx, deviceID, update)
	if err == store.ErrDeviceNotFound {
		return ErrDeviceNotFound
	} else if err != nil {
		return err
	}
	a.publishEvent(ctx, model.EventTypeUpdated, deviceID, nil)
	return nil
}

// SetDevicePower sets the commanded power state for a switch-type device
func (a *app) SetDevicePower(ctx context.Context, deviceID string, isOn bool) error {
	err := a.store.SetDevicePower(ctx, deviceID, isOn)
	if err == store.ErrDeviceNotFound {
		return ErrDeviceNotFound
	} else if err != nil {
		return err
	}
	a.publishEvent(ctx, model.EventTypePower, deviceID, nil)
	return nil
}

// DeleteDevice deletes a device
func (a *app) DeleteDevice(ctx context.Context, deviceID string) error {
	err := a.store.DeleteDevice(ctx, deviceID)
	if err == store.ErrDeviceNotFound {
		return ErrDeviceNotFound
	} else if err != nil {
		return err
	}
	a.publishDeleted(ctx, deviceID)
	return nil
}

// IngestTelemetry authenticates and applies one telemetry sample: the
// current-state fields and the bounded history append go to the store as a
// single atomic update. At most one history entry is appended per call;
// samples carrying none of temperature, humidity, light_level or isOn
// update the current state only.
func (a *app) IngestTelemetry(ctx context.Context, params *model.TelemetryParams) error {
	device, err := a.store.GetDevice(ctx, params.DeviceID)
	if err != nil {
		return err
	} else if device == nil {
		return ErrDeviceNotFound
	}
	if device.Key != params.APIKey {
		return ErrInvalidDeviceKey
	}

	now := clock.Now()
	update := &model.TelemetryUpdate{
		Timestamp:   now.UnixMilli(),
		Temperature: params.Temperature,
		Humidity:    params.Humidity,
		Pressure:    params.Pressure,
		LightLevel:  params.LightLevel,
		IsOn:        params.IsOn,
	}
	if value, ok := params.HistoryValue(); ok {
		update.History = &model.HistoryEntry{
			Time:  now.Format(historyTimeLayout),
			Value: value,
		}
	}

	err = a.store.UpsertTelemetry(ctx, params.DeviceID, update)
	if err == store.ErrDeviceNotFound {
		return ErrDeviceNotFound
	} else if err != nil {
		return err
	}

	a.publishEvent(ctx, model.EventTypeTelemetry, params.DeviceID, nil)
	return nil
}

// AnalyzeTelemetry bundles the current telemetry and the trailing history
// entries as JSON and passes them to the analysis collaborator.
func (a *app) AnalyzeTelemetry(ctx context.Context, deviceID string) (string, error) {
	device, err := a.store.GetDevice(ctx, deviceID)
	if err != nil {
		return "", err
	} else if device == nil {
		return "", ErrDeviceNotFound
	}

	history := device.TelemetryHistory
	if len(history) > analysisHistoryEntries {
		history = history[len(history)-analysisHistoryEntries:]
	}
	bundle := struct {
		CurrentTelemetry model.Telemetry      `json:"current_telemetry"`
		RecentHistory    []model.HistoryEntry `json:"recent_history"`
	}{
		CurrentTelemetry: device.Telemetry,
		RecentHistory:    history,
	}
	data, err := json.Marshal(bundle)
	if err != nil {
		return "", errors.Wrap(err, "failed to serialize telemetry bundle")
	}

	return a.analysis.Analyze(ctx, string(data))
}

// publishEvent emits a device change event on the event bus. The registry
// write already committed, so a publish failure is logged and swallowed
// rather than failing the request.
func (a *app) publishEvent(
	ctx context.Context,
	eventType string,
	deviceID string,
	device *model.Device,
) {
	if a.nats == nil {
		return
	}
	if device == nil {
		var err error
		device, err = a.store.GetDevice(ctx, deviceID)
		if err != nil {
			log.FromContext(ctx).Warnf(
				"failed to load device %s for event: %v", deviceID, err)
			return
		}
	}
	a.publish(ctx, &model.DeviceEvent{
		Type:      eventType,
		DeviceID:  deviceID,
		Timestamp: clock.Now().UnixMilli(),
		Device:    device,
	})
}

func (a *app) publishDeleted(ctx context.Context, deviceID string) {
	if a.nats == nil {
		return
	}
	a.publish(ctx, &model.DeviceEvent{
		Type:      model.EventTypeDeleted,
		DeviceID:  deviceID,
		Timestamp: clock.Now().UnixMilli(),
	})
}

func (a *app) publish(ctx context.Context, event *model.DeviceEvent) {
	l := log.FromContext(ctx)
	data, err := msgpack.Marshal(event)
	if err != nil {
		l.Warnf("failed to encode device event: %v", err)
		return
	}
	if err := a.nats.Publish(model.EventsSubject, data); err != nil {
		l.Warnf("failed to publish device event: %v", err)
		return
	}
	if err := a.nats.Publish(
		model.GetDeviceEventsSubject(event.DeviceID), data,
	); err != nil {
		l.Warnf("failed to publish device event: %v", err)
	}
}
