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

package mongo

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/mendersoftware/go-lib-micro/config"
	"github.com/stretchr/testify/assert"

	"github.com/aethercontrol/devicehub/model"
	"github.com/aethercontrol/devicehub/store"
)

func float(f float64) *float64 {
	return &f
}

func boolean(b bool) *bool {
	return &b
}

func TestPing(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping TestPing in short mode.")
	}
	ctx, cancel := context.WithTimeout(context.TODO(), time.Second*10)
	defer cancel()

	ds := NewDataStoreWithClient(db.Client(), config.Config)
	err := ds.Ping(ctx)
	assert.NoError(t, err)
}

func TestProvisionAndDeleteDevice(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping TestProvisionAndDeleteDevice in short mode.")
	}
	ctx, cancel := context.WithTimeout(context.TODO(), time.Second*10)
	defer cancel()

	const deviceID = "dev-provision"

	ds := NewDataStoreWithClient(db.Client(), config.Config)
	err := ds.ProvisionDevice(ctx, &model.Device{
		ID:               deviceID,
		Name:             "Office Thermostat",
		Key:              "ak-secret",
		WidgetType:       model.WidgetTypeTempHumidity,
		TelemetryHistory: []model.HistoryEntry{},
	})
	assert.NoError(t, err)

	err = ds.ProvisionDevice(ctx, &model.Device{
		ID:         deviceID,
		Name:       "Office Thermostat",
		Key:        "ak-secret",
		WidgetType: model.WidgetTypeTempHumidity,
	})
	assert.Equal(t, store.ErrDeviceAlreadyExists, err)

	device, err := ds.GetDevice(ctx, deviceID)
	assert.NoError(t, err)
	if assert.NotNil(t, device) {
		assert.Equal(t, deviceID, device.ID)
		assert.Equal(t, "ak-secret", device.Key)
		assert.False(t, device.IsOnline)
		assert.Len(t, device.TelemetryHistory, 0)
	}

	err = ds.DeleteDevice(ctx, deviceID)
	assert.NoError(t, err)

	device, err = ds.GetDevice(ctx, deviceID)
	assert.NoError(t, err)
	assert.Nil(t, device)

	err = ds.DeleteDevice(ctx, deviceID)
	assert.Equal(t, store.ErrDeviceNotFound, err)
}

func TestGetDevices(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping TestGetDevices in short mode.")
	}
	db.Wipe()
	ctx, cancel := context.WithTimeout(context.TODO(), time.Second*10)
	defer cancel()

	ds := NewDataStoreWithClient(db.Client(), config.Config)
	devices := []model.Device{
		{ID: "dev-3", Name: "Desk Lamp", Key: "k3", Group: "office",
			WidgetType: model.WidgetTypeSwitch},
		{ID: "dev-1", Name: "Thermostat", Key: "k1", Group: "hall",
			WidgetType: model.WidgetTypeTempHumidity},
		{ID: "dev-2", Name: "Light Sensor", Key: "k2", Group: "office",
			WidgetType: model.WidgetTypeLightSensor},
	}
	for i := range devices {
		err := ds.ProvisionDevice(ctx, &devices[i])
		assert.NoError(t, err)
	}

	// sorted by group, then name
	stored, err := ds.GetDevices(ctx)
	assert.NoError(t, err)
	if assert.Len(t, stored, 3) {
		assert.Equal(t, "dev-1", stored[0].ID)
		assert.Equal(t, "dev-2", stored[1].ID)
		assert.Equal(t, "dev-3", stored[2].ID)
	}
}

func TestUpdateDevice(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping TestUpdateDevice in short mode.")
	}
	ctx, cancel := context.WithTimeout(context.TODO(), time.Second*10)
	defer cancel()

	const deviceID = "dev-update"

	ds := NewDataStoreWithClient(db.Client(), config.Config)
	err := ds.UpdateDevice(ctx, deviceID, &model.DeviceUpdate{Name: "Renamed"})
	assert.Equal(t, store.ErrDeviceNotFound, err)

	err = ds.ProvisionDevice(ctx, &model.Device{
		ID:         deviceID,
		Name:       "Thermostat",
		Key:        "ak-secret",
		WidgetType: model.WidgetTypeTempHumidity,
	})
	assert.NoError(t, err)

	err = ds.UpdateDevice(ctx, deviceID, &model.DeviceUpdate{
		Name:  "Renamed",
		Group: "garage",
	})
	assert.NoError(t, err)

	device, err := ds.GetDevice(ctx, deviceID)
	assert.NoError(t, err)
	if assert.NotNil(t, device) {
		assert.Equal(t, "Renamed", device.Name)
		assert.Equal(t, "garage", device.Group)
		assert.Equal(t, "ak-secret", device.Key)
	}
}

func TestSetDevicePower(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping TestSetDevicePower in short mode.")
	}
	ctx, cancel := context.WithTimeout(context.TODO(), time.Second*10)
	defer cancel()

	const deviceID = "dev-power"

	ds := NewDataStoreWithClient(db.Client(), config.Config)
	err := ds.SetDevicePower(ctx, deviceID, true)
	assert.Equal(t, store.ErrDeviceNotFound, err)

	err = ds.ProvisionDevice(ctx, &model.Device{
		ID:         deviceID,
		Name:       "Desk Lamp",
		Key:        "ak-secret",
		WidgetType: model.WidgetTypeSwitch,
	})
	assert.NoError(t, err)

	err = ds.SetDevicePower(ctx, deviceID, true)
	assert.NoError(t, err)

	device, err := ds.GetDevice(ctx, deviceID)
	assert.NoError(t, err)
	if assert.NotNil(t, device) {
		assert.True(t, device.IsOn)
		if assert.NotNil(t, device.Telemetry.IsOn) {
			assert.True(t, *device.Telemetry.IsOn)
		}
	}

	err = ds.SetDevicePower(ctx, deviceID, false)
	assert.NoError(t, err)

	device, err = ds.GetDevice(ctx, deviceID)
	assert.NoError(t, err)
	if assert.NotNil(t, device) {
		assert.False(t, device.IsOn)
	}
}

func TestUpsertTelemetry(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping TestUpsertTelemetry in short mode.")
	}
	ctx, cancel := context.WithTimeout(context.TODO(), time.Second*10)
	defer cancel()

	const deviceID = "dev-telemetry"

	ds := NewDataStoreWithClient(db.Client(), config.Config)
	err := ds.UpsertTelemetry(ctx, deviceID, &model.TelemetryUpdate{
		Timestamp: 1765707045000,
	})
	assert.Equal(t, store.ErrDeviceNotFound, err)

	err = ds.ProvisionDevice(ctx, &model.Device{
		ID:               deviceID,
		Name:             "Thermostat",
		Key:              "ak-secret",
		WidgetType:       model.WidgetTypeTempHumidity,
		TelemetryHistory: []model.HistoryEntry{},
	})
	assert.NoError(t, err)

	err = ds.UpsertTelemetry(ctx, deviceID, &model.TelemetryUpdate{
		Timestamp:   1765707045000,
		Temperature: float(21.5),
		Humidity:    float(40.0),
		History:     &model.HistoryEntry{Time: "10:30:45", Value: 21.5},
	})
	assert.NoError(t, err)

	device, err := ds.GetDevice(ctx, deviceID)
	assert.NoError(t, err)
	if assert.NotNil(t, device) {
		assert.True(t, device.IsOnline)
		assert.Equal(t, int64(1765707045000), device.Telemetry.Timestamp)
		if assert.NotNil(t, device.Telemetry.Temperature) {
			assert.Equal(t, 21.5, *device.Telemetry.Temperature)
		}
		if assert.NotNil(t, device.Telemetry.Humidity) {
			assert.Equal(t, 40.0, *device.Telemetry.Humidity)
		}
		if assert.Len(t, device.TelemetryHistory, 1) {
			assert.Equal(t, model.HistoryEntry{
				Time:  "10:30:45",
				Value: 21.5,
			}, device.TelemetryHistory[0])
		}
	}

	// an update without a history entry leaves the history untouched and
	// keeps the fields it does not mention
	err = ds.UpsertTelemetry(ctx, deviceID, &model.TelemetryUpdate{
		Timestamp: 1765707050000,
		Pressure:  float(1013.2),
	})
	assert.NoError(t, err)

	device, err = ds.GetDevice(ctx, deviceID)
	assert.NoError(t, err)
	if assert.NotNil(t, device) {
		assert.Equal(t, int64(1765707050000), device.Telemetry.Timestamp)
		if assert.NotNil(t, device.Telemetry.Pressure) {
			assert.Equal(t, 1013.2, *device.Telemetry.Pressure)
		}
		if assert.NotNil(t, device.Telemetry.Temperature) {
			assert.Equal(t, 21.5, *device.Telemetry.Temperature)
		}
		assert.Len(t, device.TelemetryHistory, 1)
	}

	// a power state report updates both the telemetry and the device
	err = ds.UpsertTelemetry(ctx, deviceID, &model.TelemetryUpdate{
		Timestamp: 1765707055000,
		IsOn:      boolean(true),
		History:   &model.HistoryEntry{Time: "10:30:55", Value: 1},
	})
	assert.NoError(t, err)

	device, err = ds.GetDevice(ctx, deviceID)
	assert.NoError(t, err)
	if assert.NotNil(t, device) {
		assert.True(t, device.IsOn)
		if assert.NotNil(t, device.Telemetry.IsOn) {
			assert.True(t, *device.Telemetry.IsOn)
		}
		assert.Len(t, device.TelemetryHistory, 2)
	}
}

func TestUpsertTelemetryHistoryBound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping TestUpsertTelemetryHistoryBound in short mode.")
	}
	ctx, cancel := context.WithTimeout(context.TODO(), time.Second*60)
	defer cancel()

	const deviceID = "dev-history-bound"
	const n = model.MaxHistoryLength + 5

	ds := NewDataStoreWithClient(db.Client(), config.Config)
	err := ds.ProvisionDevice(ctx, &model.Device{
		ID:               deviceID,
		Name:             "Thermostat",
		Key:              "ak-secret",
		WidgetType:       model.WidgetTypeTempHumidity,
		TelemetryHistory: []model.HistoryEntry{},
	})
	assert.NoError(t, err)

	for i := 1; i <= n; i++ {
		err := ds.UpsertTelemetry(ctx, deviceID, &model.TelemetryUpdate{
			Timestamp:   int64(i),
			Temperature: float(float64(i)),
			History: &model.HistoryEntry{
				Time:  fmt.Sprintf("10:30:%02d", i%60),
				Value: float64(i),
			},
		})
		assert.NoError(t, err)
	}

	device, err := ds.GetDevice(ctx, deviceID)
	assert.NoError(t, err)
	if assert.NotNil(t, device) &&
		assert.Len(t, device.TelemetryHistory, model.MaxHistoryLength) {
		// the oldest entries were evicted, the newest kept, in order
		assert.Equal(t, float64(n-model.MaxHistoryLength+1),
			device.TelemetryHistory[0].Value)
		assert.Equal(t, float64(n),
			device.TelemetryHistory[model.MaxHistoryLength-1].Value)
	}
}

func TestUpsertTelemetryConcurrent(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping TestUpsertTelemetryConcurrent in short mode.")
	}
	ctx, cancel := context.WithTimeout(context.TODO(), time.Second*60)
	defer cancel()

	const deviceID = "dev-history-concurrent"
	const writers = 4
	const writesPerWriter = 10

	ds := NewDataStoreWithClient(db.Client(), config.Config)
	err := ds.ProvisionDevice(ctx, &model.Device{
		ID:               deviceID,
		Name:             "Thermostat",
		Key:              "ak-secret",
		WidgetType:       model.WidgetTypeTempHumidity,
		TelemetryHistory: []model.HistoryEntry{},
	})
	assert.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, writers*writesPerWriter)
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < writesPerWriter; i++ {
				value := float64(w*writesPerWriter + i)
				errs <- ds.UpsertTelemetry(ctx, deviceID,
					&model.TelemetryUpdate{
						Timestamp:   int64(value),
						Temperature: float(value),
						History: &model.HistoryEntry{
							Time:  "10:30:45",
							Value: value,
						},
					})
			}
		}(w)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}

	// every append survives: the per-document update is atomic, so
	// concurrent writers cannot lose entries
	device, err := ds.GetDevice(ctx, deviceID)
	assert.NoError(t, err)
	if assert.NotNil(t, device) {
		assert.Len(t, device.TelemetryHistory, writers*writesPerWriter)
		seen := make(map[float64]bool, writers*writesPerWriter)
		for _, entry := range device.TelemetryHistory {
			seen[entry.Value] = true
		}
		assert.Len(t, seen, writers*writesPerWriter)
	}
}
