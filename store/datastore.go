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

package store

import (
	"context"
	"errors"

	"github.com/aethercontrol/devicehub/model"
)

// DataStore interface for DataStore services
//
//nolint:lll - skip line length check for interface declaration.
//go:generate ../utils/mockgen.sh
type DataStore interface {
	Ping(ctx context.Context) error
	ProvisionDevice(ctx context.Context, device *model.Device) error
	GetDevice(ctx context.Context, deviceID string) (*model.Device, error)
	GetDevices(ctx context.Context) ([]model.Device, error)
	UpdateDevice(ctx context.Context, deviceID string, update *model.DeviceUpdate) error
	SetDevicePower(ctx context.Context, deviceID string, isOn bool) error
	UpsertTelemetry(ctx context.Context, deviceID string, update *model.TelemetryUpdate) error
	DeleteDevice(ctx context.Context, deviceID string) error
	Close() error
}

var (
	ErrDeviceNotFound      = errors.New("store: device not found")
	ErrDeviceAlreadyExists = errors.New("store: device already exists")
)
