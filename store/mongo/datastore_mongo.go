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
	"crypto/tls"
	"strings"
	"time"

	"github.com/mendersoftware/go-lib-micro/config"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	mopts "go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	dconfig "github.com/aethercontrol/devicehub/config"
	"github.com/aethercontrol/devicehub/model"
	"github.com/aethercontrol/devicehub/store"
)

const (
	// DevicesCollectionName refers to the name of the collection of stored devices
	DevicesCollectionName = "devices"
)

// SetupDataStore returns the mongo data store and optionally runs migrations
func SetupDataStore(automigrate bool) (*DataStoreMongo, error) {
	ctx := context.Background()
	dbClient, err := NewClient(ctx, config.Config)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to db")
	}
	dbName := config.Config.GetString(dconfig.SettingDbName)
	err = Migrate(ctx, dbName, DbVersion, dbClient, automigrate)
	if err != nil {
		return nil, errors.Wrap(err, "failed to run migrations")
	}
	dataStore := NewDataStoreWithClient(dbClient, config.Config)
	return dataStore, nil
}

func disconnectClient(parentCtx context.Context, client *mongo.Client) {
	ctx, cancel := context.WithTimeout(parentCtx, 1*time.Second)
	defer cancel()
	client.Disconnect(ctx)
}

// NewClient returns a mongo client
func NewClient(ctx context.Context, c config.Reader) (*mongo.Client, error) {

	clientOptions := mopts.Client()
	mongoURL := c.GetString(dconfig.SettingMongo)
	if !strings.Contains(mongoURL, "://") {
		return nil, errors.Errorf("Invalid mongoURL %q: missing schema.",
			mongoURL)
	}
	clientOptions.ApplyURI(mongoURL)

	username := c.GetString(dconfig.SettingDbUsername)
	if username != "" {
		credentials := mopts.Credential{
			Username: c.GetString(dconfig.SettingDbUsername),
		}
		password := c.GetString(dconfig.SettingDbPassword)
		if password != "" {
			credentials.Password = password
			credentials.PasswordSet = true
		}
		clientOptions.SetAuth(credentials)
	}

	if c.GetBool(dconfig.SettingDbSSL) {
		tlsConfig := &tls.Config{}
		tlsConfig.InsecureSkipVerify = c.GetBool(dconfig.SettingDbSSLSkipVerify)
		clientOptions.SetTLSConfig(tlsConfig)
	}

	// Set writeconcern to acknowlage after write has propagated to the
	// mongod instance and commited to the file system journal.
	wc := writeconcern.New(writeconcern.W(1), writeconcern.J(true))
	clientOptions.SetWriteConcern(wc)

	// Set 10s timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to connect to mongo server")
	}

	// Validate connection
	if err = client.Ping(ctx, nil); err != nil {
		return nil, errors.Wrap(err, "Error reaching mongo server")
	}

	return client, nil
}

// DataStoreMongo is the data storage service
type DataStoreMongo struct {
	// client holds the reference to the client used to communicate with the
	// mongodb server.
	client *mongo.Client
	// dbName contains the name of the devicehub database.
	dbName string
}

// NewDataStoreWithClient initializes a DataStore object
func NewDataStoreWithClient(client *mongo.Client, c config.Reader) *DataStoreMongo {
	dbName := c.GetString(dconfig.SettingDbName)

	return &DataStoreMongo{
		client: client,
		dbName: dbName,
	}
}

// Ping verifies the connection to the database
func (db *DataStoreMongo) Ping(ctx context.Context) error {
	res := db.client.Database(db.dbName).RunCommand(ctx, bson.M{"ping": 1})
	return res.Err()
}

// ProvisionDevice inserts a new device record. The record is created with
// whatever telemetry and history the caller provides; registration passes
// an empty history and zeroed telemetry.
func (db *DataStoreMongo) ProvisionDevice(ctx context.Context, device *model.Device) error {
	coll := db.client.Database(db.dbName).Collection(DevicesCollectionName)

	_, err := coll.InsertOne(ctx, device)
	if mongo.IsDuplicateKeyError(err) {
		return store.ErrDeviceAlreadyExists
	}
	return err
}

// GetDevice returns a device, or nil if the device ID is unknown
func (db *DataStoreMongo) GetDevice(ctx context.Context, deviceID string) (*model.Device, error) {
	coll := db.client.Database(db.dbName).Collection(DevicesCollectionName)

	cur := coll.FindOne(ctx, bson.M{"_id": deviceID})

	device := &model.Device{}
	if err := cur.Decode(&device); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return device, nil
}

// GetDevices returns all registered devices
func (db *DataStoreMongo) GetDevices(ctx context.Context) ([]model.Device, error) {
	coll := db.client.Database(db.dbName).Collection(DevicesCollectionName)

	findOpts := mopts.Find().SetSort(bson.D{{Key: "group", Value: 1}, {Key: "name", Value: 1}})
	cur, err := coll.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	devices := []model.Device{}
	if err := cur.All(ctx, &devices); err != nil {
		return nil, err
	}
	return devices, nil
}

// UpdateDevice updates the user-editable device attributes
func (db *DataStoreMongo) UpdateDevice(
	ctx context.Context,
	deviceID string,
	update *model.DeviceUpdate,
) error {
	coll := db.client.Database(db.dbName).Collection(DevicesCollectionName)

	res, err := coll.UpdateOne(ctx,
		bson.M{"_id": deviceID},
		bson.M{
			"$set": bson.M{
				"name":  update.Name,
				"group": update.Group,
			},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrDeviceNotFound
	}
	return nil
}

// SetDevicePower sets the commanded power state, both top-level and in the
// current telemetry record
func (db *DataStoreMongo) SetDevicePower(ctx context.Context, deviceID string, isOn bool) error {
	coll := db.client.Database(db.dbName).Collection(DevicesCollectionName)

	res, err := coll.UpdateOne(ctx,
		bson.M{"_id": deviceID},
		bson.M{
			"$set": bson.M{
				"isOn":           isOn,
				"telemetry.isOn": isOn,
			},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrDeviceNotFound
	}
	return nil
}

// UpsertTelemetry applies a telemetry update to one device record as a
// single document update: the field writes and the bounded history append
// are indivisible, and concurrent updates for the same device serialize on
// the server so the history bound cannot be corrupted. The $slice modifier
// trims from the front, evicting the oldest entries once the ring is full.
func (db *DataStoreMongo) UpsertTelemetry(
	ctx context.Context,
	deviceID string,
	update *model.TelemetryUpdate,
) error {
	coll := db.client.Database(db.dbName).Collection(DevicesCollectionName)

	set := bson.M{
		"isOnline":            true,
		"telemetry.timestamp": update.Timestamp,
	}
	if update.Temperature != nil {
		set["telemetry.temperature"] = *update.Temperature
	}
	if update.Humidity != nil {
		set["telemetry.humidity"] = *update.Humidity
	}
	if update.Pressure != nil {
		set["telemetry.pressure"] = *update.Pressure
	}
	if update.LightLevel != nil {
		set["telemetry.light_level"] = *update.LightLevel
	}
	if update.IsOn != nil {
		set["telemetry.isOn"] = *update.IsOn
		set["isOn"] = *update.IsOn
	}

	mutation := bson.M{"$set": set}
	if update.History != nil {
		mutation["$push"] = bson.M{
			"telemetryHistory": bson.M{
				"$each":  bson.A{update.History},
				"$slice": -model.MaxHistoryLength,
			},
		}
	}

	res, err := coll.UpdateOne(ctx, bson.M{"_id": deviceID}, mutation)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrDeviceNotFound
	}
	return nil
}

// DeleteDevice deletes a device
func (db *DataStoreMongo) DeleteDevice(ctx context.Context, deviceID string) error {
	coll := db.client.Database(db.dbName).Collection(DevicesCollectionName)

	res, err := coll.DeleteOne(ctx, bson.M{"_id": deviceID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrDeviceNotFound
	}
	return nil
}

// Close disconnects the client
func (db *DataStoreMongo) Close() error {
	ctx := context.Background()
	disconnectClient(ctx, db.client)
	return nil
}

func (db *DataStoreMongo) dropDatabase() error {
	ctx := context.Background()
	err := db.client.Database(db.dbName).Drop(ctx)
	return err
}
