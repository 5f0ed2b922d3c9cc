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

package config

import (
	"github.com/mendersoftware/go-lib-micro/config"
)

const (
	// SettingListen is the config key for the listen address
	SettingListen = "listen"
	// SettingListenDefault is the default value for the listen address
	SettingListenDefault = ":8080"

	// SettingNatsURI is the config key for the nats uri
	SettingNatsURI = "nats_uri"
	// SettingNatsURIDefault is the default value for the nats uri
	SettingNatsURIDefault = "nats://localhost:4222"

	// SettingMongo is the config key for the mongo URL
	SettingMongo = "mongo_url"
	// SettingMongoDefault is the default value for the mongo URL
	SettingMongoDefault = "mongodb://devicehub-mongo:27017"

	// SettingDbName is the config key for the mongo database name
	SettingDbName = "mongo_dbname"
	// SettingDbNameDefault is the default value for the mongo database name
	SettingDbNameDefault = "devicehub"

	// SettingDbSSL is the config key for the mongo SSL setting
	SettingDbSSL = "mongo_ssl"
	// SettingDbSSLDefault is the default value for the mongo SSL setting
	SettingDbSSLDefault = false

	// SettingDbSSLSkipVerify is the config key for the mongo SSL skip verify setting
	SettingDbSSLSkipVerify = "mongo_ssl_skipverify"
	// SettingDbSSLSkipVerifyDefault is the default value for the mongo SSL skip verify setting
	SettingDbSSLSkipVerifyDefault = false

	// SettingDbUsername is the config key for the mongo username
	SettingDbUsername = "mongo_username"

	// SettingDbPassword is the config key for the mongo password
	SettingDbPassword = "mongo_password"

	// SettingDebugLog is the config key for the turning on the debug log
	SettingDebugLog = "debug_log"
	// SettingDebugLogDefault is the default value for the debug log enabling
	SettingDebugLogDefault = false

	// SettingMQTTBroker is the config key for the optional MQTT broker URL;
	// when empty the MQTT telemetry listener is not started
	SettingMQTTBroker = "mqtt_broker"
	// SettingMQTTBrokerDefault is the default value for the MQTT broker URL
	SettingMQTTBrokerDefault = ""

	// SettingMQTTTopicPrefix is the config key for the MQTT topic prefix
	SettingMQTTTopicPrefix = "mqtt_topic_prefix"
	// SettingMQTTTopicPrefixDefault is the default value for the MQTT topic prefix
	SettingMQTTTopicPrefixDefault = "devicehub"

	// SettingMQTTClientID is the config key for the MQTT client ID
	SettingMQTTClientID = "mqtt_client_id"
	// SettingMQTTClientIDDefault is the default value for the MQTT client ID
	SettingMQTTClientIDDefault = "devicehub-ingest"

	// SettingAnalysisURL is the config key for the telemetry analysis service URL
	SettingAnalysisURL = "analysis_url"
	// SettingAnalysisURLDefault is the default value for the analysis service URL
	SettingAnalysisURLDefault = "https://api.openai.com"

	// SettingAnalysisAPIKey is the config key for the analysis service API key
	SettingAnalysisAPIKey = "analysis_api_key"

	// SettingAnalysisModel is the config key for the analysis model name
	SettingAnalysisModel = "analysis_model"
	// SettingAnalysisModelDefault is the default value for the analysis model name
	SettingAnalysisModelDefault = "gpt-4o-mini"
)

var (
	// Defaults are the default configuration settings
	Defaults = []config.Default{
		{Key: SettingListen, Value: SettingListenDefault},
		{Key: SettingNatsURI, Value: SettingNatsURIDefault},
		{Key: SettingMongo, Value: SettingMongoDefault},
		{Key: SettingDbName, Value: SettingDbNameDefault},
		{Key: SettingDbSSL, Value: SettingDbSSLDefault},
		{Key: SettingDbSSLSkipVerify, Value: SettingDbSSLSkipVerifyDefault},
		{Key: SettingDebugLog, Value: SettingDebugLogDefault},
		{Key: SettingMQTTBroker, Value: SettingMQTTBrokerDefault},
		{Key: SettingMQTTTopicPrefix, Value: SettingMQTTTopicPrefixDefault},
		{Key: SettingMQTTClientID, Value: SettingMQTTClientIDDefault},
		{Key: SettingAnalysisURL, Value: SettingAnalysisURLDefault},
		{Key: SettingAnalysisModel, Value: SettingAnalysisModelDefault},
	}
)
