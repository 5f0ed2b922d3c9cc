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

package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"golang.org/x/sys/unix"

	"github.com/mendersoftware/go-lib-micro/config"
	"github.com/mendersoftware/go-lib-micro/log"

	api "github.com/aethercontrol/devicehub/api/http"
	"github.com/aethercontrol/devicehub/app"
	"github.com/aethercontrol/devicehub/client/analysis"
	"github.com/aethercontrol/devicehub/client/nats"
	dconfig "github.com/aethercontrol/devicehub/config"
	"github.com/aethercontrol/devicehub/ingest"
	"github.com/aethercontrol/devicehub/store"
)

// InitAndRun initializes the server and runs it
func InitAndRun(conf config.Reader, dataStore store.DataStore) error {
	ctx := context.Background()

	log.Setup(conf.GetBool(dconfig.SettingDebugLog))
	l := log.FromContext(ctx)

	natsClient, err := nats.NewClientWithDefaults(
		conf.GetString(dconfig.SettingNatsURI),
	)
	if err != nil {
		return err
	}
	defer natsClient.Close()

	analysisClient := analysis.NewClient(analysis.Config{
		AnalysisURL: conf.GetString(dconfig.SettingAnalysisURL),
		APIKey:      conf.GetString(dconfig.SettingAnalysisAPIKey),
		Model:       conf.GetString(dconfig.SettingAnalysisModel),
	})

	devicehubApp := app.New(dataStore, natsClient, analysisClient)

	if broker := conf.GetString(dconfig.SettingMQTTBroker); broker != "" {
		listener := ingest.NewListener(ingest.Config{
			Broker:      broker,
			TopicPrefix: conf.GetString(dconfig.SettingMQTTTopicPrefix),
			ClientID:    conf.GetString(dconfig.SettingMQTTClientID),
		}, devicehubApp)
		if err := listener.Start(); err != nil {
			return err
		}
		defer listener.Stop()
	}

	var listen = conf.GetString(dconfig.SettingListen)
	router, err := api.NewRouter(devicehubApp, natsClient)
	if err != nil {
		l.Fatal(err)
	}
	srv := &http.Server{
		Addr:    listen,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			l.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, unix.SIGINT, unix.SIGTERM)
	<-quit

	l.Info("Shutdown Server ...")

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxWithTimeout); err != nil {
		l.Fatal("Server Shutdown: ", err)
	}

	return nil
}
