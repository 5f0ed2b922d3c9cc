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

package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mendersoftware/go-lib-micro/accesslog"
	"github.com/mendersoftware/go-lib-micro/requestid"

	"github.com/aethercontrol/devicehub/app"
	"github.com/aethercontrol/devicehub/client/nats"
)

// API URL used by the HTTP router
const (
	APIURLDevices    = "/api/devices/v1/devicehub"
	APIURLInternal   = "/api/internal/v1/devicehub"
	APIURLManagement = "/api/management/v1/devicehub"

	APIURLDevicesTelemetry = APIURLDevices + "/telemetry"

	APIURLInternalAlive  = APIURLInternal + "/alive"
	APIURLInternalHealth = APIURLInternal + "/health"

	APIURLManagementDevices         = APIURLManagement + "/devices"
	APIURLManagementDevice          = APIURLManagement + "/devices/:deviceId"
	APIURLManagementDevicePower     = APIURLManagement + "/devices/:deviceId/power"
	APIURLManagementDeviceAnalyze   = APIURLManagement + "/devices/:deviceId/analyze"
	APIURLManagementEvents          = APIURLManagement + "/events"
)

// NewRouter returns the gin router
func NewRouter(
	app app.App,
	natsClient nats.Client,
) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	gin.DisableConsoleColor()

	router := gin.New()
	router.Use(accesslog.Middleware())
	router.Use(gin.Recovery())
	router.Use(requestid.Middleware())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowHeaders: []string{
			"Accept",
			"Allow",
			"Content-Type",
			"Origin",
			"Authorization",
			"Accept-Encoding",
			"Access-Control-Request-Headers",
		},
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowWebSockets: true,
		MaxAge:          time.Hour * 12,
	}))

	status := NewStatusController(app)
	router.GET(APIURLInternalAlive, status.Alive)
	router.GET(APIURLInternalHealth, status.Health)

	telemetry := NewTelemetryController(app)
	router.POST(APIURLDevicesTelemetry, telemetry.Ingest)

	management := NewManagementController(app)
	router.POST(APIURLManagementDevices, management.RegisterDevice)
	router.GET(APIURLManagementDevices, management.GetDevices)
	router.GET(APIURLManagementDevice, management.GetDevice)
	router.PUT(APIURLManagementDevice, management.UpdateDevice)
	router.DELETE(APIURLManagementDevice, management.DeleteDevice)
	router.PUT(APIURLManagementDevicePower, management.SetDevicePower)
	router.POST(APIURLManagementDeviceAnalyze, management.AnalyzeTelemetry)

	events := NewEventsController(natsClient)
	router.GET(APIURLManagementEvents, events.Connect)

	return router, nil
}
