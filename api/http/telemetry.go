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
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/aethercontrol/devicehub/app"
	"github.com/aethercontrol/devicehub/model"
)

// TelemetryController contains the device-facing ingest end-point
type TelemetryController struct {
	app app.App
}

// NewTelemetryController returns a new TelemetryController
func NewTelemetryController(app app.App) *TelemetryController {
	return &TelemetryController{app: app}
}

// Ingest responds to POST /telemetry. Validation is all-or-nothing on the
// whole payload; an unknown device yields 404 while a key mismatch on a
// known device yields 401, mirroring the dashboard's historical behavior.
func (h TelemetryController) Ingest(c *gin.Context) {
	rawData, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "bad request",
		})
		return
	}

	params := &model.TelemetryParams{}
	if err = json.Unmarshal(rawData, params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": errors.Wrap(err, "invalid payload").Error(),
		})
		return
	}
	if err = params.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": errors.Wrap(err, "invalid payload").Error(),
		})
		return
	}

	ctx := c.Request.Context()
	err = h.app.IngestTelemetry(ctx, params)
	if err == app.ErrDeviceNotFound {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	} else if err == app.ErrInvalidDeviceKey {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": err.Error(),
		})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": errors.Wrap(err, "error storing telemetry data").Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "telemetry data accepted",
	})
}
