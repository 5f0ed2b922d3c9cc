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

// ManagementController contains the dashboard-facing end-points
type ManagementController struct {
	app app.App
}

// NewManagementController returns a new ManagementController
func NewManagementController(app app.App) *ManagementController {
	return &ManagementController{app: app}
}

// RegisterDevice responds to POST /devices
func (h ManagementController) RegisterDevice(c *gin.Context) {
	rawData, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "bad request",
		})
		return
	}

	device := &model.Device{}
	if err = json.Unmarshal(rawData, device); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": errors.Wrap(err, "invalid payload").Error(),
		})
		return
	} else if device.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "name is empty",
		})
		return
	}

	ctx := c.Request.Context()
	device, err = h.app.RegisterDevice(ctx, device)
	if err == app.ErrDeviceAlreadyExists {
		c.JSON(http.StatusConflict, gin.H{
			"error": err.Error(),
		})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": errors.Wrap(err, "error registering the device").Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, device)
}

// GetDevices responds to GET /devices
func (h ManagementController) GetDevices(c *gin.Context) {
	ctx := c.Request.Context()

	devices, err := h.app.GetDevices(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": errors.Wrap(err, "error listing devices").Error(),
		})
		return
	}

	c.JSON(http.StatusOK, devices)
}

// GetDevice responds to GET /devices/:deviceId
func (h ManagementController) GetDevice(c *gin.Context) {
	ctx := c.Request.Context()
	deviceID := c.Param("deviceId")

	device, err := h.app.GetDevice(ctx, deviceID)
	if err == app.ErrDeviceNotFound {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, device)
}

// UpdateDevice responds to PUT /devices/:deviceId
func (h ManagementController) UpdateDevice(c *gin.Context) {
	deviceID := c.Param("deviceId")

	update := &model.DeviceUpdate{}
	if err := c.ShouldBindJSON(update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": errors.Wrap(err, "invalid payload").Error(),
		})
		return
	}
	if err := update.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": errors.Wrap(err, "invalid payload").Error(),
		})
		return
	}

	ctx := c.Request.Context()
	err := h.app.UpdateDevice(ctx, deviceID, update)
	if err == app.ErrDeviceNotFound {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": errors.Wrap(err, "error updating the device").Error(),
		})
		return
	}

	c.Writer.WriteHeader(http.StatusNoContent)
}

// SetDevicePower responds to PUT /devices/:deviceId/power
func (h ManagementController) SetDevicePower(c *gin.Context) {
	deviceID := c.Param("deviceId")

	power := &model.DevicePower{}
	if err := c.ShouldBindJSON(power); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": errors.Wrap(err, "invalid payload").Error(),
		})
		return
	}

	ctx := c.Request.Context()
	err := h.app.SetDevicePower(ctx, deviceID, power.IsOn)
	if err == app.ErrDeviceNotFound {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": errors.Wrap(err, "error setting the power state").Error(),
		})
		return
	}

	c.Writer.WriteHeader(http.StatusNoContent)
}

// DeleteDevice responds to DELETE /devices/:deviceId
func (h ManagementController) DeleteDevice(c *gin.Context) {
	deviceID := c.Param("deviceId")

	ctx := c.Request.Context()
	err := h.app.DeleteDevice(ctx, deviceID)
	if err == app.ErrDeviceNotFound {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": errors.Wrap(err, "error deleting the device").Error(),
		})
		return
	}

	c.Writer.WriteHeader(http.StatusAccepted)
}

// AnalyzeTelemetry responds to POST /devices/:deviceId/analyze. There is no
// retry on collaborator failure; the error surfaces to the dashboard.
func (h ManagementController) AnalyzeTelemetry(c *gin.Context) {
	deviceID := c.Param("deviceId")

	ctx := c.Request.Context()
	result, err := h.app.AnalyzeTelemetry(ctx, deviceID)
	if err == app.ErrDeviceNotFound {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	} else if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": errors.Wrap(err, "error analyzing telemetry data").Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"analysisResult": result,
	})
}
