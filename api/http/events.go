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

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	natsio "github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/mendersoftware/go-lib-micro/log"

	"github.com/aethercontrol/devicehub/client/nats"
	"github.com/aethercontrol/devicehub/model"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Buffered event channel size per subscription.
	channelSize = 25
)

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// EventsController streams device change events to dashboard clients over
// a websocket, fed from the NATS event bus. This replaces the hosted
// database's live-query push the dashboard historically relied on.
type EventsController struct {
	nats nats.Client
}

// NewEventsController returns a new EventsController
func NewEventsController(nc nats.Client) *EventsController {
	return &EventsController{nats: nc}
}

// Connect upgrades the request to a websocket and forwards change events
// for all devices, or for one device when the deviceId query parameter is
// given, until the client goes away.
func (h EventsController) Connect(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.FromContext(ctx)

	subject := model.EventsSubject
	if deviceID := c.Query("deviceId"); deviceID != "" {
		subject = model.GetDeviceEventsSubject(deviceID)
	}

	msgChan := make(chan *natsio.Msg, channelSize)
	sub, err := h.nats.ChanSubscribe(subject, msgChan)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": errors.Wrap(err, "failed to subscribe to device events").Error(),
		})
		return
	}
	//nolint:errcheck
	defer sub.Unsubscribe()

	ws, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		err = errors.Wrap(err, "unable to upgrade the request to websocket protocol")
		l.Error(err)
		return
	}
	defer ws.Close()

	// drain the client side; a read error means the peer is gone
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case msg := <-msgChan:
			event := &model.DeviceEvent{}
			if err := msgpack.Unmarshal(msg.Data, event); err != nil {
				l.Warnf("discarding malformed device event: %v", err)
				continue
			}
			ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := ws.WriteJSON(event); err != nil {
				return
			}
		case <-ticker.C:
			ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
