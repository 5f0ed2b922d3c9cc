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

package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	ChatCompletionsURI = "/v1/chat/completions"
)

const (
	defaultTimeout = time.Duration(30) * time.Second
)

// analysisPrompt frames the model as a telemetry analyst; the telemetry
// bundle is appended as a JSON document.
const analysisPrompt = `You are an expert in analyzing telemetry data ` +
	`from IoT devices.

You will receive telemetry data in JSON format. Your task is to analyze ` +
	`this data and identify any anomalies or potential issues with the devices.

Provide a detailed analysis of the telemetry data, highlighting any ` +
	`anomalies, potential device issues, and their possible causes.

Telemetry Data: `

// Client is the telemetry analysis client. The backing service speaks the
// OpenAI-compatible chat completions wire format; the caller treats it as
// an opaque text-in text-out function with no state.
//
//go:generate ../../utils/mockgen.sh
type Client interface {
	Analyze(ctx context.Context, telemetryData string) (string, error)
}

type ClientOptions struct {
	Client *http.Client
}

type Config struct {
	AnalysisURL string
	APIKey      string
	Model       string
}

// NewClient returns a new analysis client
func NewClient(cfg Config, opts ...ClientOptions) Client {
	// Initialize default options
	var clientOpts = ClientOptions{
		Client: &http.Client{},
	}
	// Merge options
	for _, opt := range opts {
		if opt.Client != nil {
			clientOpts.Client = opt.Client
		}
	}

	return &client{
		url:    strings.TrimSuffix(cfg.AnalysisURL, "/"),
		apiKey: cfg.APIKey,
		model:  cfg.Model,
		client: *clientOpts.Client,
	}
}

type client struct {
	url    string
	apiKey string
	model  string
	client http.Client
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (c *client) Analyze(ctx context.Context, telemetryData string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultTimeout)
		defer cancel()
	}

	payload, _ := json.Marshal(chatCompletionRequest{
		Model: c.model,
		Messages: []chatMessage{{
			Role:    "user",
			Content: analysisPrompt + telemetryData,
		}},
	})
	req, err := http.NewRequestWithContext(
		ctx, "POST", c.url+ChatCompletionsURI, bytes.NewReader(payload),
	)
	if err != nil {
		return "", errors.Wrap(err, "analysis: failed to create request")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	rsp, err := c.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "analysis: request failed")
	}
	defer rsp.Body.Close()

	var body chatCompletionResponse
	decoder := json.NewDecoder(rsp.Body)
	if err := decoder.Decode(&body); err != nil {
		return "", errors.Errorf("analysis: HTTP error: %s", rsp.Status)
	}
	if rsp.StatusCode < http.StatusOK || rsp.StatusCode >= 300 {
		if body.Error != nil {
			return "", errors.Errorf("analysis: %s", body.Error.Message)
		}
		return "", errors.Errorf("analysis: HTTP error: %s", rsp.Status)
	}
	if len(body.Choices) == 0 {
		return "", errors.New("analysis: empty completion")
	}

	return body.Choices[0].Message.Content, nil
}
