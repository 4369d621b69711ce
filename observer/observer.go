// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CogScale

// Package observer relays error and completion payloads to named Foundation
// queues. Delivery is best-effort: failures are logged, never raised, and
// never retried.
package observer

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/cogscale/foundation-go/config"
	"github.com/cogscale/foundation-go/internal/httpx"
	"github.com/cogscale/foundation-go/logger"
	"github.com/cogscale/foundation-go/models"
)

// Event is the kind of job outcome an observer listens for.
type Event string

const (
	// EventError marks observers notified when a job fails.
	EventError Event = "error"

	// EventCompletion marks observers notified when a job finishes.
	EventCompletion Event = "completion"
)

// Registry maps an event kind to the queue names notified when that event
// fires. The mapping is provided by the caller and never persisted.
type Registry map[Event][]string

// Observers posts event payloads to the Foundation queue API. It is safe for
// concurrent use.
type Observers struct {
	client   *resty.Client
	registry Registry

	logger *logger.Logger
}

// New constructs an Observers client over the given registry. A nil registry
// is treated as empty: every notification becomes a no-op.
//
// cfg is assumed to be already validated by [config.Resolve]; an APIRoot
// that fails URL parsing leaves the client without a base URL and every
// delivery attempt is logged as failed, matching the best-effort contract.
func New(cfg *config.Config, registry Registry, log *logger.Logger) *Observers {
	client, err := httpx.NewClient(cfg.APIRoot, cfg.APIKey)
	if err != nil {
		log.Error().Err(err).Msg("observers created with invalid api root")
		client = resty.New().SetHeader(httpx.AuthHeader, cfg.APIKey)
	}

	return &Observers{client: client, registry: registry, logger: log}
}

// OnError relays payload to every queue registered for [EventError].
// No queues registered means no network calls at all.
func (o *Observers) OnError(ctx context.Context, payload any) {
	o.notify(ctx, EventError, payload)
}

// OnCompletion relays payload to every queue registered for
// [EventCompletion]. No queues registered means no network calls at all.
func (o *Observers) OnCompletion(ctx context.Context, payload any) {
	o.notify(ctx, EventCompletion, payload)
}

func (o *Observers) notify(ctx context.Context, event Event, payload any) {
	queues := o.registry[event]
	if len(queues) == 0 {
		return
	}

	for _, queue := range queues {
		o.postMessage(ctx, queue, payload)
	}
}

// postMessage serializes payload to a JSON string, wraps it in a
// single-message batch envelope, and POSTs it to the queue. The queue API
// answers 201 Created on success; every other outcome is logged and
// swallowed so one queue's failure never blocks the rest.
func (o *Observers) postMessage(ctx context.Context, queue string, payload any) {
	callID := uuid.NewString()

	body, err := json.Marshal(payload)
	if err != nil {
		o.logger.Error().
			Str("call_id", callID).
			Str("queue", queue).
			Err(err).
			Msg("observer failed to encode message payload")
		return
	}

	resp, err := o.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.NewSingleMessageBatch(string(body))).
		SetPathParam("queue", queue).
		Post("/v1/queues/{queue}/messages")
	if err != nil {
		o.logger.Error().
			Str("call_id", callID).
			Str("queue", queue).
			Err(err).
			Msg("observer failed to post message to queue")
		return
	}

	if resp.StatusCode() != http.StatusCreated {
		o.logger.Error().
			Str("call_id", callID).
			Str("queue", queue).
			Int("status", resp.StatusCode()).
			Str("response", string(resp.Body())).
			Msg("observer failed to post message to queue")
	}
}
