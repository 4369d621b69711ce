// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CogScale

// Package repository implements the Foundation repository client. It fetches
// connection descriptors from the repository API and opens MongoDB clients
// from them.
package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/cogscale/foundation-go/config"
	"github.com/cogscale/foundation-go/internal/httpx"
	"github.com/cogscale/foundation-go/logger"
	"github.com/cogscale/foundation-go/models"
)

// Repository is a client for the Foundation repository API. It is safe for
// concurrent use; every call issues its own HTTP request and nothing is
// cached between calls.
type Repository struct {
	client *resty.Client

	insecureTLS bool

	logger *logger.Logger
}

// Option customises a Repository.
type Option func(*Repository)

// WithInsecureTLS disables server-certificate verification on TLS database
// connections requested by a descriptor's "ssl" option.
//
// This weakens transport security and must only be enabled for repositories
// whose servers present self-signed certificates. Without this option a
// descriptor that requests ssl gets a fully verified TLS connection.
func WithInsecureTLS() Option {
	return func(r *Repository) {
		r.insecureTLS = true
	}
}

// New constructs a repository client from the resolved configuration.
//
// Returns an error if cfg.APIRoot is empty or cannot be parsed as a valid
// URL.
func New(cfg *config.Config, log *logger.Logger, opts ...Option) (*Repository, error) {
	client, err := httpx.NewClient(cfg.APIRoot, cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("create repository client: %w", err)
	}

	r := &Repository{client: client, logger: log}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// GetConnection fetches the connection descriptor for repositoryID from
// GET /v1/repository/{id}/connection. Any non-2xx response is returned as an
// error; there are no retries.
func (r *Repository) GetConnection(ctx context.Context, repositoryID string) (models.ConnectionDescriptor, error) {
	callID := uuid.NewString()

	resp, err := r.client.R().
		SetContext(ctx).
		SetPathParam("repositoryID", repositoryID).
		Get("/v1/repository/{repositoryID}/connection")
	if err != nil {
		return models.ConnectionDescriptor{}, fmt.Errorf("get connection request: %w", err)
	}
	if err = httpx.MapHTTPError(resp); err != nil {
		return models.ConnectionDescriptor{}, fmt.Errorf("get connection for repository %s: %w", repositoryID, err)
	}

	var conn models.ConnectionDescriptor
	if err = json.Unmarshal(resp.Body(), &conn); err != nil {
		return models.ConnectionDescriptor{}, fmt.Errorf("decode connection descriptor: %w", err)
	}

	r.logger.Debug().
		Str("call_id", callID).
		Str("repository_id", repositoryID).
		Str("host", conn.Server.Host).
		Str("database", conn.Database).
		Msg("fetched connection descriptor")

	return conn, nil
}
