// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CogScale

// Package foundation is a thin Go client for the hosted CogScale Foundation
// platform.
//
// A [Foundation] value resolves the API configuration once at construction
// time, merging the following sources (first non-empty value wins):
//  1. Explicit overrides passed to [New]
//  2. Payload JSON file (PAYLOAD_FILE) delivered at job invocation time
//  3. Config JSON file (CONFIG_FILE) set at job deploy time
//  4. Environment variables set at job deploy time
//
// From a Foundation the hosting application obtains a [repository.Repository]
// for fetching database connections and an [observer.Observers] for relaying
// error/completion events to remote queues.
package foundation

import (
	"fmt"

	"github.com/cogscale/foundation-go/config"
	"github.com/cogscale/foundation-go/logger"
	"github.com/cogscale/foundation-go/observer"
	"github.com/cogscale/foundation-go/repository"
)

// Foundation holds the resolved API configuration shared by the repository
// and observer clients. It is immutable and safe for concurrent use.
type Foundation struct {
	cfg    *config.Config
	logger *logger.Logger
}

// New resolves the Foundation configuration and returns a client factory
// bound to it. A nil log falls back to a no-op logger.
//
// Returns an error if a config file fails to parse or either the API root or
// API key is still empty after all sources have been checked; callers are
// expected to treat that as fatal at startup.
func New(overrides config.Overrides, log *logger.Logger) (*Foundation, error) {
	if log == nil {
		log = logger.Nop()
	}

	cfg, err := config.Resolve(overrides)
	if err != nil {
		return nil, fmt.Errorf("resolve foundation config: %w", err)
	}

	return &Foundation{cfg: cfg, logger: log}, nil
}

// Config returns the resolved configuration.
func (f *Foundation) Config() *config.Config {
	return f.cfg
}

// Repository constructs a repository client sharing the Foundation
// configuration and logger.
func (f *Foundation) Repository(opts ...repository.Option) (*repository.Repository, error) {
	return repository.New(f.cfg, f.logger, opts...)
}

// Observers constructs an observer client over registry, sharing the
// Foundation configuration and logger.
func (f *Foundation) Observers(registry observer.Registry) *observer.Observers {
	return observer.New(f.cfg, registry, f.logger)
}
