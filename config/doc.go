// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CogScale

// Package config resolves the Foundation API configuration from layered
// sources.
//
// Configuration is assembled from four sources in the following priority
// order (first non-empty value wins per field):
//  1. Explicit overrides passed by the caller
//  2. Payload JSON file (path in the PAYLOAD_FILE environment variable)
//  3. Config JSON file (path in the CONFIG_FILE environment variable)
//  4. Environment variables (FOUNDATION_API_ROOT, FOUNDATION_API_KEY)
//
// The main entry point is [Resolve]. Resolution fails fast with
// [ErrAPIRootNotConfigured] or [ErrAPIKeyNotConfigured] when a required
// field is still empty after all four sources have been checked.
package config
