package config

import "errors"

// Validation errors returned by [Resolve] when a required field is still
// empty after all four sources have been checked.
var (
	// ErrAPIRootNotConfigured indicates that no source provided the
	// Foundation API root URL.
	ErrAPIRootNotConfigured = errors.New(
		"foundation api root not configured: see http://docs.foundation.insights.ai for details")
	// ErrAPIKeyNotConfigured indicates that no source provided the
	// Foundation API key.
	ErrAPIKeyNotConfigured = errors.New(
		"foundation api key not configured: see http://docs.foundation.insights.ai for details")
)
