// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CogScale

// Package httpx holds the HTTP plumbing shared by the repository and
// observer clients: resty client construction with the Foundation auth
// header, base-URL normalization, and status-code to error mapping.
package httpx

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
)

// AuthHeader is the request header carrying the Foundation API key.
const AuthHeader = "X-CogScale-Key"

// NewClient builds a resty client bound to the Foundation API root with the
// X-CogScale-Key header attached to every request.
//
// Returns an error if apiRoot is empty or cannot be parsed as a valid URL.
func NewClient(apiRoot, apiKey string) (*resty.Client, error) {
	baseURL, err := NormalizeBaseURL(apiRoot)
	if err != nil {
		return nil, fmt.Errorf("invalid api root: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader(AuthHeader, apiKey)

	return client, nil
}

// NormalizeBaseURL trims and validates a Foundation API root, defaulting the
// scheme to http when none is present and stripping any trailing slash.
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// MapHTTPError converts a non-2xx resty response into an error of the form
// "http <code>: <body>". 2xx responses map to nil. An empty body is replaced
// with the standard status text.
func MapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}
