// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CogScale

package models

import "strings"

// ConnectionDescriptor is the connection metadata returned by the Foundation
// repository API (GET /v1/repository/{id}/connection). It carries everything
// needed to open a database connection: server location, target database, and
// optional credentials.
//
// Descriptors are transient: they are fetched per request and never cached by
// this library.
type ConnectionDescriptor struct {
	// Server identifies the database host, port, and driver options.
	Server Server `json:"server"`

	// Database is the name of the target database on Server.
	Database string `json:"database"`

	// Username and Password are optional credentials. Both must be non-empty
	// for credentials to be embedded in the connection URI; a lone username
	// or password is ignored.
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
}

// Server holds the network location of a database server together with an
// open-ended options mapping (e.g. {"ssl": "true"}).
type Server struct {
	Host string `json:"host"`
	Port int    `json:"port"`

	// Options carries driver hints as loosely-typed JSON values. Boolean
	// options may arrive as real booleans or as strings; use [ParseBool]
	// to interpret them.
	Options map[string]any `json:"options,omitempty"`
}

// HasCredentials reports whether both Username and Password are set.
func (c ConnectionDescriptor) HasCredentials() bool {
	return c.Username != "" && c.Password != ""
}

// SSL reports whether the descriptor's server options request a TLS
// connection.
func (c ConnectionDescriptor) SSL() bool {
	return ParseBool(c.Server.Options["ssl"])
}

// ParseBool interprets a loosely-typed option value as a boolean.
//
// Rules: nil is false; an actual bool passes through; a string is true only
// when it equals "true" after lowercasing ("yes", "1", etc. are false); any
// other type is false.
func ParseBool(v any) bool {
	switch value := v.(type) {
	case nil:
		return false
	case bool:
		return value
	case string:
		return strings.ToLower(value) == "true"
	default:
		return false
	}
}
