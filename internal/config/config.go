// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/go-payload-guard/decorators"
)

// StructuredConfig is the top-level configuration container of the
// go-payload-guard server. It is populated by merging command-line flags,
// environment variables, an optional JSON file and built-in defaults, and is
// read-only once built.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - validate: constraints checked by go-playground/validator after merging.
type StructuredConfig struct {
	// Server holds network address, timeout and body size settings for the
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Validation holds the abort codes used by the request decorators and
	// the optional schema document served by the demo routes.
	Validation Validation `envPrefix:"VALIDATION_"`

	// LogLevel is the minimum zerolog level written by the server
	// ("trace", "debug", "info", "warn", "error").
	LogLevel string `env:"LOG_LEVEL" validate:"omitempty,oneof=trace debug info warn error"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Server holds settings of the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on, in
	// "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" validate:"required,hostname_port"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" validate:"gte=0"`

	// MaxBodyBytes caps the size of request bodies read by the decorators.
	// Env: SERVER_MAX_BODY_BYTES
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES" validate:"gte=0"`
}

// Validation holds the status codes written when a request payload is
// rejected. Zero values fall back to the decorator defaults.
type Validation struct {
	// Env: VALIDATION_INVALID_CONTENT_TYPE_ABORT_CODE (default 406)
	InvalidContentTypeCode int `env:"INVALID_CONTENT_TYPE_ABORT_CODE" validate:"omitempty,gte=400,lte=599"`

	// Env: VALIDATION_KEY_MISSING_ABORT_CODE (default 400)
	KeyMissingCode int `env:"KEY_MISSING_ABORT_CODE" validate:"omitempty,gte=400,lte=599"`

	// Env: VALIDATION_INVALID_TYPE_ABORT_CODE (default 400)
	InvalidTypeCode int `env:"INVALID_TYPE_ABORT_CODE" validate:"omitempty,gte=400,lte=599"`

	// Env: VALIDATION_FAILURE_ABORT_CODE (default 400)
	ValidationFailureCode int `env:"FAILURE_ABORT_CODE" validate:"omitempty,gte=400,lte=599"`

	// Env: VALIDATION_ERROR_ABORT_CODE (default 400)
	ValidationErrorCode int `env:"ERROR_ABORT_CODE" validate:"omitempty,gte=400,lte=599"`

	// SchemaPath points to a YAML or JSON schema document used by the
	// schema-validated demo route. The embedded document is used when empty.
	// Env: VALIDATION_SCHEMA_PATH
	SchemaPath string `env:"SCHEMA_PATH"`
}

// AbortCodes converts the configured codes for the decorators package.
func (v Validation) AbortCodes() decorators.AbortCodes {
	return decorators.AbortCodes{
		InvalidContentType: v.InvalidContentTypeCode,
		KeyMissing:         v.KeyMissingCode,
		InvalidType:        v.InvalidTypeCode,
		ValidationFailure:  v.ValidationFailureCode,
		ValidationError:    v.ValidationErrorCode,
	}
}

// defaultConfig holds the values used when no source sets a field.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
			MaxBodyBytes:   1 << 20,
		},
		LogLevel: "debug",
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources. For every field the first source that sets it
// wins, in this order:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
