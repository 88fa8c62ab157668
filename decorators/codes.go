// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package decorators

import (
	"net/http"

	"dario.cat/mergo"
)

// AbortCodes holds the HTTP status codes written when a request is
// rejected. A zero field means "use the default".
type AbortCodes struct {
	// InvalidContentType is used when the request is not JSON. Default 406.
	InvalidContentType int

	// KeyMissing is used when a required key is absent. Default 400.
	KeyMissing int

	// InvalidType is used by ValidateCommon on a type mismatch. Default 400.
	InvalidType int

	// ValidationFailure is used by ValidateWithFields and With when a value
	// fails its descriptor. Default 400.
	ValidationFailure int

	// ValidationError is used by ValidateWithSchema on a schema violation.
	// Default 400.
	ValidationError int
}

// DefaultAbortCodes returns the status codes used when none are configured.
func DefaultAbortCodes() AbortCodes {
	return AbortCodes{
		InvalidContentType: http.StatusNotAcceptable,
		KeyMissing:         http.StatusBadRequest,
		InvalidType:        http.StatusBadRequest,
		ValidationFailure:  http.StatusBadRequest,
		ValidationError:    http.StatusBadRequest,
	}
}

// withDefaults fills every zero field of codes from DefaultAbortCodes.
func withDefaults(codes AbortCodes) AbortCodes {
	if err := mergo.Merge(&codes, DefaultAbortCodes()); err != nil {
		return DefaultAbortCodes()
	}
	return codes
}
