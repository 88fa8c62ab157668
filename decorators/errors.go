// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package decorators

import "errors"

var (
	// ErrInvalidContentType is reported when a request does not carry a
	// JSON Content-Type.
	ErrInvalidContentType = errors.New("content type is not JSON")

	// ErrInvalidJSON is reported when the body cannot be decoded as a single
	// JSON value.
	ErrInvalidJSON = errors.New("invalid JSON body")

	// ErrBodyTooLarge is reported when reading the body hits the limit set
	// with http.MaxBytesReader.
	ErrBodyTooLarge = errors.New("request body too large")
)
