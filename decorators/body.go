// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package decorators

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
)

type bodyCtxKey struct{}

// payload is the request body read once and shared by every decorator
// stacked on the same route.
type payload struct {
	raw   []byte
	value any
	err   error
}

// isJSON reports whether the request declares a JSON media type:
// application/json or any application/*+json.
func isJSON(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	if mediaType == "application/json" {
		return true
	}
	return strings.HasPrefix(mediaType, "application/") && strings.HasSuffix(mediaType, "+json")
}

// loadPayload returns the cached payload of r, reading and decoding the body
// on first use. The returned request carries the payload in its context.
func loadPayload(r *http.Request) (*http.Request, *payload) {
	if p, ok := r.Context().Value(bodyCtxKey{}).(*payload); ok {
		return r, p
	}

	p := &payload{}
	if r.Body != nil {
		p.raw, p.err = readBody(r.Body)
	}
	if p.err == nil {
		p.value, p.err = decode(p.raw)
	}

	r = r.WithContext(context.WithValue(r.Context(), bodyCtxKey{}, p))
	return r, p
}

func readBody(body io.ReadCloser) ([]byte, error) {
	defer body.Close()

	raw, err := io.ReadAll(body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, maxBytesErr.Limit)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	return raw, nil
}

// decode parses raw as a single JSON value, keeping numbers as json.Number
// so integers and floats stay distinguishable.
func decode(raw []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after the top-level value", ErrInvalidJSON)
	}

	return value, nil
}

// rewind gives the downstream handler a fresh reader over the raw body.
func (p *payload) rewind(r *http.Request) {
	r.Body = io.NopCloser(bytes.NewReader(p.raw))
}

// Body returns the decoded payload of a request that went through one of
// the validating decorators. Numbers are json.Number values.
func Body(r *http.Request) (any, bool) {
	p, ok := r.Context().Value(bodyCtxKey{}).(*payload)
	if !ok || p.err != nil {
		return nil, false
	}
	return p.value, true
}
