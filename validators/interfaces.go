// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks decoded request payloads against declarative
// rules before they reach a route handler.
//
// Core concepts:
//   - Validator: anything that can accept or reject a decoded payload.
//   - Spec: an ordered tree of keys mapped to field descriptors
//     (see package fields) or nested specs.
//   - Keys: required-key lists, optionally nested.
//   - Types: exact runtime type per key, optionally nested.
//   - Schema: a schema document checked by kin-openapi.
//
// Every validator is fail-fast: the first violation met during the
// depth-first walk is returned and nothing after it is examined. Errors are
// classified with the sentinels in this package and carry the dotted key
// path of the failure (see [PathError] and [OutcomeOf]).
//
// Payloads are the untyped trees produced by encoding/json: map[string]any,
// []any, string, bool, nil, and json.Number (or float64) for numbers.
// Validators never mutate the payload or themselves, so one instance may be
// shared by concurrent requests.
package validators

// Validator accepts or rejects a decoded payload.
//
// Validate returns nil when body is acceptable, or an error matching one of
// the sentinel errors of this package otherwise.
type Validator interface {
	Validate(body any) error
}
