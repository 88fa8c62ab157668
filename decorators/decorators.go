// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package decorators guards HTTP route handlers with request payload
// validation.
//
// Every decorator is a standard func(http.Handler) http.Handler middleware
// and can be mounted on a chi route with r.With:
//
//	d := decorators.New(decorators.AbortCodes{})
//	r.With(d.ValidateWithFields(validators.Spec{
//		validators.Field("name", fields.String(fields.DisallowEmpty())),
//		validators.Field("age", fields.Int(fields.MinValue(0))),
//	})).Post("/users", createUser)
//
// A rejected request never reaches the wrapped handler: the decorator writes
// a JSON [models.ErrorResponse] with the status taken from [AbortCodes].
// The body is read and decoded once per request even when decorators are
// stacked, and is restored for the handler, which may also call [Body] to
// get the decoded tree.
//
// Rule sets are checked when the decorator is built: a malformed Spec or a
// nil Schema panics at route registration instead of failing requests.
package decorators

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-payload-guard/internal/logger"
	"github.com/MKhiriev/go-payload-guard/validators"
)

// Decorators builds validating middleware sharing one set of abort codes.
// It is immutable and safe for concurrent use.
type Decorators struct {
	codes AbortCodes
}

// New returns Decorators using codes, with zero fields replaced by
// DefaultAbortCodes.
func New(codes AbortCodes) *Decorators {
	return &Decorators{codes: withDefaults(codes)}
}

// Codes returns the effective abort codes.
func (d *Decorators) Codes() AbortCodes {
	return d.codes
}

// JSONRequired rejects requests whose Content-Type is not JSON. The body is
// not read.
func (d *Decorators) JSONRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !isJSON(r) {
			d.reject(w, r, ErrInvalidContentType, d.codes.InvalidContentType)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ValidateKeys requires every key to be present. Keys with children must
// hold objects containing those children.
func (d *Decorators) ValidateKeys(keys ...validators.KeyEntry) func(http.Handler) http.Handler {
	if len(keys) == 0 {
		return d.JSONRequired
	}
	return d.guard(validators.Keys(keys), d.codes.KeyMissing)
}

// ValidateCommon requires every key to be present and hold a value of the
// declared kind. It panics if types contains an unknown kind.
func (d *Decorators) ValidateCommon(types validators.Types) func(http.Handler) http.Handler {
	if len(types) == 0 {
		return d.JSONRequired
	}
	spec := types.Spec()
	mustCheck(spec)
	return d.guard(spec, d.codes.InvalidType)
}

// ValidateWithFields applies spec to the payload. It panics if spec is
// malformed (see validators.Spec.Check).
func (d *Decorators) ValidateWithFields(spec validators.Spec) func(http.Handler) http.Handler {
	if len(spec) == 0 {
		return d.JSONRequired
	}
	mustCheck(spec)
	return d.guard(spec, d.codes.ValidationFailure)
}

// ValidateWithSchema checks the payload against a schema document. It
// panics if schema is nil.
func (d *Decorators) ValidateWithSchema(schema *validators.Schema) func(http.Handler) http.Handler {
	if schema == nil {
		panic("decorators: nil schema")
	}
	return d.guard(schema, d.codes.ValidationError)
}

// With wraps any Validator. Invalid values are rejected with the
// ValidationFailure code.
func (d *Decorators) With(v validators.Validator) func(http.Handler) http.Handler {
	if v == nil {
		panic("decorators: nil validator")
	}
	return d.guard(v, d.codes.ValidationFailure)
}

func mustCheck(spec validators.Spec) {
	if err := spec.Check(); err != nil {
		panic(fmt.Sprintf("decorators: %v", err))
	}
}

// guard is the shared request pipeline: content type, body decoding,
// validation, then the wrapped handler.
func (d *Decorators) guard(v validators.Validator, invalidCode int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isJSON(r) {
				d.reject(w, r, ErrInvalidContentType, d.codes.InvalidContentType)
				return
			}

			r, p := loadPayload(r)
			if p.err != nil {
				d.reject(w, r, p.err, payloadStatus(p.err))
				return
			}

			if err := v.Validate(p.value); err != nil {
				d.reject(w, r, err, d.statusFromError(err, invalidCode))
				return
			}

			logger.FromRequest(r).Debug().Msg("request payload accepted")

			p.rewind(r)
			next.ServeHTTP(w, r)
		})
	}
}
