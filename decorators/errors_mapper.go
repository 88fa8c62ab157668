// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package decorators

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-payload-guard/internal/logger"
	"github.com/MKhiriev/go-payload-guard/internal/utils"
	"github.com/MKhiriev/go-payload-guard/models"
	"github.com/MKhiriev/go-payload-guard/validators"
)

// statusFromError maps a validator error to a status code. invalidCode is
// the decorator-specific code for rejected values.
func (d *Decorators) statusFromError(err error, invalidCode int) int {
	switch {
	case errors.Is(err, validators.ErrKeyMissing):
		return d.codes.KeyMissing
	case errors.Is(err, validators.ErrInvalidTypeOrValue), errors.Is(err, validators.ErrSchemaViolation):
		return invalidCode
	default:
		return http.StatusInternalServerError
	}
}

// payloadStatus maps a body read or decode error to a status code.
func payloadStatus(err error) int {
	if errors.Is(err, ErrBodyTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}

// errorClass names the rejection in the response document.
func errorClass(err error) string {
	switch {
	case errors.Is(err, ErrInvalidContentType):
		return "invalid-content-type"
	case errors.Is(err, ErrInvalidJSON):
		return "invalid-json"
	case errors.Is(err, ErrBodyTooLarge):
		return "body-too-large"
	case errors.Is(err, validators.ErrSchemaViolation):
		return "schema-violation"
	default:
		return validators.OutcomeOf(err).String()
	}
}

// reject logs err and writes the error document with status.
func (d *Decorators) reject(w http.ResponseWriter, r *http.Request, err error, status int) {
	log := logger.FromRequest(r)
	key := validators.KeyOf(err)

	response := models.ErrorResponse{
		Error:   errorClass(err),
		Message: err.Error(),
		Key:     key,
	}
	response.TraceID, _ = utils.GetTraceIDFromContext(r.Context())

	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("key", key).Int("status", status).Msg("request validation failed unexpectedly")
		response.Message = http.StatusText(status)
	} else {
		log.Info().Err(err).Str("key", key).Int("status", status).Msg("request payload rejected")
	}

	if _, err := utils.WriteJSON(w, response, status); err != nil {
		log.Err(err).Msg("error writing rejection response")
	}
}
