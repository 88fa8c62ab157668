// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-payload-guard/internal/utils"
	"github.com/MKhiriev/go-payload-guard/models"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler for [chi.Mux.MethodNotAllowed] that
// answers 404 instead of chi's 405 when the matched path does not serve the
// requested method, so callers cannot probe which methods a route accepts.
//
// Routes are matched by exact pattern against r.URL.Path; parameterised
// segments are not expanded.
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			if _, ok := route.Handlers[r.Method]; ok {
				router.ServeHTTP(w, r)
				return
			}
			break
		}

		response := models.ErrorResponse{
			Error:   "not-found",
			Message: http.StatusText(http.StatusNotFound),
		}
		response.TraceID, _ = utils.GetTraceIDFromContext(r.Context())
		_, _ = utils.WriteJSON(w, response, http.StatusNotFound)
	}
}
