package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	if h.maxBodyBytes > 0 {
		router.Use(middleware.RequestSize(h.maxBodyBytes))
	}

	router.Get("/version", h.getServerVersion)

	// one route per decorator
	router.With(h.decorators.JSONRequired).Post("/api/json", h.accept)
	router.With(h.decorators.ValidateKeys(userKeys...)).Post("/api/keys", h.accept)
	router.With(h.decorators.ValidateCommon(userTypes)).Post("/api/common", h.accept)
	router.With(h.decorators.ValidateWithFields(userSpec)).Post("/api/fields", h.accept)
	router.With(h.decorators.ValidateWithSchema(h.schema)).Post("/api/schema", h.accept)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
