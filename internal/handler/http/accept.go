package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/MKhiriev/go-payload-guard/decorators"
	"github.com/MKhiriev/go-payload-guard/internal/logger"
	"github.com/MKhiriev/go-payload-guard/internal/utils"
	"github.com/MKhiriev/go-payload-guard/models"
)

// accept answers with the payload that passed the route's decorator.
// Routes guarded only by JSONRequired have no decoded payload, so the raw
// body is echoed when it is valid JSON.
func (h *Handler) accept(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	response := models.AcceptedResponse{Route: r.URL.Path}
	if body, ok := decorators.Body(r); ok {
		response.Payload = body
	} else if raw, err := io.ReadAll(r.Body); err == nil && json.Valid(raw) {
		response.Payload = json.RawMessage(raw)
	}

	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing accepted payload")
	}
}
