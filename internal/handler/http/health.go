package http

import (
	"net/http"

	"github.com/MKhiriev/pali-search/internal/logger"
	"github.com/MKhiriev/pali-search/internal/utils"
	"github.com/MKhiriev/pali-search/models"
)

const serviceName = "frontend"

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	resp := models.HealthResponse{
		Service: serviceName,
		Status:  "ok",
		APIBase: h.cfg.Backend.BaseURL,
	}

	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write health response")
	}
}
