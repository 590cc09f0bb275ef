// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"html/template"
	"net/http"

	"github.com/MKhiriev/pali-search/internal/app"
	"github.com/MKhiriev/pali-search/internal/logger"
	"github.com/MKhiriev/pali-search/internal/render"
	"github.com/MKhiriev/pali-search/internal/utils"
	"github.com/MKhiriev/pali-search/models"
)

type searchPartialData struct {
	Results template.HTML
	Status  string
}

type answerPartialData struct {
	Answer    string
	Citations template.HTML
}

// queryParameters reads q, top_k and alpha from the form. Missing or
// unparsable numbers fall back to the configured defaults.
func (h *Handler) queryParameters(r *http.Request) models.QueryParameters {
	return models.QueryParameters{
		Query: r.FormValue("q"),
		TopK:  utils.FormInt(r, "top_k", h.cfg.UI.DefaultTopK),
		Alpha: utils.FormFloat(r, "alpha", h.cfg.UI.DefaultAlpha),
	}.Normalized()
}

// parseQuery returns the parameters of a partial request. ok is false when
// the response has already been written: 400 for a malformed form, 204 for
// an empty query. Out-of-range numbers are left to the caller, which renders
// them into its region like any other failure.
func (h *Handler) parseQuery(w http.ResponseWriter, r *http.Request) (models.QueryParameters, bool) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, app.MsgInvalidForm, http.StatusBadRequest)
		return models.QueryParameters{}, false
	}

	params := h.queryParameters(r)
	if params.IsEmpty() {
		w.WriteHeader(http.StatusNoContent)
		return params, false
	}

	return params, true
}

func (h *Handler) searchPartial(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	params, ok := h.parseQuery(w, r)
	if !ok {
		return
	}

	var data searchPartialData
	if err := params.Validate(); err != nil {
		data.Results = render.Failure(err).HTML()
	} else {
		client := h.services.NewQueryClient()
		out := client.Search(r.Context(), params)
		d := client.Snapshot()

		data.Results = d.Results.HTML()
		if out.Err == nil {
			data.Status = d.Status
		}
	}

	body, err := h.templates.RenderBytes("search", data)
	if err != nil {
		log.Err(err).Msg("failed to render search partial")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteHTML(w, body, http.StatusOK)
}

func (h *Handler) answerPartial(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	params, ok := h.parseQuery(w, r)
	if !ok {
		return
	}

	var data answerPartialData
	if err := params.Validate(); err != nil {
		data.Answer = render.FailureAnswer(err).Text
	} else {
		client := h.services.NewQueryClient()
		client.Answer(r.Context(), params)
		d := client.Snapshot()

		data.Answer = d.Answer.Text
		data.Citations = d.Citations.HTML()
	}

	body, err := h.templates.RenderBytes("answer", data)
	if err != nil {
		log.Err(err).Msg("failed to render answer partial")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteHTML(w, body, http.StatusOK)
}
