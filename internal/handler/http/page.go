package http

import (
	"html/template"
	"net/http"
	"strconv"

	"github.com/MKhiriev/pali-search/internal/app"
	"github.com/MKhiriev/pali-search/internal/logger"
	"github.com/MKhiriev/pali-search/internal/render"
	"github.com/MKhiriev/pali-search/internal/utils"
)

// topKOptions are the result counts offered by the page selector.
var topKOptions = []int{5, 10, 20, 50}

type pageData struct {
	APIBase     string
	Status      string
	TopKOptions []int
	TopK        int
	Alpha       string
	AlphaLabel  string
	Searching   template.HTML
	Answering   string
	ErrorLabel  string
	Version     string
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	data := pageData{
		APIBase:     render.BaseURLLabel(h.cfg.Backend.BaseURL),
		TopKOptions: topKOptions,
		TopK:        h.cfg.UI.DefaultTopK,
		Alpha:       strconv.FormatFloat(h.cfg.UI.DefaultAlpha, 'f', -1, 64),
		AlphaLabel:  render.AlphaLabel(h.cfg.UI.DefaultAlpha),
		Searching:   render.Pending(render.LabelSearching).HTML(),
		Answering:   render.LabelAnswering,
		ErrorLabel:  render.LabelError,
		Version:     h.services.AppInfo.GetAppVersion(r.Context()),
	}

	body, err := h.templates.RenderBytes("index.html", data)
	if err != nil {
		log.Err(err).Msg("failed to render page")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteHTML(w, body, http.StatusOK)
}
