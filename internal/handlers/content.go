package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/report-cms/internal/response"
)

// contentHandlers serve the published report to the public site.
type contentHandlers struct {
	ResponseHandler response.ResponseHandler
	ContentSvc      ContentService
}

func NewContentHandlers(deps *Deps) *contentHandlers {
	return &contentHandlers{
		ResponseHandler: deps.ResponseHandler,
		ContentSvc:      deps.ContentSvc,
	}
}

func (h *contentHandlers) ContentRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.GetContent)
	r.Get("/sections/{sectionId}", h.GetSection)
	return r
}

func (h *contentHandlers) GetContent(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.ContentSvc.GetData(r.Context()))
}

func (h *contentHandlers) GetSection(w http.ResponseWriter, r *http.Request) {
	sec, err := h.ContentSvc.GetSection(r.Context(), chi.URLParam(r, "sectionId"))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, sec)
}
