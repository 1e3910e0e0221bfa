package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/report-cms/internal/dto"
	"github.com/GregMSThompson/report-cms/internal/models"
	"github.com/GregMSThompson/report-cms/internal/response"
	"github.com/GregMSThompson/report-cms/internal/services"
)

// adminHandlers back the admin dashboard and item editor. Mutations that miss
// their target answer {"changed":false} rather than 404.
type adminHandlers struct {
	ResponseHandler response.ResponseHandler
	ContentSvc      ContentService
}

func NewAdminHandlers(deps *Deps) *adminHandlers {
	return &adminHandlers{
		ResponseHandler: deps.ResponseHandler,
		ContentSvc:      deps.ContentSvc,
	}
}

func (h *adminHandlers) AdminRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/overview", h.Overview)
	r.Get("/status", h.Status)
	r.Get("/item-types", h.ItemTypes)
	r.Put("/settings", h.UpdateSettings)
	r.Post("/reset", h.Reset)

	r.Post("/sections", h.AddSection)
	r.Route("/sections/{sectionId}", func(r chi.Router) {
		r.Put("/title", h.UpdateSectionTitle)
		r.Delete("/", h.RemoveSection)
		r.Post("/move", h.MoveSection)
		r.Post("/items", h.AddItem)
		r.Get("/items/{itemId}", h.GetItem)
		r.Put("/items/{itemId}", h.UpdateItem)
		r.Delete("/items/{itemId}", h.RemoveItem)
		r.Post("/items/{itemId}/duplicate", h.DuplicateItem)
		r.Post("/items/{itemId}/move", h.MoveItem)
	})
	return r
}

func (h *adminHandlers) Overview(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.ContentSvc.Overview(r.Context()))
}

func (h *adminHandlers) Status(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.ContentSvc.SyncStatus())
}

func (h *adminHandlers) ItemTypes(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, services.ItemTypeOptions())
}

func (h *adminHandlers) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var settings models.GlobalSettings
	if err := decodeJSON(w, r, &settings); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	reload, err := h.ContentSvc.UpdateSettings(r.Context(), settings)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, dto.SettingsResponse{
		Settings:       settings,
		ReloadRequired: reload,
	})
}

func (h *adminHandlers) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.ContentSvc.ResetData(r.Context()); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, dto.ChangedResponse{Changed: true})
}

func (h *adminHandlers) AddSection(w http.ResponseWriter, r *http.Request) {
	var req dto.TitleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	id, err := h.ContentSvc.AddSection(r.Context(), req.Title)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, dto.CreatedResponse{ID: id, Changed: true})
}

func (h *adminHandlers) UpdateSectionTitle(w http.ResponseWriter, r *http.Request) {
	var req dto.TitleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	changed, err := h.ContentSvc.UpdateSectionTitle(r.Context(), chi.URLParam(r, "sectionId"), req.Title)
	h.writeChanged(w, r, changed, err)
}

func (h *adminHandlers) RemoveSection(w http.ResponseWriter, r *http.Request) {
	changed, err := h.ContentSvc.RemoveSection(r.Context(), chi.URLParam(r, "sectionId"))
	h.writeChanged(w, r, changed, err)
}

func (h *adminHandlers) MoveSection(w http.ResponseWriter, r *http.Request) {
	var req dto.MoveRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	changed, err := h.ContentSvc.ReorderSection(r.Context(), chi.URLParam(r, "sectionId"), req.Direction)
	h.writeChanged(w, r, changed, err)
}

func (h *adminHandlers) AddItem(w http.ResponseWriter, r *http.Request) {
	var req dto.ItemTypeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	id, ok, err := h.ContentSvc.AddContentItem(r.Context(), chi.URLParam(r, "sectionId"), req.Type)
	h.writeCreated(w, r, id, ok, err)
}

func (h *adminHandlers) GetItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.ContentSvc.GetItem(r.Context(), chi.URLParam(r, "sectionId"), chi.URLParam(r, "itemId"))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, item)
}

func (h *adminHandlers) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var item models.ContentItem
	if err := decodeJSON(w, r, &item); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	item.ID = chi.URLParam(r, "itemId")
	changed, err := h.ContentSvc.UpdateSectionItem(r.Context(), chi.URLParam(r, "sectionId"), item)
	h.writeChanged(w, r, changed, err)
}

func (h *adminHandlers) RemoveItem(w http.ResponseWriter, r *http.Request) {
	changed, err := h.ContentSvc.RemoveContentItem(r.Context(), chi.URLParam(r, "sectionId"), chi.URLParam(r, "itemId"))
	h.writeChanged(w, r, changed, err)
}

func (h *adminHandlers) DuplicateItem(w http.ResponseWriter, r *http.Request) {
	id, ok, err := h.ContentSvc.DuplicateContentItem(r.Context(), chi.URLParam(r, "sectionId"), chi.URLParam(r, "itemId"))
	h.writeCreated(w, r, id, ok, err)
}

func (h *adminHandlers) MoveItem(w http.ResponseWriter, r *http.Request) {
	var req dto.MoveRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	changed, err := h.ContentSvc.ReorderContentItem(r.Context(), chi.URLParam(r, "sectionId"), chi.URLParam(r, "itemId"), req.Direction)
	h.writeChanged(w, r, changed, err)
}

func (h *adminHandlers) writeChanged(w http.ResponseWriter, r *http.Request, changed bool, err error) {
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, dto.ChangedResponse{Changed: changed})
}

func (h *adminHandlers) writeCreated(w http.ResponseWriter, r *http.Request, id string, ok bool, err error) {
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	if !ok {
		h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, dto.CreatedResponse{})
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, dto.CreatedResponse{ID: id, Changed: true})
}
