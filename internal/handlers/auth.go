package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/report-cms/internal/dto"
	"github.com/GregMSThompson/report-cms/internal/errs"
	"github.com/GregMSThompson/report-cms/internal/response"
)

type authHandlers struct {
	ResponseHandler response.ResponseHandler
	AuthSvc         AuthService
	Sessions        SessionStore
}

func NewAuthHandlers(deps *Deps) *authHandlers {
	return &authHandlers{
		ResponseHandler: deps.ResponseHandler,
		AuthSvc:         deps.AuthSvc,
		Sessions:        deps.Sessions,
	}
}

func (h *authHandlers) AuthRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)
	r.Get("/session", h.Session)
	return r
}

func (h *authHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	sess := h.Sessions.Start(w, r)
	if !h.AuthSvc.Login(r.Context(), sess, req.Password) {
		h.ResponseHandler.HandleError(w, r, errs.NewUnauthorizedError("incorrect password"))
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, dto.SessionResponse{Authenticated: true})
}

func (h *authHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if sess, ok := h.Sessions.Lookup(r); ok {
		h.AuthSvc.Logout(r.Context(), sess)
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, dto.SessionResponse{Authenticated: false})
}

func (h *authHandlers) Session(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.Sessions.Lookup(r)
	authed := ok && h.AuthSvc.IsAuthenticated(sess)
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, dto.SessionResponse{Authenticated: authed})
}
