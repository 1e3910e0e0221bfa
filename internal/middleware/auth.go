package middleware

import (
	"net/http"

	"github.com/GregMSThompson/report-cms/internal/errs"
	"github.com/GregMSThompson/report-cms/internal/response"
	"github.com/GregMSThompson/report-cms/internal/session"
	"github.com/GregMSThompson/report-cms/pkg/logger"
)

type sessionLookup interface {
	Lookup(r *http.Request) (*session.Session, bool)
}

type adminGate interface {
	IsAuthenticated(sess session.Values) bool
}

type Middleware struct {
	Sessions        sessionLookup
	Auth            adminGate
	ResponseHandler response.ResponseHandler
}

func NewMiddleware(sessions sessionLookup, auth adminGate, rh response.ResponseHandler) *Middleware {
	return &Middleware{Sessions: sessions, Auth: auth, ResponseHandler: rh}
}

// RequireAdmin lets the request through only when its session carries the
// admin flag.
func (m *Middleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := m.Sessions.Lookup(r)
		if !ok || !m.Auth.IsAuthenticated(sess) {
			m.ResponseHandler.HandleError(w, r, errs.NewUnauthorizedError("admin session required"))
			return
		}

		_, ctx := logger.With(r.Context(), "admin", true)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
