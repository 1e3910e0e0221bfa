package services

import (
	"context"

	"github.com/GregMSThompson/report-cms/internal/session"
	"github.com/GregMSThompson/report-cms/pkg/logger"
)

// SessionAuthKey is the session entry set while an admin is logged in.
const SessionAuthKey = "cacu_admin_auth"

const DefaultAdminPassword = "cacu2025"

// authService compares a submitted password against one shared secret. The
// comparison is plaintext and there is no lockout.
type authService struct {
	password string
}

func NewAuthService(password string) *authService {
	if password == "" {
		password = DefaultAdminPassword
	}
	return &authService{password: password}
}

// Login sets the session flag when password matches and reports whether it did.
func (a *authService) Login(ctx context.Context, sess session.Values, password string) bool {
	if password != a.password {
		logger.FromContext(ctx).Info("admin login rejected")
		return false
	}
	sess.Set(SessionAuthKey, "true")
	logger.FromContext(ctx).Info("admin login")
	return true
}

func (a *authService) Logout(ctx context.Context, sess session.Values) {
	sess.Delete(SessionAuthKey)
	logger.FromContext(ctx).Info("admin logout")
}

func (a *authService) IsAuthenticated(sess session.Values) bool {
	v, ok := sess.Get(SessionAuthKey)
	return ok && v == "true"
}
