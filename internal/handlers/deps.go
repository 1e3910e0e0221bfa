package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/GregMSThompson/report-cms/internal/dto"
	"github.com/GregMSThompson/report-cms/internal/errs"
	"github.com/GregMSThompson/report-cms/internal/models"
	"github.com/GregMSThompson/report-cms/internal/response"
	"github.com/GregMSThompson/report-cms/internal/session"
)

const maxBodyBytes = 1 << 20

type ContentService interface {
	GetData(ctx context.Context) *models.AppData
	GetSection(ctx context.Context, sectionID string) (models.ReportSection, error)
	GetItem(ctx context.Context, sectionID, itemID string) (models.ContentItem, error)
	Overview(ctx context.Context) dto.Overview
	SyncStatus() dto.SyncStatus

	UpdateSettings(ctx context.Context, settings models.GlobalSettings) (bool, error)
	AddSection(ctx context.Context, title string) (string, error)
	UpdateSectionTitle(ctx context.Context, sectionID, title string) (bool, error)
	RemoveSection(ctx context.Context, sectionID string) (bool, error)
	ReorderSection(ctx context.Context, sectionID string, dir models.Direction) (bool, error)
	AddContentItem(ctx context.Context, sectionID string, t models.ItemType) (string, bool, error)
	UpdateSectionItem(ctx context.Context, sectionID string, item models.ContentItem) (bool, error)
	DuplicateContentItem(ctx context.Context, sectionID, itemID string) (string, bool, error)
	ReorderContentItem(ctx context.Context, sectionID, itemID string, dir models.Direction) (bool, error)
	RemoveContentItem(ctx context.Context, sectionID, itemID string) (bool, error)
	ResetData(ctx context.Context) error
}

type AuthService interface {
	Login(ctx context.Context, sess session.Values, password string) bool
	Logout(ctx context.Context, sess session.Values)
	IsAuthenticated(sess session.Values) bool
}

type SessionStore interface {
	Start(w http.ResponseWriter, r *http.Request) *session.Session
	Lookup(r *http.Request) (*session.Session, bool)
}

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	ContentSvc      ContentService
	AuthSvc         AuthService
	Sessions        SessionStore
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errs.NewValidationError("invalid request body: " + err.Error())
	}
	return nil
}
