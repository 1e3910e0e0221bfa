package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/report-cms/internal/dto"
	"github.com/GregMSThompson/report-cms/internal/errs"
	"github.com/GregMSThompson/report-cms/internal/models"
	"github.com/GregMSThompson/report-cms/internal/session"
)

// --- Stubs ---

type stubResponseHandler struct {
	writeSuccessCalled bool
	writeSuccessStatus int
	writeSuccessData   any

	handleErrorCalled bool
	handleError       error
}

func (s *stubResponseHandler) WriteSuccess(w http.ResponseWriter, _ *http.Request, status int, data any) {
	s.writeSuccessCalled = true
	s.writeSuccessStatus = status
	s.writeSuccessData = data

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"success":true}`))
}

func (s *stubResponseHandler) WriteError(w http.ResponseWriter, _ *http.Request, status int, _, _ string) {
	w.WriteHeader(status)
}

func (s *stubResponseHandler) HandleError(w http.ResponseWriter, _ *http.Request, err error) {
	s.handleErrorCalled = true
	s.handleError = err
	w.WriteHeader(http.StatusInternalServerError)
}

type stubContentService struct {
	data     *models.AppData
	section  models.ReportSection
	item     models.ContentItem
	getErr   error
	changed  bool
	newID    string
	ok       bool
	err      error
	overview dto.Overview

	lastSectionID string
	lastItemID    string
	lastTitle     string
	lastType      models.ItemType
	lastDir       models.Direction
	lastItem      models.ContentItem
	lastSettings  models.GlobalSettings
	resetCalled   bool
}

func (s *stubContentService) GetData(context.Context) *models.AppData { return s.data }

func (s *stubContentService) GetSection(_ context.Context, sectionID string) (models.ReportSection, error) {
	s.lastSectionID = sectionID
	return s.section, s.getErr
}

func (s *stubContentService) GetItem(_ context.Context, sectionID, itemID string) (models.ContentItem, error) {
	s.lastSectionID, s.lastItemID = sectionID, itemID
	return s.item, s.getErr
}

func (s *stubContentService) Overview(context.Context) dto.Overview { return s.overview }

func (s *stubContentService) SyncStatus() dto.SyncStatus {
	return dto.SyncStatus{State: models.SyncClean}
}

func (s *stubContentService) UpdateSettings(_ context.Context, settings models.GlobalSettings) (bool, error) {
	s.lastSettings = settings
	return true, s.err
}

func (s *stubContentService) AddSection(_ context.Context, title string) (string, error) {
	s.lastTitle = title
	return s.newID, s.err
}

func (s *stubContentService) UpdateSectionTitle(_ context.Context, sectionID, title string) (bool, error) {
	s.lastSectionID, s.lastTitle = sectionID, title
	return s.changed, s.err
}

func (s *stubContentService) RemoveSection(_ context.Context, sectionID string) (bool, error) {
	s.lastSectionID = sectionID
	return s.changed, s.err
}

func (s *stubContentService) ReorderSection(_ context.Context, sectionID string, dir models.Direction) (bool, error) {
	s.lastSectionID, s.lastDir = sectionID, dir
	return s.changed, s.err
}

func (s *stubContentService) AddContentItem(_ context.Context, sectionID string, t models.ItemType) (string, bool, error) {
	s.lastSectionID, s.lastType = sectionID, t
	return s.newID, s.ok, s.err
}

func (s *stubContentService) UpdateSectionItem(_ context.Context, sectionID string, item models.ContentItem) (bool, error) {
	s.lastSectionID, s.lastItem = sectionID, item
	return s.changed, s.err
}

func (s *stubContentService) DuplicateContentItem(_ context.Context, sectionID, itemID string) (string, bool, error) {
	s.lastSectionID, s.lastItemID = sectionID, itemID
	return s.newID, s.ok, s.err
}

func (s *stubContentService) ReorderContentItem(_ context.Context, sectionID, itemID string, dir models.Direction) (bool, error) {
	s.lastSectionID, s.lastItemID, s.lastDir = sectionID, itemID, dir
	return s.changed, s.err
}

func (s *stubContentService) RemoveContentItem(_ context.Context, sectionID, itemID string) (bool, error) {
	s.lastSectionID, s.lastItemID = sectionID, itemID
	return s.changed, s.err
}

func (s *stubContentService) ResetData(context.Context) error {
	s.resetCalled = true
	return s.err
}

type stubAuthService struct {
	password string
}

func (a *stubAuthService) Login(_ context.Context, sess session.Values, password string) bool {
	if password != a.password {
		return false
	}
	sess.Set("admin", "true")
	return true
}

func (a *stubAuthService) Logout(_ context.Context, sess session.Values) { sess.Delete("admin") }

func (a *stubAuthService) IsAuthenticated(sess session.Values) bool {
	_, ok := sess.Get("admin")
	return ok
}

// withChiParams injects chi URL parameters into the request context.
func withChiParams(r *http.Request, kv ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(kv); i += 2 {
		rctx.URLParams.Add(kv[i], kv[i+1])
	}
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
	return r.WithContext(ctx)
}

// --- Content ---

func TestGetContent_OK(t *testing.T) {
	svc := &stubContentService{data: models.DefaultDocument()}
	resp := &stubResponseHandler{}
	h := NewContentHandlers(&Deps{ResponseHandler: resp, ContentSvc: svc})

	rr := httptest.NewRecorder()
	h.GetContent(rr, httptest.NewRequest(http.MethodGet, "/api/content", nil))

	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusOK {
		t.Fatalf("expected WriteSuccess with 200, got called=%v status=%d", resp.writeSuccessCalled, resp.writeSuccessStatus)
	}
	if resp.writeSuccessData != svc.data {
		t.Fatal("expected the service document to be written")
	}
}

func TestGetSection_NotFound(t *testing.T) {
	svc := &stubContentService{getErr: errs.NewNotFoundError("section not found: x")}
	resp := &stubResponseHandler{}
	h := NewContentHandlers(&Deps{ResponseHandler: resp, ContentSvc: svc})

	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/content/sections/x", nil), "sectionId", "x")
	h.GetSection(httptest.NewRecorder(), req)

	if svc.lastSectionID != "x" {
		t.Fatalf("expected section id x, got %q", svc.lastSectionID)
	}
	if !resp.handleErrorCalled {
		t.Fatal("expected HandleError to be called")
	}
}

// --- Auth ---

func TestLogin_WrongPassword(t *testing.T) {
	resp := &stubResponseHandler{}
	sessions := session.NewStore()
	h := NewAuthHandlers(&Deps{ResponseHandler: resp, AuthSvc: &stubAuthService{password: "ok"}, Sessions: sessions})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"password":"nope"}`))
	h.Login(httptest.NewRecorder(), req)

	var ue *errs.UnauthorizedError
	if !errors.As(resp.handleError, &ue) {
		t.Fatalf("expected UnauthorizedError, got %v", resp.handleError)
	}
	if ue.Message != "incorrect password" {
		t.Fatalf("unexpected message %q", ue.Message)
	}
}

func TestLogin_ThenSessionThenLogout(t *testing.T) {
	sessions := session.NewStore()
	auth := &stubAuthService{password: "ok"}

	resp := &stubResponseHandler{}
	h := NewAuthHandlers(&Deps{ResponseHandler: resp, AuthSvc: auth, Sessions: sessions})
	rr := httptest.NewRecorder()
	h.Login(rr, httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"password":"ok"}`)))
	if resp.writeSuccessData != (dto.SessionResponse{Authenticated: true}) {
		t.Fatalf("unexpected login response %+v", resp.writeSuccessData)
	}
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one session cookie, got %d", len(cookies))
	}

	resp = &stubResponseHandler{}
	h = NewAuthHandlers(&Deps{ResponseHandler: resp, AuthSvc: auth, Sessions: sessions})
	req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	req.AddCookie(cookies[0])
	h.Session(httptest.NewRecorder(), req)
	if resp.writeSuccessData != (dto.SessionResponse{Authenticated: true}) {
		t.Fatalf("expected authenticated session, got %+v", resp.writeSuccessData)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(cookies[0])
	h.Logout(httptest.NewRecorder(), req)

	resp = &stubResponseHandler{}
	h = NewAuthHandlers(&Deps{ResponseHandler: resp, AuthSvc: auth, Sessions: sessions})
	req = httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	req.AddCookie(cookies[0])
	h.Session(httptest.NewRecorder(), req)
	if resp.writeSuccessData != (dto.SessionResponse{Authenticated: false}) {
		t.Fatalf("expected logged out session, got %+v", resp.writeSuccessData)
	}
}

func TestLogin_BadBody(t *testing.T) {
	resp := &stubResponseHandler{}
	h := NewAuthHandlers(&Deps{ResponseHandler: resp, AuthSvc: &stubAuthService{}, Sessions: session.NewStore()})

	h.Login(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{`)))

	var ve *errs.ValidationError
	if !errors.As(resp.handleError, &ve) {
		t.Fatalf("expected ValidationError, got %v", resp.handleError)
	}
}

// --- Admin ---

func TestAddSection_Created(t *testing.T) {
	svc := &stubContentService{newID: "novos-projetos"}
	resp := &stubResponseHandler{}
	h := NewAdminHandlers(&Deps{ResponseHandler: resp, ContentSvc: svc})

	req := httptest.NewRequest(http.MethodPost, "/api/admin/sections", strings.NewReader(`{"title":"Novos Projetos"}`))
	h.AddSection(httptest.NewRecorder(), req)

	if svc.lastTitle != "Novos Projetos" {
		t.Fatalf("unexpected title %q", svc.lastTitle)
	}
	if resp.writeSuccessStatus != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.writeSuccessStatus)
	}
	if resp.writeSuccessData != (dto.CreatedResponse{ID: "novos-projetos", Changed: true}) {
		t.Fatalf("unexpected body %+v", resp.writeSuccessData)
	}
}

func TestAddItem_MissingSection(t *testing.T) {
	svc := &stubContentService{ok: false}
	resp := &stubResponseHandler{}
	h := NewAdminHandlers(&Deps{ResponseHandler: resp, ContentSvc: svc})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"type":"CHART"}`))
	req = withChiParams(req, "sectionId", "ghost")
	h.AddItem(httptest.NewRecorder(), req)

	if svc.lastType != models.ItemChart || svc.lastSectionID != "ghost" {
		t.Fatalf("unexpected call: %q %q", svc.lastSectionID, svc.lastType)
	}
	if resp.writeSuccessStatus != http.StatusOK || resp.writeSuccessData != (dto.CreatedResponse{}) {
		t.Fatalf("expected 200 with changed=false, got %d %+v", resp.writeSuccessStatus, resp.writeSuccessData)
	}
}

func TestDuplicateItem_Created(t *testing.T) {
	svc := &stubContentService{newID: "dup-1", ok: true}
	resp := &stubResponseHandler{}
	h := NewAdminHandlers(&Deps{ResponseHandler: resp, ContentSvc: svc})

	req := withChiParams(httptest.NewRequest(http.MethodPost, "/", nil), "sectionId", "s", "itemId", "i")
	h.DuplicateItem(httptest.NewRecorder(), req)

	if svc.lastSectionID != "s" || svc.lastItemID != "i" {
		t.Fatalf("unexpected ids %q %q", svc.lastSectionID, svc.lastItemID)
	}
	if resp.writeSuccessStatus != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.writeSuccessStatus)
	}
}

func TestUpdateItem_PathIDWins(t *testing.T) {
	svc := &stubContentService{changed: true}
	resp := &stubResponseHandler{}
	h := NewAdminHandlers(&Deps{ResponseHandler: resp, ContentSvc: svc})

	body := `{"id":"other","type":"STATS","title":"Números","stats":[{"label":"Açúcar","value":"319 mil"}]}`
	req := withChiParams(httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body)), "sectionId", "destaques", "itemId", "high-1")
	h.UpdateItem(httptest.NewRecorder(), req)

	if svc.lastItem.ID != "high-1" {
		t.Fatalf("expected path id, got %q", svc.lastItem.ID)
	}
	stats, ok := svc.lastItem.Payload.(models.Stats)
	if !ok || len(stats.Items) != 1 || stats.Items[0].Label != "Açúcar" {
		t.Fatalf("unexpected payload %#v", svc.lastItem.Payload)
	}
	if resp.writeSuccessData != (dto.ChangedResponse{Changed: true}) {
		t.Fatalf("unexpected body %+v", resp.writeSuccessData)
	}
}

func TestMoveSection_PassesDirection(t *testing.T) {
	svc := &stubContentService{changed: false}
	resp := &stubResponseHandler{}
	h := NewAdminHandlers(&Deps{ResponseHandler: resp, ContentSvc: svc})

	req := withChiParams(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"direction":"up"}`)), "sectionId", "capa")
	h.MoveSection(httptest.NewRecorder(), req)

	if svc.lastDir != models.DirectionUp || svc.lastSectionID != "capa" {
		t.Fatalf("unexpected call %q %q", svc.lastSectionID, svc.lastDir)
	}
	if resp.writeSuccessData != (dto.ChangedResponse{Changed: false}) {
		t.Fatalf("unexpected body %+v", resp.writeSuccessData)
	}
}

func TestMutation_WriteFailureGoesToHandleError(t *testing.T) {
	storeErr := errs.NewStoreError(errs.OpWrite, "saving document", errors.New("down"))
	svc := &stubContentService{changed: true, err: storeErr}
	resp := &stubResponseHandler{}
	h := NewAdminHandlers(&Deps{ResponseHandler: resp, ContentSvc: svc})

	req := withChiParams(httptest.NewRequest(http.MethodDelete, "/", nil), "sectionId", "s", "itemId", "i")
	h.RemoveItem(httptest.NewRecorder(), req)

	if !errors.Is(resp.handleError, storeErr) {
		t.Fatalf("expected store error, got %v", resp.handleError)
	}
}

func TestUpdateSettings_ReturnsReloadFlag(t *testing.T) {
	svc := &stubContentService{}
	resp := &stubResponseHandler{}
	h := NewAdminHandlers(&Deps{ResponseHandler: resp, ContentSvc: svc})

	body := `{"companyName":"CACU","primaryColor":"#009E49","darkColor":"#0B3B24","fontTheme":"serif"}`
	h.UpdateSettings(httptest.NewRecorder(), httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body)))

	if svc.lastSettings.FontTheme != models.FontSerif {
		t.Fatalf("unexpected settings %+v", svc.lastSettings)
	}
	got, ok := resp.writeSuccessData.(dto.SettingsResponse)
	if !ok || !got.ReloadRequired {
		t.Fatalf("expected reloadRequired, got %+v", resp.writeSuccessData)
	}
}

func TestReset(t *testing.T) {
	svc := &stubContentService{}
	resp := &stubResponseHandler{}
	h := NewAdminHandlers(&Deps{ResponseHandler: resp, ContentSvc: svc})

	h.Reset(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))

	if !svc.resetCalled || !resp.writeSuccessCalled {
		t.Fatal("expected reset to run and succeed")
	}
}
