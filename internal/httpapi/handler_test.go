package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/Ali-Mohammed/openRadius-sub014/internal/registry"
	"github.com/Ali-Mohammed/openRadius-sub014/internal/store"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *registry.MockQuerier, *registry.MockReconcileRunner, *registry.MockFlusher) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	mockQuerier := registry.NewMockQuerier(ctrl)
	mockReconciler := registry.NewMockReconcileRunner(ctrl)
	mockFlusher := registry.NewMockFlusher(ctrl)

	engine := gin.New()
	SetupRouter(engine, NewRegistryHandler(mockQuerier, mockReconciler, mockFlusher))
	return engine, mockQuerier, mockReconciler, mockFlusher
}

func doRequest(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	engine.ServeHTTP(w, req)
	return w
}

func TestHandleHealth(t *testing.T) {
	engine, _, _, _ := setupTestRouter(t)

	w := doRequest(engine, http.MethodGet, "/health")

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestHandleSummary(t *testing.T) {
	engine, mockQuerier, _, _ := setupTestRouter(t)

	mockQuerier.EXPECT().DashboardSummary(gomock.Any()).Return(&registry.Summary{
		OnlineUsers:    2,
		ActiveSessions: 3,
		PerNas: []registry.NasSummary{
			{NasIP: "192.0.2.1", SessionCount: 1},
			{NasIP: "192.0.2.2", SessionCount: 2},
		},
	}, nil)

	w := doRequest(engine, http.MethodGet, "/api/v1/summary")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var got registry.Summary
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("response decode failed: %v", err)
	}
	if got.ActiveSessions != 3 || got.OnlineUsers != 2 {
		t.Errorf("summary = %+v, want 3 sessions / 2 users", got)
	}
	if len(got.PerNas) != 2 {
		t.Errorf("PerNas length = %d, want 2", len(got.PerNas))
	}
}

func TestHandleSummary_StoreUnavailable(t *testing.T) {
	engine, mockQuerier, _, _ := setupTestRouter(t)

	mockQuerier.EXPECT().DashboardSummary(gomock.Any()).
		Return(nil, fmt.Errorf("%w: connection refused", store.ErrStoreUnavailable))

	w := doRequest(engine, http.MethodGet, "/api/v1/summary")

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}
}

func TestHandleSessions_ByUser(t *testing.T) {
	engine, mockQuerier, _, _ := setupTestRouter(t)

	mockQuerier.EXPECT().SessionsForUser(gomock.Any(), "alice@example.com").
		Return([]*registry.SessionRecord{
			{Username: "alice@example.com", NasIP: "192.0.2.1", SessionID: "sess-001"},
		}, nil)

	w := doRequest(engine, http.MethodGet, "/api/v1/sessions?user=alice%40example.com")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var got struct {
		Sessions []*registry.SessionRecord `json:"sessions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("response decode failed: %v", err)
	}
	if len(got.Sessions) != 1 || got.Sessions[0].SessionID != "sess-001" {
		t.Errorf("sessions = %+v, want single sess-001", got.Sessions)
	}
}

func TestHandleSessions_ByNas(t *testing.T) {
	engine, mockQuerier, _, _ := setupTestRouter(t)

	mockQuerier.EXPECT().SessionsForNas(gomock.Any(), "192.0.2.1").
		Return([]*registry.SessionRecord{}, nil)

	w := doRequest(engine, http.MethodGet, "/api/v1/sessions?nas=192.0.2.1")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	// ゼロ件は空配列として返す（nullにしない）
	var got struct {
		Sessions []*registry.SessionRecord `json:"sessions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("response decode failed: %v", err)
	}
	if got.Sessions == nil {
		t.Error("sessions should be an empty array, not null")
	}
}

func TestHandleSessions_MissingParams(t *testing.T) {
	engine, _, _, _ := setupTestRouter(t)

	w := doRequest(engine, http.MethodGet, "/api/v1/sessions")

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestHandleSessions_BothParams(t *testing.T) {
	engine, _, _, _ := setupTestRouter(t)

	w := doRequest(engine, http.MethodGet, "/api/v1/sessions?user=alice&nas=192.0.2.1")

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestHandleSessionDetail(t *testing.T) {
	engine, mockQuerier, _, _ := setupTestRouter(t)

	mockQuerier.EXPECT().SessionDetail(gomock.Any(), "192.0.2.1", "sess-001").
		Return(&registry.SessionRecord{
			Username:  "alice@example.com",
			NasIP:     "192.0.2.1",
			SessionID: "sess-001",
		}, nil)

	w := doRequest(engine, http.MethodGet, "/api/v1/sessions/192.0.2.1/sess-001")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var got registry.SessionRecord
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("response decode failed: %v", err)
	}
	if got.Username != "alice@example.com" {
		t.Errorf("Username = %q, want alice@example.com", got.Username)
	}
}

func TestHandleSessionDetail_NotFound(t *testing.T) {
	engine, mockQuerier, _, _ := setupTestRouter(t)

	mockQuerier.EXPECT().SessionDetail(gomock.Any(), "192.0.2.1", "gone").
		Return(nil, registry.ErrSessionNotFound)

	w := doRequest(engine, http.MethodGet, "/api/v1/sessions/192.0.2.1/gone")

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestHandleReconcile(t *testing.T) {
	engine, _, mockReconciler, _ := setupTestRouter(t)

	mockReconciler.EXPECT().Run(gomock.Any()).Return(&registry.RunReport{
		PrunedUserRefs: 3,
		ActiveSessions: 10,
		OnlineUsers:    7,
	}, nil)

	w := doRequest(engine, http.MethodPost, "/api/v1/reconcile")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var got registry.RunReport
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("response decode failed: %v", err)
	}
	if got.PrunedUserRefs != 3 || got.ActiveSessions != 10 {
		t.Errorf("report = %+v", got)
	}
}

func TestHandleReconcile_AlreadyRunning(t *testing.T) {
	engine, _, mockReconciler, _ := setupTestRouter(t)

	mockReconciler.EXPECT().Run(gomock.Any()).Return(nil, registry.ErrReconcileInProgress)

	w := doRequest(engine, http.MethodPost, "/api/v1/reconcile")

	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", w.Code)
	}
}

func TestHandleFlush(t *testing.T) {
	engine, _, _, mockFlusher := setupTestRouter(t)

	mockFlusher.EXPECT().Flush(gomock.Any()).Return(nil)

	w := doRequest(engine, http.MethodPost, "/api/v1/flush?confirm=true")

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestHandleFlush_WithoutConfirm(t *testing.T) {
	engine, _, _, mockFlusher := setupTestRouter(t)

	// Flushは呼ばれない
	mockFlusher.EXPECT().Flush(gomock.Any()).Times(0)

	w := doRequest(engine, http.MethodPost, "/api/v1/flush")

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
