package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"roadmap/internal/model"
	"roadmap/internal/store"
	"roadmap/internal/timeline"
)

func newTestRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s, err := store.New(filepath.Join(t.TempDir(), "roadmap.db"))
	if err != nil {
		t.Fatalf("store.New failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	router := gin.New()
	NewHandler(s).RegisterRoutes(router.Group("/api"))
	return router, s
}

func seedProject(t *testing.T, s *store.Store, id, pl, owner, start, end string) {
	t.Helper()
	p := &model.Project{
		ID: id, Name: id, ProductLineID: pl, OwnerID: owner,
		StartDate: start, EndDate: end, Status: "开发",
		CreatedAt: model.NowMillis(), UpdatedAt: model.NowMillis(),
	}
	if err := s.CreateProject(p); err != nil {
		t.Fatalf("seed project %s failed: %v", id, err)
	}
}

// TestComputeTimelineLayoutEndpoint 测试布局接口的端到端行为
func TestComputeTimelineLayoutEndpoint(t *testing.T) {
	router, s := newTestRouter(t)

	pl := &model.ProductLine{ID: "pl-1", Name: "支付", CreatedAt: model.NowMillis()}
	if err := s.CreateProductLine(pl); err != nil {
		t.Fatalf("seed product line failed: %v", err)
	}
	seedProject(t, s, "p1", "pl-1", "owner-1", "2024-01-01", "2024-01-10")
	seedProject(t, s, "p2", "pl-1", "owner-1", "2024-01-05", "2024-01-15")
	// 引用未知产品线的项目应被静默丢弃
	seedProject(t, s, "orphan", "pl-gone", "owner-1", "2024-01-01", "2024-01-10")

	body := `{
		"timelineRange": {"type": "custom", "customRange": {"startDate": "2024-01-01", "endDate": "2024-03-31"}},
		"density": {"kind": "fixed", "pixelsPerMonth": 150}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/timeline/layout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var layout timeline.Layout
	if err := json.Unmarshal(w.Body.Bytes(), &layout); err != nil {
		t.Fatalf("unmarshal layout failed: %v", err)
	}

	if len(layout.Lanes) != 1 {
		t.Fatalf("lanes = %d, want 1", len(layout.Lanes))
	}
	lane := layout.Lanes[0]
	if len(lane.Items) != 2 {
		t.Fatalf("lane items = %d, want 2 (orphan dropped)", len(lane.Items))
	}
	if lane.Items[0].Row == lane.Items[1].Row {
		t.Error("overlapping projects share a row")
	}
	// 1月~3月共3个月份刻度
	if len(layout.MonthTicks) != 3 {
		t.Errorf("month ticks = %d, want 3", len(layout.MonthTicks))
	}
}

// TestComputeTimelineLayoutDeferred 测试视口未就绪时返回202
func TestComputeTimelineLayoutDeferred(t *testing.T) {
	router, _ := newTestRouter(t)

	body := `{
		"timelineRange": {"type": "1year"},
		"density": {"kind": "fit", "viewportWidthPx": 0, "visibleMonths": 4}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/timeline/layout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202, body = %s", w.Code, w.Body.String())
	}
}

// TestComputeTimelineLayoutBadWindow 测试非法时间窗口被拒绝
func TestComputeTimelineLayoutBadWindow(t *testing.T) {
	router, _ := newTestRouter(t)

	body := `{
		"timelineRange": {"type": "custom", "customRange": {"startDate": "2024-06-01", "endDate": "2024-01-01"}},
		"density": {"kind": "fixed", "pixelsPerMonth": 150}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/timeline/layout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

// TestTimelineSettingsEndpoints 测试时间轴设置的保存与读取
func TestTimelineSettingsEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	put := `{"timelineRange": {"type": "6months"}, "visibleMonths": 6}`
	req := httptest.NewRequest(http.MethodPut, "/api/settings/timeline", strings.NewReader(put))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("PUT status = %d, body = %s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/settings/timeline", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("GET status = %d", w.Code)
	}

	var settings timeline.Settings
	if err := json.Unmarshal(w.Body.Bytes(), &settings); err != nil {
		t.Fatalf("unmarshal settings failed: %v", err)
	}
	if settings.TimelineRange.Type != timeline.Range6Months || settings.VisibleMonths != 6 {
		t.Errorf("settings = %+v", settings)
	}
}

// TestUpdateTimelineSettingsInvalidZoom 测试越界缩放被拒绝
func TestUpdateTimelineSettingsInvalidZoom(t *testing.T) {
	router, _ := newTestRouter(t)

	put := `{"timelineRange": {"type": "1year"}, "visibleMonths": 20}`
	req := httptest.NewRequest(http.MethodPut, "/api/settings/timeline", strings.NewReader(put))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
