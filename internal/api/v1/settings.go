package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roadmap/internal/model"
	"roadmap/internal/timeline"
)

// GetSettings 获取用户设置
// GET /api/settings
func (h *Handler) GetSettings(c *gin.Context) {
	settings, err := h.store.GetUserSettings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}

type visibleProductLinesRequest struct {
	ProductLineIDs []string `json:"productLineIds"`
}

// UpdateVisibleProductLines 更新可见产品线配置
// PUT /api/settings/visible-productlines
func (h *Handler) UpdateVisibleProductLines(c *gin.Context) {
	var req visibleProductLinesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}
	if req.ProductLineIDs == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productLineIds不能为null"})
		return
	}

	if err := h.store.SetVisibleProductLines(req.ProductLineIDs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"visibleProductLines": req.ProductLineIDs})
}

type viewTypeRequest struct {
	ViewType string `json:"viewType"`
}

// UpdateViewType 更新视图类型
// PUT /api/settings/viewtype
func (h *Handler) UpdateViewType(c *gin.Context) {
	var req viewTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}
	if req.ViewType != model.ViewTimeline && req.ViewType != model.ViewCalendar {
		c.JSON(http.StatusBadRequest, gin.H{"error": "未知的视图类型"})
		return
	}

	if err := h.store.SetViewType(req.ViewType); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"viewType": req.ViewType})
}

// GetTimelineSettings 获取时间轴设置（窗口和缩放）
// GET /api/settings/timeline
// 无记录或记录损坏时返回默认设置（损坏记录会被清除）
func (h *Handler) GetTimelineSettings(c *gin.Context) {
	settings := timeline.LoadSettings(h.store)
	if settings == nil {
		defaults := timeline.DefaultSettings()
		settings = &defaults
	}
	c.JSON(http.StatusOK, settings)
}

type timelineSettingsRequest struct {
	TimelineRange timeline.TimeWindow `json:"timelineRange"`
	VisibleMonths int                 `json:"visibleMonths"`
}

// UpdateTimelineSettings 保存时间轴设置
// PUT /api/settings/timeline
// 自定义范围校验失败时返回错误，之前的设置保持生效；
// 跨度过大只附带警告不阻止保存
func (h *Handler) UpdateTimelineSettings(c *gin.Context) {
	var req timelineSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	if err := req.TimelineRange.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.VisibleMonths < timeline.MinVisibleMonths || req.VisibleMonths > timeline.MaxVisibleMonths {
		c.JSON(http.StatusBadRequest, gin.H{"error": "可见月份数必须在2到12之间"})
		return
	}

	var warning string
	if req.TimelineRange.Type == timeline.RangeCustom {
		v := timeline.ValidateDateRange(req.TimelineRange.CustomRange.StartDate, req.TimelineRange.CustomRange.EndDate)
		warning = v.Warning
	}

	settings := timeline.Settings{
		TimelineRange: req.TimelineRange,
		VisibleMonths: req.VisibleMonths,
	}
	timeline.SaveSettings(h.store, settings)

	resp := gin.H{"settings": settings}
	if warning != "" {
		resp["warning"] = warning
	}
	c.JSON(http.StatusOK, resp)
}
