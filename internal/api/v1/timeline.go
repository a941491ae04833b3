package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"roadmap/internal/store"
	"roadmap/internal/timeline"
)

type layoutRequest struct {
	TimelineRange timeline.TimeWindow   `json:"timelineRange"`
	Density       timeline.DensityInput `json:"density"`
	// 为空时使用设置中的可见产品线；设置也为空时显示全部
	VisibleProductLines []string `json:"visibleProductLines"`
}

// ComputeTimelineLayout 计算时间轴布局
// POST /api/timeline/layout
// 布局本身是纯计算：这里先取一份项目/产品线/人员快照，再一次性算出
// 所有泳道的行号、像素位置和刻度。视口未就绪时返回202，调用方沿用旧布局
func (h *Handler) ComputeTimelineLayout(c *gin.Context) {
	var req layoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}
	if err := req.TimelineRange.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	projects, err := h.store.ListProjects(store.ProjectQueryOptions{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	productLines, err := h.store.ListProductLines()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	owners, err := h.store.ListOwners()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// 泳道来源：请求指定的可见产品线，否则用持久化设置，都为空时显示全部
	visible := req.VisibleProductLines
	if visible == nil {
		settings, err := h.store.GetUserSettings()
		if err == nil {
			visible = settings.VisibleProductLines
		}
	}
	visibleSet := make(map[string]bool, len(visible))
	for _, id := range visible {
		visibleSet[id] = true
	}

	groups := make([]timeline.Group, 0, len(productLines))
	for _, pl := range productLines {
		if len(visibleSet) > 0 && !visibleSet[pl.ID] {
			continue
		}
		groups = append(groups, timeline.Group{ID: pl.ID, Name: pl.Name})
	}

	items := make([]timeline.Item, 0, len(projects))
	for _, p := range projects {
		item, err := p.ToItem()
		if err != nil {
			// 存储里的日期已在写入时校验过，坏数据跳过而不是整体失败
			continue
		}
		items = append(items, item)
	}

	hiddenOwners := make(map[string]bool)
	for _, o := range owners {
		if !o.Visible {
			hiddenOwners[o.ID] = true
		}
	}

	now := timeline.DateOf(time.Now())
	layout, err := timeline.ComputeLayout(items, groups, req.TimelineRange, req.Density, hiddenOwners, now)
	if err != nil {
		if errors.Is(err, timeline.ErrViewportNotReady) {
			c.JSON(http.StatusAccepted, gin.H{"deferred": true})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, layout)
}

type validateRangeRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// ValidateTimelineRange 校验自定义时间范围
// POST /api/timeline/validate-range
func (h *Handler) ValidateTimelineRange(c *gin.Context) {
	var req validateRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	v := timeline.ValidateDateRange(req.StartDate, req.EndDate)
	resp := gin.H{"valid": v.Valid}
	if v.Err != nil {
		resp["error"] = v.Err.Error()
	}
	if v.Warning != "" {
		resp["warning"] = v.Warning
	}
	c.JSON(http.StatusOK, resp)
}
