package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"roadmap/internal/calendar"
	"roadmap/internal/store"
)

// GetCalendar 获取日历月网格
// GET /api/calendar?year=2024&month=6
func (h *Handler) GetCalendar(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "非法年份"})
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "非法月份"})
		return
	}

	projects, err := h.store.ListProjects(store.ProjectQueryOptions{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// 日历视图沿用时间轴的可见产品线设置
	var visibleSet map[string]bool
	if settings, err := h.store.GetUserSettings(); err == nil && len(settings.VisibleProductLines) > 0 {
		visibleSet = make(map[string]bool, len(settings.VisibleProductLines))
		for _, id := range settings.VisibleProductLines {
			visibleSet[id] = true
		}
	}

	grid, err := calendar.BuildMonthGrid(year, month, projects, visibleSet)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, grid)
}
