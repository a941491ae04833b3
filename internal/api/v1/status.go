package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	Initialized      bool   `json:"initialized"`      // 是否已初始化（有数据）
	ProjectCount     int    `json:"projectCount"`     // 项目总数
	ProductLineCount int    `json:"productLineCount"` // 产品线总数
	OwnerCount       int    `json:"ownerCount"`       // 人员总数
	EarliestStart    string `json:"earliestStart"`    // 最早项目开始日
	LatestEnd        string `json:"latestEnd"`        // 最晚项目结束日
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	projectCount, err := h.store.CountProjects()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	lines, err := h.store.ListProductLines()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	owners, err := h.store.ListOwners()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := StatusResponse{
		Initialized:      projectCount > 0,
		ProjectCount:     projectCount,
		ProductLineCount: len(lines),
		OwnerCount:       len(owners),
	}
	if minStart, maxEnd, ok, err := h.store.ProjectDateRange(); err == nil && ok {
		resp.EarliestStart = minStart
		resp.LatestEnd = maxEnd
	}

	c.JSON(http.StatusOK, resp)
}
