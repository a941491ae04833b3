package v1

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"roadmap/internal/exporter"
	"roadmap/internal/store"
)

// buildExportContentDisposition 构造导出文件的 Content-Disposition
// ASCII 文件名兼容旧客户端，filename* 提供中文文件名
func buildExportContentDisposition(date string) string {
	ascii := fmt.Sprintf("roadmap-%s.xlsx", date)
	utf8Name := url.PathEscape(fmt.Sprintf("项目路线图-%s.xlsx", date))
	return fmt.Sprintf("attachment; filename=%q; filename*=UTF-8''%s", ascii, utf8Name)
}

// Export 导出项目路线图Excel
// POST /api/export
func (h *Handler) Export(c *gin.Context) {
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

	f, err := exporter.NewExporter().Export(projects, productLines, owners)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "导出失败"})
		return
	}
	defer f.Close()

	date := time.Now().Format("2006-01-02")
	c.Header("Content-Disposition", buildExportContentDisposition(date))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		// 响应头已发出，只能记录
		c.Abort()
	}
}
