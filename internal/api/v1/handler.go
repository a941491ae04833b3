package v1

import (
	"github.com/gin-gonic/gin"

	"roadmap/internal/store"
)

// Handler V1 API 处理器
type Handler struct {
	store *store.Store
}

// NewHandler 创建 V1 API 处理器
func NewHandler(store *store.Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes 注册 V1 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)

	// 项目管理
	router.GET("/projects", h.ListProjects)
	router.POST("/projects", h.CreateProject)
	router.GET("/projects/:id", h.GetProject)
	router.PUT("/projects/:id", h.UpdateProject)
	router.DELETE("/projects/:id", h.DeleteProject)

	// 产品线管理
	router.GET("/productlines", h.ListProductLines)
	router.POST("/productlines", h.CreateProductLine)
	router.PUT("/productlines/reorder", h.ReorderProductLines)
	router.PUT("/productlines/:id", h.UpdateProductLine)
	router.DELETE("/productlines/:id", h.DeleteProductLine)

	// 人员管理
	router.GET("/owners", h.ListOwners)
	router.POST("/owners", h.CreateOwner)
	router.PUT("/owners/:id", h.UpdateOwner)
	router.DELETE("/owners/:id", h.DeleteOwner)
	router.GET("/owners/:id/projects/count", h.CountOwnerProjects)

	// 用户设置
	router.GET("/settings", h.GetSettings)
	router.PUT("/settings/visible-productlines", h.UpdateVisibleProductLines)
	router.PUT("/settings/viewtype", h.UpdateViewType)
	router.GET("/settings/timeline", h.GetTimelineSettings)
	router.PUT("/settings/timeline", h.UpdateTimelineSettings)

	// 时间轴布局
	router.POST("/timeline/layout", h.ComputeTimelineLayout)
	router.POST("/timeline/validate-range", h.ValidateTimelineRange)

	// 日历视图
	router.GET("/calendar", h.GetCalendar)

	// 数据导出
	router.POST("/export", h.Export)
}
