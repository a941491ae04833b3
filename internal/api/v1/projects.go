package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roadmap/internal/model"
	"roadmap/internal/store"
)

type projectRequest struct {
	Name          string `json:"name"`
	ProductLineID string `json:"productLineId"`
	OwnerID       string `json:"ownerId"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	Status        string `json:"status"`
	IsPending     bool   `json:"isPending"`
	Remarks       string `json:"remarks"`
}

// ListProjects 获取项目列表
// GET /api/projects?productLineId=&ownerId=&status=
func (h *Handler) ListProjects(c *gin.Context) {
	var opts store.ProjectQueryOptions
	if v := c.Query("productLineId"); v != "" {
		opts.ProductLineID = &v
	}
	if v := c.Query("ownerId"); v != "" {
		opts.OwnerID = &v
	}
	if v := c.Query("status"); v != "" {
		opts.Status = &v
	}

	projects, err := h.store.ListProjects(opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if projects == nil {
		projects = []*model.Project{}
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// GetProject 根据ID获取项目
// GET /api/projects/:id
func (h *Handler) GetProject(c *gin.Context) {
	project, err := h.store.GetProject(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, project)
}

// CreateProject 创建项目
// POST /api/projects
func (h *Handler) CreateProject(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	now := model.NowMillis()
	project := &model.Project{
		ID:            model.NewProjectID(),
		Name:          req.Name,
		ProductLineID: req.ProductLineID,
		OwnerID:       req.OwnerID,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Status:        req.Status,
		IsPending:     req.IsPending,
		Remarks:       req.Remarks,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := project.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 产品线和负责人必须存在
	if _, err := h.store.GetProductLine(project.ProductLineID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := h.store.GetOwner(project.OwnerID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.CreateProject(project); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, project)
}

// UpdateProject 更新项目
// PUT /api/projects/:id
func (h *Handler) UpdateProject(c *gin.Context) {
	project, err := h.store.GetProject(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	project.Name = req.Name
	project.ProductLineID = req.ProductLineID
	project.OwnerID = req.OwnerID
	project.StartDate = req.StartDate
	project.EndDate = req.EndDate
	project.Status = req.Status
	project.IsPending = req.IsPending
	project.Remarks = req.Remarks
	project.UpdatedAt = model.NowMillis()

	if err := project.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.store.UpdateProject(project); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, project)
}

// DeleteProject 删除项目
// DELETE /api/projects/:id
func (h *Handler) DeleteProject(c *gin.Context) {
	if err := h.store.DeleteProject(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
