package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roadmap/internal/model"
)

type ownerCreateRequest struct {
	Name string `json:"name"`
}

type ownerUpdateRequest struct {
	Name    string `json:"name"`
	Visible *bool  `json:"visible"`
}

// ListOwners 获取人员列表
// GET /api/owners
func (h *Handler) ListOwners(c *gin.Context) {
	owners, err := h.store.ListOwners()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if owners == nil {
		owners = []*model.Owner{}
	}
	c.JSON(http.StatusOK, gin.H{"owners": owners})
}

// CreateOwner 创建人员
// POST /api/owners
// 颜色按已有人员数量从颜色池顺序分配，超出后动态生成
func (h *Handler) CreateOwner(c *gin.Context) {
	var req ownerCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	count, err := h.store.CountOwners()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	owner := &model.Owner{
		ID:        model.NewOwnerID(),
		Name:      req.Name,
		Color:     model.PickOwnerColor(count),
		Visible:   true,
		CreatedAt: model.NowMillis(),
	}
	if err := owner.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.store.CreateOwner(owner); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, owner)
}

// UpdateOwner 更新人员（名称、可见性）
// PUT /api/owners/:id
func (h *Handler) UpdateOwner(c *gin.Context) {
	owner, err := h.store.GetOwner(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	var req ownerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	if req.Name != "" {
		owner.Name = req.Name
	}
	if req.Visible != nil {
		owner.Visible = *req.Visible
	}
	if err := owner.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.store.UpdateOwner(owner); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, owner)
}

// DeleteOwner 删除人员
// DELETE /api/owners/:id
// 名下仍有项目时拒绝删除
func (h *Handler) DeleteOwner(c *gin.Context) {
	id := c.Param("id")

	count, err := h.store.CountProjectsByOwner(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "该人员名下仍有项目，无法删除"})
		return
	}

	if err := h.store.DeleteOwner(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// CountOwnerProjects 统计人员名下项目数
// GET /api/owners/:id/projects/count
func (h *Handler) CountOwnerProjects(c *gin.Context) {
	count, err := h.store.CountProjectsByOwner(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}
