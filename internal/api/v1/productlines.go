package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roadmap/internal/model"
)

type productLineRequest struct {
	Name string `json:"name"`
}

// ListProductLines 获取产品线列表
// GET /api/productlines
func (h *Handler) ListProductLines(c *gin.Context) {
	lines, err := h.store.ListProductLines()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if lines == nil {
		lines = []*model.ProductLine{}
	}
	c.JSON(http.StatusOK, gin.H{"productLines": lines})
}

// CreateProductLine 创建产品线
// POST /api/productlines
func (h *Handler) CreateProductLine(c *gin.Context) {
	var req productLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	order, err := h.store.NextProductLineSortOrder()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	pl := &model.ProductLine{
		ID:        model.NewProductLineID(),
		Name:      req.Name,
		SortOrder: order,
		CreatedAt: model.NowMillis(),
	}
	if err := pl.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.store.CreateProductLine(pl); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, pl)
}

// UpdateProductLine 更新产品线名称
// PUT /api/productlines/:id
func (h *Handler) UpdateProductLine(c *gin.Context) {
	var req productLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	pl := &model.ProductLine{ID: c.Param("id"), Name: req.Name}
	if err := pl.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.store.UpdateProductLine(pl.ID, pl.Name); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.store.GetProductLine(pl.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteProductLine 删除产品线
// DELETE /api/productlines/:id
// 产品线下仍有项目时拒绝删除
func (h *Handler) DeleteProductLine(c *gin.Context) {
	id := c.Param("id")

	count, err := h.store.CountProjectsByProductLine(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "该产品线下仍有项目，无法删除"})
		return
	}

	if err := h.store.DeleteProductLine(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

type reorderRequest struct {
	OrderedIDs []string `json:"orderedIds"`
}

// ReorderProductLines 重排产品线
// PUT /api/productlines/reorder
func (h *Handler) ReorderProductLines(c *gin.Context) {
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}
	if len(req.OrderedIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "排序列表不能为空"})
		return
	}

	if err := h.store.ReorderProductLines(req.OrderedIDs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	lines, err := h.store.ListProductLines()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"productLines": lines})
}
