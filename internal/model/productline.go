package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ProductLine 产品线（时间轴上的一条泳道）
type ProductLine struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SortOrder int    `json:"sortOrder"`
	CreatedAt int64  `json:"createdAt"`
}

// NewProductLineID 生成产品线ID
func NewProductLineID() string {
	return fmt.Sprintf("pl-%s", uuid.New().String())
}

// Validate 校验产品线数据
func (pl *ProductLine) Validate() error {
	if strings.TrimSpace(pl.Name) == "" {
		return errors.New("产品线名称不能为空")
	}
	if len([]rune(pl.Name)) > 100 {
		return errors.New("产品线名称长度不能超过100个字符")
	}
	return nil
}
