package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"roadmap/internal/timeline"
)

// 项目状态枚举
var ValidStatuses = []string{"规划", "方案", "设计", "开发", "测试", "已上", "暂停"}

// Project 项目
type Project struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ProductLineID string `json:"productLineId"`
	OwnerID       string `json:"ownerId"`
	StartDate     string `json:"startDate"` // YYYY-MM-DD
	EndDate       string `json:"endDate"`   // YYYY-MM-DD
	Status        string `json:"status"`
	IsPending     bool   `json:"isPending"` // 是否暂定（只影响渲染样式，不影响布局）
	Remarks       string `json:"remarks"`
	CreatedAt     int64  `json:"createdAt"` // 毫秒时间戳
	UpdatedAt     int64  `json:"updatedAt"`
}

// NewProjectID 生成项目ID
func NewProjectID() string {
	return fmt.Sprintf("proj-%s", uuid.New().String())
}

// NowMillis 当前毫秒时间戳
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

// ValidStatus 状态是否合法
func ValidStatus(status string) bool {
	for _, s := range ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Validate 校验项目数据
func (p *Project) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("项目名称不能为空")
	}
	if len([]rune(p.Name)) > 200 {
		return errors.New("项目名称长度不能超过200个字符")
	}
	if p.ProductLineID == "" {
		return errors.New("产品线ID不能为空")
	}
	if p.OwnerID == "" {
		return errors.New("项目负责人ID不能为空")
	}
	if !ValidStatus(p.Status) {
		return fmt.Errorf("项目状态必须是以下之一: %s", strings.Join(ValidStatuses, ", "))
	}
	if len([]rune(p.Remarks)) > 500 {
		return errors.New("项目备注长度不能超过500个字符")
	}

	start, err := timeline.ParseDate(p.StartDate)
	if err != nil {
		return err
	}
	end, err := timeline.ParseDate(p.EndDate)
	if err != nil {
		return err
	}
	if end.Before(start) {
		return errors.New("结束日期必须大于或等于开始日期")
	}
	return nil
}

// Range 项目的日期区间（假定已通过 Validate）
func (p *Project) Range() (start, end timeline.Date, err error) {
	start, err = timeline.ParseDate(p.StartDate)
	if err != nil {
		return
	}
	end, err = timeline.ParseDate(p.EndDate)
	return
}

// ToItem 转换为布局引擎的条目
func (p *Project) ToItem() (timeline.Item, error) {
	start, end, err := p.Range()
	if err != nil {
		return timeline.Item{}, err
	}
	return timeline.Item{
		ID:      p.ID,
		Label:   p.Name,
		Start:   start,
		End:     end,
		GroupID: p.ProductLineID,
		OwnerID: p.OwnerID,
	}, nil
}
