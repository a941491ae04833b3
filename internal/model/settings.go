package model

import (
	"errors"
	"fmt"
)

// 视图类型
const (
	ViewTimeline = "timeline"
	ViewCalendar = "calendar"
)

// UserSettings 用户设置（服务端持久化部分）
// 时间轴窗口/缩放由 timeline.Settings 单独管理
type UserSettings struct {
	VisibleProductLines []string `json:"visibleProductLines"`
	ViewType            string   `json:"viewType"`
}

// DefaultUserSettings 默认用户设置
func DefaultUserSettings() UserSettings {
	return UserSettings{
		VisibleProductLines: []string{},
		ViewType:            ViewTimeline,
	}
}

// Validate 校验用户设置
func (s *UserSettings) Validate() error {
	if s.VisibleProductLines == nil {
		return errors.New("visibleProductLines不能为null")
	}
	if s.ViewType != ViewTimeline && s.ViewType != ViewCalendar {
		return fmt.Errorf("未知的视图类型: %s", s.ViewType)
	}
	return nil
}
