package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"roadmap/internal/model"
)

// 设置键名
const (
	KeyVisibleProductLines = "visible_product_lines"
	KeyViewType            = "view_type"
)

// Get 获取设置项
// 键不存在时 ok 为 false，不作为错误
func (s *Store) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set 设置设置项
func (s *Store) Set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = ?, updated_at = CURRENT_TIMESTAMP
	`, key, value, value)
	return err
}

// Delete 删除设置项
func (s *Store) Delete(key string) error {
	_, err := s.db.Exec("DELETE FROM settings WHERE key = ?", key)
	return err
}

// GetUserSettings 获取用户设置（缺失的键使用默认值）
func (s *Store) GetUserSettings() (model.UserSettings, error) {
	settings := model.DefaultUserSettings()

	if value, ok, err := s.Get(KeyVisibleProductLines); err != nil {
		return settings, err
	} else if ok {
		var ids []string
		if err := json.Unmarshal([]byte(value), &ids); err != nil {
			return settings, fmt.Errorf("可见产品线配置损坏: %w", err)
		}
		settings.VisibleProductLines = ids
	}

	if value, ok, err := s.Get(KeyViewType); err != nil {
		return settings, err
	} else if ok {
		settings.ViewType = value
	}

	return settings, nil
}

// SetVisibleProductLines 保存可见产品线ID列表
func (s *Store) SetVisibleProductLines(ids []string) error {
	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return s.Set(KeyVisibleProductLines, string(data))
}

// SetViewType 保存视图类型
func (s *Store) SetViewType(viewType string) error {
	return s.Set(KeyViewType, viewType)
}
