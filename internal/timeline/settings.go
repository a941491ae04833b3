package timeline

import (
	"encoding/json"
	"log"
	"regexp"
	"time"
)

// SettingsKey 时间轴设置在键值存储中的键名
const SettingsKey = "timeline_settings"

// KVStore 键值持久化接口
// 由 SQLite settings 表实现；测试中可用内存 map 替代
type KVStore interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// Settings 持久化的时间轴设置
type Settings struct {
	TimelineRange TimeWindow `json:"timelineRange"`
	VisibleMonths int        `json:"visibleMonths"`
	Timestamp     int64      `json:"timestamp"`
}

// DefaultSettings 默认时间轴设置（最近一年，4个月视口）
func DefaultSettings() Settings {
	return Settings{
		TimelineRange: DefaultWindow(),
		VisibleMonths: DefaultVisibleMonths,
		Timestamp:     time.Now().UnixMilli(),
	}
}

var strictDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidSettings 校验设置记录的结构有效性
// 整体校验：范围类型、自定义日期格式、可见月份数任一不合法则整条记录无效，
// 不做部分字段与默认值的合并
func ValidSettings(s Settings) bool {
	if !s.TimelineRange.Type.Valid() {
		return false
	}
	if s.TimelineRange.Type == RangeCustom {
		cr := s.TimelineRange.CustomRange
		if cr == nil {
			return false
		}
		if !strictDatePattern.MatchString(cr.StartDate) || !strictDatePattern.MatchString(cr.EndDate) {
			return false
		}
		if _, err := ParseDate(cr.StartDate); err != nil {
			return false
		}
		if _, err := ParseDate(cr.EndDate); err != nil {
			return false
		}
	}
	if s.VisibleMonths < MinVisibleMonths || s.VisibleMonths > MaxVisibleMonths {
		return false
	}
	return true
}

// SaveSettings 保存时间轴设置
// 尽力而为：存储失败只记录日志不上抛，持久化是优化而非正确性要求
func SaveSettings(store KVStore, s Settings) {
	s.Timestamp = time.Now().UnixMilli()

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("保存时间轴设置失败: %v", err)
		return
	}
	if err := store.Set(SettingsKey, string(data)); err != nil {
		log.Printf("保存时间轴设置失败: %v", err)
	}
}

// LoadSettings 加载时间轴设置
// 记录不存在、解析失败或结构校验不通过时返回 nil；
// 校验不通过的损坏记录会被主动清除，下次从默认值开始
func LoadSettings(store KVStore) *Settings {
	data, ok, err := store.Get(SettingsKey)
	if err != nil {
		log.Printf("加载时间轴设置失败: %v", err)
		return nil
	}
	if !ok {
		return nil
	}

	var s Settings
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		log.Printf("时间轴设置数据无效，将使用默认值: %v", err)
		clearSettings(store)
		return nil
	}
	if !ValidSettings(s) {
		log.Printf("时间轴设置数据无效，将使用默认值")
		clearSettings(store)
		return nil
	}
	return &s
}

// clearSettings 清除损坏的设置记录
func clearSettings(store KVStore) {
	if err := store.Delete(SettingsKey); err != nil {
		log.Printf("清除时间轴设置失败: %v", err)
	}
}
