package timeline

import (
	"fmt"
	"time"
)

// DateLayout 日期的线格式（所有接口统一使用）
const DateLayout = "2006-01-02"

// Date 日历日（天级精度，UTC 零点）
// 时间轴引擎不关心时分秒，统一截断到天，避免时区引起的偏移
type Date struct {
	t time.Time
}

// NewDate 从年月日构造日期
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf 从 time.Time 构造日期（截断到天）
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate 解析 YYYY-MM-DD 格式的日期字符串
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("日期格式错误，必须是YYYY-MM-DD格式: %w", err)
	}
	return Date{t: t}, nil
}

// String 格式化为 YYYY-MM-DD
func (d Date) String() string {
	return d.t.Format(DateLayout)
}

// IsZero 是否为零值
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// MarshalJSON 序列化为 "YYYY-MM-DD" 字符串
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON 从 "YYYY-MM-DD" 字符串反序列化
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("日期必须是字符串: %s", s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Year 年份
func (d Date) Year() int {
	return d.t.Year()
}

// Month 月份（1-12）
func (d Date) Month() time.Month {
	return d.t.Month()
}

// Day 日
func (d Date) Day() int {
	return d.t.Day()
}

// Before 是否早于 other
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// After 是否晚于 other
func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

// Equal 是否等于 other
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// AddDays 加 n 天（n 可为负）
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// AddMonths 加 n 个月（n 可为负）
// 与 time.AddDate 一致，超出月末时会顺延（1月31日+1月=3月3日），
// 调用方需要月边界时应配合 StartOfMonth/EndOfMonth 使用
func (d Date) AddMonths(n int) Date {
	return Date{t: d.t.AddDate(0, n, 0)}
}

// StartOfMonth 所在月份的第一天
func (d Date) StartOfMonth() Date {
	return NewDate(d.t.Year(), d.t.Month(), 1)
}

// EndOfMonth 所在月份的最后一天
func (d Date) EndOfMonth() Date {
	return NewDate(d.t.Year(), d.t.Month(), 1).AddMonths(1).AddDays(-1)
}

// StartOfWeek 所在周的周日（周日作为一周的第一天）
func (d Date) StartOfWeek() Date {
	return d.AddDays(-int(d.t.Weekday()))
}

// DaysInMonth 所在月份的天数
func (d Date) DaysInMonth() int {
	return d.EndOfMonth().Day()
}

// SameMonth 是否与 other 在同一个月
func (d Date) SameMonth(other Date) bool {
	return d.t.Year() == other.t.Year() && d.t.Month() == other.t.Month()
}

// DaysBetween 计算两个日期之间的整天数（to - from）
// from 晚于 to 时返回负数
func DaysBetween(from, to Date) int {
	return int(to.t.Sub(from.t) / (24 * time.Hour))
}

// MinDate 返回较早的日期
func MinDate(a, b Date) Date {
	if a.Before(b) {
		return a
	}
	return b
}

// MaxDate 返回较晚的日期
func MaxDate(a, b Date) Date {
	if a.After(b) {
		return a
	}
	return b
}
