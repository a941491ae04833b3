package timeline

import "fmt"

// MonthTick 月份刻度（时间轴表头）
type MonthTick struct {
	Date     string  `json:"date"`  // YYYY-MM
	Label    string  `json:"label"` // YYYY年MM月
	Year     int     `json:"year"`
	Month    int     `json:"month"`
	OffsetPx float64 `json:"offsetPx"`
	WidthPx  float64 `json:"widthPx"`
}

// MonthTicks 生成月份刻度
// 从窗口起点所在月遍历到窗口终点所在月（含），
// 偏移为月份第一天距窗口起点的天数 × 每天像素数，宽度为该月天数 × 每天像素数
func MonthTicks(scale Scale) []MonthTick {
	ticks := []MonthTick{}

	current := scale.WindowStart.StartOfMonth()
	for current.Before(scale.WindowEnd) || current.SameMonth(scale.WindowEnd) {
		ticks = append(ticks, MonthTick{
			Date:     fmt.Sprintf("%04d-%02d", current.Year(), int(current.Month())),
			Label:    fmt.Sprintf("%04d年%02d月", current.Year(), int(current.Month())),
			Year:     current.Year(),
			Month:    int(current.Month()),
			OffsetPx: float64(DaysBetween(scale.WindowStart, current)) * scale.PixelsPerDay,
			WidthPx:  float64(current.DaysInMonth()) * scale.PixelsPerDay,
		})
		current = current.AddMonths(1)
	}
	return ticks
}

// WeekLines 生成周刻度网格线位置
// 从窗口起点所在周的周日开始，每7天一条；
// 负偏移（窗口起点之前的那段）被抑制，超出总宽度后停止
func WeekLines(scale Scale) []float64 {
	lines := []float64{}

	current := scale.WindowStart.StartOfWeek()
	for current.Before(scale.WindowEnd) {
		offset := float64(DaysBetween(scale.WindowStart, current)) * scale.PixelsPerDay
		if offset > scale.TotalWidthPx {
			break
		}
		if offset >= 0 {
			lines = append(lines, offset)
		}
		current = current.AddDays(7)
	}
	return lines
}

// TodayOffset 计算当前日期在时间轴上的像素位置
// 当前日期不在窗口内时返回 (0, false)
func TodayOffset(scale Scale, now Date) (float64, bool) {
	if now.Before(scale.WindowStart) || now.After(scale.WindowEnd) {
		return 0, false
	}
	return float64(DaysBetween(scale.WindowStart, now)) * scale.PixelsPerDay, true
}

// CurrentWeek 计算包含当前日期的那一周的高亮区域
// 算法与单个刻度一致：周日起点的偏移加7天宽度；该周不落在窗口内时返回 (zero, false)
func CurrentWeek(scale Scale, now Date) (MonthTick, bool) {
	weekStart := now.StartOfWeek()
	weekEnd := weekStart.AddDays(6)
	if !Overlaps(weekStart, weekEnd, scale.WindowStart, scale.WindowEnd) {
		return MonthTick{}, false
	}
	return MonthTick{
		Date:     weekStart.String(),
		Label:    "本周",
		Year:     weekStart.Year(),
		Month:    int(weekStart.Month()),
		OffsetPx: float64(DaysBetween(scale.WindowStart, weekStart)) * scale.PixelsPerDay,
		WidthPx:  7 * scale.PixelsPerDay,
	}, true
}
