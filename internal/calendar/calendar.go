// Package calendar 日历视图的月网格计算
// 复用项目数据模型，按天做简单分桶，不涉及时间轴的像素布局
package calendar

import (
	"sort"
	"time"

	"roadmap/internal/model"
	"roadmap/internal/timeline"
)

// Cell 日历格子
type Cell struct {
	Date       timeline.Date `json:"date"`
	InMonth    bool          `json:"inMonth"` // 是否属于当前查看的月份
	ProjectIDs []string      `json:"projectIds"`
}

// MonthGrid 一个月的日历数据
// 固定6周×7天共42格，首尾补上相邻月份的日期
type MonthGrid struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Cells []Cell `json:"cells"`
}

// BuildMonthGrid 计算日历月网格
// 网格从月份第一天所在周的周日铺到月份最后一天所在周的周六；
// 项目按结束日期分桶，只收录结束日落在当前月、且产品线可见的项目，
// 每格内按创建时间排序保证显示顺序稳定
func BuildMonthGrid(year, month int, projects []*model.Project, visibleProductLines map[string]bool) (MonthGrid, error) {
	first := timeline.NewDate(year, time.Month(month), 1)
	last := first.EndOfMonth()

	gridStart := first.StartOfWeek()
	gridEnd := last.StartOfWeek().AddDays(6)

	// 结束日在当前月的可见项目，按结束日分桶
	buckets := make(map[string][]*model.Project)
	for _, p := range projects {
		if visibleProductLines != nil && !visibleProductLines[p.ProductLineID] {
			continue
		}
		end, err := timeline.ParseDate(p.EndDate)
		if err != nil {
			return MonthGrid{}, err
		}
		if !end.SameMonth(first) {
			continue
		}
		buckets[p.EndDate] = append(buckets[p.EndDate], p)
	}
	for _, bucket := range buckets {
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].CreatedAt < bucket[j].CreatedAt
		})
	}

	grid := MonthGrid{Year: year, Month: month}
	for d := gridStart; !d.After(gridEnd); d = d.AddDays(1) {
		ids := []string{}
		for _, p := range buckets[d.String()] {
			ids = append(ids, p.ID)
		}
		grid.Cells = append(grid.Cells, Cell{
			Date:       d,
			InMonth:    d.SameMonth(first),
			ProjectIDs: ids,
		})
	}
	return grid, nil
}
