package timeline

import "sort"

// Item 参与布局的日期区间条目
// 闭区间 [Start, End]，Start == End 表示单日条目
type Item struct {
	ID    string
	Label string
	Start Date
	End   Date
	// 分组键（产品线），空串在单泳道视图下合法
	GroupID string
	OwnerID string
}

// PlacedItem 已分配行号的条目
type PlacedItem struct {
	Item
	Row int
}

// Overlaps 判断两个闭区间是否重叠
// 两端均含端点：一个条目结束于某天、另一个开始于同一天时视为重叠
// （两个区间都包含这一天，不能共用一行）
func Overlaps(s1, e1, s2, e2 Date) bool {
	return !s1.After(e2) && !s2.After(e1)
}

// AssignRows 为条目分配行号（避免重叠）
// 贪心算法：按开始日期稳定排序后，逐个放入编号最小的无冲突行。
// 不追求最少行数，换取确定性和实现简单；相同输入必然得到相同行号
func AssignRows(items []Item) []PlacedItem {
	if len(items) == 0 {
		return []PlacedItem{}
	}

	sorted := make([]Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	result := make([]PlacedItem, 0, len(sorted))
	for _, item := range sorted {
		row := 0
		for {
			conflict := false
			for _, placed := range result {
				if placed.Row == row && Overlaps(placed.Start, placed.End, item.Start, item.End) {
					conflict = true
					break
				}
			}
			if !conflict {
				result = append(result, PlacedItem{Item: item, Row: row})
				break
			}
			row++
		}
	}
	return result
}

// MaxRow 已放置条目中的最大行号，空列表返回 -1
func MaxRow(placed []PlacedItem) int {
	max := -1
	for _, p := range placed {
		if p.Row > max {
			max = p.Row
		}
	}
	return max
}
