package timeline

// Lane 一条泳道的布局结果
type Lane struct {
	GroupID  string       `json:"groupId"`
	Items    []PlacedItem `json:"items"`
	HeightPx float64      `json:"heightPx"`
}

// Group 泳道分组（产品线）
type Group struct {
	ID   string
	Name string
}

// VisibleInWindow 判断条目的日期区间与窗口是否相交
// 与行分配的重叠判断使用同一套含端点语义：
// 恰好结束于窗口起点或开始于窗口终点的条目仍然可见
func VisibleInWindow(item Item, scale Scale) bool {
	return Overlaps(item.Start, item.End, scale.WindowStart, scale.WindowEnd)
}

// LaneHeight 计算泳道高度
// 高度 = 行数 × (块高 + 间距) + 底部间距；空泳道取最小高度
func LaneHeight(placed []PlacedItem, barHeight, barMargin float64) float64 {
	if len(placed) == 0 {
		return barHeight + barMargin*2
	}
	rows := float64(MaxRow(placed) + 1)
	return rows*(barHeight+barMargin) + barMargin
}

// GroupAndLayout 按分组划分条目并逐泳道布局
// 分组列表是泳道的权威来源：条目引用未知分组时直接丢弃（并发编辑时
// 分组列表可能滞后于条目数据，不视为错误）。
// filter 为可见性过滤（窗口相交、负责人隐藏等），为 nil 时不过滤；
// 不可见条目不占行也不影响高度。
// 行号按泳道独立编号，每条泳道都从0开始
func GroupAndLayout(items []Item, groups []Group, scale Scale, filter func(Item) bool) map[string]Lane {
	grouped := make(map[string][]Item, len(groups))
	for _, g := range groups {
		grouped[g.ID] = []Item{}
	}
	for _, item := range items {
		if _, known := grouped[item.GroupID]; !known {
			continue
		}
		if filter != nil && !filter(item) {
			continue
		}
		grouped[item.GroupID] = append(grouped[item.GroupID], item)
	}

	lanes := make(map[string]Lane, len(groups))
	for _, g := range groups {
		placed := AssignRows(grouped[g.ID])
		lanes[g.ID] = Lane{
			GroupID:  g.ID,
			Items:    placed,
			HeightPx: LaneHeight(placed, BarHeight, BarMargin),
		}
	}
	return lanes
}
