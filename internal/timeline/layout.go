package timeline

// LaneView 单条泳道的渲染数据
type LaneView struct {
	GroupID   string    `json:"groupId"`
	GroupName string    `json:"groupName"`
	HeightPx  float64   `json:"heightPx"`
	Items     []BarView `json:"items"`
}

// BarView 单个项目块的渲染数据
// 只包含位置信息，不含任何样式概念
type BarView struct {
	ID       string  `json:"id"`
	Label    string  `json:"label"`
	OwnerID  string  `json:"ownerId"`
	Row      int     `json:"row"`
	LeftPx   float64 `json:"leftPx"`
	WidthPx  float64 `json:"widthPx"`
	TopPx    float64 `json:"topPx"`
	HeightPx float64 `json:"heightPx"`
}

// Layout 完整的时间轴布局结果
type Layout struct {
	Scale       Scale       `json:"scale"`
	Lanes       []LaneView  `json:"lanes"`
	MonthTicks  []MonthTick `json:"monthTicks"`
	WeekLines   []float64   `json:"weekLines"`
	TodayPx     *float64    `json:"todayPx"`
	CurrentWeek *MonthTick  `json:"currentWeek"`
}

// ComputeLayout 时间轴布局的统一入口
// 组合比例解析、可见性过滤、行分配、泳道分组和刻度生成，
// 输入到输出是一次完整的纯计算：不读存储、不改条目、可重入。
// hiddenOwners 中负责人的条目不参与布局（不占行、不计高度）
func ComputeLayout(items []Item, groups []Group, window TimeWindow, density DensityInput, hiddenOwners map[string]bool, now Date) (Layout, error) {
	scale, err := ResolveScale(window, density, now)
	if err != nil {
		return Layout{}, err
	}

	visible := func(item Item) bool {
		if hiddenOwners[item.OwnerID] {
			return false
		}
		return VisibleInWindow(item, scale)
	}

	laneMap := GroupAndLayout(items, groups, scale, visible)

	// 泳道顺序跟随分组列表的顺序
	lanes := make([]LaneView, 0, len(groups))
	for _, g := range groups {
		lane := laneMap[g.ID]
		bars := make([]BarView, 0, len(lane.Items))
		for _, p := range lane.Items {
			pos := ProjectRange(p.Start, p.End, scale)
			bars = append(bars, BarView{
				ID:       p.ID,
				Label:    p.Label,
				OwnerID:  p.OwnerID,
				Row:      p.Row,
				LeftPx:   pos.LeftPx,
				WidthPx:  pos.WidthPx,
				TopPx:    float64(p.Row)*(BarHeight+BarMargin) + BarMargin,
				HeightPx: BarHeight,
			})
		}
		lanes = append(lanes, LaneView{
			GroupID:   g.ID,
			GroupName: g.Name,
			HeightPx:  lane.HeightPx,
			Items:     bars,
		})
	}

	layout := Layout{
		Scale:      scale,
		Lanes:      lanes,
		MonthTicks: MonthTicks(scale),
		WeekLines:  WeekLines(scale),
	}
	if offset, ok := TodayOffset(scale, now); ok {
		layout.TodayPx = &offset
	}
	if week, ok := CurrentWeek(scale, now); ok {
		layout.CurrentWeek = &week
	}
	return layout, nil
}
