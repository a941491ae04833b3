package timeline

import (
	"testing"
	"time"
)

func testScale() Scale {
	return Scale{
		WindowStart:  NewDate(2024, time.January, 1),
		WindowEnd:    NewDate(2024, time.December, 31),
		TotalDays:    365,
		PixelsPerDay: 5,
		TotalWidthPx: 365 * 5,
	}
}

// TestVisibleInWindow 测试窗口可见性判断
func TestVisibleInWindow(t *testing.T) {
	scale := testScale()

	inside := itemOn("in", "2024-03-01", "2024-04-01")
	if !VisibleInWindow(inside, scale) {
		t.Error("item inside window should be visible")
	}

	// 恰好结束于窗口起点：含端点语义下仍可见
	edge := itemOn("edge", "2023-12-01", "2024-01-01")
	if !VisibleInWindow(edge, scale) {
		t.Error("item ending on window start should be visible")
	}

	before := itemOn("before", "2023-01-01", "2023-12-31")
	if VisibleInWindow(before, scale) {
		t.Error("item entirely before window should not be visible")
	}

	after := itemOn("after", "2025-01-01", "2025-02-01")
	if VisibleInWindow(after, scale) {
		t.Error("item entirely after window should not be visible")
	}
}

// TestLaneHeight 测试泳道高度公式
func TestLaneHeight(t *testing.T) {
	// 空泳道：最小高度
	if got := LaneHeight(nil, 40, 8); got != 40+8*2 {
		t.Errorf("empty lane height = %v, want %v", got, 40+8*2)
	}

	// 两行：2 * (40+8) + 8
	placed := []PlacedItem{
		{Item: itemOn("A", "2024-01-01", "2024-01-10"), Row: 0},
		{Item: itemOn("B", "2024-01-05", "2024-01-15"), Row: 1},
	}
	if got := LaneHeight(placed, 40, 8); got != 2*(40+8)+8 {
		t.Errorf("two-row lane height = %v, want %v", got, 2*(40+8)+8)
	}
}

// TestGroupAndLayout 测试按产品线分组布局
func TestGroupAndLayout(t *testing.T) {
	groups := []Group{{ID: "pl-1", Name: "产品线A"}, {ID: "pl-2", Name: "产品线B"}}

	a := itemOn("A", "2024-01-01", "2024-01-10")
	a.GroupID = "pl-1"
	b := itemOn("B", "2024-01-05", "2024-01-15")
	b.GroupID = "pl-1"
	c := itemOn("C", "2024-02-01", "2024-02-10")
	c.GroupID = "pl-2"
	// 引用未知产品线的项目应被丢弃
	orphan := itemOn("orphan", "2024-03-01", "2024-03-10")
	orphan.GroupID = "pl-gone"

	lanes := GroupAndLayout([]Item{a, b, c, orphan}, groups, testScale(), nil)

	if len(lanes) != 2 {
		t.Fatalf("lanes = %d, want 2", len(lanes))
	}
	if len(lanes["pl-1"].Items) != 2 {
		t.Errorf("pl-1 items = %d, want 2", len(lanes["pl-1"].Items))
	}
	if len(lanes["pl-2"].Items) != 1 {
		t.Errorf("pl-2 items = %d, want 1", len(lanes["pl-2"].Items))
	}

	// 行号按泳道独立编号：pl-2 唯一的项目应在第0行
	if lanes["pl-2"].Items[0].Row != 0 {
		t.Errorf("pl-2 row numbering should restart at 0, got %d", lanes["pl-2"].Items[0].Row)
	}
}

// TestGroupAndLayoutEmptyLane 测试空泳道保留最小高度
func TestGroupAndLayoutEmptyLane(t *testing.T) {
	groups := []Group{{ID: "pl-empty", Name: "空产品线"}}
	lanes := GroupAndLayout(nil, groups, testScale(), nil)

	lane, ok := lanes["pl-empty"]
	if !ok {
		t.Fatal("empty group should still produce a lane")
	}
	if lane.HeightPx != BarHeight+BarMargin*2 {
		t.Errorf("empty lane height = %v, want %v", lane.HeightPx, float64(BarHeight+BarMargin*2))
	}
}

// TestGroupAndLayoutFilter 测试可见性过滤在行分配之前生效
func TestGroupAndLayoutFilter(t *testing.T) {
	groups := []Group{{ID: "pl-1", Name: "产品线A"}}

	a := itemOn("A", "2024-01-01", "2024-01-10")
	a.GroupID = "pl-1"
	a.OwnerID = "owner-hidden"
	b := itemOn("B", "2024-01-05", "2024-01-15")
	b.GroupID = "pl-1"
	b.OwnerID = "owner-shown"

	hidden := func(item Item) bool { return item.OwnerID != "owner-hidden" }
	lanes := GroupAndLayout([]Item{a, b}, groups, testScale(), hidden)

	lane := lanes["pl-1"]
	if len(lane.Items) != 1 {
		t.Fatalf("filtered lane items = %d, want 1", len(lane.Items))
	}
	// 被过滤的A不占行：B应落在第0行，泳道保持单行高度
	if lane.Items[0].Row != 0 {
		t.Errorf("remaining item row = %d, want 0", lane.Items[0].Row)
	}
	if lane.HeightPx != 1*(BarHeight+BarMargin)+BarMargin {
		t.Errorf("filtered lane height = %v, want single-row height", lane.HeightPx)
	}
}
