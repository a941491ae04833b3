package calendar

import (
	"testing"

	"roadmap/internal/model"
)

func proj(id, pl, end string, createdAt int64) *model.Project {
	return &model.Project{
		ID: id, Name: id, ProductLineID: pl, OwnerID: "owner-1",
		StartDate: "2024-01-01", EndDate: end, Status: "规划",
		CreatedAt: createdAt, UpdatedAt: createdAt,
	}
}

// TestBuildMonthGridShape 测试网格形状和边界
func TestBuildMonthGridShape(t *testing.T) {
	// 2024年6月：6月1日是周六，网格从5月26日（周日）开始
	grid, err := BuildMonthGrid(2024, 6, nil, nil)
	if err != nil {
		t.Fatalf("BuildMonthGrid failed: %v", err)
	}

	if len(grid.Cells)%7 != 0 {
		t.Errorf("cells = %d, want a whole number of weeks", len(grid.Cells))
	}
	if grid.Cells[0].Date.String() != "2024-05-26" {
		t.Errorf("grid start = %s, want 2024-05-26", grid.Cells[0].Date)
	}
	last := grid.Cells[len(grid.Cells)-1]
	if last.Date.String() != "2024-07-06" {
		t.Errorf("grid end = %s, want 2024-07-06", last.Date)
	}

	// 5月的补位格子不属于当前月
	if grid.Cells[0].InMonth {
		t.Error("leading cell from May should not be in-month")
	}
	// 6月1日在第6格（周六）
	if !grid.Cells[6].InMonth || grid.Cells[6].Date.String() != "2024-06-01" {
		t.Errorf("cell[6] = %+v, want 2024-06-01 in-month", grid.Cells[6])
	}
}

// TestBuildMonthGridBucketing 测试按结束日分桶和月份筛选
func TestBuildMonthGridBucketing(t *testing.T) {
	projects := []*model.Project{
		proj("in-june", "pl-1", "2024-06-15", 2),
		proj("same-day-later", "pl-1", "2024-06-15", 3),
		proj("same-day-earlier", "pl-1", "2024-06-15", 1),
		proj("in-july", "pl-1", "2024-07-01", 4),
	}

	grid, err := BuildMonthGrid(2024, 6, projects, nil)
	if err != nil {
		t.Fatalf("BuildMonthGrid failed: %v", err)
	}

	var cell *Cell
	for i := range grid.Cells {
		if grid.Cells[i].Date.String() == "2024-06-15" {
			cell = &grid.Cells[i]
			break
		}
	}
	if cell == nil {
		t.Fatal("2024-06-15 cell missing")
	}

	// 7月结束的项目不在6月网格中
	if len(cell.ProjectIDs) != 3 {
		t.Fatalf("projects on 06-15 = %d, want 3", len(cell.ProjectIDs))
	}
	// 按创建时间排序
	want := []string{"same-day-earlier", "in-june", "same-day-later"}
	for i, id := range want {
		if cell.ProjectIDs[i] != id {
			t.Errorf("bucket[%d] = %s, want %s", i, cell.ProjectIDs[i], id)
		}
	}
}

// TestBuildMonthGridVisibility 测试产品线可见性过滤
func TestBuildMonthGridVisibility(t *testing.T) {
	projects := []*model.Project{
		proj("visible", "pl-1", "2024-06-10", 1),
		proj("hidden", "pl-2", "2024-06-10", 2),
	}

	grid, err := BuildMonthGrid(2024, 6, projects, map[string]bool{"pl-1": true})
	if err != nil {
		t.Fatalf("BuildMonthGrid failed: %v", err)
	}

	for _, cell := range grid.Cells {
		for _, id := range cell.ProjectIDs {
			if id == "hidden" {
				t.Error("project on hidden product line leaked into the grid")
			}
		}
	}
}
