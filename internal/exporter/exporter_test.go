package exporter

import (
	"testing"

	"roadmap/internal/model"
)

// TestExport 测试路线图导出的内容
func TestExport(t *testing.T) {
	projects := []*model.Project{
		{
			ID: "proj-1", Name: "支付改版", ProductLineID: "pl-1", OwnerID: "owner-1",
			StartDate: "2024-01-01", EndDate: "2024-03-31", Status: "开发", IsPending: true,
			Remarks: "依赖风控系统",
		},
	}
	productLines := []*model.ProductLine{{ID: "pl-1", Name: "支付"}}
	owners := []*model.Owner{{ID: "owner-1", Name: "张三"}}

	f, err := NewExporter().Export(projects, productLines, owners)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	defer f.Close()

	sheet := "项目路线图"
	check := func(cell, want string) {
		t.Helper()
		got, err := f.GetCellValue(sheet, cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s) failed: %v", cell, err)
		}
		if got != want {
			t.Errorf("%s = %q, want %q", cell, got, want)
		}
	}

	check("A1", "项目名称")
	check("A2", "支付改版")
	// 产品线和负责人应显示名称而非ID
	check("B2", "支付")
	check("C2", "张三")
	check("D2", "2024-01-01")
	check("G2", "是")
}

// TestExportUnknownReferences 测试引用缺失时回退为ID
func TestExportUnknownReferences(t *testing.T) {
	projects := []*model.Project{
		{
			ID: "proj-1", Name: "孤儿项目", ProductLineID: "pl-gone", OwnerID: "owner-gone",
			StartDate: "2024-01-01", EndDate: "2024-01-31", Status: "规划",
		},
	}

	f, err := NewExporter().Export(projects, nil, nil)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	defer f.Close()

	got, _ := f.GetCellValue("项目路线图", "B2")
	if got != "pl-gone" {
		t.Errorf("B2 = %q, want raw id fallback", got)
	}
}
