package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"roadmap/internal/model"
)

// Exporter 路线图Excel导出器
type Exporter struct{}

// NewExporter 创建导出器
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export 导出项目路线图到Excel
// 每个项目一行，产品线和负责人用名称而非ID
func (e *Exporter) Export(projects []*model.Project, productLines []*model.ProductLine, owners []*model.Owner) (*excelize.File, error) {
	f := excelize.NewFile()

	sheetName := "项目路线图"
	f.SetSheetName("Sheet1", sheetName)

	headers := []string{
		"项目名称", "产品线", "负责人", "开始日期", "结束日期", "状态", "是否暂定", "备注",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, h)
	}

	// 设置表头样式
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	f.SetRowStyle(sheetName, 1, 1, headerStyle)

	plNames := make(map[string]string, len(productLines))
	for _, pl := range productLines {
		plNames[pl.ID] = pl.Name
	}
	ownerNames := make(map[string]string, len(owners))
	for _, o := range owners {
		ownerNames[o.ID] = o.Name
	}

	// 写入数据
	for i, p := range projects {
		row := i + 2
		pending := "否"
		if p.IsPending {
			pending = "是"
		}
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), p.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), nameOrID(plNames, p.ProductLineID))
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), nameOrID(ownerNames, p.OwnerID))
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), p.StartDate)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), p.EndDate)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), p.Status)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), pending)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), p.Remarks)
	}

	// 列宽
	f.SetColWidth(sheetName, "A", "A", 30)
	f.SetColWidth(sheetName, "B", "C", 16)
	f.SetColWidth(sheetName, "D", "E", 12)
	f.SetColWidth(sheetName, "H", "H", 40)

	return f, nil
}

func nameOrID(names map[string]string, id string) string {
	if name, ok := names[id]; ok {
		return name
	}
	return id
}
