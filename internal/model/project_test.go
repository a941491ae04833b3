package model

import (
	"strings"
	"testing"
)

func validProject() *Project {
	return &Project{
		ID:            NewProjectID(),
		Name:          "测试项目",
		ProductLineID: "pl-1",
		OwnerID:       "owner-1",
		StartDate:     "2024-01-01",
		EndDate:       "2024-03-31",
		Status:        "开发",
	}
}

// TestProjectValidate 测试项目校验通过的情况
func TestProjectValidate(t *testing.T) {
	p := validProject()
	if err := p.Validate(); err != nil {
		t.Errorf("valid project rejected: %v", err)
	}

	// 单日项目合法
	p.EndDate = p.StartDate
	if err := p.Validate(); err != nil {
		t.Errorf("single-day project rejected: %v", err)
	}
}

// TestProjectValidateRejects 测试各类非法项目被拒绝
func TestProjectValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Project)
	}{
		{"空名称", func(p *Project) { p.Name = "  " }},
		{"名称过长", func(p *Project) { p.Name = strings.Repeat("长", 201) }},
		{"缺少产品线", func(p *Project) { p.ProductLineID = "" }},
		{"缺少负责人", func(p *Project) { p.OwnerID = "" }},
		{"非法状态", func(p *Project) { p.Status = "完工" }},
		{"日期格式错误", func(p *Project) { p.StartDate = "2024/01/01" }},
		{"结束早于开始", func(p *Project) { p.StartDate = "2024-06-01"; p.EndDate = "2024-01-01" }},
		{"备注过长", func(p *Project) { p.Remarks = strings.Repeat("备", 501) }},
	}

	for _, tc := range cases {
		p := validProject()
		tc.mutate(p)
		if err := p.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

// TestProjectToItem 测试项目转布局条目
func TestProjectToItem(t *testing.T) {
	p := validProject()
	item, err := p.ToItem()
	if err != nil {
		t.Fatalf("ToItem failed: %v", err)
	}
	if item.ID != p.ID || item.GroupID != p.ProductLineID || item.OwnerID != p.OwnerID {
		t.Errorf("item fields not carried over: %+v", item)
	}
	if item.Start.String() != "2024-01-01" || item.End.String() != "2024-03-31" {
		t.Errorf("item range = %s ~ %s", item.Start, item.End)
	}
}

// TestNewProjectID 测试项目ID前缀
func TestNewProjectID(t *testing.T) {
	id := NewProjectID()
	if !strings.HasPrefix(id, "proj-") {
		t.Errorf("project id = %s, want proj- prefix", id)
	}
	if id == NewProjectID() {
		t.Error("ids should be unique")
	}
}
