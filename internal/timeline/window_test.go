package timeline

import (
	"errors"
	"testing"
	"time"
)

// TestValidateDateRangeTooShort 测试跨度不足1个月的范围被拒绝
func TestValidateDateRangeTooShort(t *testing.T) {
	v := ValidateDateRange("2024-02-01", "2024-02-15")
	if v.Valid {
		t.Error("span shorter than 1 month should be invalid")
	}
	if !errors.Is(v.Err, ErrRangeTooFine) {
		t.Errorf("err = %v, want ErrRangeTooFine", v.Err)
	}
}

// TestValidateDateRangeReversed 测试开始晚于结束的范围被拒绝
func TestValidateDateRangeReversed(t *testing.T) {
	v := ValidateDateRange("2024-06-01", "2024-01-01")
	if v.Valid {
		t.Error("reversed range should be invalid")
	}
	if !errors.Is(v.Err, ErrRangeOrder) {
		t.Errorf("err = %v, want ErrRangeOrder", v.Err)
	}

	// 相等也不允许
	if v := ValidateDateRange("2024-06-01", "2024-06-01"); v.Valid {
		t.Error("equal start/end should be invalid")
	}
}

// TestValidateDateRangeTooWide 测试超过5年的范围有效但带警告
func TestValidateDateRangeTooWide(t *testing.T) {
	v := ValidateDateRange("2024-01-01", "2030-06-01")
	if !v.Valid {
		t.Fatalf("wide range should still be valid, got err: %v", v.Err)
	}
	if v.Warning == "" {
		t.Error("range over 5 years should carry a warning")
	}

	// 正常范围没有警告
	v = ValidateDateRange("2024-01-01", "2024-12-31")
	if !v.Valid || v.Warning != "" {
		t.Errorf("normal range: valid=%v warning=%q", v.Valid, v.Warning)
	}
}

// TestValidateDateRangeBadFormat 测试非法日期格式被拒绝
func TestValidateDateRangeBadFormat(t *testing.T) {
	if v := ValidateDateRange("2024-13-01", "2024-12-31"); v.Valid {
		t.Error("month 13 should be invalid")
	}
	if v := ValidateDateRange("not-a-date", "2024-12-31"); v.Valid {
		t.Error("garbage date should be invalid")
	}
}

// TestPresetBounds 测试快捷选项的窗口边界
func TestPresetBounds(t *testing.T) {
	now := NewDate(2024, time.June, 15)

	// 最近一年：当前月前6个月到后5个月
	start, end, err := TimeWindow{Type: Range1Year}.Bounds(now)
	if err != nil {
		t.Fatalf("Bounds failed: %v", err)
	}
	if start.String() != "2023-12-01" {
		t.Errorf("1year start = %s, want 2023-12-01", start)
	}
	if end.String() != "2024-11-30" {
		t.Errorf("1year end = %s, want 2024-11-30", end)
	}

	// 最近半年：前3个月到后2个月
	start, end, _ = TimeWindow{Type: Range6Months}.Bounds(now)
	if start.String() != "2024-03-01" || end.String() != "2024-08-31" {
		t.Errorf("6months bounds = %s ~ %s, want 2024-03-01 ~ 2024-08-31", start, end)
	}

	// 最近3个月：前1个月到后1个月
	start, end, _ = TimeWindow{Type: Range3Months}.Bounds(now)
	if start.String() != "2024-05-01" || end.String() != "2024-07-31" {
		t.Errorf("3months bounds = %s ~ %s, want 2024-05-01 ~ 2024-07-31", start, end)
	}
}

// TestCustomBounds 测试自定义范围的窗口边界对齐到月边界
func TestCustomBounds(t *testing.T) {
	w := TimeWindow{
		Type:        RangeCustom,
		CustomRange: &CustomRange{StartDate: "2024-03-15", EndDate: "2024-08-10"},
	}
	start, end, err := w.Bounds(NewDate(2024, time.June, 1))
	if err != nil {
		t.Fatalf("Bounds failed: %v", err)
	}
	if start.String() != "2024-03-01" {
		t.Errorf("custom start = %s, want 2024-03-01 (floored to month start)", start)
	}
	if end.String() != "2024-08-31" {
		t.Errorf("custom end = %s, want 2024-08-31 (ceiled to month end)", end)
	}
}

// TestWindowValidate 测试时间窗口结构校验
func TestWindowValidate(t *testing.T) {
	if err := (TimeWindow{Type: "decade"}).Validate(); err == nil {
		t.Error("unknown range type should fail validation")
	}
	if err := (TimeWindow{Type: RangeCustom}).Validate(); err == nil {
		t.Error("custom window without dates should fail validation")
	}
	if err := DefaultWindow().Validate(); err != nil {
		t.Errorf("default window should be valid, got: %v", err)
	}
}
