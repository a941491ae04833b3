package timeline

import (
	"errors"
	"fmt"
)

// RangeType 时间范围快捷选项类型
type RangeType string

const (
	Range3Months RangeType = "3months"
	Range6Months RangeType = "6months"
	Range1Year   RangeType = "1year"
	RangeCustom  RangeType = "custom"
)

// Valid 范围类型是否合法
func (t RangeType) Valid() bool {
	switch t {
	case Range3Months, Range6Months, Range1Year, RangeCustom:
		return true
	}
	return false
}

// presetMonths 快捷选项对应的总月数
func (t RangeType) presetMonths() int {
	switch t {
	case Range3Months:
		return 3
	case Range6Months:
		return 6
	default:
		return 12
	}
}

// CustomRange 自定义时间范围（字面存储的绝对日期）
type CustomRange struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// TimeWindow 时间窗口选择
// 快捷选项相对"当前时间"在解析时计算，不持久化绝对日期；
// custom 类型持久化字面日期
type TimeWindow struct {
	Type        RangeType    `json:"type"`
	CustomRange *CustomRange `json:"customRange"`
}

// DefaultWindow 默认时间窗口（最近一年）
func DefaultWindow() TimeWindow {
	return TimeWindow{Type: Range1Year}
}

// 自定义范围校验错误
var (
	ErrRangeOrder   = errors.New("开始日期必须早于结束日期")
	ErrRangeTooFine = errors.New("时间范围至少为1个月")
)

// WarnRangeTooWide 跨度超过5年时的提示（不阻止操作）
const WarnRangeTooWide = "时间范围超过5年，时间轴可能显示过于密集"

// RangeValidation 自定义范围的校验结果
type RangeValidation struct {
	Valid   bool
	Err     error  // Valid 为 false 时的原因
	Warning string // Valid 为 true 时可能附带的提示
}

// ValidateDateRange 校验自定义时间范围
// 规则：开始必须严格早于结束；跨度至少1个月；超过5年给出警告但不拒绝
func ValidateDateRange(startDate, endDate string) RangeValidation {
	start, err := ParseDate(startDate)
	if err != nil {
		return RangeValidation{Err: err}
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return RangeValidation{Err: err}
	}

	if !start.Before(end) {
		return RangeValidation{Err: ErrRangeOrder}
	}
	// 至少1个月：结束日期不能早于开始日期+1个月
	if end.Before(start.AddMonths(1)) {
		return RangeValidation{Err: ErrRangeTooFine}
	}

	v := RangeValidation{Valid: true}
	if end.After(start.AddMonths(5 * 12)) {
		v.Warning = WarnRangeTooWide
	}
	return v
}

// Validate 校验时间窗口本身的结构
func (w TimeWindow) Validate() error {
	if !w.Type.Valid() {
		return fmt.Errorf("未知的时间范围类型: %s", w.Type)
	}
	if w.Type == RangeCustom {
		if w.CustomRange == nil {
			return errors.New("自定义范围缺少日期")
		}
		if v := ValidateDateRange(w.CustomRange.StartDate, w.CustomRange.EndDate); !v.Valid {
			return v.Err
		}
	}
	return nil
}

// Bounds 解析时间窗口的起止边界（均对齐到月边界）
// 快捷选项：总月数 N，当前月之前 N/2 个月，之后 N-N/2-1 个月（含当前月共 N 个月）；
// 例如最近一年为当前月前6个月到后5个月。
// custom：开始取所在月第一天，结束取所在月最后一天。
func (w TimeWindow) Bounds(now Date) (start, end Date, err error) {
	if w.Type == RangeCustom {
		if w.CustomRange == nil {
			return Date{}, Date{}, errors.New("自定义范围缺少日期")
		}
		start, err = ParseDate(w.CustomRange.StartDate)
		if err != nil {
			return Date{}, Date{}, err
		}
		end, err = ParseDate(w.CustomRange.EndDate)
		if err != nil {
			return Date{}, Date{}, err
		}
		return start.StartOfMonth(), end.EndOfMonth(), nil
	}

	months := w.Type.presetMonths()
	before := months / 2
	after := months - before - 1
	anchor := now.StartOfMonth()
	start = anchor.AddMonths(-before)
	end = anchor.AddMonths(after).EndOfMonth()
	return start, end, nil
}
