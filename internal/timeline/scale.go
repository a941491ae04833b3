package timeline

import "errors"

// DensityKind 像素密度的计算方式
type DensityKind string

const (
	// DensityFixed 固定密度：每月固定像素数，视口不影响比例
	DensityFixed DensityKind = "fixed"
	// DensityFitViewport 适配视口：由视口宽度和可见月份数推算密度
	DensityFitViewport DensityKind = "fit"
)

// DensityInput 像素密度输入
// 两种模式二选一：fixed 使用 PixelsPerMonth，fit 使用 ViewportWidthPx + VisibleMonths
type DensityInput struct {
	Kind            DensityKind `json:"kind"`
	PixelsPerMonth  float64     `json:"pixelsPerMonth"`
	ViewportWidthPx float64     `json:"viewportWidthPx"`
	VisibleMonths   int         `json:"visibleMonths"`
}

// FixedDensity 固定密度输入
func FixedDensity(pixelsPerMonth float64) DensityInput {
	return DensityInput{Kind: DensityFixed, PixelsPerMonth: pixelsPerMonth}
}

// FitViewportDensity 适配视口密度输入
func FitViewportDensity(viewportWidthPx float64, visibleMonths int) DensityInput {
	return DensityInput{Kind: DensityFitViewport, ViewportWidthPx: viewportWidthPx, VisibleMonths: visibleMonths}
}

// ErrViewportNotReady 视口宽度为0时延迟解析
// 不是失败：调用方应保留上一次的 Scale，等待非零宽度后重算
var ErrViewportNotReady = errors.New("视口宽度为0，延迟计算时间轴比例")

// Scale 解析后的时间轴渲染参数
// 纯输入的派生值，不持久化；输入相同则输出逐位相同
type Scale struct {
	WindowStart  Date    `json:"windowStart"`
	WindowEnd    Date    `json:"windowEnd"`
	TotalDays    int     `json:"totalDays"`
	PixelsPerDay float64 `json:"pixelsPerDay"`
	TotalWidthPx float64 `json:"totalWidthPx"`
}

// ClampVisibleMonths 将可见月份数限制在 [MinVisibleMonths, MaxVisibleMonths]
func ClampVisibleMonths(months int) int {
	if months < MinVisibleMonths {
		return MinVisibleMonths
	}
	if months > MaxVisibleMonths {
		return MaxVisibleMonths
	}
	return months
}

// ResolveScale 计算时间轴渲染参数
// 窗口边界对齐到月边界，密度按所选模式推算：
//   - fixed: pixelsPerMonth / 30
//   - fit:   viewportWidthPx / (visibleMonths * 30)
//
// 视口宽度为0时返回 ErrViewportNotReady，调用方保留旧参数
func ResolveScale(window TimeWindow, density DensityInput, now Date) (Scale, error) {
	start, end, err := window.Bounds(now)
	if err != nil {
		return Scale{}, err
	}

	var pixelsPerDay float64
	switch density.Kind {
	case DensityFitViewport:
		if density.ViewportWidthPx == 0 {
			return Scale{}, ErrViewportNotReady
		}
		months := ClampVisibleMonths(density.VisibleMonths)
		pixelsPerDay = density.ViewportWidthPx / (float64(months) * AvgDaysPerMonth)
	default:
		ppm := density.PixelsPerMonth
		if ppm <= 0 {
			ppm = DefaultPixelsPerMonth
		}
		pixelsPerDay = ppm / AvgDaysPerMonth
	}

	totalDays := DaysBetween(start, end)
	return Scale{
		WindowStart:  start,
		WindowEnd:    end,
		TotalDays:    totalDays,
		PixelsPerDay: pixelsPerDay,
		TotalWidthPx: float64(totalDays) * pixelsPerDay,
	}, nil
}

// BarPosition 项目块在时间轴上的位置和尺寸
type BarPosition struct {
	LeftPx  float64 `json:"leftPx"`
	WidthPx float64 `json:"widthPx"`
}

// ProjectRange 将日期区间投影为像素位置
// 偏移 = 起始日距窗口起点的天数 × 每天像素数（早于窗口起点时为负，由调用方裁剪）；
// 宽度 = (天数差 + 1) × 每天像素数，+1 使区间包含结束日，单日项目宽度为1天
func ProjectRange(start, end Date, scale Scale) BarPosition {
	offset := float64(DaysBetween(scale.WindowStart, start)) * scale.PixelsPerDay
	duration := DaysBetween(start, end) + 1
	return BarPosition{
		LeftPx:  offset,
		WidthPx: float64(duration) * scale.PixelsPerDay,
	}
}
