package timeline

// 时间轴像素比例：固定密度模式下每个月对应的像素数
// 按平均 30 天/月折算，即 5 像素/天
const DefaultPixelsPerMonth = 150.0

// AvgDaysPerMonth 像素密度换算使用的平均月长
const AvgDaysPerMonth = 30.0

// 缩放范围：视口中同时可见的月份数量
const (
	MinVisibleMonths     = 2
	MaxVisibleMonths     = 12
	DefaultVisibleMonths = 4
)

// 项目块尺寸（像素）
const (
	BarHeight = 40
	BarMargin = 8
)
