package model

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// OwnerColorPool 预定义颜色池（20种高对比度颜色）
// 人员数超出颜色池时用 GenerateHSLColor 动态生成
var OwnerColorPool = []string{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#FFA07A", "#98D8C8",
	"#F7DC6F", "#BB8FCE", "#85C1E2", "#F8B739", "#52B788",
	"#E74C3C", "#3498DB", "#9B59B6", "#1ABC9C", "#F39C12",
	"#E67E22", "#95A5A6", "#34495E", "#16A085", "#27AE60",
}

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Owner 项目负责人
type Owner struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	Visible   bool   `json:"visible"` // 隐藏的负责人，其项目不参与时间轴布局
	CreatedAt int64  `json:"createdAt"`
}

// NewOwnerID 生成人员ID
func NewOwnerID() string {
	return fmt.Sprintf("owner-%s", uuid.New().String())
}

// Validate 校验人员数据
func (o *Owner) Validate() error {
	if strings.TrimSpace(o.Name) == "" {
		return errors.New("人员姓名不能为空")
	}
	if len([]rune(o.Name)) > 50 {
		return errors.New("人员姓名长度不能超过50个字符")
	}
	if o.Color != "" && !hexColorPattern.MatchString(o.Color) {
		return errors.New("颜色格式必须是HEX格式（如#FF6B6B）")
	}
	return nil
}

// PickOwnerColor 为第 index 个人员分配颜色
// 优先使用颜色池，超出后按黄金角度分割生成HSL颜色，保证色相均匀分布
func PickOwnerColor(index int) string {
	if index >= 0 && index < len(OwnerColorPool) {
		return OwnerColorPool[index]
	}
	return GenerateHSLColor(index)
}

// GenerateHSLColor 使用黄金比例在色环上取色并转为HEX
func GenerateHSLColor(index int) string {
	const goldenRatio = 0.618033988749895
	hue := math.Mod(float64(index)*goldenRatio, 1.0)
	r, g, b := hslToRGB(hue, 0.7, 0.6)
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// hslToRGB HSL颜色空间转RGB（各分量0-255）
func hslToRGB(h, s, l float64) (int, int, int) {
	if s == 0 {
		v := int(l * 255)
		return v, v, v
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	r := hueToRGB(p, q, h+1.0/3)
	g := hueToRGB(p, q, h)
	b := hueToRGB(p, q, h-1.0/3)
	return int(r * 255), int(g * 255), int(b * 255)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}
