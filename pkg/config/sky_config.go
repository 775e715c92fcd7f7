package config

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// SkyConfig 夜空动画配置
//
// 包含星空、北斗七星、流星、烟花和背景的全部可调参数。
// 所有坐标和长度单位都是逻辑像素（与设备像素比无关）。
//
// 配置文件位置: data/sky.yaml
type SkyConfig struct {
	// Breakpoint 移动端/桌面端分界宽度，宽度小于此值按移动端处理
	Breakpoint float64 `yaml:"breakpoint"`

	// MaxDeviceScale 设备像素比上限，限制高分屏下的填充开销
	MaxDeviceScale float64 `yaml:"maxDeviceScale"`

	Background    BackgroundConfig    `yaml:"background"`
	Stars         StarConfig          `yaml:"stars"`
	Constellation ConstellationConfig `yaml:"constellation"`
	Meteors       MeteorConfig        `yaml:"meteors"`
	Fireworks     FireworkConfig      `yaml:"fireworks"`
}

// BackgroundConfig 背景渐变配置（自上而下）
type BackgroundConfig struct {
	Top    string `yaml:"top"`
	Bottom string `yaml:"bottom"`
}

// StarConfig 背景星星配置
type StarConfig struct {
	// MobileCount 移动端星星数量
	MobileCount int `yaml:"mobileCount"`

	// DesktopCount 桌面端星星数量
	DesktopCount int `yaml:"desktopCount"`

	// Radius 星星半径范围
	Radius Range `yaml:"radius"`

	// TwinkleSpeed 闪烁速度范围（弧度/帧）
	TwinkleSpeed Range `yaml:"twinkleSpeed"`
}

// ConstellationConfig 北斗七星配置
type ConstellationConfig struct {
	// Points 归一化坐标（相对视口宽高的比例）
	Points []Point `yaml:"points"`

	// MobileOffsetX 移动端横向偏移（视口宽度比例），竖屏时整体右移
	MobileOffsetX float64 `yaml:"mobileOffsetX"`

	// SwaySpeed 摇摆角速度（弧度/帧）
	SwaySpeed float64 `yaml:"swaySpeed"`
	// SwayX 横向摇摆幅度（像素）
	SwayX float64 `yaml:"swayX"`
	// SwayY 纵向摇摆幅度（像素）
	SwayY float64 `yaml:"swayY"`

	// BlinkSpeed 闪烁角速度（弧度/帧）
	BlinkSpeed float64 `yaml:"blinkSpeed"`

	LineColor  string  `yaml:"lineColor"`
	LineAlpha  float64 `yaml:"lineAlpha"`
	LineWidth  float64 `yaml:"lineWidth"`
	GlowColor  string  `yaml:"glowColor"`
	GlowRadius float64 `yaml:"glowRadius"`
	CoreColor  string  `yaml:"coreColor"`
	CoreRadius float64 `yaml:"coreRadius"`
}

// MeteorConfig 流星配置
type MeteorConfig struct {
	// MaxActive 同时存在的流星上限
	MaxActive int `yaml:"maxActive"`

	// SpawnChance 每帧生成概率
	SpawnChance float64 `yaml:"spawnChance"`

	// SpawnY 生成位置的 Y 坐标（负值表示在视口上方）
	SpawnY float64 `yaml:"spawnY"`

	VelocityX Range `yaml:"velocityX"`
	VelocityY Range `yaml:"velocityY"`
	Length    Range `yaml:"length"`
	Thickness Range `yaml:"thickness"`

	// Fade 每帧透明度衰减
	Fade float64 `yaml:"fade"`

	// Margin 越界判定余量（像素）：y > 高度+Margin 或 x < -Margin 时移除
	Margin float64 `yaml:"margin"`
}

// FireworkConfig 烟花配置
type FireworkConfig struct {
	// SpawnChance 每帧自动发射概率
	SpawnChance float64 `yaml:"spawnChance"`

	// Ease 上升阶段每帧向目标逼近的比例
	Ease float64 `yaml:"ease"`

	// ExplodeThreshold 与目标的纵向距离小于此值时爆炸（像素）
	ExplodeThreshold float64 `yaml:"explodeThreshold"`

	// TargetHeight 目标高度范围（视口高度比例）
	TargetHeight Range `yaml:"targetHeight"`

	// ParticleCount 爆炸粒子数
	ParticleCount int `yaml:"particleCount"`

	// ParticleSpeed 粒子初速度范围（像素/帧）
	ParticleSpeed Range `yaml:"particleSpeed"`

	// Gravity 粒子每帧纵向加速度
	Gravity float64 `yaml:"gravity"`

	// Fade 粒子每帧透明度衰减
	Fade float64 `yaml:"fade"`

	// Hue 色相范围（度），默认为暖色
	Hue        Range   `yaml:"hue"`
	Saturation float64 `yaml:"saturation"`
	Lightness  float64 `yaml:"lightness"`

	HeadRadius     float64 `yaml:"headRadius"`
	ParticleRadius float64 `yaml:"particleRadius"`
}

// Range 数值范围 [Min, Max)
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// At 按比例 t ∈ [0, 1) 取范围内的值
func (r Range) At(t float64) float64 {
	return r.Min + (r.Max-r.Min)*t
}

// Rand 返回 [Min, Max) 内均匀分布的随机数
func (r Range) Rand(rng *rand.Rand) float64 {
	return r.At(rng.Float64())
}

// Point 二维坐标
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// DefaultSkyConfig 返回默认配置
func DefaultSkyConfig() *SkyConfig {
	return &SkyConfig{
		Breakpoint:     768,
		MaxDeviceScale: 2.0,
		Background: BackgroundConfig{
			Top:    "#020617",
			Bottom: "#1e1b4b",
		},
		Stars: StarConfig{
			MobileCount:  100,
			DesktopCount: 250,
			Radius:       Range{Min: 0.5, Max: 2.0},
			TwinkleSpeed: Range{Min: 0.005, Max: 0.025},
		},
		Constellation: ConstellationConfig{
			// 北斗七星：天枢、天璇、天玑、天权、玉衡、开阳、摇光
			Points: []Point{
				{X: 0.65, Y: 0.15},
				{X: 0.58, Y: 0.18},
				{X: 0.54, Y: 0.25},
				{X: 0.48, Y: 0.23},
				{X: 0.42, Y: 0.28},
				{X: 0.36, Y: 0.26},
				{X: 0.28, Y: 0.20},
			},
			MobileOffsetX: 0.1,
			SwaySpeed:     0.005,
			SwayX:         5,
			SwayY:         2,
			BlinkSpeed:    0.05,
			LineColor:     "#ffd700",
			LineAlpha:     0.2,
			LineWidth:     1,
			GlowColor:     "#ffd700",
			GlowRadius:    10,
			CoreColor:     "#fffff0",
			CoreRadius:    3,
		},
		Meteors: MeteorConfig{
			MaxActive:   3,
			SpawnChance: 0.01,
			SpawnY:      -50,
			VelocityX:   Range{Min: -6, Max: -3},
			VelocityY:   Range{Min: 3, Max: 6},
			Length:      Range{Min: 50, Max: 150},
			Thickness:   Range{Min: 0.5, Max: 2.0},
			Fade:        0.02,
			Margin:      200,
		},
		Fireworks: FireworkConfig{
			SpawnChance:      0.01,
			Ease:             0.1,
			ExplodeThreshold: 10,
			TargetHeight:     Range{Min: 0.2, Max: 0.5},
			ParticleCount:    40,
			ParticleSpeed:    Range{Min: 1, Max: 4},
			Gravity:          0.05,
			Fade:             0.02,
			Hue:              Range{Min: 20, Max: 70},
			Saturation:       1.0,
			Lightness:        0.7,
			HeadRadius:       2,
			ParticleRadius:   1.5,
		},
	}
}

// LoadSkyConfig 加载夜空配置
//
// 从指定路径加载 YAML 格式的配置文件。文件中缺省的字段沿用默认值。
//
// 参数:
//   - path: 配置文件路径（如 "data/sky.yaml"）
//
// 返回:
//   - *SkyConfig: 加载成功后的配置结构
//   - error: 加载失败时返回错误
func LoadSkyConfig(path string) (*SkyConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sky config: %w", err)
	}
	return ParseSkyConfig(data)
}

// ParseSkyConfig 解析 YAML 数据并验证
func ParseSkyConfig(data []byte) (*SkyConfig, error) {
	cfg := DefaultSkyConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse sky config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sky config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
//
// 检查内容：
//   - 所有范围的 Min 不大于 Max
//   - 概率和透明度位于 [0, 1]
//   - 数量、衰减、阈值为正
//   - 颜色为合法的十六进制字符串
//
// 返回:
//   - error: 验证失败时返回错误，成功返回 nil
func (c *SkyConfig) Validate() error {
	if c.Breakpoint <= 0 {
		return fmt.Errorf("breakpoint must be > 0, got %.1f", c.Breakpoint)
	}
	if c.MaxDeviceScale < 1 {
		return fmt.Errorf("maxDeviceScale must be >= 1, got %.2f", c.MaxDeviceScale)
	}

	ranges := []struct {
		name string
		r    Range
	}{
		{"stars.radius", c.Stars.Radius},
		{"stars.twinkleSpeed", c.Stars.TwinkleSpeed},
		{"meteors.velocityX", c.Meteors.VelocityX},
		{"meteors.velocityY", c.Meteors.VelocityY},
		{"meteors.length", c.Meteors.Length},
		{"meteors.thickness", c.Meteors.Thickness},
		{"fireworks.targetHeight", c.Fireworks.TargetHeight},
		{"fireworks.particleSpeed", c.Fireworks.ParticleSpeed},
		{"fireworks.hue", c.Fireworks.Hue},
	}
	for _, item := range ranges {
		if item.r.Min > item.r.Max {
			return fmt.Errorf("%s range invalid: min(%.3f) > max(%.3f)", item.name, item.r.Min, item.r.Max)
		}
	}

	if c.Stars.MobileCount < 0 || c.Stars.DesktopCount < 0 {
		return fmt.Errorf("star counts must be >= 0, got mobile=%d desktop=%d",
			c.Stars.MobileCount, c.Stars.DesktopCount)
	}
	if c.Stars.Radius.Min <= 0 {
		return fmt.Errorf("stars.radius min must be > 0, got %.3f", c.Stars.Radius.Min)
	}

	if len(c.Constellation.Points) == 0 {
		return fmt.Errorf("constellation.points must not be empty")
	}

	probabilities := []struct {
		name string
		v    float64
	}{
		{"meteors.spawnChance", c.Meteors.SpawnChance},
		{"fireworks.spawnChance", c.Fireworks.SpawnChance},
		{"constellation.lineAlpha", c.Constellation.LineAlpha},
		{"fireworks.saturation", c.Fireworks.Saturation},
		{"fireworks.lightness", c.Fireworks.Lightness},
	}
	for _, item := range probabilities {
		if item.v < 0 || item.v > 1 {
			return fmt.Errorf("%s must be within [0, 1], got %.3f", item.name, item.v)
		}
	}

	if c.Meteors.MaxActive < 0 {
		return fmt.Errorf("meteors.maxActive must be >= 0, got %d", c.Meteors.MaxActive)
	}
	if c.Meteors.Fade <= 0 {
		return fmt.Errorf("meteors.fade must be > 0, got %.3f", c.Meteors.Fade)
	}
	if c.Fireworks.Fade <= 0 {
		return fmt.Errorf("fireworks.fade must be > 0, got %.3f", c.Fireworks.Fade)
	}
	if c.Fireworks.Ease <= 0 || c.Fireworks.Ease > 1 {
		return fmt.Errorf("fireworks.ease must be within (0, 1], got %.3f", c.Fireworks.Ease)
	}
	if c.Fireworks.ExplodeThreshold <= 0 {
		return fmt.Errorf("fireworks.explodeThreshold must be > 0, got %.1f", c.Fireworks.ExplodeThreshold)
	}
	if c.Fireworks.ParticleCount <= 0 {
		return fmt.Errorf("fireworks.particleCount must be > 0, got %d", c.Fireworks.ParticleCount)
	}

	hexColors := []struct {
		name string
		v    string
	}{
		{"background.top", c.Background.Top},
		{"background.bottom", c.Background.Bottom},
		{"constellation.lineColor", c.Constellation.LineColor},
		{"constellation.glowColor", c.Constellation.GlowColor},
		{"constellation.coreColor", c.Constellation.CoreColor},
	}
	for _, item := range hexColors {
		if _, err := colorful.Hex(item.v); err != nil {
			return fmt.Errorf("%s is not a hex color: %q", item.name, item.v)
		}
	}

	return nil
}

// StarCount 根据视口宽度返回星星数量
// 宽度小于分界值时使用移动端数量
func (c *SkyConfig) StarCount(width float64) int {
	if c.IsMobile(width) {
		return c.Stars.MobileCount
	}
	return c.Stars.DesktopCount
}

// IsMobile 判断视口宽度是否属于移动端布局
func (c *SkyConfig) IsMobile(width float64) bool {
	return width < c.Breakpoint
}

// ClampDeviceScale 将设备像素比上限限制为 MaxDeviceScale
// 小于 1 的比例原样保留，非正值（平台尚未报告）按 1 处理
func (c *SkyConfig) ClampDeviceScale(scale float64) float64 {
	if scale <= 0 {
		return 1
	}
	if scale > c.MaxDeviceScale {
		return c.MaxDeviceScale
	}
	return scale
}

// MustColor 将已验证的十六进制颜色转换为 color.NRGBA
// 非法颜色返回不透明白色（Validate 之后不会发生）
func MustColor(hex string) color.NRGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}
