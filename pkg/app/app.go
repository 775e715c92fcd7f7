// Package app 提供夜空动画应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"math/rand/v2"
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/starry/pkg/config"
	"github.com/gonewx/starry/pkg/embedded"
	"github.com/gonewx/starry/pkg/game"
	"github.com/gonewx/starry/pkg/scenes"
	"github.com/gonewx/starry/pkg/sky"
	"github.com/gonewx/starry/pkg/utils"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 夜空配置文件路径，为空则使用内嵌的 data/sky.yaml
	// 指定文件时会监听其变化并热加载
	ConfigPath string
	// Fullscreen 本次以全屏启动，不改变已保存的设置
	Fullscreen bool
	// Seed 随机种子，0 表示按时间随机
	Seed uint64
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	scene    *scenes.SkyScene
	sky      *sky.Sky
	settings *game.SettingsManager

	// fullscreen 窗口当前是否全屏
	fullscreen bool

	watcher     *config.Watcher
	cancelWatch context.CancelFunc

	// 当前布局：逻辑尺寸与受限的设备像素比
	logicalWidth  float64
	logicalHeight float64
	scale         float64

	stopped   atomic.Bool
	closeOnce sync.Once
	closeErr  error
}

// NewApp 创建并初始化应用
//
// 使用内嵌配置时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	skyConfig, err := loadSkyConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("夜空配置加载失败: %w", err)
	}

	s, err := sky.New(skyConfig, newRand(cfg.Seed))
	if err != nil {
		return nil, fmt.Errorf("夜空初始化失败: %w", err)
	}

	scene, err := scenes.NewSkyScene(s)
	if err != nil {
		return nil, fmt.Errorf("场景初始化失败: %w", err)
	}

	store, err := game.OpenStore(game.AppName)
	if err != nil {
		log.Printf("[App] 设置存储不可用，以降级模式运行: %v", err)
	}
	settings, _ := game.NewSettingsManager(store)
	scene.SetShowStats(settings.GetSettings().ShowStats)

	a := &App{
		scene:      scene,
		sky:        s,
		settings:   settings,
		fullscreen: cfg.Fullscreen || settings.GetSettings().Fullscreen,
		scale:      1,
	}

	if cfg.ConfigPath != "" {
		a.startWatcher(cfg.ConfigPath)
	}

	log.Printf("[App] 初始化完成: config=%q, seed=%d", cfg.ConfigPath, cfg.Seed)
	return a, nil
}

// loadSkyConfig 加载夜空配置
// path 为空时读取内嵌默认配置，内嵌文件不可用时退回代码内置默认值
func loadSkyConfig(path string) (*config.SkyConfig, error) {
	if path != "" {
		return config.LoadSkyConfig(path)
	}

	data, err := embedded.ReadFile(config.DefaultSkyConfigPath)
	if err != nil {
		if errors.Is(err, embedded.ErrNotInitialized) || errors.Is(err, fs.ErrNotExist) {
			log.Printf("[App] 内嵌配置不可用，使用默认配置: %v", err)
			return config.DefaultSkyConfig(), nil
		}
		return nil, err
	}
	return config.ParseSkyConfig(data)
}

// newRand 按种子创建随机源，0 返回 nil（由 sky 按时间播种）
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// startWatcher 启动配置热加载，失败只记录日志
func (a *App) startWatcher(path string) {
	watcher, err := config.NewWatcher(path)
	if err != nil {
		log.Printf("[App] 配置热加载不可用: %v", err)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	if err := watcher.Start(ctx); err != nil {
		cancel()
		watcher.Stop()
		log.Printf("[App] 配置热加载不可用: %v", err)
		return
	}

	a.watcher = watcher
	a.cancelWatch = cancel
}

// Update 推进一帧
// 每次显示刷新调用一次（TPS 与 FPS 同步）
func (a *App) Update() error {
	if a.stopped.Load() {
		return ebiten.Termination
	}
	if ebiten.IsWindowBeingClosed() {
		a.Stop()
		return ebiten.Termination
	}

	a.applyConfigUpdates()
	a.handleKeys()

	a.scene.Update()
	a.settings.AddFireworksLaunched(a.scene.TakeLaunched())

	if a.stopped.Load() {
		return ebiten.Termination
	}
	return nil
}

// applyConfigUpdates 非阻塞地取出热加载的新配置
func (a *App) applyConfigUpdates() {
	if a.watcher == nil {
		return
	}
	select {
	case cfg := <-a.watcher.Updates():
		if err := a.sky.SetConfig(cfg); err != nil {
			log.Printf("[App] 忽略无效的热加载配置: %v", err)
		}
	default:
	}
}

// handleKeys 处理快捷键
//   - F11: 切换全屏
//   - S: 切换统计叠加层
//   - Escape / Q: 退出
func (a *App) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		a.fullscreen = fullscreen
		a.settings.SetFullscreen(fullscreen)
		log.Printf("[App] 全屏: %v", fullscreen)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		show := !a.scene.ShowStats()
		a.scene.SetShowStats(show)
		a.settings.SetShowStats(show)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		a.Stop()
	}
}

// Draw 绘制当前帧
func (a *App) Draw(screen *ebiten.Image) {
	a.scene.Draw(screen)
}

// Layout 实现 ebiten.Game
// 实现了 LayoutF 时 ebiten 不会调用此方法
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// LayoutF 返回后备缓冲区尺寸
//
// 逻辑尺寸即窗口尺寸（与设备像素比无关），后备缓冲区按受限的设备像素比放大，
// 避免高分屏上的填充开销。尺寸或缩放变化时重新生成星空。
func (a *App) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	scale := 1.0
	if m := ebiten.Monitor(); m != nil {
		scale = m.DeviceScaleFactor()
	}
	scale = a.sky.Config().ClampDeviceScale(scale)

	a.resize(outsideWidth, outsideHeight, scale)
	return outsideWidth * scale, outsideHeight * scale
}

// resize 应用新的布局，尺寸与缩放均未变化时什么都不做
func (a *App) resize(width, height, scale float64) {
	if width == a.logicalWidth && height == a.logicalHeight && scale == a.scale {
		return
	}
	a.logicalWidth, a.logicalHeight, a.scale = width, height, scale
	a.scene.SetScale(scale)
	a.sky.Resize(width, height)
	log.Printf("[App] 布局: %.0fx%.0f @%.2fx", width, height, scale)
}

// Stop 请求停止，下一次 Update 返回 ebiten.Termination
// 可从任意 goroutine 调用
func (a *App) Stop() {
	a.stopped.Store(true)
}

// Stopped 是否已请求停止
func (a *App) Stopped() bool {
	return a.stopped.Load()
}

// Close 释放资源并保存设置，可重复调用
//
// 停止配置监听并等待其 goroutine 退出，记录窗口尺寸，保存设置。
func (a *App) Close() error {
	a.closeOnce.Do(func() {
		a.Stop()

		if a.watcher != nil {
			a.cancelWatch()
			a.watcher.Stop()
		}

		if !utils.IsMobilePlatform() && !a.fullscreen &&
			a.logicalWidth > 0 && a.logicalHeight > 0 {
			a.settings.SetWindowSize(int(a.logicalWidth), int(a.logicalHeight))
		}

		if err := a.settings.Save(); err != nil {
			a.closeErr = fmt.Errorf("设置保存失败: %w", err)
		}
		log.Printf("[App] 已关闭")
	})
	return a.closeErr
}

// Settings 返回设置管理器
// 用于启动时恢复窗口尺寸
func (a *App) Settings() *game.SettingsManager {
	return a.settings
}

// Fullscreen 返回窗口是否应处于全屏
// 启动时为 -fullscreen 参数与已保存设置的合并结果，F11 切换后随之更新
func (a *App) Fullscreen() bool {
	return a.fullscreen
}

// Sky 返回夜空
func (a *App) Sky() *sky.Sky {
	return a.sky
}
