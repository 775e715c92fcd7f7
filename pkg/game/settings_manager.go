package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/gonewx/starry/pkg/config"
	"github.com/gonewx/starry/pkg/utils"
)

// AppName gdata 存储使用的应用名
const AppName = "starry"

// SkySettings 持久化的用户设置
type SkySettings struct {
	// 显示设置
	Fullscreen bool `yaml:"fullscreen"` // 启动时是否全屏
	ShowStats  bool `yaml:"showStats"`  // 是否显示统计叠加层

	// 窗口尺寸（逻辑像素），退出时记录，下次启动恢复
	WindowWidth  int `yaml:"windowWidth"`
	WindowHeight int `yaml:"windowHeight"`

	// FireworksLaunched 累计点击发射的烟花数
	FireworksLaunched int `yaml:"fireworksLaunched"`
}

// DefaultSettings 返回默认设置
func DefaultSettings() *SkySettings {
	return &SkySettings{
		Fullscreen:   false,
		ShowStats:    false,
		WindowWidth:  config.DefaultWindowWidth,
		WindowHeight: config.DefaultWindowHeight,
	}
}

// SettingsManager 设置管理器
// 负责设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *SkySettings   // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "sky"
)

// OpenStore 打开 gdata 存储
// 失败时返回 nil 和错误，调用方可以继续以降级模式运行
func OpenStore(appName string) (*gdata.Manager, error) {
	if err := utils.EnsureStorageDir(); err != nil {
		return nil, fmt.Errorf("failed to prepare storage dir: %w", err)
	}
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open gdata store: %w", err)
	}
	return manager, nil
}

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 保留给调用方检查，加载失败不会返回错误（使用默认设置）
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[Settings] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或数据不存在，使用默认设置。
// 已保存数据中缺省的字段沿用默认值，过小的窗口尺寸被修正。
//
// 返回：
//   - error: 如果读取或反序列化失败返回错误
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()

	// 降级模式：无法持久化
	if sm.gdataManager == nil {
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.WindowWidth, loaded.WindowHeight = clampWindowSize(loaded.WindowWidth, loaded.WindowHeight)
	if loaded.FireworksLaunched < 0 {
		loaded.FireworksLaunched = 0
	}

	sm.settings = loaded
	log.Printf("[Settings] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[Settings] Settings saved successfully")
	return nil
}

// IsPersistent 是否具备持久化能力（非降级模式）
func (sm *SettingsManager) IsPersistent() bool {
	return sm.gdataManager != nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *SkySettings {
	return sm.settings
}

// SetFullscreen 设置全屏模式
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// SetShowStats 设置统计叠加层开关
func (sm *SettingsManager) SetShowStats(enabled bool) {
	sm.settings.ShowStats = enabled
}

// SetWindowSize 记录窗口尺寸，小于最小尺寸时被修正
func (sm *SettingsManager) SetWindowSize(width, height int) {
	sm.settings.WindowWidth, sm.settings.WindowHeight = clampWindowSize(width, height)
}

// AddFireworksLaunched 累加点击发射的烟花数，负数被忽略
func (sm *SettingsManager) AddFireworksLaunched(n int) {
	if n <= 0 {
		return
	}
	sm.settings.FireworksLaunched += n
}

// clampWindowSize 将窗口尺寸限制在最小尺寸之上
func clampWindowSize(width, height int) (int, int) {
	if width < config.MinWindowWidth {
		width = config.MinWindowWidth
	}
	if height < config.MinWindowHeight {
		height = config.MinWindowHeight
	}
	return width, height
}
