package config

// 窗口布局常量
// 逻辑尺寸与设备像素比无关，实际后备缓冲区尺寸 = 逻辑尺寸 × 受限的设备像素比

const (
	// DefaultWindowWidth 默认窗口宽度（逻辑像素）
	DefaultWindowWidth = 1280

	// DefaultWindowHeight 默认窗口高度（逻辑像素）
	DefaultWindowHeight = 800

	// MinWindowWidth 窗口最小宽度，允许缩小到移动端布局以便调试
	MinWindowWidth = 320

	// MinWindowHeight 窗口最小高度
	MinWindowHeight = 240

	// WindowTitle 窗口标题
	WindowTitle = "Starry Memories"

	// DefaultSkyConfigPath 内嵌默认配置路径
	DefaultSkyConfigPath = "data/sky.yaml"
)
