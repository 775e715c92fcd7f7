package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/starry/pkg/app"
	"github.com/gonewx/starry/pkg/config"
	"github.com/gonewx/starry/pkg/embedded"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	configPath := flag.String("config", "", "夜空配置文件路径（为空使用内嵌配置，指定后支持热加载）")
	fullscreen := flag.Bool("fullscreen", false, "以全屏启动")
	seed := flag.Uint64("seed", 0, "随机种子（0 表示按时间随机）")
	flag.Parse()

	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Fullscreen: *fullscreen,
		Seed:       *seed,
	})
	if err != nil {
		// NewApp 在非 verbose 模式下会关闭日志输出
		log.SetOutput(os.Stderr)
		log.Fatalf("初始化失败: %v", err)
	}

	// 收到终止信号时在下一帧退出
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signals
		gameApp.Stop()
	}()

	settings := gameApp.Settings().GetSettings()
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowSize(settings.WindowWidth, settings.WindowHeight)
	ebiten.SetWindowSizeLimits(config.MinWindowWidth, config.MinWindowHeight, -1, -1)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(gameApp.Fullscreen())
	ebiten.SetWindowClosingHandled(true)
	// 每次显示刷新执行一次 Update，等价于逐帧动画回调
	ebiten.SetTPS(ebiten.SyncWithFPS)

	runErr := ebiten.RunGame(gameApp)
	signal.Stop(signals)

	if err := gameApp.Close(); err != nil {
		log.Printf("[Main] %v", err)
	}
	if runErr != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(runErr)
	}
}
