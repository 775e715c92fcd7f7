//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.gonewx.starry -o build/android/starry.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Starry.xcframework -v ./mobile
//
// 移动端不嵌入 data/sky.yaml，embedded 未初始化时使用内置默认配置。
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/gonewx/starry/pkg/app"
)

func init() {
	skyApp, err := app.NewApp(app.Config{Verbose: true})
	if err != nil {
		log.Fatalf("夜空初始化失败: %v", err)
	}

	mobile.SetGame(skyApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
