package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gonewx/starry/pkg/config"
	"github.com/gonewx/starry/pkg/photo"
	"github.com/gonewx/starry/pkg/render"
)

// 心形预览画布：每格 8×16 逻辑像素
const (
	previewCols  = 60
	previewRows  = 20
	previewCellW = 8
	previewCellH = 16
)

func main() {
	manifestPath := flag.String("manifest", "photos.json", "照片清单路径")
	root := flag.String("root", ".", "本地图片根目录")
	timeout := flag.Duration("timeout", 30*time.Second, "预加载超时")
	width := flag.Float64("width", 1280, "用于布局计算的视口宽度")
	heart := flag.Bool("heart", false, "在终端预览开场心形")
	flag.Parse()

	cfg := config.DefaultSkyConfig()
	mobile := cfg.IsMobile(*width)

	photos, demo := photo.LoadManifest(*manifestPath)
	if demo {
		fmt.Printf("Manifest %s unavailable, using demo photos\n", *manifestPath)
	}

	groups := photo.GroupByYear(photos)
	fmt.Printf("%d photos in %d years\n", len(photos), len(groups))
	for _, g := range groups {
		ring := photo.NewRing(len(g.Photos), mobile)
		fmt.Printf("  %d: %d photos, ring radius %.0f, step %.1f°\n", g.Year, len(g.Photos), ring.Radius, ring.Step)
	}

	if *heart {
		fmt.Println(drawHeart(cfg, len(photos)))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	ctx, cancelTimeout := context.WithTimeout(ctx, *timeout)
	defer cancelTimeout()

	client := &http.Client{Timeout: *timeout}
	loader := photo.NewLoader(*root, client)
	err := photo.Preload(ctx, photos, loader, func(percent int) {
		fmt.Printf("\rPreloading thumbnails: %3d%%", percent)
	})
	fmt.Println()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Preload finished")
}

// drawHeart 在字符画布上画出开场心形中每张照片的位置
// 画布宽度小于分界宽度，按移动端比例绘制
func drawHeart(cfg *config.SkyConfig, n int) string {
	canvas := render.NewCellCanvas(previewCols, previewRows, previewCellW, previewCellH)
	w, h := float64(previewCols*previewCellW), float64(previewRows*previewCellH)

	canvas.FillVerticalGradient(0, 0, w, h,
		config.MustColor(cfg.Background.Top), config.MustColor(cfg.Background.Bottom))

	gold := config.MustColor(cfg.Constellation.LineColor)
	// 心形纵向范围约为 [-12, 17] 个单位，绘制中心上移使其大致居中
	cx, cy := w/2, h/2-2*previewCellH
	for _, p := range photo.HeartLayout(n, cfg.IsMobile(w)) {
		canvas.FillCircle(cx+p.X, cy+p.Y, 2, gold)
	}
	return canvas.String()
}
