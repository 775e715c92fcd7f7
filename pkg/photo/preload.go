package photo

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"
)

const (
	// PreloadLimit 只预加载清单前若干张缩略图
	PreloadLimit = 15

	// DefaultConcurrency 同时进行的加载数
	DefaultConcurrency = 4
)

// LoaderFunc 加载并解码一张图片
type LoaderFunc func(ctx context.Context, url string) error

// Preload 预加载前 PreloadLimit 张照片的缩略图
//
// 加载失败的图片同样计为完成，保证进度能够走到 100。
// onProgress 收到整数百分比，调用是串行且单调不减的；列表为空时立即报告 100。
// 只有 ctx 被取消时返回错误。
func Preload(ctx context.Context, photos []Photo, load LoaderFunc, onProgress func(percent int)) error {
	if onProgress == nil {
		onProgress = func(int) {}
	}

	toLoad := photos[:min(len(photos), PreloadLimit)]
	total := len(toLoad)
	if total == 0 {
		onProgress(100)
		return nil
	}

	var (
		mu     sync.Mutex
		loaded int
	)

	var g errgroup.Group
	g.SetLimit(DefaultConcurrency)
	for _, p := range toLoad {
		g.Go(func() error {
			if err := load(ctx, p.ThumbnailURL); err != nil {
				log.Printf("[Photo] 缩略图加载失败 %s: %v", p.ID, err)
			}

			mu.Lock()
			loaded++
			onProgress(int(math.Round(float64(loaded) / float64(total) * 100)))
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return ctx.Err()
}

// NewLoader 返回默认加载器
//
// http(s) 地址通过 client 下载，其余地址视为相对 root 的本地文件。
// 下载或读取后完整解码（支持 JPEG、PNG、GIF、WebP）。
func NewLoader(root string, client *http.Client) LoaderFunc {
	if client == nil {
		client = http.DefaultClient
	}
	return func(ctx context.Context, url string) error {
		if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
			return fetchImage(ctx, client, url)
		}
		return openImage(filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(url, "/"))))
	}
}

func fetchImage(ctx context.Context, client *http.Client, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to fetch %s: status %d", url, resp.StatusCode)
	}
	return decodeImage(resp.Body)
}

func openImage(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()
	return decodeImage(f)
}

func decodeImage(r io.Reader) error {
	if _, _, err := image.Decode(r); err != nil {
		return fmt.Errorf("failed to decode image: %w", err)
	}
	return nil
}
