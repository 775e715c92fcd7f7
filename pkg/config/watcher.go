package config

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultReloadDebounce 连续写入合并窗口
// 编辑器保存文件时常产生多次 Write 事件
const DefaultReloadDebounce = 200 * time.Millisecond

// Watcher 监听夜空配置文件变化并重新加载
//
// 监听的是配置文件所在目录（很多编辑器以“写临时文件再重命名”的方式保存，
// 直接监听文件会在重命名后丢失）。只有通过 Validate 的配置才会被发布。
//
// 发布通道容量为 1，消费方来不及读取时旧配置被新配置替换。
type Watcher struct {
	mu        sync.Mutex
	watcher   *fsnotify.Watcher
	path      string
	debounce  time.Duration
	updates   chan *SkyConfig
	stopCh    chan struct{}
	doneCh    chan struct{}
	running   bool
	closeOnce sync.Once

	pending   bool
	lastEvent time.Time
}

// NewWatcher 创建配置文件监听器
//
// 参数:
//   - path: 被监听的配置文件路径
//
// 返回:
//   - *Watcher: 监听器（尚未启动，需调用 Start）
//   - error: 创建 fsnotify 监听器失败时返回错误
func NewWatcher(path string) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create config watcher: %w", err)
	}

	return &Watcher{
		watcher:  fw,
		path:     filepath.Clean(absPath),
		debounce: DefaultReloadDebounce,
		updates:  make(chan *SkyConfig, 1),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Updates 返回新配置的发布通道
func (w *Watcher) Updates() <-chan *SkyConfig {
	return w.updates
}

// Path 返回被监听的配置文件绝对路径
func (w *Watcher) Path() string {
	return w.path
}

// Start 开始监听，非阻塞
// 重复调用无副作用
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		return fmt.Errorf("failed to watch config dir %s: %w", dir, err)
	}
	log.Printf("[Config] 监听配置文件: %s", w.path)

	go w.run(ctx)
	return nil
}

// Stop 停止监听并等待后台 goroutine 退出
// 未启动或已停止时调用也是安全的
func (w *Watcher) Stop() {
	w.mu.Lock()
	wasRunning := w.running
	w.running = false
	w.mu.Unlock()

	if wasRunning {
		close(w.stopCh)
		<-w.doneCh
	}

	w.closeOnce.Do(func() {
		if err := w.watcher.Close(); err != nil {
			log.Printf("[Config] 关闭配置监听器失败: %v", err)
		}
	})
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	tick := w.debounce / 2
	if tick <= 0 {
		tick = time.Millisecond
	}
	debounceTicker := time.NewTicker(tick)
	defer debounceTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("[Config] 监听错误: %v", err)

		case <-debounceTicker.C:
			if w.pending && time.Since(w.lastEvent) >= w.debounce {
				w.pending = false
				w.reload()
			}
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}
	w.pending = true
	w.lastEvent = time.Now()
}

func (w *Watcher) reload() {
	cfg, err := LoadSkyConfig(w.path)
	if err != nil {
		log.Printf("[Config] 配置重载失败，保留当前配置: %v", err)
		return
	}

	// 丢弃尚未被消费的旧配置
	select {
	case <-w.updates:
	default:
	}
	w.updates <- cfg
	log.Printf("[Config] 配置已重载: %s", w.path)
}
