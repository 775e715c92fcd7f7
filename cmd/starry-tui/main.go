// starry-tui 在终端里运行夜空动画
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gonewx/starry/pkg/config"
	"github.com/gonewx/starry/pkg/sky"
)

func main() {
	configPath := flag.String("config", "", "夜空配置文件路径（为空使用默认配置）")
	seed := flag.Uint64("seed", 0, "随机种子（0 表示按时间随机）")
	logFile := flag.String("log", "", "日志文件路径（终端被界面占用，日志只能写入文件）")
	flag.Parse()

	if *logFile != "" {
		f, err := tea.LogToFile(*logFile, "starry")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	cfg := config.DefaultSkyConfig()
	if *configPath != "" {
		loaded, err := config.LoadSkyConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewPCG(*seed, *seed))
	}

	s, err := sky.New(cfg, rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating sky: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(newModel(s), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
