// Package photo 提供相册照片清单的加载、按年份分组、缩略图预加载以及开场心形和年份相册环的布局
package photo

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"slices"
	"time"
)

// Photo 一张照片的记录
type Photo struct {
	ID           string `json:"id"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Year         int    `json:"year"`
	Timestamp    int64  `json:"timestamp"` // 拍摄时间（Unix 毫秒）
	Description  string `json:"description,omitempty"`
}

// YearGroup 同一年份的照片，保持清单中的原始顺序
type YearGroup struct {
	Year   int
	Photos []Photo
}

// DemoFirstYear 演示数据中固定包含的最早年份
const DemoFirstYear = 2017

// 演示数据每年的照片数
const demoPhotosPerYear = 5

// LoadManifest 从 JSON 文件加载照片清单
//
// 文件缺失、不可读或格式错误时退回演示数据，demo 返回 true。
func LoadManifest(path string) (photos []Photo, demo bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[Photo] 清单不可用，使用演示数据: %v", err)
		return DemoPhotos(time.Now()), true
	}

	photos, err = ParseManifest(data)
	if err != nil {
		log.Printf("[Photo] 清单解析失败，使用演示数据: %v", err)
		return DemoPhotos(time.Now()), true
	}

	log.Printf("[Photo] 加载 %d 张照片: %s", len(photos), path)
	return photos, false
}

// ParseManifest 解析 JSON 照片数组
func ParseManifest(data []byte) ([]Photo, error) {
	var photos []Photo
	if err := json.Unmarshal(data, &photos); err != nil {
		return nil, fmt.Errorf("failed to parse photo manifest: %w", err)
	}
	return photos, nil
}

// DemoPhotos 生成演示照片
//
// 年份为今年、前一年、前两年和 2017 年，每年 5 张，横竖图交替。
// 图片地址带固定种子，重复加载得到相同的图片。
func DemoPhotos(now time.Time) []Photo {
	current := now.Year()
	years := []int{current, current - 1, current - 2, DemoFirstYear}

	photos := make([]Photo, 0, len(years)*demoPhotosPerYear)
	for _, year := range years {
		for i := 1; i <= demoPhotosPerYear; i++ {
			width, height := 600, 600
			if i%2 == 0 {
				height = 800
			}
			photos = append(photos, Photo{
				ID:           fmt.Sprintf("demo-%d-%d", year, i),
				URL:          fmt.Sprintf("https://picsum.photos/seed/%d_%d/%d/%d", year, i, width, height),
				ThumbnailURL: fmt.Sprintf("https://picsum.photos/seed/%d_%d/300/400", year, i),
				Year:         year,
				Timestamp:    time.Date(year, time.Month(i+1), 15, 0, 0, 0, 0, now.Location()).UnixMilli(),
				Description:  fmt.Sprintf("Demo Memory %d", year),
			})
		}
	}
	return photos
}

// GroupByYear 按年份分组，年份降序，组内保持输入顺序
func GroupByYear(photos []Photo) []YearGroup {
	index := make(map[int]int)
	var groups []YearGroup

	for _, p := range photos {
		i, ok := index[p.Year]
		if !ok {
			i = len(groups)
			index[p.Year] = i
			groups = append(groups, YearGroup{Year: p.Year})
		}
		groups[i].Photos = append(groups[i].Photos, p)
	}

	slices.SortFunc(groups, func(a, b YearGroup) int {
		return b.Year - a.Year
	})
	return groups
}
