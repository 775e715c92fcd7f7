//go:build !mobile

package utils

import "os"

// IsMobilePlatform 是否运行在移动端
// 桌面端编译时返回 false，设置 STARRY_MOBILE_EMULATE=1 可在本地模拟移动端
func IsMobilePlatform() bool {
	return os.Getenv("STARRY_MOBILE_EMULATE") == "1"
}
