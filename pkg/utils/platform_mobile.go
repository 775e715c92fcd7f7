//go:build mobile

package utils

// IsMobilePlatform 是否运行在移动端
// 移动端编译时返回 true
func IsMobilePlatform() bool {
	return true
}
