package util

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// MustParseUint 将路径参数转换为无符号整数，解析失败时返回 0
func MustParseUint(s string) uint {
	id, _ := strconv.ParseUint(s, 10, 32)
	return uint(id)
}

// QueryInt 读取整数查询参数，缺失或非法时返回默认值
func QueryInt(ctx *gin.Context, key string, fallback int) int {
	n, err := strconv.Atoi(ctx.Query(key))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
