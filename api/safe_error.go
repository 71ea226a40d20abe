package api

import (
	"strings"

	"ledger/config"
)

// SafeErrorMessage 生产环境下不向客户端暴露内部错误详情，避免信息泄露
func SafeErrorMessage(err error, fallback string) string {
	return config.SafeErrorMessage(err, fallback)
}

// isForeignKeyViolation 判断存储层外键约束错误
// 引用了不存在的账户等引用完整性问题按客户端参数错误（400）返回，
// 而不是服务端错误
func isForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	// SQLite: "FOREIGN KEY constraint failed"；MySQL: 错误码 1452
	return strings.Contains(msg, "FOREIGN KEY constraint failed") ||
		strings.Contains(msg, "Error 1452")
}
