package config

// SafeErrorMessage 根据运行模式决定错误信息的暴露程度
// release 模式下返回 fallback，避免向客户端泄露内部错误详情；
// debug 模式（或配置未初始化的开发场景）返回原始错误信息便于排查
func SafeErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if GlobalConfig != nil && GlobalConfig.Server.Mode == "release" {
		return fallback
	}
	return err.Error()
}
