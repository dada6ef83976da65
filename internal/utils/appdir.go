package utils

import (
	"os"
	"path/filepath"
	"runtime"
)

const appDirName = "Radiolite"

// GetAppDataDir 获取应用数据目录（跨平台）
// Windows: %APPDATA%\Radiolite
// macOS: ~/Library/Application Support/Radiolite
// Linux: $XDG_CONFIG_HOME/radiolite 或 ~/.config/radiolite
func GetAppDataDir() string {
	homeDir, _ := os.UserHomeDir()

	switch runtime.GOOS {
	case "windows":
		baseDir := os.Getenv("APPDATA")
		if baseDir == "" {
			baseDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		return filepath.Join(baseDir, appDirName)

	case "darwin":
		return filepath.Join(homeDir, "Library", "Application Support", appDirName)

	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "radiolite")
		}
		return filepath.Join(homeDir, ".config", "radiolite")

	default:
		return filepath.Join(homeDir, ".radiolite")
	}
}

// GetLogDir 日志目录
func GetLogDir() string {
	return filepath.Join(GetAppDataDir(), "logs")
}

// GetConfigPath 默认配置文件路径
func GetConfigPath() string {
	return filepath.Join(GetAppDataDir(), "config.yaml")
}

// EnsureAppDirs 创建应用目录
func EnsureAppDirs() error {
	for _, dir := range []string{GetAppDataDir(), GetLogDir()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}
