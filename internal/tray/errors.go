package tray

import (
	"errors"
	"fmt"
)

// ErrTrayNotFound 托盘图标未注册（启动顺序错误）
var ErrTrayNotFound = errors.New("Tray icon not found")

// SetFailedError 设置托盘属性失败
type SetFailedError struct {
	Op  string // "title" 或 "tooltip"
	Err error
}

func (e *SetFailedError) Error() string {
	return fmt.Sprintf("Failed to set %s: %v", e.Op, e.Err)
}

func (e *SetFailedError) Unwrap() error {
	return e.Err
}
