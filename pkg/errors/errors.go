package errors

import "errors"

// ErrUnknownVariant 未识别的演示数据规模（应在配置层拒绝）
var ErrUnknownVariant = errors.New("未知的演示数据规模，可选值: NONE, SMALL, LARGE")

// ErrStoreUnavailable 存储后端不可用
var ErrStoreUnavailable = errors.New("存储后端不可用")
