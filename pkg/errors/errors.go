package errors

import "errors"

// ── 通用错误分类（存储层、业务层、传输层共用） ──

var (
	// ErrInvalidInput 请求参数或请求体未通过结构校验
	ErrInvalidInput = errors.New("参数校验失败")

	// ErrNotFound 指定 ID 的记录不存在
	ErrNotFound = errors.New("记录不存在")

	// ErrIntegrityViolation 写入违反外键约束：引用了不存在的上级记录，或删除仍被引用的记录
	ErrIntegrityViolation = errors.New("违反外键约束")
)
