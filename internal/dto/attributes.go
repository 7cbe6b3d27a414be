package dto

// Attributes 资源属性集合：将请求中出现的字段合并到记录上，未出现的字段保持不变
//
// 每类资源提供两个实现：
//   - CreateXxxRequest：全部字段必填（用于 POST 与 PUT）
//   - UpdateXxxRequest：全部字段可选（用于 PATCH）
//
// 两者字段完全一致，仅 binding 标签不同，因此可直接做结构体类型转换
type Attributes[T any] interface {
	ApplyTo(record *T)
}

// ListRequest 列表分页参数
// skip 为偏移量，take 为返回条数；均可省略，不设上限
type ListRequest struct {
	Skip *int `form:"skip" binding:"omitempty,min=0"`
	Take *int `form:"take" binding:"omitempty,min=0"`
}

func assignString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func assignInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}
