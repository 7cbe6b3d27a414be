package dto

import "campus-admin/backend/internal/model"

// ── 教研室 ──

// CreateDepartmentRequest 创建/整体替换教研室请求
type CreateDepartmentRequest struct {
	Name        *string `json:"name"        binding:"required"`
	InstituteID *string `json:"instituteId" binding:"required,uuid"`
}

// UpdateDepartmentRequest 部分更新教研室请求
type UpdateDepartmentRequest struct {
	Name        *string `json:"name"`
	InstituteID *string `json:"instituteId" binding:"omitempty,uuid"`
}

func (r CreateDepartmentRequest) ApplyTo(d *model.Department) {
	UpdateDepartmentRequest(r).ApplyTo(d)
}

func (r UpdateDepartmentRequest) ApplyTo(d *model.Department) {
	assignString(&d.Name, r.Name)
	assignString(&d.InstituteID, r.InstituteID)
}
