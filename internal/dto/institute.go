package dto

import "campus-admin/backend/internal/model"

// ── 学院 ──

// CreateInstituteRequest 创建/整体替换学院请求
type CreateInstituteRequest struct {
	Name    *string `json:"name"    binding:"required"`
	Address *string `json:"address" binding:"required"`
}

// UpdateInstituteRequest 部分更新学院请求
type UpdateInstituteRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
}

func (r CreateInstituteRequest) ApplyTo(i *model.Institute) {
	UpdateInstituteRequest(r).ApplyTo(i)
}

func (r UpdateInstituteRequest) ApplyTo(i *model.Institute) {
	assignString(&i.Name, r.Name)
	assignString(&i.Address, r.Address)
}
