package dto

import "campus-admin/backend/internal/model"

// ── 楼栋 ──

// CreateBuildingRequest 创建/整体替换楼栋请求
type CreateBuildingRequest struct {
	Name    *string `json:"name"    binding:"required"`
	Address *string `json:"address" binding:"required"`
}

// UpdateBuildingRequest 部分更新楼栋请求
type UpdateBuildingRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
}

func (r CreateBuildingRequest) ApplyTo(b *model.Building) {
	UpdateBuildingRequest(r).ApplyTo(b)
}

func (r UpdateBuildingRequest) ApplyTo(b *model.Building) {
	assignString(&b.Name, r.Name)
	assignString(&b.Address, r.Address)
}
