package dto

import "campus-admin/backend/internal/model"

// ── 宿舍 ──

// CreateDormitoryRequest 创建/整体替换宿舍请求
// capacity 对应 INTEGER 列，取值限制在 32 位范围内
type CreateDormitoryRequest struct {
	Name       *string `json:"name"       binding:"required"`
	Capacity   *int    `json:"capacity"   binding:"required,min=-2147483648,max=2147483647"`
	BuildingID *string `json:"buildingId" binding:"required,uuid"`
}

// UpdateDormitoryRequest 部分更新宿舍请求
type UpdateDormitoryRequest struct {
	Name       *string `json:"name"`
	Capacity   *int    `json:"capacity"   binding:"omitempty,min=-2147483648,max=2147483647"`
	BuildingID *string `json:"buildingId" binding:"omitempty,uuid"`
}

func (r CreateDormitoryRequest) ApplyTo(d *model.Dormitory) {
	UpdateDormitoryRequest(r).ApplyTo(d)
}

func (r UpdateDormitoryRequest) ApplyTo(d *model.Dormitory) {
	assignString(&d.Name, r.Name)
	assignInt(&d.Capacity, r.Capacity)
	assignString(&d.BuildingID, r.BuildingID)
}
