package dto

import "campus-admin/backend/internal/model"

// ── 专业方向 ──

// CreateStudyDirectionRequest 创建/整体替换专业方向请求
type CreateStudyDirectionRequest struct {
	Name         *string `json:"name"         binding:"required"`
	DepartmentID *string `json:"departmentId" binding:"required,uuid"`
}

// UpdateStudyDirectionRequest 部分更新专业方向请求
type UpdateStudyDirectionRequest struct {
	Name         *string `json:"name"`
	DepartmentID *string `json:"departmentId" binding:"omitempty,uuid"`
}

func (r CreateStudyDirectionRequest) ApplyTo(s *model.StudyDirection) {
	UpdateStudyDirectionRequest(r).ApplyTo(s)
}

func (r UpdateStudyDirectionRequest) ApplyTo(s *model.StudyDirection) {
	assignString(&s.Name, r.Name)
	assignString(&s.DepartmentID, r.DepartmentID)
}
