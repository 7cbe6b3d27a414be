package dto

import "campus-admin/backend/internal/model"

// ── 报考者 ──

// CreateApplicantRequest 创建/整体替换报考者请求
type CreateApplicantRequest struct {
	FirstName        *string `json:"firstName"        binding:"required"`
	LastName         *string `json:"lastName"         binding:"required"`
	Email            *string `json:"email"            binding:"required"`
	Phone            *string `json:"phone"            binding:"required"`
	StudyDirectionID *string `json:"studyDirectionId" binding:"required,uuid"`
	InstituteID      *string `json:"instituteId"      binding:"required,uuid"`
}

// UpdateApplicantRequest 部分更新报考者请求
type UpdateApplicantRequest struct {
	FirstName        *string `json:"firstName"`
	LastName         *string `json:"lastName"`
	Email            *string `json:"email"`
	Phone            *string `json:"phone"`
	StudyDirectionID *string `json:"studyDirectionId" binding:"omitempty,uuid"`
	InstituteID      *string `json:"instituteId"      binding:"omitempty,uuid"`
}

func (r CreateApplicantRequest) ApplyTo(a *model.Applicant) {
	UpdateApplicantRequest(r).ApplyTo(a)
}

func (r UpdateApplicantRequest) ApplyTo(a *model.Applicant) {
	assignString(&a.FirstName, r.FirstName)
	assignString(&a.LastName, r.LastName)
	assignString(&a.Email, r.Email)
	assignString(&a.Phone, r.Phone)
	assignString(&a.StudyDirectionID, r.StudyDirectionID)
	assignString(&a.InstituteID, r.InstituteID)
}
