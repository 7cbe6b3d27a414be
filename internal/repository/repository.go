package repository

import (
	"gorm.io/gorm"

	"campus-admin/backend/internal/model"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Institute      EntityRepository[model.Institute]
	Department     EntityRepository[model.Department]
	StudyDirection EntityRepository[model.StudyDirection]
	Applicant      EntityRepository[model.Applicant]
	Building       EntityRepository[model.Building]
	Dormitory      EntityRepository[model.Dormitory]
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Institute:      NewEntityRepo[model.Institute](db),
		Department:     NewEntityRepo[model.Department](db),
		StudyDirection: NewEntityRepo[model.StudyDirection](db),
		Applicant:      NewEntityRepo[model.Applicant](db),
		Building:       NewEntityRepo[model.Building](db),
		Dormitory:      NewEntityRepo[model.Dormitory](db),
	}
}
