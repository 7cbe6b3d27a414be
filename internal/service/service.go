package service

import (
	"go.uber.org/zap"

	"campus-admin/backend/internal/model"
	"campus-admin/backend/internal/repository"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Institute      ResourceService[model.Institute]
	Department     ResourceService[model.Department]
	StudyDirection ResourceService[model.StudyDirection]
	Applicant      ResourceService[model.Applicant]
	Building       ResourceService[model.Building]
	Dormitory      ResourceService[model.Dormitory]
}

// NewService 创建 Service 聚合
func NewService(repo *repository.Repository, logger *zap.Logger) *Service {
	return &Service{
		Institute:      NewResourceService(repo.Institute, logger),
		Department:     NewResourceService(repo.Department, logger),
		StudyDirection: NewResourceService(repo.StudyDirection, logger),
		Applicant:      NewResourceService(repo.Applicant, logger),
		Building:       NewResourceService(repo.Building, logger),
		Dormitory:      NewResourceService(repo.Dormitory, logger),
	}
}
