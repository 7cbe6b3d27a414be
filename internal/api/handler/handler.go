package handler

import (
	"github.com/gin-gonic/gin"

	"campus-admin/backend/internal/dto"
	"campus-admin/backend/internal/model"
	"campus-admin/backend/internal/service"
)

// ── 资源描述 ──

var (
	InstituteDescriptor      = Descriptor{Path: "institutes", Label: "学院", CodeBase: 21000}
	DepartmentDescriptor     = Descriptor{Path: "departments", Label: "教研室", CodeBase: 22000}
	StudyDirectionDescriptor = Descriptor{Path: "study-directions", Label: "专业方向", CodeBase: 23000}
	ApplicantDescriptor      = Descriptor{Path: "applicants", Label: "报考者", CodeBase: 24000}
	BuildingDescriptor       = Descriptor{Path: "buildings", Label: "楼栋", CodeBase: 25000}
	// 路径沿用旧接口拼写
	DormitoryDescriptor = Descriptor{Path: "dormitorys", Label: "宿舍", CodeBase: 26000}
)

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Institute      *ResourceHandler[model.Institute, dto.CreateInstituteRequest, dto.UpdateInstituteRequest]
	Department     *ResourceHandler[model.Department, dto.CreateDepartmentRequest, dto.UpdateDepartmentRequest]
	StudyDirection *ResourceHandler[model.StudyDirection, dto.CreateStudyDirectionRequest, dto.UpdateStudyDirectionRequest]
	Applicant      *ResourceHandler[model.Applicant, dto.CreateApplicantRequest, dto.UpdateApplicantRequest]
	Building       *ResourceHandler[model.Building, dto.CreateBuildingRequest, dto.UpdateBuildingRequest]
	Dormitory      *ResourceHandler[model.Dormitory, dto.CreateDormitoryRequest, dto.UpdateDormitoryRequest]
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Institute:      NewResourceHandler[model.Institute, dto.CreateInstituteRequest, dto.UpdateInstituteRequest](InstituteDescriptor, svc.Institute),
		Department:     NewResourceHandler[model.Department, dto.CreateDepartmentRequest, dto.UpdateDepartmentRequest](DepartmentDescriptor, svc.Department),
		StudyDirection: NewResourceHandler[model.StudyDirection, dto.CreateStudyDirectionRequest, dto.UpdateStudyDirectionRequest](StudyDirectionDescriptor, svc.StudyDirection),
		Applicant:      NewResourceHandler[model.Applicant, dto.CreateApplicantRequest, dto.UpdateApplicantRequest](ApplicantDescriptor, svc.Applicant),
		Building:       NewResourceHandler[model.Building, dto.CreateBuildingRequest, dto.UpdateBuildingRequest](BuildingDescriptor, svc.Building),
		Dormitory:      NewResourceHandler[model.Dormitory, dto.CreateDormitoryRequest, dto.UpdateDormitoryRequest](DormitoryDescriptor, svc.Dormitory),
	}
}

// Register 将全部资源路由挂载到 rg
func (h *Handler) Register(rg *gin.RouterGroup) {
	h.Institute.Register(rg)
	h.Department.Register(rg)
	h.StudyDirection.Register(rg)
	h.Applicant.Register(rg)
	h.Building.Register(rg)
	h.Dormitory.Register(rg)
}
