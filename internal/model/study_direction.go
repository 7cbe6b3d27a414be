package model

// StudyDirection 专业方向表，对应 study_direction，隶属于教研室
type StudyDirection struct {
	BaseModel
	Name         string `gorm:"type:varchar;not null" json:"name"`
	DepartmentID string `gorm:"type:uuid;not null"    json:"departmentId"`

	Department *Department `gorm:"foreignKey:DepartmentID;constraint:OnUpdate:NO ACTION,OnDelete:NO ACTION" json:"-"`
}

// TableName 指定表名
func (StudyDirection) TableName() string { return "study_direction" }
