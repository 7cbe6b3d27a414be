package model

// Applicant 报考者表，对应 applicant
// 同时引用专业方向与学院，两者之间不做一致性校验
type Applicant struct {
	BaseModel
	FirstName        string `gorm:"type:varchar;not null" json:"firstName"`
	LastName         string `gorm:"type:varchar;not null" json:"lastName"`
	Email            string `gorm:"type:varchar;not null" json:"email"`
	Phone            string `gorm:"type:varchar;not null" json:"phone"`
	StudyDirectionID string `gorm:"type:uuid;not null"    json:"studyDirectionId"`
	InstituteID      string `gorm:"type:uuid;not null"    json:"instituteId"`

	StudyDirection *StudyDirection `gorm:"foreignKey:StudyDirectionID;constraint:OnUpdate:NO ACTION,OnDelete:NO ACTION" json:"-"`
	Institute      *Institute      `gorm:"foreignKey:InstituteID;constraint:OnUpdate:NO ACTION,OnDelete:NO ACTION"      json:"-"`
}

// TableName 指定表名
func (Applicant) TableName() string { return "applicant" }
