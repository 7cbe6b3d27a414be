package model

// Department 教研室表，对应 department，隶属于学院
type Department struct {
	BaseModel
	Name        string `gorm:"type:varchar;not null"  json:"name"`
	InstituteID string `gorm:"type:uuid;not null"     json:"instituteId"`

	// 仅用于生成外键约束，不预加载、不序列化
	Institute *Institute `gorm:"foreignKey:InstituteID;constraint:OnUpdate:NO ACTION,OnDelete:NO ACTION" json:"-"`
}

// TableName 指定表名
func (Department) TableName() string { return "department" }
