package model

// Building 楼栋表，对应 building
type Building struct {
	BaseModel
	Name    string `gorm:"type:varchar;not null" json:"name"`
	Address string `gorm:"type:varchar;not null" json:"address"`
}

// TableName 指定表名
func (Building) TableName() string { return "building" }
