package model

// Dormitory 宿舍表，对应 dormitory，隶属于楼栋
type Dormitory struct {
	BaseModel
	Name       string `gorm:"type:varchar;not null" json:"name"`
	Capacity   int    `gorm:"not null"              json:"capacity"`
	BuildingID string `gorm:"type:uuid;not null"    json:"buildingId"`

	Building *Building `gorm:"foreignKey:BuildingID;constraint:OnUpdate:NO ACTION,OnDelete:NO ACTION" json:"-"`
}

// TableName 指定表名
func (Dormitory) TableName() string { return "dormitory" }
