package model

// Institute 学院表，对应 institute
type Institute struct {
	BaseModel
	Name    string `gorm:"type:varchar;not null" json:"name"`
	Address string `gorm:"type:varchar;not null" json:"address"`
}

// TableName 指定表名
func (Institute) TableName() string { return "institute" }
