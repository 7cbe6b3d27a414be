package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Entity 六类资源模型的公共约束
type Entity interface {
	TableName() string
	GetID() string
}

// BaseModel 通用主键与时间字段（所有资源模型嵌入）
// created_at 仅用于列表的稳定排序，不对外输出
type BaseModel struct {
	ID        string    `gorm:"type:uuid;primaryKey"      json:"id"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime"   json:"-"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime"   json:"-"`
}

// GetID 返回记录主键
func (m BaseModel) GetID() string { return m.ID }

// BeforeCreate 创建时生成 v4 UUID；主键一经分配不再变更
func (m *BaseModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
