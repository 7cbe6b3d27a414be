package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"campus-admin/backend/internal/model"
)

// EntityRepository 通用资源数据访问接口，六类资源共用
//
// 记录不存在时 FindByID 返回 gorm.ErrRecordNotFound，由 Service 转换为业务错误；
// 外键冲突统一转换为 pkgerrors.ErrIntegrityViolation
type EntityRepository[T model.Entity] interface {
	// FindMany 按创建顺序返回记录；offset/limit 为 nil 表示不限制
	FindMany(ctx context.Context, offset, limit *int) ([]T, error)
	FindByID(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, record *T) error
	// Update 持久化整条（已合并的）记录
	Update(ctx context.Context, record *T) error
	// DeleteByID 物理删除，返回记录删除前是否存在
	DeleteByID(ctx context.Context, id string) (bool, error)
}

// entityRepo EntityRepository 的 GORM 实现
type entityRepo[T model.Entity] struct {
	db *gorm.DB
}

// NewEntityRepo 创建 EntityRepository 实例
func NewEntityRepo[T model.Entity](db *gorm.DB) EntityRepository[T] {
	return &entityRepo[T]{db: db}
}

func (r *entityRepo[T]) FindMany(ctx context.Context, offset, limit *int) ([]T, error) {
	db := r.db.WithContext(ctx).
		Order("created_at ASC").
		Order("id ASC")
	if offset != nil {
		db = db.Offset(*offset)
	}
	if limit != nil {
		db = db.Limit(*limit)
	}

	records := make([]T, 0)
	if err := db.Find(&records).Error; err != nil {
		return nil, mapStorageError(err)
	}
	return records, nil
}

func (r *entityRepo[T]) FindByID(ctx context.Context, id string) (*T, error) {
	var record T
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, mapStorageError(err)
	}
	return &record, nil
}

func (r *entityRepo[T]) Create(ctx context.Context, record *T) error {
	return mapStorageError(r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(record).Error)
}

// Update 使用 Save 写回整行；若记录已被并发删除，Save 会退化为插入
func (r *entityRepo[T]) Update(ctx context.Context, record *T) error {
	return mapStorageError(r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(record).Error)
}

func (r *entityRepo[T]) DeleteByID(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(new(T))
	if result.Error != nil {
		return false, mapStorageError(result.Error)
	}
	return result.RowsAffected > 0, nil
}
