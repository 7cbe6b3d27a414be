package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"campus-admin/backend/internal/dto"
	"campus-admin/backend/internal/model"
	"campus-admin/backend/internal/repository"
	pkgerrors "campus-admin/backend/pkg/errors"
)

// ResourceService 通用资源业务接口，六类资源共用同一套分页与错误策略
//
// 记录不存在时返回包装 pkgerrors.ErrNotFound 的错误；
// 外键冲突原样透出 pkgerrors.ErrIntegrityViolation
type ResourceService[T model.Entity] interface {
	List(ctx context.Context, req *dto.ListRequest) ([]T, error)
	GetByID(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, attrs dto.Attributes[T]) (*T, error)
	Modify(ctx context.Context, id string, attrs dto.Attributes[T]) (*T, error)
	// Replace 与 Modify 一样按字段合并；区别仅在于 Handler 层要求全部字段必填
	Replace(ctx context.Context, id string, attrs dto.Attributes[T]) (*T, error)
	Delete(ctx context.Context, id string) error
}

type resourceService[T model.Entity] struct {
	repo   repository.EntityRepository[T]
	logger *zap.Logger
}

// NewResourceService 创建 ResourceService 实例
func NewResourceService[T model.Entity](repo repository.EntityRepository[T], logger *zap.Logger) ResourceService[T] {
	var zero T
	return &resourceService[T]{
		repo:   repo,
		logger: logger.With(zap.String("resource", zero.TableName())),
	}
}

// ────────────────────── List ──────────────────────

func (s *resourceService[T]) List(ctx context.Context, req *dto.ListRequest) ([]T, error) {
	var offset, limit *int
	if req != nil {
		offset, limit = req.Skip, req.Take
	}

	records, err := s.repo.FindMany(ctx, offset, limit)
	if err != nil {
		s.logger.Error("列出记录失败", zap.Error(err))
		return nil, err
	}
	return records, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *resourceService[T]) GetByID(ctx context.Context, id string) (*T, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id=%s", pkgerrors.ErrNotFound, id)
		}
		s.logger.Error("查询记录失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return record, nil
}

// ────────────────────── Create ──────────────────────

func (s *resourceService[T]) Create(ctx context.Context, attrs dto.Attributes[T]) (*T, error) {
	record := new(T)
	attrs.ApplyTo(record)

	if err := s.repo.Create(ctx, record); err != nil {
		s.logWriteError("创建记录失败", "", err)
		return nil, err
	}
	return record, nil
}

// ────────────────────── Modify / Replace ──────────────────────

func (s *resourceService[T]) Modify(ctx context.Context, id string, attrs dto.Attributes[T]) (*T, error) {
	return s.merge(ctx, id, attrs)
}

func (s *resourceService[T]) Replace(ctx context.Context, id string, attrs dto.Attributes[T]) (*T, error) {
	return s.merge(ctx, id, attrs)
}

// merge 查询 -> 合并 -> 写回；两次存储调用之间不加锁
func (s *resourceService[T]) merge(ctx context.Context, id string, attrs dto.Attributes[T]) (*T, error) {
	record, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	attrs.ApplyTo(record)

	if err := s.repo.Update(ctx, record); err != nil {
		s.logWriteError("更新记录失败", id, err)
		return nil, err
	}
	return record, nil
}

// ────────────────────── Delete ──────────────────────

func (s *resourceService[T]) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	if _, err := s.repo.DeleteByID(ctx, id); err != nil {
		s.logWriteError("删除记录失败", id, err)
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

// logWriteError 外键冲突属于客户端错误，只记 Warn
func (s *resourceService[T]) logWriteError(msg, id string, err error) {
	fields := []zap.Field{zap.Error(err)}
	if id != "" {
		fields = append(fields, zap.String("id", id))
	}
	if errors.Is(err, pkgerrors.ErrIntegrityViolation) {
		s.logger.Warn(msg, fields...)
		return
	}
	s.logger.Error(msg, fields...)
}
