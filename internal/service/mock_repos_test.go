package service

import (
	"context"

	"gorm.io/gorm"

	"campus-admin/backend/internal/model"
	"campus-admin/backend/internal/repository"
)

// ── Mock EntityRepository ──

type beforeCreator interface {
	BeforeCreate(*gorm.DB) error
}

// mockEntityRepo 以 map 存储记录，order 保留插入顺序
type mockEntityRepo[T model.Entity] struct {
	records map[string]T
	order   []string

	// 注入的写错误
	createErr error
	updateErr error
	deleteErr error
	findErr   error

	updateCalls int
	deleteCalls int
}

func newMockEntityRepo[T model.Entity]() *mockEntityRepo[T] {
	return &mockEntityRepo[T]{records: make(map[string]T)}
}

func (m *mockEntityRepo[T]) FindMany(_ context.Context, offset, limit *int) ([]T, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}

	start := 0
	if offset != nil {
		start = *offset
	}
	if start > len(m.order) {
		start = len(m.order)
	}
	end := len(m.order)
	if limit != nil && start+*limit < end {
		end = start + *limit
	}

	result := make([]T, 0, end-start)
	for _, id := range m.order[start:end] {
		result = append(result, m.records[id])
	}
	return result, nil
}

func (m *mockEntityRepo[T]) FindByID(_ context.Context, id string) (*T, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	if r, ok := m.records[id]; ok {
		return &r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEntityRepo[T]) Create(_ context.Context, record *T) error {
	if m.createErr != nil {
		return m.createErr
	}
	if h, ok := any(record).(beforeCreator); ok {
		_ = h.BeforeCreate(nil)
	}
	id := (*record).GetID()
	m.records[id] = *record
	m.order = append(m.order, id)
	return nil
}

func (m *mockEntityRepo[T]) Update(_ context.Context, record *T) error {
	m.updateCalls++
	if m.updateErr != nil {
		return m.updateErr
	}
	m.records[(*record).GetID()] = *record
	return nil
}

func (m *mockEntityRepo[T]) DeleteByID(_ context.Context, id string) (bool, error) {
	m.deleteCalls++
	if m.deleteErr != nil {
		return false, m.deleteErr
	}
	if _, ok := m.records[id]; !ok {
		return false, nil
	}
	delete(m.records, id)
	for i, v := range m.order {
		if v == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return true, nil
}

// ── 聚合 ──

type mockRepos struct {
	institute      *mockEntityRepo[model.Institute]
	department     *mockEntityRepo[model.Department]
	studyDirection *mockEntityRepo[model.StudyDirection]
	applicant      *mockEntityRepo[model.Applicant]
	building       *mockEntityRepo[model.Building]
	dormitory      *mockEntityRepo[model.Dormitory]
}

func newMockRepository() (*repository.Repository, *mockRepos) {
	m := &mockRepos{
		institute:      newMockEntityRepo[model.Institute](),
		department:     newMockEntityRepo[model.Department](),
		studyDirection: newMockEntityRepo[model.StudyDirection](),
		applicant:      newMockEntityRepo[model.Applicant](),
		building:       newMockEntityRepo[model.Building](),
		dormitory:      newMockEntityRepo[model.Dormitory](),
	}
	return &repository.Repository{
		Institute:      m.institute,
		Department:     m.department,
		StudyDirection: m.studyDirection,
		Applicant:      m.applicant,
		Building:       m.building,
		Dormitory:      m.dormitory,
	}, m
}
