package repository

import (
	"strings"

	"gorm.io/gorm"
)

// ListOptions drives the admin table queries: case-insensitive substring
// search over the entity's text columns, equality on one enum column, and
// 1-based pagination.
type ListOptions struct {
	Search  string
	Filter  string
	Page    int
	PerPage int
}

type PagedResult[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	Page       int   `json:"page"`
}

// Store is the CRUD core shared by every entity repository. Models with a
// gorm.DeletedAt field soft-delete and are excluded from queries; models
// without one are removed outright.
type Store[T any] struct {
	db         *gorm.DB
	filterCol  string
	searchCols []string
}

func NewStore[T any](db *gorm.DB, filterCol string, searchCols ...string) *Store[T] {
	return &Store[T]{db: db, filterCol: filterCol, searchCols: searchCols}
}

// List returns all live rows, newest first. id breaks creation-time ties.
func (s *Store[T]) List() ([]T, error) {
	list := []T{}
	err := s.db.Order("created_at DESC, id DESC").Find(&list).Error
	return list, err
}

// ListPage applies search/filter and returns one page plus totals.
func (s *Store[T]) ListPage(opts ListOptions) (*PagedResult[T], error) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.PerPage < 1 {
		opts.PerPage = 10
	}
	q := s.db.Model(new(T))
	if opts.Search != "" && len(s.searchCols) > 0 {
		pattern := "%" + strings.ToLower(opts.Search) + "%"
		conds := make([]string, len(s.searchCols))
		args := make([]interface{}, len(s.searchCols))
		for i, col := range s.searchCols {
			conds[i] = "LOWER(" + col + ") LIKE ?"
			args[i] = pattern
		}
		q = q.Where(strings.Join(conds, " OR "), args...)
	}
	if opts.Filter != "" && s.filterCol != "" {
		q = q.Where(s.filterCol+" = ?", opts.Filter)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}
	items := []T{}
	err := q.Order("created_at DESC, id DESC").
		Limit(opts.PerPage).
		Offset((opts.Page - 1) * opts.PerPage).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	totalPages := int((total + int64(opts.PerPage) - 1) / int64(opts.PerPage))
	return &PagedResult[T]{Items: items, Total: total, TotalPages: totalPages, Page: opts.Page}, nil
}

// Count returns the number of live rows.
func (s *Store[T]) Count() (int64, error) {
	var n int64
	err := s.db.Model(new(T)).Count(&n).Error
	return n, err
}

func (s *Store[T]) GetByID(id uint) (*T, error) {
	var e T
	if err := s.db.First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Store[T]) Create(e *T) error {
	return s.db.Create(e).Error
}

func (s *Store[T]) Save(e *T) error {
	return s.db.Save(e).Error
}

// Delete removes the row (soft when the model has DeletedAt). Returns
// gorm.ErrRecordNotFound when no live row matched.
func (s *Store[T]) Delete(id uint) error {
	res := s.db.Delete(new(T), id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
