package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/dtalero78/siigo-retiros/internal/model"
	"github.com/dtalero78/siigo-retiros/internal/util"
)

type ResponseRepository struct {
	DB *gorm.DB
}

func NewResponseRepository(db *gorm.DB) *ResponseRepository {
	return &ResponseRepository{DB: db}
}

// Create inserts a response. A second submission for the same
// identification trips the unique index and surfaces as
// util.ErrDuplicateSubmission.
func (r *ResponseRepository) Create(resp *model.Response) error {
	err := r.DB.Create(resp).Error
	if err != nil && isUniqueViolation(err) {
		return util.ErrDuplicateSubmission
	}
	return err
}

func (r *ResponseRepository) FindByID(id uint) (*model.Response, error) {
	var resp model.Response
	err := r.DB.First(&resp, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrResponseNotFound
	}
	return &resp, err
}

func (r *ResponseRepository) FindByIdentification(identification string) (*model.Response, error) {
	var resp model.Response
	err := r.DB.Where("identification = ?", identification).First(&resp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrResponseNotFound
	}
	return &resp, err
}

// FindAll returns a page of responses, newest first, with the total
// count before paging. area filters when non-empty.
func (r *ResponseRepository) FindAll(area string, page, pageSize int) ([]model.Response, int64, error) {
	var (
		responses []model.Response
		total     int64
	)

	query := r.DB.Model(&model.Response{})
	if area != "" {
		query = query.Where("area = ?", area)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&responses).Error
	return responses, total, err
}

// FindAllForAggregation loads every response without paging. Used by
// the statistics reducer and the CSV export, oldest first so bucket
// order is stable.
func (r *ResponseRepository) FindAllForAggregation(area string) ([]model.Response, error) {
	var responses []model.Response
	query := r.DB.Model(&model.Response{})
	if area != "" {
		query = query.Where("area = ?", area)
	}
	err := query.Order("created_at ASC").Find(&responses).Error
	return responses, err
}

func (r *ResponseRepository) Delete(id uint) error {
	result := r.DB.Delete(&model.Response{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return util.ErrResponseNotFound
	}
	return nil
}

func (r *ResponseRepository) UpdateAnalysis(id uint, analysis string) error {
	result := r.DB.Model(&model.Response{}).
		Where("id = ?", id).
		Update("analysis", analysis)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return util.ErrResponseNotFound
	}
	return nil
}

func (r *ResponseRepository) Count() (int64, error) {
	var total int64
	err := r.DB.Model(&model.Response{}).Count(&total).Error
	return total, err
}

// isUniqueViolation matches the duplicate-key errors of both supported
// drivers: SQLSTATE 23505 on postgres, "UNIQUE constraint failed" on
// sqlite.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "23505") ||
		strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key")
}
