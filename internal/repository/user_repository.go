package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/dtalero78/siigo-retiros/internal/model"
	"github.com/dtalero78/siigo-retiros/internal/util"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

// CreateBatch inserts a roster import in one transaction. Entries whose
// identification already exists are updated in place rather than
// duplicated.
func (r *UserRepository) CreateBatch(users []model.User) (created, updated int, err error) {
	err = r.DB.Transaction(func(tx *gorm.DB) error {
		for i := range users {
			var existing model.User
			findErr := tx.Where("identification = ?", users[i].Identification).First(&existing).Error
			switch {
			case findErr == nil:
				users[i].ID = existing.ID
				users[i].CreatedAt = existing.CreatedAt
				if txErr := tx.Save(&users[i]).Error; txErr != nil {
					return txErr
				}
				updated++
			case errors.Is(findErr, gorm.ErrRecordNotFound):
				if txErr := tx.Create(&users[i]).Error; txErr != nil {
					return txErr
				}
				created++
			default:
				return findErr
			}
		}
		return nil
	})
	return created, updated, err
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	return &user, err
}

func (r *UserRepository) FindByIdentification(identification string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("identification = ?", identification).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	return &user, err
}

func (r *UserRepository) FindAll(page, pageSize int) ([]model.User, int64, error) {
	var (
		users []model.User
		total int64
	)
	if err := r.DB.Model(&model.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.DB.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&users).Error
	return users, total, err
}

// FindWithoutResponse lists roster entries that have not submitted yet,
// the population for WhatsApp reminders.
func (r *UserRepository) FindWithoutResponse() ([]model.User, error) {
	var users []model.User
	err := r.DB.Where("response_submitted = ?", false).
		Order("created_at ASC").
		Find(&users).Error
	return users, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

func (r *UserRepository) Delete(id uint) error {
	result := r.DB.Delete(&model.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return util.ErrUserNotFound
	}
	return nil
}

// MarkWhatsAppSent records a delivered invitation and bumps the send
// counter.
func (r *UserRepository) MarkWhatsAppSent(id uint, messageID string) error {
	now := time.Now()
	return r.DB.Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"whats_app_sent":       true,
			"whats_app_sent_at":    now,
			"whats_app_message_id": messageID,
			"whats_app_send_count": gorm.Expr("whats_app_send_count + 1"),
			"updated_at":           now,
		}).Error
}

// MarkResponseSubmitted flags the roster entry once its survey arrives.
func (r *UserRepository) MarkResponseSubmitted(identification string) error {
	now := time.Now()
	return r.DB.Model(&model.User{}).
		Where("identification = ?", identification).
		Updates(map[string]interface{}{
			"response_submitted":    true,
			"response_submitted_at": now,
			"updated_at":            now,
		}).Error
}

// RosterStats summarizes outreach progress over the roster.
type RosterStats struct {
	Total     int64 `json:"total"`
	Sent      int64 `json:"sent"`
	Submitted int64 `json:"submitted"`
	Pending   int64 `json:"pending"`
}

func (r *UserRepository) Stats() (*RosterStats, error) {
	var stats RosterStats
	if err := r.DB.Model(&model.User{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&model.User{}).Where("whats_app_sent = ?", true).Count(&stats.Sent).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&model.User{}).Where("response_submitted = ?", true).Count(&stats.Submitted).Error; err != nil {
		return nil, err
	}
	stats.Pending = stats.Total - stats.Submitted
	return &stats, nil
}
