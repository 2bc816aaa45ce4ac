package repository

import (
	"github.com/google/uuid"

	"github.com/clothesguard/api/internal/model"
	"gorm.io/gorm"
)

// NotificationRepository handles database operations for Notification
type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// GetAll returns every notification
func (r *NotificationRepository) GetAll() ([]model.Notification, error) {
	var notifications []model.Notification
	err := r.db.Find(&notifications).Error
	return notifications, translate(err)
}

// GetOne finds a notification by id
func (r *NotificationRepository) GetOne(id uuid.UUID) (*model.Notification, error) {
	var notification model.Notification
	if err := r.db.Where("id = ?", id).First(&notification).Error; err != nil {
		return nil, translate(err)
	}
	return &notification, nil
}

// GetByUser returns all notifications addressed to a user
func (r *NotificationRepository) GetByUser(userID string) ([]model.Notification, error) {
	var notifications []model.Notification
	err := r.db.Where("usuario_id = ?", userID).Find(&notifications).Error
	return notifications, translate(err)
}

// Insert persists a new notification
func (r *NotificationRepository) Insert(notification *model.Notification) error {
	return translate(r.db.Create(notification).Error)
}

// MarkRead flips the read flag to true. The transition is one-way and
// idempotent: marking an already-read notification succeeds unchanged.
func (r *NotificationRepository) MarkRead(id uuid.UUID) (*model.Notification, error) {
	notification, err := r.GetOne(id)
	if err != nil {
		return nil, err
	}
	if notification.Leida {
		return notification, nil
	}
	if err := r.db.Model(notification).Update("leida", true).Error; err != nil {
		return nil, translate(err)
	}
	notification.Leida = true
	return notification, nil
}

// DeleteOne removes a notification by id and returns the deleted record
func (r *NotificationRepository) DeleteOne(id uuid.UUID) (*model.Notification, error) {
	notification, err := r.GetOne(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Delete(notification).Error; err != nil {
		return nil, translate(err)
	}
	return notification, nil
}

// DeleteByUser removes all notifications addressed to a user and returns
// how many were deleted. Deleting zero rows is a success, not ErrNotFound:
// the owner may never have had notifications.
func (r *NotificationRepository) DeleteByUser(userID string) (int64, error) {
	result := r.db.Where("usuario_id = ?", userID).Delete(&model.Notification{})
	if result.Error != nil {
		return 0, translate(result.Error)
	}
	return result.RowsAffected, nil
}
