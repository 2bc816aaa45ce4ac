package repository

import (
	"github.com/clothesguard/api/internal/model"
	"gorm.io/gorm"
)

// UserRepository handles database operations for User. Lookups are keyed
// by the external user_id, not the storage identity.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetAll returns every user
func (r *UserRepository) GetAll() ([]model.User, error) {
	var users []model.User
	err := r.db.Find(&users).Error
	return users, translate(err)
}

// GetOne finds a user by external user_id
func (r *UserRepository) GetOne(userID string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// GetByName finds a user by name (login lookup)
func (r *UserRepository) GetByName(name string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("name = ?", name).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// Insert persists a new user. The password must already be hashed by the
// caller; this layer never sees plaintext.
func (r *UserRepository) Insert(user *model.User) error {
	return translate(r.db.Create(user).Error)
}

// UpdateOne replaces the supplied fields of the user with the given
// external user_id and returns the updated record.
func (r *UserRepository) UpdateOne(userID string, req model.UpdateUserRequest) (*model.User, error) {
	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.Address != nil {
		updates["address_state"] = req.Address.State
		updates["address_municipality"] = req.Address.Municipality
	}

	if len(updates) > 0 {
		result := r.db.Model(&model.User{}).Where("user_id = ?", userID).Updates(updates)
		if result.Error != nil {
			return nil, translate(result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}
	return r.GetOne(userID)
}

// UpdateProfileImage stores the avatar reference for a user
func (r *UserRepository) UpdateProfileImage(userID string, imageURL string) (*model.User, error) {
	result := r.db.Model(&model.User{}).
		Where("user_id = ?", userID).
		Update("profile_image", imageURL)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetOne(userID)
}

// DeleteOne removes a user by external user_id and returns the deleted
// record. Notifications referencing the user are left untouched.
func (r *UserRepository) DeleteOne(userID string) (*model.User, error) {
	user, err := r.GetOne(userID)
	if err != nil {
		return nil, err
	}
	if err := r.db.Delete(user).Error; err != nil {
		return nil, translate(err)
	}
	return user, nil
}
