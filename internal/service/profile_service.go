package service

import (
	"context"
	"mime/multipart"

	"github.com/clothesguard/api/internal/model"
	"github.com/clothesguard/api/internal/repository"
	"github.com/clothesguard/api/pkg/storage"
)

// ProfileService composes the media store and the user gateway to
// replace a user's avatar.
type ProfileService struct {
	userRepo *repository.UserRepository
	storage  storage.Storage
}

func NewProfileService(userRepo *repository.UserRepository, storage storage.Storage) *ProfileService {
	return &ProfileService{
		userRepo: userRepo,
		storage:  storage,
	}
}

// UpdateAvatar stores the uploaded file, then points the user's
// profileImage at it. If the user turns out not to exist the stored file
// is left behind; the two steps are independent and there is no
// compensating delete.
func (s *ProfileService) UpdateAvatar(ctx context.Context, userID string, file multipart.File, header *multipart.FileHeader) (*model.User, error) {
	stored, err := s.storage.Save(ctx, file, header)
	if err != nil {
		return nil, err
	}

	return s.userRepo.UpdateProfileImage(userID, stored.URL)
}
