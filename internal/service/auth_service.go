package service

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/clothesguard/api/internal/model"
	"github.com/clothesguard/api/internal/repository"
	"github.com/clothesguard/api/pkg/auth"
)

// ErrInvalidCredentials covers both an unknown name and a wrong
// password. The two cases are deliberately indistinguishable to the
// caller so login cannot be used to enumerate users.
var ErrInvalidCredentials = errors.New("invalid name or password")

// AuthService handles authentication business logic
type AuthService struct {
	userRepo   *repository.UserRepository
	jwtManager *auth.JWTManager
	rdb        *redis.Client
}

func NewAuthService(userRepo *repository.UserRepository, jwtManager *auth.JWTManager, rdb *redis.Client) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		rdb:        rdb,
	}
}

// HashPassword runs the credential codec over a plaintext password.
// bcrypt's default cost meets the moderate work-factor requirement.
func HashPassword(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Login authenticates a user by name and returns a token bound to their
// external identifier.
func (s *AuthService) Login(req model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.userRepo.GetByName(req.Name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateToken(user.UserID)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &model.LoginResponse{
		Message: "login successful",
		Token:   token,
		UserID:  user.UserID,
	}, nil
}

// Logout blacklists a token until it would have expired anyway
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.rdb.Set(ctx, "blacklist:"+token, "1", s.jwtManager.Expiry()).Err()
}
