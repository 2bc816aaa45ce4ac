package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clothesguard/api/internal/model"
	"github.com/clothesguard/api/internal/repository"
	"github.com/clothesguard/api/internal/service"
	"github.com/clothesguard/api/pkg/storage"
)

// Request body ceiling for avatar uploads: the 5 MiB file limit plus
// headroom for the multipart envelope.
const maxUploadBody = storage.MaxFileSize + 512<<10

// UserHandler handles user CRUD, login and avatar upload endpoints
type UserHandler struct {
	userRepo       *repository.UserRepository
	authService    *service.AuthService
	profileService *service.ProfileService
}

func NewUserHandler(userRepo *repository.UserRepository, authService *service.AuthService, profileService *service.ProfileService) *UserHandler {
	return &UserHandler{
		userRepo:       userRepo,
		authService:    authService,
		profileService: profileService,
	}
}

// GetAll godoc
// @Summary List all users
// @Tags Users
// @Produce json
// @Success 200 {object} model.DataResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /users [get]
func (h *UserHandler) GetAll(c *gin.Context) {
	users, err := h.userRepo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, model.DataResponse{Data: users})
}

// GetOne godoc
// @Summary Fetch a user by external id
// @Tags Users
// @Produce json
// @Param user_id path string true "External user id"
// @Success 200 {object} model.DataResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /users/{user_id} [get]
func (h *UserHandler) GetOne(c *gin.Context) {
	user, err := h.userRepo.GetOne(c.Param("user_id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to fetch user"})
		return
	}
	c.JSON(http.StatusOK, model.DataResponse{Data: user})
}

// Create godoc
// @Summary Register a new user
// @Tags Users
// @Accept json
// @Produce json
// @Param body body model.CreateUserRequest true "User payload"
// @Success 201 {object} model.User
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req model.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	digest, err := service.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to create user"})
		return
	}

	user := model.User{
		UserID:   req.UserID,
		Name:     req.Name,
		Email:    req.Email,
		Password: digest,
	}
	if req.Address != nil {
		user.Address = *req.Address
	}

	if err := h.userRepo.Insert(&user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "User with that id, name or email already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Update godoc
// @Summary Replace user fields by external id
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user_id path string true "External user id"
// @Param body body model.UpdateUserRequest true "Fields to replace"
// @Success 200 {object} model.SuccessResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /users/{user_id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	var req model.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	user, err := h.userRepo.UpdateOne(c.Param("user_id"), req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "User not found"})
			return
		}
		if errors.Is(err, repository.ErrDuplicateKey) {
			c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "User with that name or email already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to update user"})
		return
	}

	c.JSON(http.StatusOK, model.SuccessResponse{Message: "User updated", Data: user})
}

// Delete godoc
// @Summary Remove a user by external id
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param user_id path string true "External user id"
// @Success 200 {object} model.SuccessResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /users/{user_id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	user, err := h.userRepo.DeleteOne(c.Param("user_id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to delete user"})
		return
	}

	c.JSON(http.StatusOK, model.SuccessResponse{Message: "User deleted", Data: user})
}

// Login godoc
// @Summary Authenticate and receive a bearer token
// @Tags Users
// @Accept json
// @Produce json
// @Param body body model.LoginRequest true "Credentials"
// @Success 200 {object} model.LoginResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /users/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	resp, err := h.authService.Login(req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, model.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Login failed"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Logout godoc
// @Summary Revoke the current bearer token
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.SuccessResponse
// @Router /users/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	token := c.GetString("token")
	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Logout failed"})
		return
	}
	c.JSON(http.StatusOK, model.SuccessResponse{Message: "Logged out"})
}

// UploadPhoto godoc
// @Summary Replace a user's profile image
// @Tags Users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param user_id path string true "External user id"
// @Param profileImage formData file true "Image file (jpeg, jpg, png, gif; max 5 MiB)"
// @Success 200 {object} model.SuccessResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 413 {object} model.ErrorResponse
// @Router /users/{user_id}/upload-photo [post]
func (h *UserHandler) UploadPhoto(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBody)

	file, header, err := c.Request.FormFile("profileImage")
	if err != nil {
		if err.Error() == "http: request body too large" {
			c.JSON(http.StatusRequestEntityTooLarge, model.ErrorResponse{Error: storage.ErrFileTooLarge.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "No image was uploaded", Message: err.Error()})
		return
	}
	defer file.Close()

	user, err := h.profileService.UpdateAvatar(c.Request.Context(), c.Param("user_id"), file, header)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidMediaType):
			c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		case errors.Is(err, storage.ErrFileTooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, model.ErrorResponse{Error: err.Error()})
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to update profile image"})
		}
		return
	}

	c.JSON(http.StatusOK, model.SuccessResponse{Message: "Profile image updated", Data: user})
}
