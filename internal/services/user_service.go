package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/joshua-takyi/cnnct/internal/helpers"
	"github.com/joshua-takyi/cnnct/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserService struct {
	userRepo  models.UserRepo
	jwtSecret string
	jwtExpire time.Duration
}

func NewUserService(userRepo models.UserRepo, jwtSecret string, jwtExpire time.Duration) *UserService {
	return &UserService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		jwtExpire: jwtExpire,
	}
}

func (us *UserService) Register(ctx context.Context, user *models.User, password string) (*models.User, string, error) {
	if err := models.Validate.Struct(user); err != nil {
		return nil, "", asValidationError(err)
	}
	if !helpers.IsPasswordStrong(password) {
		return nil, "", models.NewValidationError("password", "must be at least 8 characters with upper, lower and digit")
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %v", err)
	}
	user.Password = hash

	created, err := us.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := helpers.SignToken(created.ID.Hex(), us.jwtSecret, us.jwtExpire)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %v", err)
	}

	return created, token, nil
}

func (us *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	if err := models.Validate.Var(email, "required,email"); err != nil {
		return nil, "", models.NewValidationError("email", "invalid email format")
	}

	user, err := us.userRepo.GetUserByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		return nil, "", models.ErrBadCredentials
	}
	if err != nil {
		return nil, "", err
	}

	if !helpers.CheckPassword(user.Password, password) {
		return nil, "", models.ErrBadCredentials
	}

	token, err := helpers.SignToken(user.ID.Hex(), us.jwtSecret, us.jwtExpire)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %v", err)
	}

	return user, token, nil
}

func (us *UserService) GetUser(ctx context.Context, userId primitive.ObjectID) (*models.User, error) {
	return us.userRepo.GetUserByID(ctx, userId)
}

func (us *UserService) UpdateDetails(ctx context.Context, userId primitive.ObjectID, firstName, lastName, email string) (*models.User, error) {
	if err := models.Validate.Var(email, "required,email"); err != nil {
		return nil, models.NewValidationError("email", "invalid email format")
	}

	update := map[string]interface{}{
		"firstName": firstName,
		"lastName":  lastName,
		"email":     email,
	}
	return us.userRepo.UpdateUser(ctx, userId, update)
}

// UpdatePassword verifies the current password before replacing it and
// hands back a fresh token so the client does not have to log in again.
func (us *UserService) UpdatePassword(ctx context.Context, userId primitive.ObjectID, currentPassword, newPassword string) (string, error) {
	user, err := us.userRepo.GetUserByID(ctx, userId)
	if err != nil {
		return "", err
	}

	if !helpers.CheckPassword(user.Password, currentPassword) {
		return "", models.ErrBadCredentials
	}
	if !helpers.IsPasswordStrong(newPassword) {
		return "", models.NewValidationError("newPassword", "must be at least 8 characters with upper, lower and digit")
	}

	hash, err := helpers.HashPassword(newPassword)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %v", err)
	}

	if _, err := us.userRepo.UpdateUser(ctx, userId, map[string]interface{}{"password": hash}); err != nil {
		return "", err
	}

	token, err := helpers.SignToken(userId.Hex(), us.jwtSecret, us.jwtExpire)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %v", err)
	}

	return token, nil
}
