package services

import (
	"CityGuide/models"
	"CityGuide/store"
	"CityGuide/utils"
	"context"
	"errors"
	"net/http"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	Store store.Store
}

func NewUserService(s store.Store) *UserService {
	return &UserService{Store: s}
}

// Register stores a new user with a bcrypt hashed password.
func (s *UserService) Register(ctx context.Context, username, password string) (models.User, error) {
	if username == "" || password == "" {
		return models.User{}, utils.NewCustomError(http.StatusBadRequest, "Username and password are required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	user, err := s.Store.InsertUser(ctx, models.User{Username: username, Password: string(hash)})
	if errors.Is(err, store.ErrDuplicate) {
		return models.User{}, utils.NewCustomError(http.StatusConflict, "Username already taken")
	}
	return user, err
}

func (s *UserService) GetUser(ctx context.Context, id int) (models.User, error) {
	user, found, err := s.Store.GetUser(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	if !found {
		return models.User{}, utils.NewCustomError(http.StatusNotFound, "User not found")
	}
	return user, nil
}

// Authenticate returns the user when the password matches.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	invalid := utils.NewCustomError(http.StatusUnauthorized, "Invalid username or password")
	user, found, err := s.Store.GetUserByUsername(ctx, username)
	if err != nil {
		return models.User{}, err
	}
	if !found {
		return models.User{}, invalid
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, invalid
	}
	return user, nil
}
