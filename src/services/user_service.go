package services

import (
	"errors"

	"github.com/formpilot/formpilot/src/dto"
	"github.com/formpilot/formpilot/src/middleware"
	"github.com/formpilot/formpilot/src/models"
	"github.com/formpilot/formpilot/src/repositories"
	"github.com/formpilot/formpilot/src/utils"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type UserService struct {
	repo repositories.UserRepo
}

func NewUserService(repo repositories.UserRepo) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Register(input dto.CreateUserDTO) (*models.User, error) {
	_, err := s.repo.FindByUsername(input.Username)
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: input.Username,
		Password: hashed,
		Email:    input.Email,
		FullName: input.FullName,
	}
	return user, s.repo.Create(user)
}

func (s *UserService) Login(username, password string) (models.User, string, error) {
	user, err := s.repo.FindByUsername(username)
	if err != nil {
		return user, "", ErrInvalidCredentials
	}
	if !utils.CheckPassword(user.Password, password) {
		return user, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(user.ID, user.Username)
	if err != nil {
		return user, "", err
	}
	return user, token, nil
}
