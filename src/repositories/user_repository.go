package repositories

import (
	"github.com/formpilot/formpilot/src/db"
	"github.com/formpilot/formpilot/src/models"
)

//go:generate mockgen -source=user_repository.go -destination=mock_repositories/mock_user_repository.go -package=mock_repositories

type UserRepo interface {
	Create(user *models.User) error
	FindByUsername(username string) (models.User, error)
	FindByID(id uint) (models.User, error)
}

type DBUserRepo struct{}

func (r *DBUserRepo) Create(user *models.User) error {
	return db.DB.Create(user).Error
}

func (r *DBUserRepo) FindByUsername(username string) (models.User, error) {
	var user models.User
	err := db.DB.Where("username = ?", username).First(&user).Error
	return user, err
}

func (r *DBUserRepo) FindByID(id uint) (models.User, error) {
	var user models.User
	err := db.DB.First(&user, id).Error
	return user, err
}
