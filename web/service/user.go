package service

import (
	"gorm.io/gorm"

	"github.com/starrep/starrep/database"
	"github.com/starrep/starrep/database/model"
)

// UserService reads user records for the profile endpoints.
type UserService struct {
	DB *gorm.DB
}

func NewUserService() *UserService {
	return &UserService{DB: database.GetDB()}
}

func (s *UserService) GetUser(id int) (*model.User, error) {
	user := &model.User{}
	err := s.DB.Model(model.User{}).
		Where("id = ?", id).
		First(user).
		Error
	if err != nil {
		return nil, err
	}
	return user, nil
}
