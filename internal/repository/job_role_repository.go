package repository

import (
	"errors"

	"gorm.io/gorm"

	"skillbridge_backend/internal/model"
	"skillbridge_backend/internal/util"
)

type JobRoleRepository struct {
	DB *gorm.DB
}

func NewJobRoleRepository(db *gorm.DB) *JobRoleRepository {
	return &JobRoleRepository{DB: db}
}

func (r *JobRoleRepository) FindAll() ([]model.JobRole, error) {
	var roles []model.JobRole
	err := r.DB.Order("title asc").Find(&roles).Error
	return roles, err
}

func (r *JobRoleRepository) FindByID(id uint) (*model.JobRole, error) {
	var role model.JobRole
	err := r.DB.First(&role, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrJobRoleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *JobRoleRepository) TitleExists(title string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.JobRole{}).Where("title = ?", title).Count(&count).Error
	return count > 0, err
}

func (r *JobRoleRepository) Create(role *model.JobRole) error {
	return r.DB.Create(role).Error
}

func (r *JobRoleRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.JobRole{}).Count(&count).Error
	return count, err
}
