package service

import (
	"errors"

	"skillbridge_backend/internal/model"
	"skillbridge_backend/internal/repository"
	"skillbridge_backend/internal/util"
)

type JobRoleService struct {
	JobRoles *repository.JobRoleRepository
}

func NewJobRoleService(jobRoles *repository.JobRoleRepository) *JobRoleService {
	return &JobRoleService{JobRoles: jobRoles}
}

func (s *JobRoleService) List() ([]model.JobRole, error) {
	return s.JobRoles.FindAll()
}

func (s *JobRoleService) Get(id uint) (*model.JobRole, error) {
	return s.JobRoles.FindByID(id)
}

func (s *JobRoleService) Create(role *model.JobRole) error {
	if role.Title == "" || role.Description == "" {
		return errors.New("title and description are required")
	}

	exists, err := s.JobRoles.TitleExists(role.Title)
	if err != nil {
		return err
	}
	if exists {
		return util.ErrJobRoleExists
	}
	return s.JobRoles.Create(role)
}
