package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"skillbridge_backend/internal/model"
	"skillbridge_backend/internal/parser"
	"skillbridge_backend/internal/repository"
	"skillbridge_backend/internal/util"
	"skillbridge_backend/pkg/logger"
)

// MaxResumeSize bounds uploads at 10MB.
const MaxResumeSize = 10 << 20

type ResumeService struct {
	Profiles *repository.ProfileRepository
	Storage  StorageProvider
}

func NewResumeService(profiles *repository.ProfileRepository, storage StorageProvider) *ResumeService {
	return &ResumeService{Profiles: profiles, Storage: storage}
}

// UploadResume extracts text from the uploaded file, stores the original in
// object storage and replaces the profile's resume. A previous stored file
// is deleted best-effort.
func (s *ResumeService) UploadResume(ctx context.Context, userID uint, fileName, contentType string, data []byte) (*model.CareerProfile, error) {
	if len(data) > MaxResumeSize {
		return nil, util.ErrFileTooLarge
	}

	text, err := parser.ExtractText(data, contentType)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("resume contains no readable text")
	}

	profile, err := s.Profiles.FindOrCreate(userID)
	if err != nil {
		return nil, err
	}

	objectKey := fmt.Sprintf("resumes/%d/%s%s", userID, uuid.NewString(), filepath.Ext(fileName))
	if _, err := s.Storage.Upload(ctx, objectKey, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
		return nil, fmt.Errorf("failed to store resume file: %w", err)
	}

	if old := profile.Resume.ObjectKey; old != "" {
		if err := s.Storage.Delete(ctx, old); err != nil {
			logger.Log.Warn("failed to delete previous resume file",
				zap.String("objectKey", old), zap.Error(err))
		}
	}

	now := time.Now()
	profile.Resume = model.Resume{
		Text:       text,
		FileName:   fileName,
		ObjectKey:  objectKey,
		UploadedAt: &now,
	}

	if err := s.Profiles.Save(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// SetResumeText replaces the resume with pasted plain text. No file is
// stored; a previously uploaded file is removed.
func (s *ResumeService) SetResumeText(ctx context.Context, userID uint, text string) (*model.CareerProfile, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.New("resume text is empty")
	}

	profile, err := s.Profiles.FindOrCreate(userID)
	if err != nil {
		return nil, err
	}

	if old := profile.Resume.ObjectKey; old != "" {
		if err := s.Storage.Delete(ctx, old); err != nil {
			logger.Log.Warn("failed to delete previous resume file",
				zap.String("objectKey", old), zap.Error(err))
		}
	}

	now := time.Now()
	profile.Resume = model.Resume{Text: text, UploadedAt: &now}

	if err := s.Profiles.Save(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *ResumeService) GetResume(userID uint) (*model.Resume, error) {
	profile, err := s.Profiles.FindOrCreate(userID)
	if err != nil {
		return nil, err
	}
	if !profile.HasResume() {
		return nil, util.ErrResumeRequired
	}
	return &profile.Resume, nil
}

func (s *ResumeService) GetProfile(userID uint) (*model.CareerProfile, error) {
	return s.Profiles.FindOrCreate(userID)
}
