package service

import (
	"context"
	"errors"
	"time"

	"skillbridge_backend/internal/ai"
	"skillbridge_backend/internal/model"
	"skillbridge_backend/internal/repository"
	"skillbridge_backend/internal/util"
)

// AnalysisRequest selects the target role: either a stored role by ID or an
// ad-hoc role supplied inline. Exactly one must be set.
type AnalysisRequest struct {
	JobRoleID     *uint          `json:"jobRoleId"`
	CustomJobRole *CustomJobRole `json:"customJobRole"`
}

type CustomJobRole struct {
	Title          string                `json:"title" binding:"required"`
	Description    string                `json:"description"`
	RequiredSkills []model.RequiredSkill `json:"requiredSkills"`
}

type AnalysisService struct {
	Profiles     *repository.ProfileRepository
	JobRoles     *repository.JobRoleRepository
	Orchestrator *ai.Orchestrator
}

func NewAnalysisService(profiles *repository.ProfileRepository, jobRoles *repository.JobRoleRepository, orch *ai.Orchestrator) *AnalysisService {
	return &AnalysisService{Profiles: profiles, JobRoles: jobRoles, Orchestrator: orch}
}

func (s *AnalysisService) resolveRole(req AnalysisRequest) (ai.RoleContext, error) {
	if req.JobRoleID != nil {
		role, err := s.JobRoles.FindByID(*req.JobRoleID)
		if err != nil {
			return ai.RoleContext{}, err
		}
		return ai.RoleContext{
			ID:             &role.ID,
			Title:          role.Title,
			Description:    role.Description,
			RequiredSkills: role.RequiredSkills,
		}, nil
	}

	if req.CustomJobRole != nil && req.CustomJobRole.Title != "" {
		return ai.RoleContext{
			Title:          req.CustomJobRole.Title,
			Description:    req.CustomJobRole.Description,
			RequiredSkills: req.CustomJobRole.RequiredSkills,
		}, nil
	}

	return ai.RoleContext{}, errors.New("either jobRoleId or customJobRole with a title is required")
}

// Analyze runs the skill gap analysis against the stored resume and
// persists the result. Progress is reset so the new gap set becomes the
// denominator for every later computation.
func (s *AnalysisService) Analyze(ctx context.Context, userID uint, req AnalysisRequest) (*model.SkillGapAnalysis, error) {
	profile, err := s.Profiles.FindOrCreate(userID)
	if err != nil {
		return nil, err
	}
	if !profile.HasResume() {
		return nil, util.ErrResumeRequired
	}

	role, err := s.resolveRole(req)
	if err != nil {
		return nil, err
	}

	analysis, err := s.Orchestrator.AnalyzeSkillGaps(ctx, profile.Resume.Text, role)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	profile.Analysis = analysis
	profile.Roadmap = nil
	profile.SelectedJobRole = model.SelectedJobRole{
		RoleID:     role.ID,
		RoleName:   role.Title,
		SelectedAt: &now,
	}
	profile.Progress = model.Progress{
		TotalSkills: len(analysis.Gaps),
		LastUpdated: &now,
	}

	if err := s.Profiles.Save(profile); err != nil {
		return nil, err
	}
	return analysis, nil
}

func (s *AnalysisService) GetAnalysis(userID uint) (*model.SkillGapAnalysis, error) {
	profile, err := s.Profiles.FindOrCreate(userID)
	if err != nil {
		return nil, err
	}
	if !profile.HasAnalysis() {
		return nil, util.ErrAnalysisRequired
	}
	return profile.Analysis, nil
}
