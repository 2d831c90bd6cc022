package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillbridge_backend/internal/model"
	"skillbridge_backend/internal/repository"
	"skillbridge_backend/internal/util"
)

func seedResume(t *testing.T, repo *repository.ProfileRepository, text string) {
	t.Helper()

	profile, err := repo.FindOrCreate(1)
	require.NoError(t, err)
	now := time.Now()
	profile.Resume = model.Resume{Text: text, UploadedAt: &now}
	require.NoError(t, repo.Save(profile))
}

func TestAnalyzeRequiresResume(t *testing.T) {
	db := setupDB(t)
	repo := profileRepo(db)
	svc := NewAnalysisService(repo, repository.NewJobRoleRepository(db), offlineOrchestrator())

	_, err := svc.Analyze(context.Background(), 1, AnalysisRequest{
		CustomJobRole: &CustomJobRole{Title: "Backend Developer"},
	})

	assert.ErrorIs(t, err, util.ErrResumeRequired)
}

func TestAnalyzeRequiresRoleSelection(t *testing.T) {
	db := setupDB(t)
	repo := profileRepo(db)
	seedResume(t, repo, "Node.js developer")
	svc := NewAnalysisService(repo, repository.NewJobRoleRepository(db), offlineOrchestrator())

	_, err := svc.Analyze(context.Background(), 1, AnalysisRequest{})
	assert.Error(t, err)
}

func TestAnalyzeUnknownJobRole(t *testing.T) {
	db := setupDB(t)
	repo := profileRepo(db)
	seedResume(t, repo, "Node.js developer")
	svc := NewAnalysisService(repo, repository.NewJobRoleRepository(db), offlineOrchestrator())

	missing := uint(42)
	_, err := svc.Analyze(context.Background(), 1, AnalysisRequest{JobRoleID: &missing})
	assert.ErrorIs(t, err, util.ErrJobRoleNotFound)
}

func TestAnalyzeStoredRoleResetsProgress(t *testing.T) {
	db := setupDB(t)
	repo := profileRepo(db)
	seedResume(t, repo, "Seasoned JavaScript engineer with React experience")

	jobRepo := repository.NewJobRoleRepository(db)
	role := &model.JobRole{
		Title:       "Frontend Developer",
		Description: "Build UIs",
		RequiredSkills: model.RequiredSkills{
			{Skill: "JavaScript", Level: model.LevelAdvanced, Importance: model.PriorityCritical},
			{Skill: "React", Level: model.LevelIntermediate, Importance: model.PriorityHigh},
			{Skill: "CSS", Level: model.LevelIntermediate, Importance: model.PriorityMedium},
		},
	}
	require.NoError(t, jobRepo.Create(role))

	svc := NewAnalysisService(repo, jobRepo, offlineOrchestrator())
	analysis, err := svc.Analyze(context.Background(), 1, AnalysisRequest{JobRoleID: &role.ID})
	require.NoError(t, err)
	require.Len(t, analysis.Gaps, 3)

	profile, err := repo.FindOrCreate(1)
	require.NoError(t, err)
	assert.Equal(t, "Frontend Developer", profile.SelectedJobRole.RoleName)
	require.NotNil(t, profile.SelectedJobRole.RoleID)
	assert.Equal(t, role.ID, *profile.SelectedJobRole.RoleID)
	assert.Equal(t, 3, profile.Progress.TotalSkills)
	assert.Equal(t, 0, profile.Progress.SkillsCompleted)
	assert.Nil(t, profile.Roadmap)
}

// End-to-end offline pass: upload text, analyze against a custom role,
// generate the roadmap, all through deterministic fallbacks.
func TestAnalysisAndRoadmapOfflineFlow(t *testing.T) {
	db := setupDB(t)
	repo := profileRepo(db)
	seedResume(t, repo, "Built several services with Node.js, Express and MongoDB")

	orch := offlineOrchestrator()
	analysisSvc := NewAnalysisService(repo, repository.NewJobRoleRepository(db), orch)
	roadmapSvc := NewRoadmapService(repo, orch)

	analysis, err := analysisSvc.Analyze(context.Background(), 1, AnalysisRequest{
		CustomJobRole: &CustomJobRole{
			Title:       "Backend Developer",
			Description: "Server-side development",
			RequiredSkills: []model.RequiredSkill{
				{Skill: "Node.js", Level: model.LevelAdvanced, Importance: model.PriorityCritical},
				{Skill: "Docker", Level: model.LevelIntermediate, Importance: model.PriorityHigh},
			},
		},
	})
	require.NoError(t, err)
	require.Len(t, analysis.Gaps, 2)

	byName := map[string]model.SkillGap{}
	for _, gap := range analysis.Gaps {
		byName[gap.Skill] = gap
	}
	assert.NotEqual(t, model.LevelNotMentioned, byName["Node.js"].CurrentLevel)
	assert.Equal(t, model.LevelNotMentioned, byName["Docker"].CurrentLevel)

	roadmap, err := roadmapSvc.Generate(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, roadmap.Steps, len(analysis.Gaps))
	for _, step := range roadmap.Steps {
		assert.Equal(t, model.StepNotStarted, step.Status)
	}
}
