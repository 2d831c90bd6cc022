package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillbridge_backend/internal/model"
)

func TestProgressZeroWithoutRoadmap(t *testing.T) {
	repo := profileRepo(setupDB(t))
	svc := NewProgressService(repo)

	progress, err := svc.Get(1)
	require.NoError(t, err)

	assert.Equal(t, 0, progress.JobAccessibility)
	assert.Equal(t, 0, progress.OverallCompletion)
}

func TestJobAccessibilityFromUrgentSteps(t *testing.T) {
	repo := profileRepo(setupDB(t))
	roadmap := threeStepRoadmap()
	// One of the two critical/high steps is done; the medium one is ignored.
	roadmap.Steps[0].Status = model.StepCompleted
	roadmap.Steps[2].Status = model.StepCompleted
	seedProfile(t, repo, roadmap)
	svc := NewProgressService(repo)

	progress, err := svc.Get(1)
	require.NoError(t, err)

	assert.Equal(t, 50, progress.JobAccessibility)
}

func TestJobAccessibilityProxiesOverallWhenNoUrgentSteps(t *testing.T) {
	repo := profileRepo(setupDB(t))
	roadmap := &model.Roadmap{
		Steps: []model.RoadmapStep{
			{Skill: "Git", Priority: model.PriorityMedium, Status: model.StepCompleted},
			{Skill: "Bash", Priority: model.PriorityLow, Status: model.StepNotStarted},
		},
	}
	profile := seedProfile(t, repo, roadmap)
	profile.Progress.OverallCompletion = 50
	require.NoError(t, repo.Save(profile))
	svc := NewProgressService(repo)

	progress, err := svc.Get(1)
	require.NoError(t, err)

	assert.Equal(t, 50, progress.JobAccessibility)
}

func TestProgressGetPersistsDerivedAccessibility(t *testing.T) {
	repo := profileRepo(setupDB(t))
	roadmap := threeStepRoadmap()
	roadmap.Steps[0].Status = model.StepCompleted
	roadmap.Steps[1].Status = model.StepCompleted
	seedProfile(t, repo, roadmap)
	svc := NewProgressService(repo)

	progress, err := svc.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 100, progress.JobAccessibility)

	stored, err := repo.FindOrCreate(1)
	require.NoError(t, err)
	assert.Equal(t, 100, stored.Progress.JobAccessibility)
	assert.NotNil(t, stored.Progress.LastUpdated)
}

func TestGetDetailedSkillsAndTimeline(t *testing.T) {
	repo := profileRepo(setupDB(t))
	roadmap := threeStepRoadmap()
	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)
	roadmap.Steps[0].Status = model.StepCompleted
	roadmap.Steps[0].CompletedAt = &now
	roadmap.Steps[1].Status = model.StepCompleted
	roadmap.Steps[1].CompletedAt = &yesterday
	seedProfile(t, repo, roadmap)
	svc := NewProgressService(repo)

	detailed, err := svc.GetDetailed(1)
	require.NoError(t, err)

	require.Len(t, detailed.Skills, 3)
	assert.Equal(t, "Docker", detailed.Skills[0].Skill)
	assert.Equal(t, model.PriorityCritical, detailed.Skills[0].Priority)
	assert.Equal(t, model.StepNotStarted, detailed.Skills[2].Status)

	require.Len(t, detailed.Timeline, 30)
	assert.Equal(t, now.Format("2006-01-02"), detailed.Timeline[29].Date)
	assert.Equal(t, 1, detailed.Timeline[29].Completed)
	assert.Equal(t, 1, detailed.Timeline[28].Completed)
	assert.Equal(t, 0, detailed.Timeline[0].Completed)
}

func TestGetDetailedWithoutRoadmap(t *testing.T) {
	repo := profileRepo(setupDB(t))
	svc := NewProgressService(repo)

	detailed, err := svc.GetDetailed(1)
	require.NoError(t, err)

	assert.Empty(t, detailed.Skills)
	require.Len(t, detailed.Timeline, 30)
}
