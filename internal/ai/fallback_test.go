package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillbridge_backend/internal/model"
)

func TestFallbackGapAnalysisOneGapPerSkill(t *testing.T) {
	role := RoleContext{
		Title: "Backend Developer",
		RequiredSkills: []model.RequiredSkill{
			{Skill: "Node.js", Level: model.LevelAdvanced, Importance: model.PriorityCritical},
			{Skill: "Docker", Level: model.LevelIntermediate, Importance: model.PriorityHigh},
			{Skill: "GraphQL", Level: model.LevelBeginner, Importance: model.PriorityLow},
		},
	}

	analysis := FallbackGapAnalysis("Experienced with node.js and Express applications", role)

	require.Len(t, analysis.Gaps, 3)
	assert.NotEmpty(t, analysis.Summary)
}

func TestFallbackGapAnalysisMentionDetection(t *testing.T) {
	role := RoleContext{
		Title: "Backend Developer",
		RequiredSkills: []model.RequiredSkill{
			{Skill: "Node.js", Level: model.LevelAdvanced, Importance: model.PriorityCritical},
			{Skill: "Docker", Level: model.LevelIntermediate, Importance: model.PriorityHigh},
		},
	}

	analysis := FallbackGapAnalysis("Built services with NODE.JS and Express", role)

	byName := map[string]model.SkillGap{}
	for _, gap := range analysis.Gaps {
		byName[gap.Skill] = gap
	}

	// Mentioned skill sits one tier below the requirement, case-insensitive.
	assert.Equal(t, model.LevelIntermediate, byName["Node.js"].CurrentLevel)
	// Absent skill is flagged as not mentioned.
	assert.Equal(t, model.LevelNotMentioned, byName["Docker"].CurrentLevel)
}

func TestFallbackCurrentLevelTiers(t *testing.T) {
	assert.Equal(t, model.LevelAdvanced, fallbackCurrentLevel(model.LevelExpert, true))
	assert.Equal(t, model.LevelIntermediate, fallbackCurrentLevel(model.LevelAdvanced, true))
	assert.Equal(t, model.LevelBeginner, fallbackCurrentLevel(model.LevelIntermediate, true))
	assert.Equal(t, model.LevelBeginner, fallbackCurrentLevel(model.LevelBeginner, true))
	assert.Equal(t, model.LevelNotMentioned, fallbackCurrentLevel(model.LevelExpert, false))
}

func TestFallbackGapAnalysisCommonSkillSample(t *testing.T) {
	role := RoleContext{Title: "Generalist", Description: "We use Docker and AWS heavily"}

	analysis := FallbackGapAnalysis("Python and JavaScript developer with React and SQL and Git experience", role)

	require.NotEmpty(t, analysis.Gaps)
	assert.LessOrEqual(t, len(analysis.Gaps), 5)
}

func TestFallbackGapAnalysisGenericGapWhenNothingMatches(t *testing.T) {
	analysis := FallbackGapAnalysis("I enjoy gardening", RoleContext{Title: "Botanist"})

	require.Len(t, analysis.Gaps, 1)
	assert.Equal(t, "General Skills", analysis.Gaps[0].Skill)
}

func TestFallbackRoadmapEstimatesByPriority(t *testing.T) {
	gaps := []model.SkillGap{
		{Skill: "Docker", CurrentLevel: model.LevelNotMentioned, RequiredLevel: model.LevelIntermediate, Priority: model.PriorityCritical},
		{Skill: "Kubernetes", CurrentLevel: model.LevelBeginner, RequiredLevel: model.LevelIntermediate, Priority: model.PriorityHigh},
		{Skill: "Git", CurrentLevel: model.LevelBeginner, RequiredLevel: model.LevelIntermediate, Priority: model.PriorityMedium},
	}

	roadmap := FallbackRoadmap(gaps)

	require.Len(t, roadmap.Steps, 3)
	assert.Equal(t, "3-4 weeks", roadmap.Steps[0].EstimatedTime)
	assert.Equal(t, "3-4 weeks", roadmap.Steps[1].EstimatedTime)
	assert.Equal(t, "1-2 weeks", roadmap.Steps[2].EstimatedTime)
	assert.Equal(t, "6-week plan (estimated)", roadmap.TotalDuration)

	for i, step := range roadmap.Steps {
		assert.Equal(t, gaps[i].Skill, step.Skill)
		assert.Equal(t, gaps[i].Priority, step.Priority)
		assert.Equal(t, model.StepNotStarted, step.Status)
		assert.Len(t, step.Resources, 3)
	}
}

func TestFallbackRoadmapEmptyGaps(t *testing.T) {
	roadmap := FallbackRoadmap(nil)

	assert.Empty(t, roadmap.Steps)
	assert.Equal(t, "Up to date", roadmap.TotalDuration)
}

func TestFallbackPlaylistsSearchURL(t *testing.T) {
	playlists := FallbackPlaylists("C++", "beginner")

	require.Len(t, playlists, 1)
	assert.Contains(t, playlists[0].URL, "https://www.youtube.com/results?search_query=")
	assert.Contains(t, playlists[0].URL, "C%2B%2B")
}

func TestFallbackQuizSingleQuestion(t *testing.T) {
	questions := FallbackQuiz("Docker")

	require.Len(t, questions, 1)
	assert.Equal(t, "D", questions[0].CorrectAnswer)
	assert.Contains(t, questions[0].Question, "Docker")
}

func TestFallbackResources(t *testing.T) {
	resources := FallbackResources("Go", "intermediate")

	require.Len(t, resources, 3)
	for _, r := range resources {
		assert.NotEmpty(t, r.Type)
		assert.NotEmpty(t, r.Name)
	}
}

func TestFallbackChatEnhancedMentionsCompletedSkills(t *testing.T) {
	reply := FallbackChatEnhanced(
		ChatContext{JobRole: "DevOps Engineer"},
		ProgressContext{CompletedSkills: []string{"Docker", "Linux"}},
	)

	assert.Contains(t, reply, "DevOps Engineer")
	assert.Contains(t, reply, "Docker, Linux")
}
