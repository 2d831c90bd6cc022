package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/api/googleapi"

	"skillbridge_backend/internal/model"
)

type fakeGenerator struct {
	models   []string
	generate func(model, prompt string) (string, error)
	closed   bool
}

func (f *fakeGenerator) ListModels(ctx context.Context) ([]string, error) {
	return f.models, nil
}

func (f *fakeGenerator) Generate(ctx context.Context, model, prompt string) (string, error) {
	return f.generate(model, prompt)
}

func (f *fakeGenerator) Close() error {
	f.closed = true
	return nil
}

// newFakeOrchestrator wires a factory that hands out one generator per key
// and records the key order.
func newFakeOrchestrator(keys []string, maxRetries int, byKey map[string]*fakeGenerator, usedKeys *[]string) *Orchestrator {
	factory := func(ctx context.Context, apiKey string) (Generator, error) {
		*usedKeys = append(*usedKeys, apiKey)
		gen, ok := byKey[apiKey]
		if !ok {
			return nil, errors.New("unknown key")
		}
		return gen, nil
	}
	return NewOrchestrator(NewKeyPool(keys), factory, maxRetries, zap.NewNop())
}

const validGapJSON = `{"gaps":[{"skill":"Docker","currentLevel":"not_mentioned","requiredLevel":"intermediate","priority":"critical","description":"missing"}],"summary":"needs work"}`

func testRole() RoleContext {
	return RoleContext{
		Title: "DevOps Engineer",
		RequiredSkills: []model.RequiredSkill{
			{Skill: "Docker", Level: model.LevelIntermediate, Importance: model.PriorityCritical},
		},
	}
}

func TestAnalyzeSkillGapsSuccess(t *testing.T) {
	var usedKeys []string
	gen := &fakeGenerator{
		models: []string{"gemini-2.0-flash"},
		generate: func(model, prompt string) (string, error) {
			return "```json\n" + validGapJSON + "\n```", nil
		},
	}
	orch := newFakeOrchestrator([]string{"key-a"}, 3, map[string]*fakeGenerator{"key-a": gen}, &usedKeys)

	analysis, err := orch.AnalyzeSkillGaps(context.Background(), "resume text", testRole())

	require.NoError(t, err)
	require.Len(t, analysis.Gaps, 1)
	assert.Equal(t, "Docker", analysis.Gaps[0].Skill)
	assert.Equal(t, "needs work", analysis.Summary)
	assert.Equal(t, []string{"key-a"}, usedKeys)
	assert.True(t, gen.closed)
}

func TestRotatesToNextKeyOnQuotaError(t *testing.T) {
	var usedKeys []string
	quotaErr := &googleapi.Error{Code: 429, Message: "quota exceeded"}
	failing := &fakeGenerator{
		models:   []string{"gemini-2.0-flash", "gemini-1.5-flash"},
		generate: func(model, prompt string) (string, error) { return "", quotaErr },
	}
	healthy := &fakeGenerator{
		models:   []string{"gemini-2.0-flash"},
		generate: func(model, prompt string) (string, error) { return validGapJSON, nil },
	}
	orch := newFakeOrchestrator([]string{"key-a", "key-b"}, 3,
		map[string]*fakeGenerator{"key-a": failing, "key-b": healthy}, &usedKeys)

	analysis, err := orch.AnalyzeSkillGaps(context.Background(), "resume", testRole())

	require.NoError(t, err)
	assert.Len(t, analysis.Gaps, 1)
	// Quota error aborts the model walk on the first key and rotates.
	assert.Equal(t, []string{"key-a", "key-b"}, usedKeys)
}

func TestModelLevelErrorTriesNextModel(t *testing.T) {
	var usedKeys []string
	calls := []string{}
	gen := &fakeGenerator{
		models: []string{"gemini-2.0-flash", "gemini-1.5-flash"},
		generate: func(model, prompt string) (string, error) {
			calls = append(calls, model)
			if model == "gemini-2.0-flash" {
				return "", errors.New("model does not support generateContent")
			}
			return validGapJSON, nil
		},
	}
	orch := newFakeOrchestrator([]string{"key-a"}, 3, map[string]*fakeGenerator{"key-a": gen}, &usedKeys)

	_, err := orch.AnalyzeSkillGaps(context.Background(), "resume", testRole())

	require.NoError(t, err)
	assert.Equal(t, []string{"gemini-2.0-flash", "gemini-1.5-flash"}, calls)
	assert.Equal(t, []string{"key-a"}, usedKeys)
}

func TestRetryBoundedByKeyCount(t *testing.T) {
	var usedKeys []string
	gen := &fakeGenerator{
		models:   []string{"gemini-2.0-flash"},
		generate: func(model, prompt string) (string, error) { return "", errors.New("rate limit hit") },
	}
	orch := newFakeOrchestrator([]string{"key-a"}, 5, map[string]*fakeGenerator{"key-a": gen}, &usedKeys)

	analysis, err := orch.AnalyzeSkillGaps(context.Background(), "resume", testRole())

	// Recoverable exhaustion degrades to the fallback analysis.
	require.NoError(t, err)
	require.Len(t, analysis.Gaps, 1)
	assert.Equal(t, model.LevelNotMentioned, analysis.Gaps[0].CurrentLevel)
	// One key means one attempt, regardless of maxRetries.
	assert.Equal(t, []string{"key-a"}, usedKeys)
}

func TestAnalyzeSkillGapsNoKeyFallsBack(t *testing.T) {
	orch := NewOrchestrator(NewKeyPool(nil), nil, 3, zap.NewNop())

	analysis, err := orch.AnalyzeSkillGaps(context.Background(), "resume", testRole())

	require.NoError(t, err)
	require.Len(t, analysis.Gaps, 1)
	assert.Equal(t, "Docker", analysis.Gaps[0].Skill)
}

func TestAnalyzeSkillGapsMalformedPropagates(t *testing.T) {
	var usedKeys []string
	gen := &fakeGenerator{
		models:   []string{"gemini-2.0-flash"},
		generate: func(model, prompt string) (string, error) { return "I am not JSON", nil },
	}
	orch := newFakeOrchestrator([]string{"key-a"}, 3, map[string]*fakeGenerator{"key-a": gen}, &usedKeys)

	_, err := orch.AnalyzeSkillGaps(context.Background(), "resume", testRole())

	require.Error(t, err)
	assert.True(t, IsMalformed(err))
}

func TestGenerateRoadmapMalformedFallsBack(t *testing.T) {
	var usedKeys []string
	gen := &fakeGenerator{
		models:   []string{"gemini-2.0-flash"},
		generate: func(model, prompt string) (string, error) { return "I am not JSON", nil },
	}
	orch := newFakeOrchestrator([]string{"key-a"}, 3, map[string]*fakeGenerator{"key-a": gen}, &usedKeys)

	gaps := []model.SkillGap{
		{Skill: "Docker", CurrentLevel: model.LevelNotMentioned, RequiredLevel: model.LevelIntermediate, Priority: model.PriorityCritical},
	}
	roadmap := orch.GenerateRoadmap(context.Background(), gaps, "DevOps Engineer")

	require.Len(t, roadmap.Steps, 1)
	assert.Equal(t, "Docker", roadmap.Steps[0].Skill)
	assert.Equal(t, "3-4 weeks", roadmap.Steps[0].EstimatedTime)
}

func TestGenerateRoadmapCarriesGapPriorities(t *testing.T) {
	var usedKeys []string
	payload := `{"steps":[
		{"skill":"docker","resources":["r1"],"estimatedTime":"2 weeks","description":"learn docker","order":1},
		{"skill":"Unheard Of","resources":["r2"],"estimatedTime":"1 week","description":"misc","order":2}
	],"totalDuration":"3 weeks"}`
	gen := &fakeGenerator{
		models:   []string{"gemini-2.0-flash"},
		generate: func(model, prompt string) (string, error) { return payload, nil },
	}
	orch := newFakeOrchestrator([]string{"key-a"}, 3, map[string]*fakeGenerator{"key-a": gen}, &usedKeys)

	gaps := []model.SkillGap{
		{Skill: "Docker", Priority: model.PriorityCritical},
		{Skill: "Kubernetes", Priority: model.PriorityLow},
	}
	roadmap := orch.GenerateRoadmap(context.Background(), gaps, "DevOps Engineer")

	require.Len(t, roadmap.Steps, 2)
	// Name match is case-insensitive.
	assert.Equal(t, model.PriorityCritical, roadmap.Steps[0].Priority)
	// Unknown skill names fall back to positional pairing.
	assert.Equal(t, model.PriorityLow, roadmap.Steps[1].Priority)
	assert.Equal(t, "3 weeks", roadmap.TotalDuration)
}

func TestGenerateQuizDropsInvalidAnswerKeys(t *testing.T) {
	var usedKeys []string
	payload := `{"questions":[
		{"question":"Q1","options":{"A":"a","B":"b","C":"c","D":"d"},"correctAnswer":"B","explanation":"e"},
		{"question":"Q2","options":{"A":"a","B":"b","C":"c","D":"d"},"correctAnswer":"E","explanation":"e"}
	]}`
	gen := &fakeGenerator{
		models:   []string{"gemini-2.0-flash"},
		generate: func(model, prompt string) (string, error) { return payload, nil },
	}
	orch := newFakeOrchestrator([]string{"key-a"}, 3, map[string]*fakeGenerator{"key-a": gen}, &usedKeys)

	questions := orch.GenerateQuiz(context.Background(), "Docker", "containers", "beginner")

	require.Len(t, questions, 1)
	assert.Equal(t, "Q1", questions[0].Question)
}

func TestChatFallsBackOnFailure(t *testing.T) {
	orch := NewOrchestrator(NewKeyPool(nil), nil, 3, zap.NewNop())

	reply := orch.Chat(context.Background(), "what next?", ChatContext{JobRole: "Data Scientist", Progress: 40})

	assert.Contains(t, reply, "Data Scientist")
	assert.Contains(t, reply, "40%")
}

func TestCandidateModelsExcludesExperimental(t *testing.T) {
	gen := &fakeGenerator{
		models: []string{"gemini-2.0-flash-exp", "gemini-2.0-flash", "gemini-1.5-pro"},
	}

	candidates := candidateModels(context.Background(), gen, zap.NewNop())

	assert.Equal(t, []string{"gemini-2.0-flash", "gemini-1.5-pro"}, candidates)
}

func TestCandidateModelsDiscoveryFailure(t *testing.T) {
	gen := &failingLister{}

	candidates := candidateModels(context.Background(), gen, zap.NewNop())

	assert.Equal(t, preferredModels, candidates)
}

type failingLister struct{}

func (f *failingLister) ListModels(ctx context.Context) ([]string, error) {
	return nil, errors.New("listing unavailable")
}

func (f *failingLister) Generate(ctx context.Context, model, prompt string) (string, error) {
	return "", errors.New("not implemented")
}

func (f *failingLister) Close() error { return nil }
