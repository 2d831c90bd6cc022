package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"skillbridge_backend/internal/model"
	"skillbridge_backend/pkg/monitoring"
)

// Orchestrator drives every generation task: it binds a prompt to the
// current API key, walks the candidate models, rotates keys on transient
// failures, and substitutes deterministic fallbacks when the service cannot
// be reached. Skill gap analysis is the one task whose parse failures
// surface to the caller; every other task degrades silently.
type Orchestrator struct {
	pool       *KeyPool
	factory    GeneratorFactory
	maxRetries int
	log        *zap.Logger
}

// NewOrchestrator wires a pool and generator factory together. maxRetries
// bounds key rotation attempts per request; values below 1 are lifted to 1.
func NewOrchestrator(pool *KeyPool, factory GeneratorFactory, maxRetries int, log *zap.Logger) *Orchestrator {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &Orchestrator{pool: pool, factory: factory, maxRetries: maxRetries, log: log}
}

// generate runs one prompt through the retry loop. Attempts are capped at
// the pool size so each key is tried at most once per request.
func (o *Orchestrator) generate(ctx context.Context, task, prompt string) (string, error) {
	if !o.pool.HasKey() {
		return "", ErrNoAPIKey
	}

	attempts := o.maxRetries
	if size := o.pool.Size(); size < attempts {
		attempts = size
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		gen, err := o.factory(ctx, o.pool.Current())
		if err != nil {
			lastErr = err
			o.log.Warn("generator setup failed",
				zap.String("task", task), zap.Int("attempt", attempt), zap.Error(err))
			o.pool.Rotate()
			continue
		}

		out, err := o.tryModels(ctx, gen, task, prompt, attempt)
		closeErr := gen.Close()
		if closeErr != nil {
			o.log.Debug("generator close failed", zap.Error(closeErr))
		}
		if err == nil {
			return out, nil
		}
		lastErr = err
		o.pool.Rotate()
	}

	if lastErr == nil {
		lastErr = ErrServiceUnavailable
	}
	return "", fmt.Errorf("generation failed after %d attempt(s): %w", attempts, lastErr)
}

// tryModels walks the candidate models on a single key. A recoverable error
// aborts the walk so the caller rotates to the next key; any other error
// moves on to the next model.
func (o *Orchestrator) tryModels(ctx context.Context, gen Generator, task, prompt string, attempt int) (string, error) {
	var lastErr error
	for _, name := range candidateModels(ctx, gen, o.log) {
		out, err := gen.Generate(ctx, name, prompt)
		if err == nil {
			o.log.Debug("generation succeeded",
				zap.String("task", task), zap.String("model", name), zap.Int("attempt", attempt))
			return out, nil
		}
		lastErr = err
		o.log.Warn("generation attempt failed",
			zap.String("task", task), zap.String("model", name),
			zap.Int("attempt", attempt), zap.Error(err))
		if recoverable(err) {
			break
		}
	}
	if lastErr == nil {
		lastErr = ErrServiceUnavailable
	}
	return "", lastErr
}

func (o *Orchestrator) observe(task, outcome string) {
	monitoring.AIRequestCounter.WithLabelValues(task, outcome).Inc()
}

type gapPayload struct {
	Gaps    []model.SkillGap `json:"gaps"`
	Summary string           `json:"summary"`
}

type roadmapStepPayload struct {
	Skill         string   `json:"skill"`
	Resources     []string `json:"resources"`
	EstimatedTime string   `json:"estimatedTime"`
	Description   string   `json:"description"`
	Order         int      `json:"order"`
}

type roadmapPayload struct {
	Steps         []roadmapStepPayload `json:"steps"`
	TotalDuration string               `json:"totalDuration"`
}

type resourcesPayload struct {
	Resources []model.LearningResource `json:"resources"`
}

type playlistsPayload struct {
	Playlists []model.PlaylistEntry `json:"playlists"`
}

type quizPayload struct {
	Questions []model.QuizQuestion `json:"questions"`
}

// AnalyzeSkillGaps compares a resume against a role. Transient service
// failures degrade to the deterministic fallback analysis; a response that
// arrives but cannot be parsed is returned as an error, since a silently
// wrong analysis would poison everything built on top of it.
func (o *Orchestrator) AnalyzeSkillGaps(ctx context.Context, resumeText string, role RoleContext) (*model.SkillGapAnalysis, error) {
	raw, err := o.generate(ctx, taskGapAnalysis, gapAnalysisPrompt(resumeText, role))
	if err != nil {
		if recoverable(err) {
			o.log.Warn("skill gap analysis degraded to fallback", zap.Error(err))
			o.observe(taskGapAnalysis, outcomeFallback)
			return FallbackGapAnalysis(resumeText, role), nil
		}
		o.observe(taskGapAnalysis, outcomeError)
		return nil, err
	}

	var payload gapPayload
	if err := ExtractJSON(raw, &payload); err != nil {
		o.observe(taskGapAnalysis, outcomeError)
		return nil, err
	}
	if len(payload.Gaps) == 0 {
		o.observe(taskGapAnalysis, outcomeError)
		return nil, &MalformedResponseError{Reason: "response carries no gaps array", Snippet: snippet(raw)}
	}

	for i := range payload.Gaps {
		normalizeGap(&payload.Gaps[i])
	}

	o.observe(taskGapAnalysis, outcomeSuccess)
	return &model.SkillGapAnalysis{
		Gaps:       payload.Gaps,
		Summary:    payload.Summary,
		JobRoleID:  role.ID,
		AnalyzedAt: time.Now(),
	}, nil
}

// GenerateRoadmap always yields a roadmap: any generation or parse failure
// falls back to the gap-derived template.
func (o *Orchestrator) GenerateRoadmap(ctx context.Context, gaps []model.SkillGap, roleTitle string) *model.Roadmap {
	raw, err := o.generate(ctx, taskRoadmap, roadmapPrompt(gaps, roleTitle))
	if err == nil {
		var payload roadmapPayload
		if perr := ExtractJSON(raw, &payload); perr == nil && len(payload.Steps) > 0 {
			o.observe(taskRoadmap, outcomeSuccess)
			return buildRoadmap(payload, gaps)
		} else if perr != nil {
			err = perr
		} else {
			err = &MalformedResponseError{Reason: "response carries no steps array", Snippet: snippet(raw)}
		}
	}

	o.log.Warn("roadmap generation degraded to fallback", zap.Error(err))
	o.observe(taskRoadmap, outcomeFallback)
	return FallbackRoadmap(gaps)
}

// buildRoadmap converts the parsed payload, carrying each gap's priority
// onto its step. Steps match gaps by skill name first, then by position.
func buildRoadmap(payload roadmapPayload, gaps []model.SkillGap) *model.Roadmap {
	byskill := make(map[string]model.SkillPriority, len(gaps))
	for _, gap := range gaps {
		bySkillKey := strings.ToLower(strings.TrimSpace(gap.Skill))
		byskill[bySkillKey] = gap.Priority
	}

	steps := make([]model.RoadmapStep, 0, len(payload.Steps))
	for i, sp := range payload.Steps {
		priority, ok := byskill[strings.ToLower(strings.TrimSpace(sp.Skill))]
		if !ok && i < len(gaps) {
			priority = gaps[i].Priority
			ok = true
		}
		if !ok {
			priority = model.PriorityMedium
		}
		steps = append(steps, model.RoadmapStep{
			Skill:         sp.Skill,
			Priority:      priority,
			Resources:     sp.Resources,
			EstimatedTime: sp.EstimatedTime,
			Description:   sp.Description,
			Status:        model.StepNotStarted,
		})
	}

	total := payload.TotalDuration
	if total == "" {
		total = fmt.Sprintf("%d-week plan (estimated)", len(steps)*2)
	}
	return &model.Roadmap{Steps: steps, TotalDuration: total, CreatedAt: time.Now()}
}

// LearningResources returns curated resources for a skill, degrading to a
// canned set on any failure.
func (o *Orchestrator) LearningResources(ctx context.Context, skill, level string) []model.LearningResource {
	raw, err := o.generate(ctx, taskResources, resourcesPrompt(skill, level))
	if err == nil {
		var payload resourcesPayload
		if perr := ExtractJSON(raw, &payload); perr == nil && len(payload.Resources) > 0 {
			o.observe(taskResources, outcomeSuccess)
			return payload.Resources
		}
	}
	o.observe(taskResources, outcomeFallback)
	return FallbackResources(skill, level)
}

// YouTubePlaylists returns playlist recommendations, degrading to a search
// link on any failure.
func (o *Orchestrator) YouTubePlaylists(ctx context.Context, skill, level string) []model.PlaylistEntry {
	raw, err := o.generate(ctx, taskPlaylists, playlistsPrompt(skill, level))
	if err == nil {
		var payload playlistsPayload
		if perr := ExtractJSON(raw, &payload); perr == nil && len(payload.Playlists) > 0 {
			o.observe(taskPlaylists, outcomeSuccess)
			return payload.Playlists
		}
	}
	o.observe(taskPlaylists, outcomeFallback)
	return FallbackPlaylists(skill, level)
}

// GenerateQuiz produces multiple-choice questions for a roadmap step,
// degrading to a single generic question on any failure. Questions with a
// correct answer outside A-D are dropped.
func (o *Orchestrator) GenerateQuiz(ctx context.Context, skill, topic, level string) []model.QuizQuestion {
	raw, err := o.generate(ctx, taskQuiz, quizPrompt(skill, topic, level))
	if err == nil {
		var payload quizPayload
		if perr := ExtractJSON(raw, &payload); perr == nil {
			questions := payload.Questions[:0]
			for _, q := range payload.Questions {
				if validAnswerKey(q.CorrectAnswer) {
					questions = append(questions, q)
				}
			}
			if len(questions) > 0 {
				o.observe(taskQuiz, outcomeSuccess)
				return questions
			}
		}
	}
	o.observe(taskQuiz, outcomeFallback)
	return FallbackQuiz(topic)
}

// Chat answers a free-form question with the user's role and progress as
// context.
func (o *Orchestrator) Chat(ctx context.Context, message string, cc ChatContext) string {
	raw, err := o.generate(ctx, taskChat, chatPrompt(message, cc))
	if err != nil || strings.TrimSpace(raw) == "" {
		o.observe(taskChat, outcomeFallback)
		return FallbackChat(cc)
	}
	o.observe(taskChat, outcomeSuccess)
	return strings.TrimSpace(raw)
}

// ChatEnhanced answers with the richer roadmap-aware prompt.
func (o *Orchestrator) ChatEnhanced(ctx context.Context, message string, cc ChatContext, pc ProgressContext) string {
	raw, err := o.generate(ctx, taskChatEnhanced, enhancedChatPrompt(message, cc, pc))
	if err != nil || strings.TrimSpace(raw) == "" {
		o.observe(taskChatEnhanced, outcomeFallback)
		return FallbackChatEnhanced(cc, pc)
	}
	o.observe(taskChatEnhanced, outcomeSuccess)
	return strings.TrimSpace(raw)
}

func normalizeGap(gap *model.SkillGap) {
	if !model.ValidSkillLevel(gap.CurrentLevel) {
		gap.CurrentLevel = model.LevelNotMentioned
	}
	if gap.RequiredLevel == "" || !model.ValidSkillLevel(gap.RequiredLevel) {
		gap.RequiredLevel = model.LevelIntermediate
	}
	switch gap.Priority {
	case model.PriorityLow, model.PriorityMedium, model.PriorityHigh, model.PriorityCritical:
	default:
		gap.Priority = model.PriorityMedium
	}
}

func validAnswerKey(key string) bool {
	switch key {
	case "A", "B", "C", "D":
		return true
	}
	return false
}

const (
	taskGapAnalysis  = "gap_analysis"
	taskRoadmap      = "roadmap"
	taskResources    = "resources"
	taskPlaylists    = "playlists"
	taskQuiz         = "quiz"
	taskChat         = "chat"
	taskChatEnhanced = "chat_enhanced"

	outcomeSuccess  = "success"
	outcomeFallback = "fallback"
	outcomeError    = "error"
)
