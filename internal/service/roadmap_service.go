package service

import (
	"context"
	"math"
	"strings"
	"time"

	"skillbridge_backend/internal/ai"
	"skillbridge_backend/internal/model"
	"skillbridge_backend/internal/repository"
	"skillbridge_backend/internal/util"
)

type RoadmapService struct {
	Profiles     *repository.ProfileRepository
	Orchestrator *ai.Orchestrator
}

func NewRoadmapService(profiles *repository.ProfileRepository, orch *ai.Orchestrator) *RoadmapService {
	return &RoadmapService{Profiles: profiles, Orchestrator: orch}
}

// SanitizedQuiz is a quiz as exposed before submission: no correct answers,
// no explanations.
type SanitizedQuiz struct {
	Questions   []SanitizedQuestion `json:"questions"`
	GeneratedAt time.Time           `json:"generatedAt"`
	Passed      bool                `json:"passed"`
}

type SanitizedQuestion struct {
	Question string            `json:"question"`
	Options  model.QuizOptions `json:"options"`
}

// SanitizedStep mirrors RoadmapStep with the quiz stripped of answers.
type SanitizedStep struct {
	Skill            string                `json:"skill"`
	Priority         model.SkillPriority   `json:"priority"`
	Resources        []string              `json:"resources"`
	EstimatedTime    string                `json:"estimatedTime"`
	Description      string                `json:"description"`
	Status           model.StepStatus      `json:"status"`
	CompletedAt      *time.Time            `json:"completedAt"`
	Quiz             *SanitizedQuiz        `json:"quiz,omitempty"`
	YouTubePlaylists []model.PlaylistEntry `json:"youtubePlaylists,omitempty"`
}

type SanitizedRoadmap struct {
	Steps         []SanitizedStep `json:"steps"`
	TotalDuration string          `json:"totalDuration"`
	CreatedAt     time.Time       `json:"createdAt"`
}

func sanitizeQuiz(quiz *model.Quiz) *SanitizedQuiz {
	if quiz == nil {
		return nil
	}
	questions := make([]SanitizedQuestion, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		questions = append(questions, SanitizedQuestion{Question: q.Question, Options: q.Options})
	}
	return &SanitizedQuiz{Questions: questions, GeneratedAt: quiz.GeneratedAt, Passed: quiz.Passed}
}

func sanitizeRoadmap(r *model.Roadmap) *SanitizedRoadmap {
	out := &SanitizedRoadmap{TotalDuration: r.TotalDuration, CreatedAt: r.CreatedAt}
	for _, step := range r.Steps {
		out.Steps = append(out.Steps, SanitizedStep{
			Skill:            step.Skill,
			Priority:         step.Priority,
			Resources:        step.Resources,
			EstimatedTime:    step.EstimatedTime,
			Description:      step.Description,
			Status:           step.Status,
			CompletedAt:      step.CompletedAt,
			Quiz:             sanitizeQuiz(step.Quiz),
			YouTubePlaylists: step.YouTubePlaylists,
		})
	}
	return out
}

// Generate builds (or rebuilds) the roadmap from the stored analysis.
// Regeneration replaces every step, so statuses, quizzes and playlists
// start over.
func (s *RoadmapService) Generate(ctx context.Context, userID uint) (*SanitizedRoadmap, error) {
	profile, err := s.Profiles.FindOrCreate(userID)
	if err != nil {
		return nil, err
	}
	if !profile.HasAnalysis() {
		return nil, util.ErrAnalysisRequired
	}

	roadmap := s.Orchestrator.GenerateRoadmap(ctx, profile.Analysis.Gaps, profile.SelectedJobRole.RoleName)

	now := time.Now()
	profile.Roadmap = roadmap
	profile.Progress.SkillsCompleted = 0
	profile.Progress.OverallCompletion = 0
	profile.Progress.TotalSkills = len(roadmap.Steps)
	profile.Progress.LastUpdated = &now

	if err := s.Profiles.Save(profile); err != nil {
		return nil, err
	}
	return sanitizeRoadmap(roadmap), nil
}

func (s *RoadmapService) Get(userID uint) (*SanitizedRoadmap, error) {
	profile, err := s.Profiles.FindOrCreate(userID)
	if err != nil {
		return nil, err
	}
	if !profile.HasRoadmap() {
		return nil, util.ErrRoadmapNotFound
	}
	return sanitizeRoadmap(profile.Roadmap), nil
}

// StepUpdateResult reports the outcome of a status change. RequiresQuiz is
// set when completion was refused because the step's quiz is unpassed; the
// step is left untouched in that case.
type StepUpdateResult struct {
	Step         *SanitizedStep  `json:"step,omitempty"`
	Progress     *model.Progress `json:"progress,omitempty"`
	RequiresQuiz bool            `json:"requiresQuiz"`
}

func (s *RoadmapService) step(profile *model.CareerProfile, stepIndex int) (*model.RoadmapStep, error) {
	if !profile.HasRoadmap() {
		return nil, util.ErrRoadmapNotFound
	}
	if stepIndex < 0 || stepIndex >= len(profile.Roadmap.Steps) {
		return nil, util.ErrStepNotFound
	}
	return &profile.Roadmap.Steps[stepIndex], nil
}

// UpdateStepStatus transitions one step. Completing a step with a generated
// but unpassed quiz is refused without mutating anything.
func (s *RoadmapService) UpdateStepStatus(ctx context.Context, userID uint, stepIndex int, status model.StepStatus) (*StepUpdateResult, error) {
	if !model.ValidStepStatus(status) {
		return nil, util.ErrInvalidStatus
	}

	profile, err := s.Profiles.FindOrCreate(userID)
	if err != nil {
		return nil, err
	}
	step, err := s.step(profile, stepIndex)
	if err != nil {
		return nil, err
	}

	if status == model.StepCompleted && step.HasUnpassedQuiz() {
		return &StepUpdateResult{RequiresQuiz: true}, util.ErrQuizRequired
	}

	step.Status = status
	if status == model.StepCompleted {
		now := time.Now()
		step.CompletedAt = &now
	} else {
		step.CompletedAt = nil
	}

	recomputeCompletion(profile)

	if err := s.Profiles.Save(profile); err != nil {
		return nil, err
	}

	sanitized := sanitizeRoadmap(profile.Roadmap).Steps[stepIndex]
	return &StepUpdateResult{Step: &sanitized, Progress: &profile.Progress}, nil
}

// recomputeCompletion refreshes the completion counters from step statuses.
func recomputeCompletion(profile *model.CareerProfile) {
	if profile.Roadmap == nil {
		return
	}
	total := len(profile.Roadmap.Steps)
	completed := 0
	for _, step := range profile.Roadmap.Steps {
		if step.Status == model.StepCompleted {
			completed++
		}
	}

	profile.Progress.SkillsCompleted = completed
	profile.Progress.TotalSkills = total
	if total > 0 {
		profile.Progress.OverallCompletion = int(math.Round(float64(completed) / float64(total) * 100))
	} else {
		profile.Progress.OverallCompletion = 0
	}
	now := time.Now()
	profile.Progress.LastUpdated = &now
}

// StepPlaylists returns YouTube playlists for a step, generating and
// storing them on first request and reusing the stored set afterwards.
func (s *RoadmapService) StepPlaylists(ctx context.Context, userID uint, stepIndex int) ([]model.PlaylistEntry, error) {
	profile, err := s.Profiles.FindOrCreate(userID)
	if err != nil {
		return nil, err
	}
	step, err := s.step(profile, stepIndex)
	if err != nil {
		return nil, err
	}

	if len(step.YouTubePlaylists) > 0 {
		return step.YouTubePlaylists, nil
	}

	playlists := s.Orchestrator.YouTubePlaylists(ctx, step.Skill, s.skillLevel(profile, step.Skill))
	step.YouTubePlaylists = playlists
	if err := s.Profiles.Save(profile); err != nil {
		return nil, err
	}
	return playlists, nil
}

// skillLevel finds the user's current level for a skill from the analysis,
// defaulting to beginner.
func (s *RoadmapService) skillLevel(profile *model.CareerProfile, skill string) string {
	if profile.Analysis != nil {
		for _, gap := range profile.Analysis.Gaps {
			if strings.EqualFold(gap.Skill, skill) && model.ValidSkillLevel(gap.CurrentLevel) {
				return string(gap.CurrentLevel)
			}
		}
	}
	return string(model.LevelBeginner)
}

// GenerateQuiz returns the quiz for a step without correct answers. An
// existing unpassed quiz is returned as-is so refreshing the page cannot be
// used to reroll questions; a passed (or absent) quiz triggers generation.
func (s *RoadmapService) GenerateQuiz(ctx context.Context, userID uint, stepIndex int) (*SanitizedQuiz, error) {
	profile, err := s.Profiles.FindOrCreate(userID)
	if err != nil {
		return nil, err
	}
	step, err := s.step(profile, stepIndex)
	if err != nil {
		return nil, err
	}

	if step.HasUnpassedQuiz() {
		return sanitizeQuiz(step.Quiz), nil
	}

	questions := s.Orchestrator.GenerateQuiz(ctx, step.Skill, step.Skill, s.skillLevel(profile, step.Skill))
	step.Quiz = &model.Quiz{Questions: questions, GeneratedAt: time.Now()}
	if err := s.Profiles.Save(profile); err != nil {
		return nil, err
	}
	return sanitizeQuiz(step.Quiz), nil
}

// QuizResult is the graded submission, with correct answers and
// explanations revealed.
type QuizResult struct {
	Correct   int                  `json:"correct"`
	Total     int                  `json:"total"`
	Score     int                  `json:"score"`
	Passed    bool                 `json:"passed"`
	Questions []model.QuizQuestion `json:"questions"`
}

// SubmitQuiz grades a full answer set against the step's quiz. Passing
// requires at least 80% correct, rounded up.
func (s *RoadmapService) SubmitQuiz(ctx context.Context, userID uint, stepIndex int, answers []string) (*QuizResult, error) {
	profile, err := s.Profiles.FindOrCreate(userID)
	if err != nil {
		return nil, err
	}
	step, err := s.step(profile, stepIndex)
	if err != nil {
		return nil, err
	}
	if step.Quiz == nil || len(step.Quiz.Questions) == 0 {
		return nil, util.ErrQuizNotFound
	}

	quiz := step.Quiz
	if len(answers) != len(quiz.Questions) {
		return nil, util.ErrIncompleteAnswer
	}
	for _, a := range answers {
		switch a {
		case "A", "B", "C", "D":
		default:
			return nil, util.ErrInvalidAnswer
		}
	}

	correct := 0
	for i := range quiz.Questions {
		answer := answers[i]
		isCorrect := answer == quiz.Questions[i].CorrectAnswer
		if isCorrect {
			correct++
		}
		quiz.Questions[i].UserAnswer = &answer
		quiz.Questions[i].IsCorrect = &isCorrect
	}

	total := len(quiz.Questions)
	passThreshold := (4*total + 4) / 5 // ceil(0.8 * total)
	passed := correct >= passThreshold
	if passed && !quiz.Passed {
		now := time.Now()
		quiz.Passed = true
		quiz.PassedAt = &now
	}

	if err := s.Profiles.Save(profile); err != nil {
		return nil, err
	}

	return &QuizResult{
		Correct:   correct,
		Total:     total,
		Score:     int(math.Round(float64(correct) / float64(total) * 100)),
		Passed:    quiz.Passed,
		Questions: quiz.Questions,
	}, nil
}
